package assist

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Completer is the text-generation capability the router may call.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ExtractionResult is the structured reading of one prompt.
type ExtractionResult struct {
	Extracted FieldBag   `json:"extracted"`
	Missing   []string   `json:"missing"`
	Action    ActionKind `json:"action"`
}

func newResult(action ActionKind, fields FieldBag) *ExtractionResult {
	if fields == nil {
		fields = FieldBag{}
	}
	return &ExtractionResult{
		Extracted: fields,
		Missing:   Missing(action, fields),
		Action:    action,
	}
}

var createVerbRe = regexp.MustCompile(`(?i)\b(?:create|make|generate|issue|raise|prepare|add|bill|write)\b`)

// Router maps a prompt and optional action hint to an extraction result.
// It holds no per-request state and is safe for concurrent use.
type Router struct {
	llm    Completer
	now    func() time.Time
	logger *zap.Logger
}

type Option func(*Router)

func WithClock(now func() time.Time) Option {
	return func(r *Router) { r.now = now }
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Router) { r.logger = logger }
}

// NewRouter builds a router. llm may be nil, in which case auto routing falls
// back to keywords and mutating extractions fail with a configuration error.
func NewRouter(llm Completer, opts ...Option) *Router {
	r := &Router{
		llm:    llm,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HasLLM reports whether a completion capability is configured.
func (r *Router) HasLLM() bool {
	return r.llm != nil
}

// Route resolves prompt into an action and its fields. List actions never call the LLM.
func (r *Router) Route(ctx context.Context, prompt string, hint ActionKind) (*ExtractionResult, error) {
	today := r.now()

	switch {
	case hint == ActionAuto && r.llm == nil:
		return r.keywordRoute(prompt, today), nil
	case hint == ActionAuto:
		return r.classify(ctx, prompt, today)
	case !hint.Concrete():
		return nil, &Error{Kind: KindUnsupportedAction, Message: "unsupported action: " + string(hint)}
	case hint.IsList():
		return newResult(hint, ExtractHeuristic(hint, prompt, today)), nil
	case r.llm == nil:
		return nil, &Error{
			Kind:    KindConfiguration,
			Message: "no language model is configured",
			Detail:  string(hint) + " requires an LLM provider",
		}
	default:
		return r.extract(ctx, hint, prompt, today)
	}
}

// Infer is the heuristic-only path. It never calls the LLM, so explicit
// mutating hints are extracted by rules alone.
func (r *Router) Infer(prompt string, hint ActionKind) (*ExtractionResult, error) {
	today := r.now()
	switch {
	case hint == ActionAuto:
		return r.keywordRoute(prompt, today), nil
	case !hint.Concrete():
		return nil, &Error{Kind: KindUnsupportedAction, Message: "unsupported action: " + string(hint)}
	default:
		return newResult(hint, ExtractHeuristic(hint, prompt, today)), nil
	}
}

// KeywordAction picks an action from plain keywords.
func KeywordAction(prompt string) (ActionKind, bool) {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(lower, "pay link") || strings.Contains(lower, "payment link"):
		return ActionListPaymentLinks, true
	case strings.Contains(lower, "invoice") && createVerbRe.MatchString(lower):
		return ActionCreateInvoice, true
	case strings.Contains(lower, "invoice"):
		return ActionListInvoices, true
	default:
		return ActionListInvoices, false
	}
}

func (r *Router) keywordRoute(prompt string, today time.Time) *ExtractionResult {
	action, matched := KeywordAction(prompt)
	r.logger.Debug("Keyword route",
		zap.String("action", string(action)),
		zap.Bool("matched", matched),
	)
	if !matched {
		return newResult(action, FieldBag{})
	}
	return newResult(action, ExtractHeuristic(action, prompt, today))
}

func (r *Router) classify(ctx context.Context, prompt string, today time.Time) (*ExtractionResult, error) {
	raw, err := r.llm.Complete(ctx, ClassificationPrompt(prompt))
	if err != nil {
		r.logger.Error("Classification request failed", zap.Error(err))
		return nil, newError(KindClassification, "classification request failed", err)
	}

	obj, err := decodeModelJSON(raw, classificationValidator)
	if err != nil {
		r.logger.Warn("Unparsable classification", zap.Error(err), zap.String("raw", raw))
		e := newError(KindClassification, "failed to parse classification response", err)
		e.Raw = raw
		return nil, e
	}

	name, _ := obj["action"].(string)
	action := ParseActionKind(name)
	if !action.Concrete() {
		return nil, &Error{
			Kind:    KindClassification,
			Message: "model returned an unknown action",
			Detail:  name,
			Raw:     raw,
		}
	}

	extracted, _ := obj["extracted"].(map[string]any)
	fields := Sanitize(extracted)
	if err := fieldsValidator.Validate(map[string]any(fields)); err != nil {
		e := newError(KindClassification, "classification fields have an unexpected shape", err)
		e.Raw = raw
		return nil, e
	}

	r.logger.Debug("Classified prompt", zap.String("action", string(action)))
	return newResult(action, Sanitize(Normalize(prompt, fields, today))), nil
}

func (r *Router) extract(ctx context.Context, action ActionKind, prompt string, today time.Time) (*ExtractionResult, error) {
	tmpl, _ := PromptFor(action, prompt, today)

	start := time.Now()
	raw, err := r.llm.Complete(ctx, tmpl)
	if err != nil {
		r.logger.Error("Extraction request failed",
			zap.String("action", string(action)),
			zap.Error(err),
		)
		return nil, newError(KindExtraction, "extraction request failed", err)
	}
	r.logger.Debug("Extraction completed",
		zap.String("action", string(action)),
		zap.Duration("elapsed", time.Since(start)),
	)

	obj, err := decodeModelJSON(raw, fieldsValidator)
	if err != nil {
		r.logger.Warn("Unparsable extraction", zap.Error(err), zap.String("raw", raw))
		e := newError(KindExtraction, "failed to parse extraction response", err)
		e.Raw = raw
		return nil, e
	}

	return newResult(action, Sanitize(Normalize(prompt, Sanitize(obj), today))), nil
}
