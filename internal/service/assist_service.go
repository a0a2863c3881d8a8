package service

import (
	"context"
	"strings"
	"time"

	"pay-assist/internal/assist"
	"pay-assist/internal/dto"

	"go.uber.org/zap"
)

// ToolRunner executes a named tool with JSON-shaped arguments.
type ToolRunner interface {
	Run(ctx context.Context, name string, args map[string]any) (any, error)
}

type AssistService struct {
	router   *assist.Router
	tools    ToolRunner
	minInput int
	now      func() time.Time
	logger   *zap.Logger
}

func NewAssistService(router *assist.Router, tools ToolRunner, minInput int, logger *zap.Logger) *AssistService {
	return &AssistService{
		router:   router,
		tools:    tools,
		minInput: minInput,
		now:      time.Now,
		logger:   logger,
	}
}

// Extract turns free text into structured fields, using the LLM when the
// action needs it.
func (s *AssistService) Extract(ctx context.Context, req *dto.ExtractRequest) (*assist.ExtractionResult, error) {
	if err := assist.ValidateInputLength(req.Input, s.minInput); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.router.Route(ctx, req.Input, assist.ParseActionKind(req.Action))
	if err != nil {
		return nil, err
	}

	s.logger.Info("Extracted fields",
		zap.String("action", string(result.Action)),
		zap.Int("fields", len(result.Extracted)),
		zap.Int("missing", len(result.Missing)),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return result, nil
}

// Infer is Extract without the LLM.
func (s *AssistService) Infer(ctx context.Context, req *dto.ExtractRequest) (*assist.ExtractionResult, error) {
	if err := assist.ValidateInputLength(req.Input, s.minInput); err != nil {
		return nil, err
	}
	return s.router.Infer(req.Input, assist.ParseActionKind(req.Action))
}

// Execute resolves fields for an action and runs it. Mutating actions stop
// at a confirmation unless req.Confirm is set.
func (s *AssistService) Execute(ctx context.Context, req *dto.ExecuteRequest) (*dto.ExecuteResponse, error) {
	action := assist.ParseActionKind(req.Action)
	input := strings.TrimSpace(req.Input)
	fields := assist.Sanitize(req.Fields)

	if action == assist.ActionUnknown || (action == assist.ActionAuto && input == "") {
		return nil, &assist.Error{Kind: assist.KindUnsupportedAction, Message: "unsupported action: " + req.Action}
	}

	// explicit fields win over anything read from the input
	if action == assist.ActionAuto || (len(fields) == 0 && input != "") {
		result, err := s.Extract(ctx, &dto.ExtractRequest{Input: input, Action: string(action)})
		if err != nil {
			return nil, err
		}
		action = result.Action
		fields = assist.Merge(result.Extracted, fields)
	}

	merged := assist.Merge(fields, assist.Sanitize(req.Overrides))
	if action.Mutating() {
		merged = assist.Normalize(input, merged, s.now())
	}

	decision, err := assist.Decide(action, merged, req.Confirm)
	if err != nil {
		return nil, err
	}
	if !decision.Execute() {
		s.logger.Info("Awaiting confirmation",
			zap.String("action", string(action)),
			zap.Strings("missing", decision.Confirmation.Missing),
		)
		return &dto.ExecuteResponse{
			Executed:     false,
			Action:       action,
			Confirmation: decision.Confirmation,
		}, nil
	}

	typed, err := assist.Bind(action, decision.Fields)
	if err != nil {
		return nil, err
	}

	result, err := s.tools.Run(ctx, string(typed.Action()), typed.Args())
	if err != nil {
		s.logger.Warn("Tool run failed", zap.String("action", string(action)), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Action executed", zap.String("action", string(action)))
	return &dto.ExecuteResponse{
		Executed: true,
		Action:   action,
		Result:   result,
	}, nil
}
