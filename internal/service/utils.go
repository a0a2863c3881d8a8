package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, invalidf("malformed id %q", id)
	}
	return parsed, nil
}

func normalizeCurrency(code, fallback string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = fallback
	}
	if !currencyCodeRe.MatchString(code) {
		return "", invalidf("currency must be a three-letter code, got %q", code)
	}
	return code, nil
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, invalidf("date must be YYYY-MM-DD, got %q", s)
	}
	return &d, nil
}

func formatTime(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	return t.Format(layout)
}

// enrichAll loads the detail of every summary with at most limit requests in
// flight. Failed loads fall back to the summary and mark the result partial.
func enrichAll[S, D any](
	ctx context.Context,
	limit int,
	items []S,
	load func(context.Context, S) (D, error),
	fallback func(S) D,
	logger *zap.Logger,
) ([]D, bool) {
	out := make([]D, len(items))
	var failed atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		g.Go(func() error {
			d, err := load(gctx, item)
			if err != nil {
				failed.Add(1)
				logger.Warn("Failed to load details, returning summary", zap.Int("index", i), zap.Error(err))
				out[i] = fallback(item)
				return nil
			}
			out[i] = d
			return nil
		})
	}
	_ = g.Wait()

	return out, failed.Load() > 0
}
