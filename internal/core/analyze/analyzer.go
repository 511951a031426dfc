package analyze

import (
	"context"

	"chatlens/internal/platform/logger"
)

// Provider performs one outbound analysis call per message
type Provider interface {
	Analyze(ctx context.Context, text string) (Raw, error)
}

// Analyzer wraps a Provider and absorbs failures into the neutral fallback
// so the caller's per-message loop stays free of error branches
type Analyzer struct {
	provider Provider
	log      logger.Logger
}

// New constructs an Analyzer around a provider
func New(p Provider, log logger.Logger) *Analyzer {
	if p == nil {
		panic("analyze.Analyzer requires a non nil Provider")
	}
	return &Analyzer{provider: p, log: log}
}

// Message returns a validated outcome for text. Provider failures are
// logged as warnings and absorbed; the call never returns an error
func (a *Analyzer) Message(ctx context.Context, text string) Outcome {
	raw, err := a.provider.Analyze(ctx, text)
	if err != nil {
		a.log.Warn().Err(err).Msg("analysis call failed, falling back to neutral")
		return Neutral()
	}
	return Validate(raw)
}
