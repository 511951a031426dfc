package module

import (
	"context"

	"chatlens/internal/services/api/analytics/domain"
	asvc "chatlens/internal/services/api/analytics/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAnalyticsPort struct{ svc asvc.Service }

// Latest returns the most recent analyzed messages
func (a adaptAnalyticsPort) Latest(ctx context.Context, limit int) ([]domain.LatestRow, error) {
	return a.svc.Latest(ctx, limit)
}

// Sentiment aggregates counts and average scores per label
func (a adaptAnalyticsPort) Sentiment(ctx context.Context) ([]domain.SentimentBucket, error) {
	return a.svc.Sentiment(ctx)
}

// Keywords returns the most frequent keywords
func (a adaptAnalyticsPort) Keywords(ctx context.Context, limit int) ([]domain.KeywordRow, error) {
	return a.svc.Keywords(ctx, limit)
}

// Totals returns table-wide totals
func (a adaptAnalyticsPort) Totals(ctx context.Context) (domain.TotalsRow, error) {
	return a.svc.Totals(ctx)
}

// Overview bundles every read into one payload
func (a adaptAnalyticsPort) Overview(ctx context.Context) (domain.Overview, error) {
	return a.svc.Overview(ctx)
}
