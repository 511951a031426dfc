package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Latest(ctx context.Context, limit int) ([]LatestRow, error)
	Sentiment(ctx context.Context) ([]SentimentBucket, error)
	Keywords(ctx context.Context, limit int) ([]KeywordRow, error)
	Totals(ctx context.Context) (TotalsRow, error)
	Overview(ctx context.Context) (Overview, error)
}
