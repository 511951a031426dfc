package domain

import "context"

// RecorderPort persists analysis outcomes
type RecorderPort interface {
	// Record inserts one analyzed message.
	// A duplicate (session_id, sequence_number) pair is skipped and
	// reported as inserted=false with no error
	Record(ctx context.Context, rec Record) (inserted bool, err error)
}

// ReaderPort exposes analytics reads
type ReaderPort interface {
	// Latest returns the most recent records, newest first.
	// Message text is truncated for display
	Latest(ctx context.Context, limit int) ([]Record, error)

	// SentimentDistribution aggregates counts and average scores per label
	SentimentDistribution(ctx context.Context) ([]SentimentBucket, error)

	// KeywordFrequency returns the most frequent keywords
	KeywordFrequency(ctx context.Context, limit int) ([]KeywordCount, error)

	// Summary returns table-wide totals
	Summary(ctx context.Context) (Totals, error)
}
