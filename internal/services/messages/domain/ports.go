package domain

import "context"

// WriterPort accepts inbound transcript messages
type WriterPort interface {
	// Append stores one message and enqueues it for analysis.
	// It assigns the next sequence number within the session
	Append(ctx context.Context, in AppendInput) (RawMessage, error)
}

// ReaderPort exposes stored transcript reads
type ReaderPort interface {
	// BySession returns a session's messages in sequence order
	BySession(ctx context.Context, sessionID string) ([]RawMessage, error)

	// Pending returns consumable ledger entries oldest-first, capped at limit
	Pending(ctx context.Context, limit int) ([]PendingMessage, error)
}

// MaintainerPort covers offline ledger upkeep
type MaintainerPort interface {
	// SeedPending enqueues stored messages that have neither a ledger
	// row nor an analysis record. Returns the number enqueued
	SeedPending(ctx context.Context) (int64, error)

	// PurgeProcessed deletes consumed ledger rows and reports how many
	PurgeProcessed(ctx context.Context) (int64, error)
}
