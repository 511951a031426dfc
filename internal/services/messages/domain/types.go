// Package domain defines core types and interfaces for transcript messages
package domain

import "time"

// RawMessage is one stored transcript entry, append-only once written
type RawMessage struct {
	ID             int64
	UserID         int64
	SessionID      string
	Content        string
	SequenceNumber int
	CreatedAt      time.Time
}

// PendingMessage is a ledger entry joined with its message
type PendingMessage struct {
	RawMessage
	EnqueuedAt time.Time
}

// AppendInput carries one inbound transcript message.
// SessionID is generated when empty; UserID defaults to 1 when unset,
// matching the transport's anonymous fallback
type AppendInput struct {
	UserID    int64
	SessionID string
	Content   string
}
