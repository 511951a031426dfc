package domain

import "context"

// RunnerPort drives analysis over stored messages
type RunnerPort interface {
	// ProcessSession analyzes every user message in one session.
	// Already analyzed messages are skipped, making replays safe
	ProcessSession(ctx context.Context, sessionID string) (SessionResult, error)

	// ProcessPending drains the pending ledger across sessions
	ProcessPending(ctx context.Context, limit int) (PendingResult, error)
}
