package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	ProcessSession(ctx context.Context, in SessionInput) (SessionOutput, error)
	ProcessPending(ctx context.Context, in PendingInput) (PendingOutput, error)
}
