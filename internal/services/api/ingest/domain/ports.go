package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Append(ctx context.Context, in AppendInput) (MessageRow, error)
	BySession(ctx context.Context, sessionID string) ([]MessageRow, error)
}
