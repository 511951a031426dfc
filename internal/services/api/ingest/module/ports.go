package module

import (
	"context"

	"chatlens/internal/services/api/ingest/domain"
	isvc "chatlens/internal/services/api/ingest/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptIngestPort struct{ svc isvc.Service }

// Append stores one message and enqueues it for analysis
func (a adaptIngestPort) Append(ctx context.Context, in domain.AppendInput) (domain.MessageRow, error) {
	return a.svc.Append(ctx, in)
}

// BySession returns a session's messages in sequence order
func (a adaptIngestPort) BySession(ctx context.Context, sessionID string) ([]domain.MessageRow, error) {
	return a.svc.BySession(ctx, sessionID)
}
