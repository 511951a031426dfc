package module

import (
	"context"

	"chatlens/internal/services/api/pipeline/domain"
	psvc "chatlens/internal/services/api/pipeline/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptPipelinePort struct{ svc psvc.Service }

// ProcessSession analyzes every user message in one session
func (a adaptPipelinePort) ProcessSession(ctx context.Context, in domain.SessionInput) (domain.SessionOutput, error) {
	return a.svc.ProcessSession(ctx, in)
}

// ProcessPending drains the pending ledger across sessions
func (a adaptPipelinePort) ProcessPending(ctx context.Context, in domain.PendingInput) (domain.PendingOutput, error) {
	return a.svc.ProcessPending(ctx, in)
}
