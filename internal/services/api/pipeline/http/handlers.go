// Package http provides http transport for the pipeline
package http

import (
	stdhttp "net/http"

	"chatlens/internal/modkit/httpkit"
	"chatlens/internal/modkit/scope"
	"chatlens/internal/services/api/pipeline/domain"
	svc "chatlens/internal/services/api/pipeline/service"
)

// Register mounts pipeline endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// analyze everything one session holds
	httpkit.PostJSON[domain.SessionInput](r, "/session", h.session)

	// drain the cross-session pending ledger
	httpkit.PostJSON[domain.PendingInput](r, "/pending", h.pending)
}

type handlers struct{ svc svc.Service }

func (h *handlers) session(r *stdhttp.Request, in domain.SessionInput) (any, error) {
	ctx := scope.With(r.Context(), map[string]string{"trigger": "http"})
	return h.svc.ProcessSession(ctx, in)
}

func (h *handlers) pending(r *stdhttp.Request, in domain.PendingInput) (any, error) {
	ctx := scope.With(r.Context(), map[string]string{"trigger": "http"})
	return h.svc.ProcessPending(ctx, in)
}
