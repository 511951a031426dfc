// Package http provides http transport for ingest
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"chatlens/internal/modkit/httpkit"
	perr "chatlens/internal/platform/errors"
	"chatlens/internal/services/api/ingest/domain"
	svc "chatlens/internal/services/api/ingest/service"
)

// Register mounts ingest endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// append one transcript message
	httpkit.PostJSON[domain.AppendInput](r, "/", h.append)

	// full session transcript in sequence order
	httpkit.Get(r, "/{session_id}", h.bySession)
}

type handlers struct{ svc svc.Service }

func (h *handlers) append(r *stdhttp.Request, in domain.AppendInput) (any, error) {
	return h.svc.Append(r.Context(), in)
}

func (h *handlers) bySession(r *stdhttp.Request) (any, error) {
	sid := chi.URLParam(r, "session_id")
	if sid == "" {
		return nil, perr.InvalidArgf("session_id is required")
	}
	return h.svc.BySession(r.Context(), sid)
}
