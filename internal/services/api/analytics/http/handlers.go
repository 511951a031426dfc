// Package http provides http transport for analytics reads
package http

import (
	stdhttp "net/http"
	"strconv"

	"chatlens/internal/modkit/httpkit"
	svc "chatlens/internal/services/api/analytics/service"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// everything at once, the dashboard home payload
	httpkit.Get(r, "/", h.overview)

	httpkit.Get(r, "/latest", h.latest)
	httpkit.Get(r, "/sentiment", h.sentiment)
	httpkit.Get(r, "/keywords", h.keywords)
	httpkit.Get(r, "/totals", h.totals)
}

type handlers struct{ svc svc.Service }

func (h *handlers) overview(r *stdhttp.Request) (any, error) {
	return h.svc.Overview(r.Context())
}

func (h *handlers) latest(r *stdhttp.Request) (any, error) {
	return h.svc.Latest(r.Context(), queryInt(r, "limit"))
}

func (h *handlers) sentiment(r *stdhttp.Request) (any, error) {
	return h.svc.Sentiment(r.Context())
}

func (h *handlers) keywords(r *stdhttp.Request) (any, error) {
	return h.svc.Keywords(r.Context(), queryInt(r, "limit"))
}

func (h *handlers) totals(r *stdhttp.Request) (any, error) {
	return h.svc.Totals(r.Context())
}

// queryInt reads an optional integer query param, 0 when absent or junk
func queryInt(r *stdhttp.Request, key string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
