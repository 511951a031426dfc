// Package module provides the analytics module
package module

import (
	"net/http"

	"chatlens/internal/modkit"
	"chatlens/internal/modkit/httpkit"
	"chatlens/internal/modkit/repokit"
	"chatlens/internal/services/analytics/domain"
	"chatlens/internal/services/analytics/repo"
	"chatlens/internal/services/analytics/service"
)

// Ports exposed by the analytics module
type Ports struct {
	Recorder domain.RecorderPort
	Reader   domain.ReaderPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new analytics module
func New(deps modkit.Deps) *Module {
	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder)

	m := &Module{deps: deps}
	m.ports = Ports{Recorder: svc, Reader: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "analytics" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
