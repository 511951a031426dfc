// Package module provides the pipeline module
package module

import (
	"net/http"

	"chatlens/internal/core/analyze"
	"chatlens/internal/modkit"
	"chatlens/internal/modkit/httpkit"
	"chatlens/internal/modkit/repokit"

	anrepo "chatlens/internal/services/analytics/repo"
	msgrepo "chatlens/internal/services/messages/repo"
	"chatlens/internal/services/pipeline/domain"
	"chatlens/internal/services/pipeline/service"
)

// Ports exposed by the pipeline module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new pipeline module.
// The analyzer is built by the caller so the LLM client is wired once
func New(deps modkit.Deps, analyzer *analyze.Analyzer) *Module {
	svc := service.New(
		repokit.TxRunner(deps.PG),
		msgrepo.NewPG(),
		anrepo.NewPG(),
		analyzer,
		deps.Log,
	)

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "pipeline" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
