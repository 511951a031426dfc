// Package module provides the messages module
package module

import (
	"net/http"

	"chatlens/internal/modkit"
	"chatlens/internal/modkit/httpkit"
	"chatlens/internal/modkit/repokit"
	"chatlens/internal/services/messages/domain"
	"chatlens/internal/services/messages/repo"
	"chatlens/internal/services/messages/service"
)

// Ports exposed by the messages module
type Ports struct {
	Writer     domain.WriterPort
	Reader     domain.ReaderPort
	Maintainer domain.MaintainerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new messages module
func New(deps modkit.Deps) *Module {
	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder)

	m := &Module{deps: deps}
	m.ports = Ports{Writer: svc, Reader: svc, Maintainer: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "messages" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
