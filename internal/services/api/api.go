// Package api provides the HTTP API for the application
package api

import (
	"net/http"

	"chatlens/internal/core/analyze"
	"chatlens/internal/platform/config"
	"chatlens/internal/platform/logger"
	phttp "chatlens/internal/platform/net/http"
	"chatlens/internal/platform/store"

	"chatlens/internal/modkit"
	"chatlens/internal/modkit/httpkit"
	"chatlens/internal/modkit/module"

	apianalytics "chatlens/internal/services/api/analytics/module"
	apiingest "chatlens/internal/services/api/ingest/module"
	metamod "chatlens/internal/services/api/meta/module"
	apipipeline "chatlens/internal/services/api/pipeline/module"

	// Worker modules own the ports the API modules consume
	coreanalytics "chatlens/internal/services/analytics/module"
	coremessages "chatlens/internal/services/messages/module"
	corepipeline "chatlens/internal/services/pipeline/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Analyzer       *analyze.Analyzer
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the worker modules first and extract the ports the
	// API modules consume
	messages := coremessages.New(deps)
	analytics := coreanalytics.New(deps)
	pipeline := corepipeline.New(deps, opt.Analyzer)

	// guard mutating surfaces when a secret is configured
	secret := opt.Config.Prefix("CORE_API_").MayString("SECRET", "")
	guarded := []func(http.Handler) http.Handler{httpkit.Auth(secret)}

	ingestAPI := apiingest.New(
		deps,
		modkit.WithMiddlewares(guarded...),
		modkit.WithPorts(apiingest.Ports{
			Writer: messages.Ports().(coremessages.Ports).Writer,
			Reader: messages.Ports().(coremessages.Ports).Reader,
		}),
	)
	pipelineAPI := apipipeline.New(
		deps,
		modkit.WithMiddlewares(guarded...),
		modkit.WithPorts(apipipeline.Ports{
			Runner: pipeline.Ports().(corepipeline.Ports).Runner,
		}),
	)
	analyticsAPI := apianalytics.New(
		deps,
		modkit.WithPorts(apianalytics.Ports{
			Reader: analytics.Ports().(coreanalytics.Ports).Reader,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		messages, // include workers so their ports are registered
		analytics,
		pipeline,
		ingestAPI,
		pipelineAPI,
		analyticsAPI,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
