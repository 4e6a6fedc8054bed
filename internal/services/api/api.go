// Package api provides the HTTP API for the application
package api

import (
	stdhttp "net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storyweaver/internal/platform/config"
	"storyweaver/internal/platform/logger"
	phttp "storyweaver/internal/platform/net/http"
	"storyweaver/internal/platform/net/middleware"
	"storyweaver/internal/platform/store"

	"storyweaver/internal/adapters/openrouter"
	"storyweaver/internal/modkit"
	"storyweaver/internal/modkit/httpkit"
	"storyweaver/internal/modkit/module"
	"storyweaver/internal/modkit/swaggerkit"

	generatemod "storyweaver/internal/services/api/generate/module"
	metamod "storyweaver/internal/services/api/meta/module"
	storiesmod "storyweaver/internal/services/api/stories/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	Completer     openrouter.Completer
	EnableSwagger bool
	EnableMetrics bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	var genOpts []modkit.Option
	if opt.Completer != nil {
		genOpts = append(genOpts, modkit.WithPorts(generatemod.Ports{Completer: opt.Completer}))
	}

	mods := []module.Module{
		metamod.New(deps),
		storiesmod.New(deps),
		generatemod.New(deps, genOpts...),
	}

	// liveness at the root, outside the /api scope
	r.Get("/", phttp.JSONHandlerNoBody(func(_ *stdhttp.Request) (any, error) {
		return map[string]string{"message": "AI Story Generator API is running"}, nil
	}))

	if opt.EnableMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	swaggerkit.Mount(r, opt.EnableSwagger)

	// CORE_API_CORS_ORIGINS narrows cross-origin access; default allows any origin
	corsOpts := middleware.CORSOptions{
		AllowedOrigins: opt.Config.MayCSV("CORS_ORIGINS", []string{"*"}),
	}

	httpkit.MountAPI(r, httpkit.CommonStack(corsOpts), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	// anything unmatched answers JSON, same body for every method
	r.NotFound(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		phttp.JSON(w, stdhttp.StatusNotFound, phttp.ErrorBody{Error: "Route not found"})
	})
}
