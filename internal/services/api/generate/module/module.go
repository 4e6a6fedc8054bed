// Package module wires generation into the API using modkit
package module

import (
	"net/http"

	"storyweaver/internal/adapters/openrouter"
	modkit "storyweaver/internal/modkit"
	"storyweaver/internal/modkit/httpkit"
	str "storyweaver/internal/platform/strings"
	generatehttp "storyweaver/internal/services/api/generate/http"
	generatesvc "storyweaver/internal/services/api/generate/service"
)

// Ports exposes the generate module's injectables
type Ports struct {
	Completer openrouter.Completer
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc generatesvc.Service
}

// New constructs a generate module with the provided dependencies and options.
// A Completer must be injected via modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("generate"), modkit.WithPrefix("/generate")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Completer == nil {
		// fall back to config when no port was injected
		ports.Completer = openrouter.New(openrouter.FromConf(deps.Cfg.Prefix("OPENROUTER_")))
	}

	svc := generatesvc.New(ports.Completer)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = ports

	external := b.Register
	m.register = func(r httpkit.Router) {
		generatehttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
