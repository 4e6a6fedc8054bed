// Package http provides http transport for generation
package http

import (
	stdhttp "net/http"

	"storyweaver/internal/modkit/httpkit"
	"storyweaver/internal/services/api/generate/domain"
	svc "storyweaver/internal/services/api/generate/service"
)

// Register mounts the generate endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.GenerateInput](r, "/", h.generate)
}

type handlers struct{ svc svc.Service }

func (h *handlers) generate(r *stdhttp.Request, in domain.GenerateInput) (any, error) {
	return h.svc.Generate(r.Context(), in)
}
