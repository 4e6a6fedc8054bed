// Package http provides http transport for stories
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"storyweaver/internal/modkit/httpkit"
	"storyweaver/internal/services/api/stories/domain"
	svc "storyweaver/internal/services/api/stories/service"
)

// Register mounts stories endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.CreateStoryInput](r, "/", h.create)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "id"))
}

func (h *handlers) create(r *stdhttp.Request, in domain.CreateStoryInput) (any, error) {
	st, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(st), nil
}

func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return nil, err
	}
	return domain.DeleteStoryResult{Message: "Story deleted successfully"}, nil
}
