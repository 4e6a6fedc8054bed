package module

import (
	"context"

	storiesdom "storyweaver/internal/services/api/stories/domain"
	storiessvc "storyweaver/internal/services/api/stories/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptStoriesPort adapts the stories service to the domain port interface
type adaptStoriesPort struct{ svc storiessvc.Service }

// List implements the domain ServicePort interface
func (a adaptStoriesPort) List(ctx context.Context) ([]storiesdom.Story, error) {
	return a.svc.List(ctx)
}

// Get implements the domain ServicePort interface
func (a adaptStoriesPort) Get(ctx context.Context, id string) (storiesdom.Story, error) {
	return a.svc.Get(ctx, id)
}

// Create implements the domain ServicePort interface
func (a adaptStoriesPort) Create(ctx context.Context, in storiesdom.CreateStoryInput) (storiesdom.Story, error) {
	return a.svc.Create(ctx, in)
}

// Delete implements the domain ServicePort interface
func (a adaptStoriesPort) Delete(ctx context.Context, id string) error {
	return a.svc.Delete(ctx, id)
}
