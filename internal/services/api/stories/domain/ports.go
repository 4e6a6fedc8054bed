package domain

import "context"

// ServicePort defines the service contract for stories
type ServicePort interface {
	List(ctx context.Context) ([]Story, error)
	Get(ctx context.Context, id string) (Story, error)
	Create(ctx context.Context, in CreateStoryInput) (Story, error)
	Delete(ctx context.Context, id string) error
}
