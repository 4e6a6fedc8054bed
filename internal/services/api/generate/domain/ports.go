package domain

import "context"

// ServicePort defines the service contract for generation
type ServicePort interface {
	Generate(ctx context.Context, in GenerateInput) (GenerateResult, error)
}
