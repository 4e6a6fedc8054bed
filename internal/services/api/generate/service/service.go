// Package service contains the story generation workflow
package service

import (
	"context"
	"strings"

	"storyweaver/internal/adapters/openrouter"
	"storyweaver/internal/core/prompt"
	perr "storyweaver/internal/platform/errors"
	"storyweaver/internal/services/api/generate/domain"
)

// Service defines the service contract for generation
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	completer openrouter.Completer
}

// New creates a new generate service
func New(completer openrouter.Completer) *Svc {
	if completer == nil {
		panic("generate.Service requires a non nil Completer")
	}
	return &Svc{completer: completer}
}

// Generate turns a prompt into a story via the completion provider.
// A blank prompt is rejected before anything leaves the process
func (s *Svc) Generate(ctx context.Context, in domain.GenerateInput) (domain.GenerateResult, error) {
	p := strings.TrimSpace(in.Prompt)
	if p == "" {
		return domain.GenerateResult{}, perr.Validationf("Prompt is required")
	}

	story, err := s.completer.Complete(ctx, openrouter.CompletionRequest{
		System:      prompt.System(in.Genre, in.Length),
		Prompt:      p,
		MaxTokens:   prompt.TokenBudget(in.Length),
		Temperature: prompt.Temperature,
	})
	if err != nil {
		return domain.GenerateResult{}, err
	}
	return domain.GenerateResult{Story: story}, nil
}
