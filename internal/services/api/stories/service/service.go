// Package service contains stories workflows
package service

import (
	"context"
	"strings"
	"time"

	"storyweaver/internal/core/prompt"
	"storyweaver/internal/modkit/repokit"
	perr "storyweaver/internal/platform/errors"
	"storyweaver/internal/services/api/stories/domain"
	"storyweaver/internal/services/api/stories/repo"
)

// Service defines the service contract for stories
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new stories service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("stories.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("stories.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns every saved story, newest first
func (s *Svc) List(ctx context.Context) ([]domain.Story, error) {
	rows, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Story, 0, len(rows))
	for _, r := range rows {
		out = append(out, toStory(r))
	}
	return out, nil
}

// Get returns one story by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Story, error) {
	r, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Story{}, err
	}
	return toStory(r), nil
}

// Create persists a story, trimming the title and defaulting a blank genre.
// A whitespace-only title is rejected the same way a missing one is
func (s *Svc) Create(ctx context.Context, in domain.CreateStoryInput) (domain.Story, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Story{}, perr.Validationf("Title is required")
	}
	genre := prompt.ResolveGenre(in.Genre)
	r, err := s.Repo.Insert(ctx, title, in.Content, in.Prompt, genre)
	if err != nil {
		return domain.Story{}, err
	}
	return toStory(r), nil
}

// Delete removes a story by id
func (s *Svc) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func toStory(r repo.RowStory) domain.Story {
	return domain.Story{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Prompt:    r.Prompt,
		Genre:     r.Genre,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
