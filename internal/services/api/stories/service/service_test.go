package service

import (
	"context"
	"testing"
	"time"

	"storyweaver/internal/modkit/repokit"
	perr "storyweaver/internal/platform/errors"
	"storyweaver/internal/platform/testkit"
	"storyweaver/internal/services/api/stories/domain"
	"storyweaver/internal/services/api/stories/repo"
)

type stubRunner struct{}

func (stubRunner) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (stubRunner) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (stubRunner) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (stubRunner) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error   { return fn(stubRunner{}) }

type fakeRepo struct {
	rows      []repo.RowStory
	lastInput [4]string
	err       error
}

type fakeBinder struct{ r *fakeRepo }

func (b fakeBinder) Bind(repokit.Queryer) repo.Repo { return b.r }

func (f *fakeRepo) List(context.Context) ([]repo.RowStory, error) { return f.rows, f.err }

func (f *fakeRepo) Get(_ context.Context, id string) (repo.RowStory, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return repo.RowStory{}, perr.NotFoundf("Story not found")
}

func (f *fakeRepo) Insert(_ context.Context, title, content, prompt, genre string) (repo.RowStory, error) {
	if f.err != nil {
		return repo.RowStory{}, f.err
	}
	f.lastInput = [4]string{title, content, prompt, genre}
	return repo.RowStory{
		ID: "3b1f8f3e-0000-4000-8000-000000000001", Title: title, Content: content,
		Prompt: prompt, Genre: genre, CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	for _, r := range f.rows {
		if r.ID == id {
			return nil
		}
	}
	return perr.NotFoundf("Story not found")
}

func newSvc(fr *fakeRepo) *Svc { return New(stubRunner{}, fakeBinder{r: fr}) }

func TestNewGuards(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { New(nil, fakeBinder{r: &fakeRepo{}}) })
	testkit.MustPanic(t, func() { New(stubRunner{}, nil) })
}

func TestListKeepsRepoOrderAndFormatsTime(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{rows: []repo.RowStory{
		{ID: "b", Title: "newer", CreatedAt: time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)},
		{ID: "a", Title: "older", CreatedAt: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)},
	}}
	s := newSvc(fr)

	out, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 2 || out[0].ID != "b" || out[1].ID != "a" {
		t.Fatalf("order not preserved: %+v", out)
	}
	if out[0].CreatedAt != "2025-06-02T08:30:00Z" {
		t.Fatalf("createdAt = %q", out[0].CreatedAt)
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	t.Parallel()

	s := newSvc(&fakeRepo{})
	out, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("want empty non nil slice, got %#v", out)
	}
}

func TestCreateDefaultsGenre(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{}
	s := newSvc(fr)

	st, err := s.Create(context.Background(), domain.CreateStoryInput{
		Title: "T", Content: "C", Prompt: "P",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fr.lastInput[3] != "fantasy" {
		t.Fatalf("genre passed to repo = %q", fr.lastInput[3])
	}
	if st.Genre != "fantasy" || st.CreatedAt != "2025-06-01T12:00:00Z" {
		t.Fatalf("bad story: %+v", st)
	}
}

func TestCreateTrimsTheTitle(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{}
	s := newSvc(fr)

	st, err := s.Create(context.Background(), domain.CreateStoryInput{
		Title: "  T  ", Content: "C", Prompt: "P",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fr.lastInput[0] != "T" {
		t.Fatalf("title passed to repo = %q", fr.lastInput[0])
	}
	if st.Title != "T" {
		t.Fatalf("stored title = %q", st.Title)
	}
}

func TestCreateRejectsWhitespaceTitle(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{}
	s := newSvc(fr)

	_, err := s.Create(context.Background(), domain.CreateStoryInput{
		Title: "   ", Content: "C", Prompt: "P",
	})
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
	if got := perr.WireFrom(err).Message; got != "Title is required" {
		t.Fatalf("message = %q", got)
	}
	if fr.lastInput[0] != "" {
		t.Fatalf("repo was called with title %q", fr.lastInput[0])
	}
}

func TestCreateKeepsExplicitGenre(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{}
	s := newSvc(fr)

	st, err := s.Create(context.Background(), domain.CreateStoryInput{
		Title: "T", Content: "C", Prompt: "P", Genre: "sci-fi",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if st.Genre != "sci-fi" {
		t.Fatalf("genre = %q", st.Genre)
	}
}

func TestGetAndDeleteMissing(t *testing.T) {
	t.Parallel()

	s := newSvc(&fakeRepo{})

	_, err := s.Get(context.Background(), "nope")
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("Get code = %v", perr.CodeOf(err))
	}
	if got := perr.WireFrom(err).Message; got != "Story not found" {
		t.Fatalf("Get message = %q", got)
	}

	err = s.Delete(context.Background(), "nope")
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("Delete code = %v", perr.CodeOf(err))
	}
}
