// Package repo provides postgres access for stories
package repo

import (
	"context"
	stderrs "errors"
	"time"

	"storyweaver/internal/modkit/repokit"
	perr "storyweaver/internal/platform/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repo defines the repository contract for stories
type Repo interface {
	List(ctx context.Context) ([]RowStory, error)
	Get(ctx context.Context, id string) (RowStory, error)
	Insert(ctx context.Context, title, content, prompt, genre string) (RowStory, error)
	Delete(ctx context.Context, id string) error
}

// RowStory represents a story row from the database
type RowStory struct {
	ID        string
	Title     string
	Content   string
	Prompt    string
	Genre     string
	CreatedAt time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// notFound is the caller-facing shape for any missing story
func notFound() error { return perr.NotFoundf("Story not found") }

func (r *queries) List(ctx context.Context) ([]RowStory, error) {
	const sql = `
select id::text, title, content, prompt, genre, created_at
from stories
order by created_at desc, id desc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "list stories")
	}
	defer rows.Close()
	out := make([]RowStory, 0, 16)
	for rows.Next() {
		var rr RowStory
		if err := rows.Scan(&rr.ID, &rr.Title, &rr.Content, &rr.Prompt, &rr.Genre, &rr.CreatedAt); err != nil {
			return nil, perr.FromPostgres(err, "scan story")
		}
		out = append(out, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "iterate stories")
	}
	return out, nil
}

func (r *queries) Get(ctx context.Context, id string) (RowStory, error) {
	var rr RowStory
	// a malformed id can never match a row, report it the same way
	uid, err := uuid.Parse(id)
	if err != nil {
		return rr, notFound()
	}
	const sql = `
select id::text, title, content, prompt, genre, created_at
from stories
where id = $1
`
	err = r.q.QueryRow(ctx, sql, uid).Scan(&rr.ID, &rr.Title, &rr.Content, &rr.Prompt, &rr.Genre, &rr.CreatedAt)
	if stderrs.Is(err, pgx.ErrNoRows) {
		return rr, notFound()
	}
	if err != nil {
		return rr, perr.FromPostgres(err, "get story")
	}
	return rr, nil
}

func (r *queries) Insert(ctx context.Context, title, content, prompt, genre string) (RowStory, error) {
	var rr RowStory
	const sql = `
insert into stories (title, content, prompt, genre)
values ($1, $2, $3, $4)
returning id::text, title, content, prompt, genre, created_at
`
	err := r.q.QueryRow(ctx, sql, title, content, prompt, genre).
		Scan(&rr.ID, &rr.Title, &rr.Content, &rr.Prompt, &rr.Genre, &rr.CreatedAt)
	if err != nil {
		return rr, perr.FromPostgres(err, "insert story")
	}
	return rr, nil
}

func (r *queries) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return notFound()
	}
	tag, err := r.q.Exec(ctx, `delete from stories where id = $1`, uid)
	if err != nil {
		return perr.FromPostgres(err, "delete story")
	}
	if tag.RowsAffected() == 0 {
		return notFound()
	}
	return nil
}
