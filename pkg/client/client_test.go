package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "storyweaver/internal/platform/errors"
)

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stories", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]Story{{ID: "b", Title: "newer"}, {ID: "a", Title: "older"}})
	})
	mux.HandleFunc("GET /api/stories/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "a" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Story not found"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(Story{ID: "a", Title: "older"})
	})
	mux.HandleFunc("POST /api/stories", func(w http.ResponseWriter, r *http.Request) {
		var in CreateStoryInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Story{ID: "new", Title: in.Title, Genre: in.Genre})
	})
	mux.HandleFunc("DELETE /api/stories/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message":"Story deleted successfully"}`))
	})
	mux.HandleFunc("POST /api/generate", func(w http.ResponseWriter, r *http.Request) {
		var in GenerateInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Prompt == "" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Prompt is required"}`))
			return
		}
		_, _ = w.Write([]byte(`{"story":"Once upon a time..."}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, New(srv.URL)
}

func TestListAndGet(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t)
	ctx := context.Background()

	stories, err := c.ListStories(ctx)
	if err != nil {
		t.Fatalf("ListStories: %v", err)
	}
	if len(stories) != 2 || stories[0].ID != "b" {
		t.Fatalf("stories: %+v", stories)
	}

	st, err := c.GetStory(ctx, "a")
	if err != nil || st.Title != "older" {
		t.Fatalf("GetStory: %+v err=%v", st, err)
	}
}

func TestGetMissingDecodesProjectError(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t)

	_, err := c.GetStory(context.Background(), "nope")
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
	if got := perr.WireFrom(err).Message; got != "Story not found" {
		t.Fatalf("message = %q", got)
	}
}

func TestCreateAndDelete(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t)
	ctx := context.Background()

	st, err := c.CreateStory(ctx, CreateStoryInput{Title: "T", Content: "C", Prompt: "P", Genre: "horror"})
	if err != nil || st.ID != "new" || st.Genre != "horror" {
		t.Fatalf("CreateStory: %+v err=%v", st, err)
	}

	msg, err := c.DeleteStory(ctx, "new")
	if err != nil || msg != "Story deleted successfully" {
		t.Fatalf("DeleteStory: %q err=%v", msg, err)
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t)
	ctx := context.Background()

	story, err := c.Generate(ctx, GenerateInput{Prompt: "a dragon"})
	if err != nil || story != "Once upon a time..." {
		t.Fatalf("Generate: %q err=%v", story, err)
	}

	_, err = c.Generate(ctx, GenerateInput{})
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("empty prompt code = %v", perr.CodeOf(err))
	}
	if got := perr.WireFrom(err).Message; got != "Prompt is required" {
		t.Fatalf("message = %q", got)
	}
}

func TestUnreachableServerIsUnavailable(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1")
	_, err := c.ListStories(context.Background())
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
}
