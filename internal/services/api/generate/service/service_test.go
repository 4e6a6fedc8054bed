package service

import (
	"context"
	"sync/atomic"
	"testing"

	"storyweaver/internal/adapters/openrouter"
	perr "storyweaver/internal/platform/errors"
	"storyweaver/internal/platform/testkit"
	"storyweaver/internal/services/api/generate/domain"
)

type fakeCompleter struct {
	calls atomic.Int64
	last  openrouter.CompletionRequest
	out   string
	err   error
}

func (f *fakeCompleter) Complete(_ context.Context, req openrouter.CompletionRequest) (string, error) {
	f.calls.Add(1)
	f.last = req
	return f.out, f.err
}

func TestNewPanicsOnNilCompleter(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { New(nil) })
}

func TestGenerateEmptyPromptNeverCallsProvider(t *testing.T) {
	t.Parallel()

	fc := &fakeCompleter{out: "unused"}
	s := New(fc)

	for _, p := range []string{"", "   ", "\n\t"} {
		_, err := s.Generate(context.Background(), domain.GenerateInput{Prompt: p})
		if err == nil {
			t.Fatalf("prompt %q: expected error", p)
		}
		if perr.CodeOf(err) != perr.ErrorCodeValidation {
			t.Fatalf("prompt %q: code = %v", p, perr.CodeOf(err))
		}
		if got := perr.WireFrom(err).Message; got != "Prompt is required" {
			t.Fatalf("prompt %q: message = %q", p, got)
		}
	}
	if n := fc.calls.Load(); n != 0 {
		t.Fatalf("provider called %d times for blank prompts", n)
	}
}

func TestGenerateShapesTheRequest(t *testing.T) {
	t.Parallel()

	fc := &fakeCompleter{out: "Once upon a time..."}
	s := New(fc)

	got, err := s.Generate(context.Background(), domain.GenerateInput{
		Prompt: "  a dragon who codes  ",
		Genre:  "horror",
		Length: "long",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.Story != "Once upon a time..." {
		t.Fatalf("story = %q", got.Story)
	}
	if n := fc.calls.Load(); n != 1 {
		t.Fatalf("provider calls = %d, want exactly 1", n)
	}

	req := fc.last
	if req.Prompt != "a dragon who codes" {
		t.Fatalf("prompt not trimmed: %q", req.Prompt)
	}
	testkit.MustContain(t, req.System, "horror story")
	testkit.MustContain(t, req.System, "long in length")
	if req.MaxTokens != 2000 {
		t.Fatalf("max tokens = %d", req.MaxTokens)
	}
	if req.Temperature != 0.8 {
		t.Fatalf("temperature = %v", req.Temperature)
	}
}

func TestGenerateDefaultsGenreAndLength(t *testing.T) {
	t.Parallel()

	fc := &fakeCompleter{out: "x"}
	s := New(fc)

	if _, err := s.Generate(context.Background(), domain.GenerateInput{Prompt: "p"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	testkit.MustContain(t, fc.last.System, "fantasy story")
	testkit.MustContain(t, fc.last.System, "medium in length")
	if fc.last.MaxTokens != 1000 {
		t.Fatalf("max tokens = %d", fc.last.MaxTokens)
	}
}

func TestGeneratePassesProviderErrorThrough(t *testing.T) {
	t.Parallel()

	fc := &fakeCompleter{err: perr.ProviderRateLimitedf("Rate limit exceeded. Please wait and try again.")}
	s := New(fc)

	_, err := s.Generate(context.Background(), domain.GenerateInput{Prompt: "p"})
	if perr.CodeOf(err) != perr.ErrorCodeProviderRateLimited {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
}
