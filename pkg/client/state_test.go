package client

import "testing"

func TestTransitionsNeverMutateTheReceiver(t *testing.T) {
	t.Parallel()

	base := NewState().WithStoriesLoaded([]Story{{ID: "a"}, {ID: "b"}}).WithStorySelected("a")
	snapshot := base

	_ = base.WithStorySaved(Story{ID: "c"})
	_ = base.WithStoryDeleted("a")
	_ = base.WithGenerationStarted()
	_ = base.WithTab(TabLibrary)

	if len(base.Stories) != 2 || base.SelectedID != snapshot.SelectedID || base.Tab != snapshot.Tab {
		t.Fatalf("receiver mutated: %+v", base)
	}
}

func TestStoriesLoadedCopiesTheInput(t *testing.T) {
	t.Parallel()

	in := []Story{{ID: "a"}}
	s := NewState().WithStoriesLoaded(in)
	in[0].ID = "mutated"

	if s.Stories[0].ID != "a" {
		t.Fatalf("state shares backing array with caller input")
	}
}

func TestGenerationLifecycle(t *testing.T) {
	t.Parallel()

	s := NewState().WithGenerationStarted()
	if !s.Generating || s.Generated != "" || s.Banner != (Banner{}) {
		t.Fatalf("started: %+v", s)
	}

	ok := s.WithGenerationSucceeded("a story")
	if ok.Generating || ok.Generated != "a story" {
		t.Fatalf("succeeded: %+v", ok)
	}

	bad := s.WithGenerationFailed("Rate limit exceeded. Please wait and try again.")
	if bad.Generating || bad.Banner.Kind != BannerError || bad.Banner.Message == "" {
		t.Fatalf("failed: %+v", bad)
	}
}

func TestSavePrependsNewestFirst(t *testing.T) {
	t.Parallel()

	s := NewState().
		WithStoriesLoaded([]Story{{ID: "old"}}).
		WithSaveStarted().
		WithStorySaved(Story{ID: "new"})

	if s.Saving {
		t.Fatalf("saving flag not cleared")
	}
	if len(s.Stories) != 2 || s.Stories[0].ID != "new" || s.Stories[1].ID != "old" {
		t.Fatalf("bad order: %+v", s.Stories)
	}
	if s.Banner.Kind != BannerSuccess {
		t.Fatalf("banner: %+v", s.Banner)
	}
}

func TestSaveFailedLeavesListUntouched(t *testing.T) {
	t.Parallel()

	s := NewState().WithStoriesLoaded([]Story{{ID: "a"}}).WithSaveStarted().WithSaveFailed("boom")
	if len(s.Stories) != 1 || s.Saving {
		t.Fatalf("state: %+v", s)
	}
	if s.Banner.Kind != BannerError || s.Banner.Message != "boom" {
		t.Fatalf("banner: %+v", s.Banner)
	}
}

func TestDeleteClearsMatchingSelection(t *testing.T) {
	t.Parallel()

	s := NewState().
		WithStoriesLoaded([]Story{{ID: "a"}, {ID: "b"}}).
		WithStorySelected("a").
		WithStoryDeleted("a")

	if len(s.Stories) != 1 || s.Stories[0].ID != "b" {
		t.Fatalf("stories: %+v", s.Stories)
	}
	if s.SelectedID != "" {
		t.Fatalf("selection not cleared: %q", s.SelectedID)
	}

	// deleting an unselected story keeps the selection
	s2 := NewState().
		WithStoriesLoaded([]Story{{ID: "a"}, {ID: "b"}}).
		WithStorySelected("a").
		WithStoryDeleted("b")
	if s2.SelectedID != "a" {
		t.Fatalf("selection lost: %q", s2.SelectedID)
	}
}

func TestSelectedLookup(t *testing.T) {
	t.Parallel()

	s := NewState().WithStoriesLoaded([]Story{{ID: "a", Title: "T"}})
	if _, ok := s.Selected(); ok {
		t.Fatalf("nothing selected yet")
	}

	s = s.WithStorySelected("a")
	st, ok := s.Selected()
	if !ok || st.Title != "T" {
		t.Fatalf("selected: %+v ok=%v", st, ok)
	}
}

func TestBannerDismissed(t *testing.T) {
	t.Parallel()

	s := NewState().WithDeleteFailed("nope").WithBannerDismissed()
	if s.Banner != (Banner{}) {
		t.Fatalf("banner: %+v", s.Banner)
	}
}
