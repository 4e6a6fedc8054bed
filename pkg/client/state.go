package client

// Tab names a pane of the consuming UI
type Tab string

// The two panes of the consuming application
const (
	TabGenerate Tab = "generate"
	TabLibrary  Tab = "library"
)

// BannerKind distinguishes the transient banner styles
type BannerKind string

// Banner kinds
const (
	BannerError   BannerKind = "error"
	BannerSuccess BannerKind = "success"
)

// Banner is a dismissable one-line notice. Zero value means no banner
type Banner struct {
	Kind    BannerKind
	Message string
}

// Draft holds the in-progress generation form
type Draft struct {
	Prompt string
	Title  string
	Genre  string
	Length string
}

// State is an immutable snapshot of the consuming application.
// Every transition returns a new value; the receiver is never mutated
type State struct {
	Tab        Tab
	Stories    []Story
	SelectedID string
	Draft      Draft
	Generated  string
	Generating bool
	Saving     bool
	Banner     Banner
}

// NewState returns the initial snapshot
func NewState() State {
	return State{Tab: TabGenerate, Stories: []Story{}}
}

// WithTab switches the active pane
func (s State) WithTab(t Tab) State {
	s.Tab = t
	return s
}

// WithDraft replaces the generation form
func (s State) WithDraft(d Draft) State {
	s.Draft = d
	return s
}

// WithStoriesLoaded replaces the story list with a fresh fetch
func (s State) WithStoriesLoaded(stories []Story) State {
	s.Stories = copyStories(stories)
	return s
}

// WithStorySelected marks a story as selected
func (s State) WithStorySelected(id string) State {
	s.SelectedID = id
	return s
}

// WithGenerationStarted flags an in-flight generation and clears stale output
func (s State) WithGenerationStarted() State {
	s.Generating = true
	s.Generated = ""
	s.Banner = Banner{}
	return s
}

// WithGenerationSucceeded lands the generated text
func (s State) WithGenerationSucceeded(text string) State {
	s.Generating = false
	s.Generated = text
	return s
}

// WithGenerationFailed surfaces the failure and keeps the draft intact
func (s State) WithGenerationFailed(msg string) State {
	s.Generating = false
	s.Banner = Banner{Kind: BannerError, Message: msg}
	return s
}

// WithSaveStarted flags an in-flight save
func (s State) WithSaveStarted() State {
	s.Saving = true
	s.Banner = Banner{}
	return s
}

// WithStorySaved prepends the stored record, newest first
func (s State) WithStorySaved(st Story) State {
	out := make([]Story, 0, len(s.Stories)+1)
	out = append(out, st)
	out = append(out, s.Stories...)
	s.Stories = out
	s.Saving = false
	s.Banner = Banner{Kind: BannerSuccess, Message: "Story saved"}
	return s
}

// WithSaveFailed surfaces the failure; the list stays as it was
func (s State) WithSaveFailed(msg string) State {
	s.Saving = false
	s.Banner = Banner{Kind: BannerError, Message: msg}
	return s
}

// WithStoryDeleted removes the story and clears a matching selection
func (s State) WithStoryDeleted(id string) State {
	out := make([]Story, 0, len(s.Stories))
	for _, st := range s.Stories {
		if st.ID != id {
			out = append(out, st)
		}
	}
	s.Stories = out
	if s.SelectedID == id {
		s.SelectedID = ""
	}
	return s
}

// WithDeleteFailed surfaces the failure; the list stays as it was
func (s State) WithDeleteFailed(msg string) State {
	s.Banner = Banner{Kind: BannerError, Message: msg}
	return s
}

// WithBannerDismissed clears the banner
func (s State) WithBannerDismissed() State {
	s.Banner = Banner{}
	return s
}

// Selected returns the selected story, if any
func (s State) Selected() (Story, bool) {
	for _, st := range s.Stories {
		if st.ID == s.SelectedID && s.SelectedID != "" {
			return st, true
		}
	}
	return Story{}, false
}

func copyStories(in []Story) []Story {
	out := make([]Story, len(in))
	copy(out, in)
	return out
}
