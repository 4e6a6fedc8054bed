// Package prompt builds the instructions sent to the completion provider.
// Everything here is pure so generation behavior stays testable without a network
package prompt

import "fmt"

// Known genres, mirrored by the stories table check constraint
const (
	GenreFantasy   = "fantasy"
	GenreSciFi     = "sci-fi"
	GenreMystery   = "mystery"
	GenreRomance   = "romance"
	GenreHorror    = "horror"
	GenreAdventure = "adventure"
)

// Story lengths accepted by the generate endpoint
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// DefaultGenre is used when a request omits or blanks the genre
const DefaultGenre = GenreFantasy

// DefaultLength is used when a request omits or blanks the length
const DefaultLength = LengthMedium

// Genres returns the accepted genre set in display order
func Genres() []string {
	return []string{GenreFantasy, GenreSciFi, GenreMystery, GenreRomance, GenreHorror, GenreAdventure}
}

// KnownGenre reports whether g is one of the accepted genres
func KnownGenre(g string) bool {
	switch g {
	case GenreFantasy, GenreSciFi, GenreMystery, GenreRomance, GenreHorror, GenreAdventure:
		return true
	}
	return false
}

// ResolveGenre substitutes the default for an empty genre
func ResolveGenre(g string) string {
	if g == "" {
		return DefaultGenre
	}
	return g
}

// ResolveLength substitutes the default for an empty length
func ResolveLength(l string) string {
	if l == "" {
		return DefaultLength
	}
	return l
}

// System renders the system instruction for a genre and length.
// Empty inputs fall back to the defaults
func System(genre, length string) string {
	return fmt.Sprintf(
		"You are a creative storyteller. Create a %s story that is %s in length. "+
			"The story should be well-structured with a beginning, middle, and end.",
		ResolveGenre(genre), ResolveLength(length),
	)
}

// TokenBudget maps a requested length onto the provider max_tokens knob.
// Unrecognized lengths get the medium budget
func TokenBudget(length string) int {
	switch length {
	case LengthShort:
		return 500
	case LengthLong:
		return 2000
	default:
		return 1000
	}
}

// Temperature is the sampling temperature for story generation
const Temperature = 0.8
