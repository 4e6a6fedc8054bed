// Package domain holds DTOs for stories http and service contracts
package domain

// Story is a persisted story as returned over the wire
type Story struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Prompt    string `json:"prompt"`
	Genre     string `json:"genre"`
	CreatedAt string `json:"createdAt"`
}

// CreateStoryInput is the payload for saving a story
type CreateStoryInput struct {
	Title   string `json:"title"   validate:"required,min=1,max=500"   example:"The Last Debugger"`
	Content string `json:"content" validate:"required,min=1"           example:"Once upon a time..."`
	Prompt  string `json:"prompt"  validate:"required,min=1"           example:"a dragon who codes"`
	Genre   string `json:"genre,omitempty" validate:"omitempty,oneof=fantasy sci-fi mystery romance horror adventure" example:"fantasy"`
}

// DeleteStoryResult is the body returned after a successful delete
type DeleteStoryResult struct {
	Message string `json:"message" example:"Story deleted successfully"`
}
