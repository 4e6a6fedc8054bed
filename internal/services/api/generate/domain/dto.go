// Package domain holds DTOs for the generate http and service contracts
package domain

// GenerateInput is the payload for story generation.
// Prompt presence is checked in the service so the wire message stays exact
type GenerateInput struct {
	Prompt string `json:"prompt" example:"a dragon who codes"`
	Genre  string `json:"genre,omitempty"  validate:"omitempty,oneof=fantasy sci-fi mystery romance horror adventure" example:"fantasy"`
	Length string `json:"length,omitempty" validate:"omitempty,oneof=short medium long" example:"medium"`
}

// GenerateResult carries the generated text back to the caller
type GenerateResult struct {
	Story string `json:"story" example:"Once upon a time..."`
}
