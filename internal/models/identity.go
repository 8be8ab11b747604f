// Package models defines the domain types of the Time Exchange client.
package models

// Identity is the anonymous persistent persona representing one device/user
// ("time messenger"). It is created once during onboarding, persisted
// immediately, and destroyed only by explicit logout.
type Identity struct {
	// ID is a sequential numeric string, zero-padded to 4 digits, globally
	// monotonic across all identities ever created on the device. Assigned
	// exactly once at creation, never reassigned.
	ID string `json:"id"`

	// Title is a short poetic label, AI-generated or a fallback constant.
	Title string `json:"title"`

	// Mantra is a short poetic sentence, AI-generated or a fallback constant.
	Mantra string `json:"mantra"`

	// AvatarSeed is an opaque seed for deterministic avatar rendering.
	AvatarSeed string `json:"avatarSeed"`
}
