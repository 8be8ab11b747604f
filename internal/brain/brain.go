// Package brain wraps the generative-AI service behind four operations used
// by the onboarding, feed, and post screens. Every operation absorbs failure
// into a fixed fallback value or an absent result; no error ever reaches the
// screen layer, so the UI stays navigable regardless of service availability.
package brain

import "context"

// IdentityProfile is the AI-generated part of a messenger identity.
type IdentityProfile struct {
	Title  string `json:"title"`
	Mantra string `json:"mantra"`
}

// Fallback content. The request-failure pair differs from the parse-failure
// pair, matching the two distinct degradation paths of identity generation.
const (
	FallbackTitle  = "静默的观察者"
	FallbackMantra = "在喧嚣中寻找片刻宁静。"

	DefaultTitle  = "无名使者"
	DefaultMantra = "时间如水，静默流淌。"

	FallbackReflection = "时间流逝，痕迹永存。"
)

// Generator exposes the four generation operations.
//
// Contract:
//   - GenerateIdentity never fails from the caller's point of view: on any
//     request or parse failure a fixed fallback profile is returned.
//   - GenerateScenario and GenerateImage report absence via the bool; callers
//     supply their own substitutes.
//   - GenerateReflection falls back to a fixed closing line.
//
// Each operation is a single request/response round trip: no retries, no
// backoff, no rate limiting.
type Generator interface {
	GenerateIdentity(ctx context.Context, mood string) IdentityProfile
	GenerateScenario(ctx context.Context, seed string) (string, bool)
	GenerateImage(ctx context.Context, scene string) (string, bool)
	GenerateReflection(ctx context.Context, content string) string
}

// FallbackGenerator is the Generator used when no API key is configured.
// It produces only the deterministic fallbacks, which keeps every screen
// reachable in a fully offline run.
type FallbackGenerator struct{}

var _ Generator = FallbackGenerator{}

func (FallbackGenerator) GenerateIdentity(ctx context.Context, mood string) IdentityProfile {
	return IdentityProfile{Title: FallbackTitle, Mantra: FallbackMantra}
}

func (FallbackGenerator) GenerateScenario(ctx context.Context, seed string) (string, bool) {
	return "", false
}

func (FallbackGenerator) GenerateImage(ctx context.Context, scene string) (string, bool) {
	return "", false
}

func (FallbackGenerator) GenerateReflection(ctx context.Context, content string) string {
	return FallbackReflection
}
