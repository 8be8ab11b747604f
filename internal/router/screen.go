// Package router holds the navigation state machine of the client: the
// current screen, the messenger identity, the selected moment, and the
// witnessed counter. Screens dispatch events into it; it owns every
// transition rule and its side effects.
package router

// Screen enumerates the six screens of the application.
type Screen int

const (
	ScreenOnboarding Screen = iota
	ScreenFeed
	ScreenPost
	ScreenInterrupt
	ScreenFeedback
	ScreenProfile
)

func (s Screen) String() string {
	switch s {
	case ScreenOnboarding:
		return "onboarding"
	case ScreenFeed:
		return "feed"
	case ScreenPost:
		return "post"
	case ScreenInterrupt:
		return "interrupt"
	case ScreenFeedback:
		return "feedback"
	case ScreenProfile:
		return "profile"
	default:
		return "unknown"
	}
}
