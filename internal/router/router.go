package router

import (
	"context"
	"errors"

	"github.com/sunyue-dev/time-exchange/internal/logging"
	"github.com/sunyue-dev/time-exchange/internal/models"
	"github.com/sunyue-dev/time-exchange/internal/repositories/identity"
)

// ErrNoIdentity is returned when onboarding is confirmed without an identity.
var ErrNoIdentity = errors.New("no identity to confirm")

// Router is the screen state machine. It is not safe for concurrent use;
// all events are expected on the single UI goroutine.
//
// There is no terminal state: the machine runs for the lifetime of the
// process. Events that do not apply to the current screen are ignored, so a
// stale screen cannot move the machine from under the active one.
type Router struct {
	store identity.Store
	log   logging.Logger
	every int

	current   Screen
	identity  *models.Identity
	selected  *models.Moment
	witnessed int
}

// New builds a Router. every is the witnessed-count interval at which the
// interrupt screen is shown (0 disables it).
func New(store identity.Store, every int, log logging.Logger) *Router {
	return &Router{store: store, every: every, log: log, current: ScreenOnboarding}
}

// Start loads the persisted identity and picks the initial screen: Feed when
// an identity exists, Onboarding otherwise.
func (r *Router) Start(ctx context.Context) error {
	id, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	r.identity = id
	if id != nil {
		r.current = ScreenFeed
		r.log.Info(ctx, "identity loaded", "id", id.ID)
	} else {
		r.current = ScreenOnboarding
	}
	return nil
}

func (r *Router) Current() Screen             { return r.current }
func (r *Router) Identity() *models.Identity  { return r.identity }
func (r *Router) Selected() *models.Moment    { return r.selected }
func (r *Router) WitnessedCount() int         { return r.witnessed }

func (r *Router) at(ctx context.Context, want Screen, event string) bool {
	if r.current != want {
		r.log.Debug(ctx, "event ignored on wrong screen", "event", event, "screen", r.current.String())
		return false
	}
	return true
}

// CompleteOnboarding persists the confirmed identity and enters the feed.
// The identity must be non-nil; persistence failure keeps the machine on the
// onboarding screen.
func (r *Router) CompleteOnboarding(ctx context.Context, id *models.Identity) error {
	if !r.at(ctx, ScreenOnboarding, "identity confirmed") {
		return nil
	}
	if id == nil {
		return ErrNoIdentity
	}
	if err := r.store.Save(ctx, id); err != nil {
		return err
	}
	r.identity = id
	r.current = ScreenFeed
	r.log.Info(ctx, "identity persisted", "id", id.ID)
	return nil
}

// OpenPost enters the post screen from the feed.
func (r *Router) OpenPost(ctx context.Context) {
	if r.at(ctx, ScreenFeed, "post intent") {
		r.current = ScreenPost
	}
}

// ClosePost returns to the feed.
func (r *Router) ClosePost(ctx context.Context) {
	if r.at(ctx, ScreenPost, "post close") {
		r.current = ScreenFeed
	}
}

// WatchMoment records the selected moment and enters the feedback screen.
func (r *Router) WatchMoment(ctx context.Context, m models.Moment) {
	if r.at(ctx, ScreenFeed, "watch intent") {
		r.selected = &m
		r.current = ScreenFeedback
	}
}

// SubmitFeedback counts the witnessed moment and leaves the feedback screen:
// every r.every-th submission since the last reset lands on the interrupt
// screen, every other one back on the feed. Which feedback option was chosen
// does not matter. The selected moment is cleared on the way out.
func (r *Router) SubmitFeedback(ctx context.Context) {
	if !r.at(ctx, ScreenFeedback, "feedback submit") {
		return
	}
	r.witnessed++
	r.selected = nil
	if r.every > 0 && r.witnessed%r.every == 0 {
		r.current = ScreenInterrupt
	} else {
		r.current = ScreenFeed
	}
}

// CloseFeedback abandons the feedback screen without counting the moment.
func (r *Router) CloseFeedback(ctx context.Context) {
	if r.at(ctx, ScreenFeedback, "feedback close") {
		r.selected = nil
		r.current = ScreenFeed
	}
}

// ContinueLater leaves the interrupt screen without touching the counter;
// the next interrupt comes at the next multiple of the interval.
func (r *Router) ContinueLater(ctx context.Context) {
	if r.at(ctx, ScreenInterrupt, "interrupt continue") {
		r.current = ScreenFeed
	}
}

// TakeAction leaves the interrupt screen and resets the witnessed counter,
// deferring the next interrupt by a full interval.
func (r *Router) TakeAction(ctx context.Context) {
	if r.at(ctx, ScreenInterrupt, "interrupt action") {
		r.witnessed = 0
		r.current = ScreenFeed
	}
}

// OpenProfile enters the profile screen from the feed.
func (r *Router) OpenProfile(ctx context.Context) {
	if r.at(ctx, ScreenFeed, "profile intent") {
		r.current = ScreenProfile
	}
}

// CloseProfile returns to the feed.
func (r *Router) CloseProfile(ctx context.Context) {
	if r.at(ctx, ScreenProfile, "profile close") {
		r.current = ScreenFeed
	}
}

// Logout clears the persisted and in-memory identity and returns to
// onboarding. Without confirmation the state is left unchanged; the clear is
// irreversible once confirmed.
func (r *Router) Logout(ctx context.Context, confirmed bool) error {
	if !r.at(ctx, ScreenProfile, "logout") {
		return nil
	}
	if !confirmed {
		return nil
	}
	if err := r.store.Clear(ctx); err != nil {
		return err
	}
	r.identity = nil
	r.current = ScreenOnboarding
	r.log.Info(ctx, "identity cleared")
	return nil
}
