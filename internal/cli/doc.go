// Package cli provides the interactive Time Exchange terminal client.
//
// It wires configuration, the local identity store, the generation client,
// and an interactive loop over the six screens: Onboarding, Feed, Post,
// Interrupt, Feedback, and Profile. Navigation state lives in the router
// package; each screen here renders, reads user input, and dispatches router
// events until the screen changes.
//
// The loop is started via App.Run(ctx), which blocks until the user exits.
package cli
