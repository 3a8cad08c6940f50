// Package vocal provides a small, explicit behavior composition helper.
//
// It models a commentary chain (Commentator) built from base moods plus
// Wrapper functions that decorate an inner chain and return a new one, with
// typed errors on invalid wiring (e.g. a nil mood or a nil inner chain).
//
// Design goals:
//   - Lightweight: small API surface, no container graph, no reflection for dispatch.
//   - Explicit composition: chains are wrapped intentionally via Compose.
//   - Safe defaults: detects nil moods and nil wiring mistakes early.
//   - Test-friendly: every chain is a plain value whose output can be asserted.
//
// Notes on performance:
//   - The success path is dominated by string concatenation and a method call.
//   - Error paths avoid fmt.Errorf to keep failure handling inexpensive when used
//     in benchmarks or for control flow (e.g., repertoire missing checks).
package vocal

import (
	"errors"
)

var (
	// ErrNilCommentator is returned when a wrapper or constructor is applied
	// to a nil mood or a nil inner chain.
	ErrNilCommentator = errors.New("vocal: nil commentator")

	// ErrNilSpeaker is returned when a nil actor is added to a Troupe.
	ErrNilSpeaker = errors.New("vocal: nil speaker")

	// ErrBlankLabel is returned when an actor is constructed with an empty
	// or whitespace-only label.
	ErrBlankLabel = errors.New("vocal: blank actor label")
)

// Wrapper decorates a commentary chain and returns the decorated chain.
//
// Wrappers are applied via Compose. A Wrapper must not mutate the inner
// chain; it returns a new Commentator that delegates to it.
type Wrapper func(inner Commentator) (Commentator, error)

// Compose applies wraps to base in order, innermost first.
//
// A nil Wrapper is skipped. It stops at the first error and returns the
// chain built so far alongside that error.
func Compose(base Commentator, wraps ...Wrapper) (Commentator, error) {
	if base == nil {
		return nil, ErrNilCommentator
	}
	chain := base
	for _, wrap := range wraps {
		if wrap == nil {
			continue
		}
		next, err := wrap(chain)
		if err != nil {
			return chain, err
		}
		chain = next
	}
	return chain, nil
}

// Prefix builds a Wrapper that prepends text to the inner commentary.
//
// A silent inner chain stays silent: prepending to an empty commentary would
// un-mute a chain cut off further in, so an empty inner commentary yields "".
func Prefix(text string) Wrapper {
	return func(inner Commentator) (Commentator, error) {
		if inner == nil {
			return nil, ErrNilCommentator
		}
		return prefixed{text: text, inner: inner}, nil
	}
}

// Compliment builds a Wrapper that prepends the stock compliment
// (ComplimentText) to a non-empty inner commentary.
func Compliment() Wrapper { return Prefix(ComplimentText) }

// Cutoff builds a Wrapper that discards the inner commentary entirely.
//
// The cut chain yields "" regardless of what it wraps, and any prefix wrapped
// around it stays silent too.
func Cutoff() Wrapper {
	return func(inner Commentator) (Commentator, error) {
		if inner == nil {
			return nil, ErrNilCommentator
		}
		return muted{inner: inner}, nil
	}
}

// prefixed is the runtime form of a prepend decorator.
type prefixed struct {
	text  string
	inner Commentator
}

// Commentary implements Commentator.
func (p prefixed) Commentary() string {
	got := p.inner.Commentary()
	if got == "" {
		return ""
	}
	return p.text + got
}

// muted is the runtime form of a cut-off decorator.
// The inner chain is retained for inspection but never consulted.
type muted struct {
	inner Commentator
}

// Commentary implements Commentator.
func (muted) Commentary() string { return "" }
