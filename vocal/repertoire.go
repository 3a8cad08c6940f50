package vocal

import (
	"errors"
	"fmt"
	"strconv"
)

// Repertoire provides named moods and wraps at build time.
//
// It is intentionally:
// - read-only after provisioning
// - side effect free
// - build-time only
//
// Expected usage:
//
//	val, ok, err := rep.Resolve("positive")
type Repertoire interface {
	Resolve(key string) (val any, ok bool, err error)
}

// ErrRepertoirePanic is returned if a repertoire implementation panics internally.
var ErrRepertoirePanic = errors.New("repertoire: panic during Resolve")

// MissingEntryError is returned when a repertoire key is not present.
//
// It is used by MoodFor and WrapFor to distinguish "missing" from "wrong kind".
type MissingEntryError struct{ Key string }

// Error implements the error interface.
func (e MissingEntryError) Error() string {
	// Example: vocal: repertoire entry "positive" missing
	return "vocal: repertoire entry " + strconv.Quote(e.Key) + " missing"
}

// WrongKindError is returned when an entry exists but is not the requested
// kind (a mood where a wrap was expected, or the reverse).
type WrongKindError struct {
	// Key is the repertoire key requested.
	Key string

	// Want is the requested kind: "mood" or "wrap".
	Want string
}

// Error implements the error interface.
func (e WrongKindError) Error() string {
	// Example: vocal: repertoire entry "cutoff" is not a mood
	return "vocal: repertoire entry " + strconv.Quote(e.Key) + " is not a " + e.Want
}

// MapRepertoire is a simple in-memory repertoire.
type MapRepertoire struct {
	items map[string]any
}

func NewMapRepertoire() *MapRepertoire {
	return &MapRepertoire{items: map[string]any{}}
}

// ProvideMood stores a mood under a key and returns the repertoire for chaining.
func (r *MapRepertoire) ProvideMood(key string, mood Commentator) *MapRepertoire {
	r.items[key] = mood
	return r
}

// ProvideWrap stores a wrap under a key and returns the repertoire for chaining.
func (r *MapRepertoire) ProvideWrap(key string, wrap Wrapper) *MapRepertoire {
	r.items[key] = wrap
	return r
}

// Resolve implements Repertoire and defensively converts panics into errors.
func (r *MapRepertoire) Resolve(key string) (val any, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRepertoirePanic, rec)
		}
	}()

	v, ok := r.items[key]
	return v, ok, nil
}

// Get returns the raw entry if present (no panic).
func (r *MapRepertoire) Get(key string) (any, bool) {
	v, ok := r.items[key]
	return v, ok
}

// MustGet returns the raw entry or panics with a helpful message.
// Useful in examples/tests where missing repertoire keys should fail fast.
func (r *MapRepertoire) MustGet(key string) any {
	v, ok := r.items[key]
	if !ok {
		panic(fmt.Errorf("vocal: repertoire missing key %q", key))
	}
	return v
}

// MoodFor returns the entry typed as a Commentator.
//
// It returns:
//   - MissingEntryError if the key is not present
//   - WrongKindError if the key exists but is not a mood
//
// It avoids fmt.Errorf so failure paths stay cheap in scene-resolution loops.
func (r *MapRepertoire) MoodFor(key string) (Commentator, error) {
	if r == nil || r.items == nil {
		return nil, MissingEntryError{Key: key}
	}
	raw, ok := r.items[key]
	if !ok || raw == nil {
		return nil, MissingEntryError{Key: key}
	}
	mood, ok := raw.(Commentator)
	if !ok {
		return nil, WrongKindError{Key: key, Want: "mood"}
	}
	return mood, nil
}

// WrapFor returns the entry typed as a Wrapper.
//
// It returns:
//   - MissingEntryError if the key is not present
//   - WrongKindError if the key exists but is not a wrap
func (r *MapRepertoire) WrapFor(key string) (Wrapper, error) {
	if r == nil || r.items == nil {
		return nil, MissingEntryError{Key: key}
	}
	raw, ok := r.items[key]
	if !ok || raw == nil {
		return nil, MissingEntryError{Key: key}
	}
	wrap, ok := raw.(Wrapper)
	if !ok {
		return nil, WrongKindError{Key: key, Want: "wrap"}
	}
	return wrap, nil
}

// DefaultRepertoire provisions the built-in moods and wraps used by the scene
// tools: moods "none", "positive", "negative" and wraps "compliment", "cutoff".
func DefaultRepertoire() *MapRepertoire {
	return NewMapRepertoire().
		ProvideMood("none", NoComment{}).
		ProvideMood("positive", PositiveVibe{}).
		ProvideMood("negative", NegativeVibe{}).
		ProvideWrap("compliment", Compliment()).
		ProvideWrap("cutoff", Cutoff())
}
