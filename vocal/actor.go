package vocal

import "strings"

// Speaker is the shared capability that lets heterogeneous composed actors be
// stored together and invoked uniformly.
type Speaker interface {
	// Speak returns the actor's full line: label, one space, commentary.
	Speak() string
}

// Labels for the two built-in actor kinds.
const (
	DogLabel = "Woof."
	CatLabel = "Meow."
)

// Actor is the runtime (v1) actor: a fixed label plus exactly one composed
// mood chosen at construction.
//
// Label and Mood are exported for introspection in tests and composition
// roots; the composition is fixed for the actor's lifetime and must not be
// reassigned after construction.
type Actor struct {
	Label string
	Mood  Commentator
}

// NewActor constructs an Actor with guardrails.
//
// It fails if:
//   - label is empty or whitespace-only (ErrBlankLabel)
//   - mood is nil (ErrNilCommentator)
func NewActor(label string, mood Commentator) (*Actor, error) {
	if strings.TrimSpace(label) == "" {
		return nil, ErrBlankLabel
	}
	if mood == nil {
		return nil, ErrNilCommentator
	}
	return &Actor{Label: label, Mood: mood}, nil
}

// NewDog constructs a dog-kind Actor (label "Woof.").
func NewDog(mood Commentator) (*Actor, error) { return NewActor(DogLabel, mood) }

// NewCat constructs a cat-kind Actor (label "Meow.").
func NewCat(mood Commentator) (*Actor, error) { return NewActor(CatLabel, mood) }

// Speak implements Speaker.
func (a *Actor) Speak() string { return a.Label + " " + a.Mood.Commentary() }
