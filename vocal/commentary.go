package vocal

// Commentary literals shared by the base moods and both decorator generations.
//
// Trailing spaces are intentional: a spoken line is the actor's label, one
// space, then the commentary exactly as produced, so a silent chain leaves the
// label followed by a single space and nothing else.
const (
	// ComplimentText is the prefix added by the Compliment decorators.
	ComplimentText = "That David sure is smart. "

	// PositiveText is the fixed remark produced by PositiveVibe.
	PositiveText = "I definitely wouldn't mind catching the Aurora Borealis one day! "

	// NegativeText is the fixed remark produced by NegativeVibe.
	NegativeText = "Those penguins looked absolutely miserable, and so was I! "
)

// Commentator is the shared capability of every mood, base or composed.
//
// Commentary must be pure: no side effects, and the same string for the same
// composition every time it is called.
type Commentator interface {
	Commentary() string
}

// NoComment produces no remark.
type NoComment struct{}

// Commentary implements Commentator.
func (NoComment) Commentary() string { return "" }

// PositiveVibe produces the stock positive remark.
type PositiveVibe struct{}

// Commentary implements Commentator.
func (PositiveVibe) Commentary() string { return PositiveText }

// NegativeVibe produces the stock negative remark.
type NegativeVibe struct{}

// Commentary implements Commentator.
func (NegativeVibe) Commentary() string { return NegativeText }

// Note is a fixed-literal Commentator for remarks outside the built-in set.
//
// Example:
//
//	vocal.Note("Splendid episode. ")
type Note string

// Commentary implements Commentator.
func (n Note) Commentary() string { return string(n) }
