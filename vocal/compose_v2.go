package vocal

// V2 composition: generic mixin types (no wiring state here; the chain lives in the type)

// Prefixed prepends Text to a non-empty inner commentary.
// An empty inner commentary stays empty so muted chains stay muted.
type Prefixed[C Commentator] struct {
	Text  string
	Inner C
}

// Commentary implements Commentator.
func (p Prefixed[C]) Commentary() string {
	got := p.Inner.Commentary()
	if got == "" {
		return ""
	}
	return p.Text + got
}

// Complimented prepends the stock compliment (ComplimentText).
type Complimented[C Commentator] struct {
	Inner C
}

// Commentary implements Commentator.
func (c Complimented[C]) Commentary() string {
	got := c.Inner.Commentary()
	if got == "" {
		return ""
	}
	return ComplimentText + got
}

// Muted discards the inner commentary entirely.
type Muted[C Commentator] struct {
	Inner C
}

// Commentary implements Commentator.
func (Muted[C]) Commentary() string { return "" }

// Dog is the static dog-kind actor (label "Woof.").
type Dog[C Commentator] struct {
	Mood C
}

// Speak implements Speaker.
func (d Dog[C]) Speak() string { return DogLabel + " " + d.Mood.Commentary() }

// Cat is the static cat-kind actor (label "Meow.").
type Cat[C Commentator] struct {
	Mood C
}

// Speak implements Speaker.
func (c Cat[C]) Speak() string { return CatLabel + " " + c.Mood.Commentary() }
