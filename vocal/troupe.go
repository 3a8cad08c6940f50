package vocal

import "io"

// Troupe is an ordered cast of Speakers.
//
// Members are stored in insertion order and performed in that order. The zero
// value is usable; it starts empty.
//
// A Troupe is built once and iterated once; it is not safe for concurrent
// mutation.
type Troupe struct {
	members []Speaker
}

// NewTroupe constructs a Troupe and adds the given members in order.
//
// It applies AddAll semantics: it stops at the first nil member and returns
// that error.
func NewTroupe(members ...Speaker) (*Troupe, error) {
	troupe := &Troupe{}
	if err := troupe.AddAll(members...); err != nil {
		return nil, err
	}
	return troupe, nil
}

// Add appends a single Speaker.
//
// It returns ErrNilSpeaker if s is nil.
func (t *Troupe) Add(s Speaker) error {
	if s == nil {
		return ErrNilSpeaker
	}
	t.members = append(t.members, s)
	return nil
}

// AddAll appends multiple Speakers in order.
//
// It stops at the first error and returns that error.
func (t *Troupe) AddAll(members ...Speaker) error {
	for _, s := range members {
		if err := t.Add(s); err != nil {
			return err
		}
	}
	return nil
}

// Len reports the number of members.
func (t *Troupe) Len() int {
	if t == nil {
		return 0
	}
	return len(t.members)
}

// Lines returns one line per member, in insertion order.
//
// Each line is exactly what that member's Speak returns.
func (t *Troupe) Lines() []string {
	if t == nil {
		return nil
	}
	lines := make([]string, 0, len(t.members))
	for _, s := range t.members {
		lines = append(lines, s.Speak())
	}
	return lines
}

// Perform writes each member's line, newline-terminated, in insertion order.
//
// It stops at the first write error and returns it.
func (t *Troupe) Perform(w io.Writer) error {
	for _, line := range t.Lines() {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
