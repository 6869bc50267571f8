// Package input tracks per-frame keyboard and cursor state independently of
// the windowing library that produced it.
package input

type Phase int

const (
	Released Phase = iota
	Pressed
	Held
)

func (p Phase) String() string {
	switch p {
	case Pressed:
		return "pressed"
	case Held:
		return "held"
	default:
		return "released"
	}
}

// Key is an edge detector. Pressed lasts exactly one update after the key
// goes down; Held follows for as long as it stays down.
type Key struct {
	phase Phase
}

// Update feeds the current raw state of the key and returns the new phase.
func (k *Key) Update(down bool) Phase {
	switch {
	case !down:
		k.phase = Released
	case k.phase == Released:
		k.phase = Pressed
	default:
		k.phase = Held
	}
	return k.phase
}

func (k *Key) Phase() Phase { return k.phase }

// Activated reports whether the last update was the press edge.
func (k *Key) Activated() bool { return k.phase == Pressed }

// Down reports whether the key is pressed or held.
func (k *Key) Down() bool { return k.phase != Released }

// Frame is the raw input sampled once per frame.
type Frame struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Boost   bool
	Exit    bool
	Info    bool

	CursorX   float64
	CursorY   float64
	HasCursor bool
}
