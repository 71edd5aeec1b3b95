// Package konami detects a fixed input sequence arriving one key at a time.
//
// The detector keeps a sliding window of the most recent recognised symbols,
// as long as the target sequence, and compares it after every push. A broken
// partial match is never reset explicitly; it simply ages out of the window.
// The default target has no self-overlap, so this behaves like a full string
// matcher for it.
package konami

import "github.com/nguyenvanduocit/duocnv/internal/logging/events"

// Symbol is one member of the detector's input alphabet.
type Symbol int

const (
	Up Symbol = iota + 1
	Down
	Left
	Right
	Primary
	Secondary
)

func (s Symbol) String() string {
	switch s {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Sequence is the default target: up up down down left right left right b a.
var Sequence = []Symbol{Up, Up, Down, Down, Left, Right, Left, Right, Secondary, Primary}

// SymbolForKey maps a Bubble Tea key name to a symbol. Arrow keys map to
// directions, "a" to Primary and "b" to Secondary.
func SymbolForKey(key string) (Symbol, bool) {
	switch key {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "a":
		return Primary, true
	case "b":
		return Secondary, true
	}
	return 0, false
}

// Detector fires onActivate each time the target is observed. It is not safe
// for concurrent use.
type Detector struct {
	target     []Symbol
	buf        []Symbol
	onActivate func()
}

// NewDetector watches for Sequence.
func NewDetector(onActivate func()) *Detector {
	return NewDetectorFor(Sequence, onActivate)
}

// NewDetectorFor watches for a custom target.
func NewDetectorFor(target []Symbol, onActivate func()) *Detector {
	t := append([]Symbol(nil), target...)
	return &Detector{
		target:     t,
		buf:        make([]Symbol, 0, len(t)),
		onActivate: onActivate,
	}
}

// Push records s and reports whether it completed the target.
func (d *Detector) Push(s Symbol) bool {
	if len(d.target) == 0 {
		return false
	}
	if len(d.buf) == len(d.target) {
		copy(d.buf, d.buf[1:])
		d.buf = d.buf[:len(d.buf)-1]
	}
	d.buf = append(d.buf, s)
	events.Konami.Push(s.String(), len(d.buf))
	if !d.matches() {
		return false
	}
	d.buf = d.buf[:0]
	events.Konami.Activate()
	if d.onActivate != nil {
		d.onActivate()
	}
	return true
}

// PushKey pushes the symbol for key. Keys outside the alphabet are ignored
// and leave the window untouched.
func (d *Detector) PushKey(key string) bool {
	s, ok := SymbolForKey(key)
	if !ok {
		return false
	}
	return d.Push(s)
}

// Buffered returns a copy of the current window, oldest first.
func (d *Detector) Buffered() []Symbol {
	return append([]Symbol(nil), d.buf...)
}

// Reset empties the window.
func (d *Detector) Reset() {
	d.buf = d.buf[:0]
}

func (d *Detector) matches() bool {
	if len(d.buf) != len(d.target) {
		return false
	}
	for i, s := range d.target {
		if d.buf[i] != s {
			return false
		}
	}
	return true
}
