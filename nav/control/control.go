// Package control turns raw key events into navigator events.
//
// Arrow keys are held-state: every frame each held arrow yields one rotate
// event, coarse or fine depending on Shift. Everything else is edge-triggered.
package control

import (
	"math"

	"spherenav/hal"
	"spherenav/nav/orient"
)

// Kind classifies a navigator event.
type Kind uint8

const (
	KindRotate Kind = iota + 1
	KindReset
	KindConstrain
	KindQuit
	KindOrbit
	KindZoom
	KindToggleMarker
	KindToggleProjection
	KindSnapshot
)

// Direction is the sense of a rotate event.
type Direction uint8

const (
	AzimuthPositive Direction = iota
	AzimuthNegative
	PolarPositive
	PolarNegative
)

// Step selects the magnitude of a rotate event.
type Step uint8

const (
	Coarse Step = iota
	Fine
)

// Event is one classified input.
//
// Dir and Step are set for KindRotate. Hemisphere is set for KindConstrain.
// Yaw/Pitch (KindOrbit) and Zoom (KindZoom) are signed unit amounts.
type Event struct {
	Kind       Kind
	Dir        Direction
	Step       Step
	Hemisphere orient.Hemisphere
	Yaw        int
	Pitch      int
	Zoom       int
}

// Steps is the fixed coarse/fine pair of angle increments in radians.
type Steps struct {
	Coarse float64
	Fine   float64
}

// DefaultSteps are 6° coarse and 1.5° fine.
var DefaultSteps = Steps{Coarse: 6 * math.Pi / 180, Fine: 1.5 * math.Pi / 180}

// StepsFromDegrees builds a Steps pair from degree values.
func StepsFromDegrees(coarse, fine float64) Steps {
	return Steps{Coarse: coarse * math.Pi / 180, Fine: fine * math.Pi / 180}
}

// Deltas returns the (dθ, dφ) increments for a rotate event.
func (s Steps) Deltas(ev Event) (deltaTheta, deltaPhi float64) {
	if ev.Kind != KindRotate {
		return 0, 0
	}
	step := s.Coarse
	if ev.Step == Fine {
		step = s.Fine
	}
	switch ev.Dir {
	case AzimuthPositive:
		return 0, step
	case AzimuthNegative:
		return 0, -step
	case PolarPositive:
		return step, 0
	case PolarNegative:
		return -step, 0
	}
	return 0, 0
}

// heldOrder fixes the per-frame order of rotate events.
var heldOrder = [...]struct {
	code hal.KeyCode
	dir  Direction
}{
	{hal.KeyLeft, AzimuthNegative},
	{hal.KeyRight, AzimuthPositive},
	{hal.KeyUp, PolarNegative},
	{hal.KeyDown, PolarPositive},
}

// Mapper tracks held keys and classifies key events.
type Mapper struct {
	held  map[hal.KeyCode]bool
	shift bool
}

func NewMapper() *Mapper {
	return &Mapper{held: make(map[hal.KeyCode]bool, len(heldOrder))}
}

// Handle classifies one key event. Held-key state is updated as a side
// effect; arrow presses themselves produce no event (see Frame).
func (m *Mapper) Handle(ev hal.KeyEvent) (Event, bool) {
	switch ev.Code {
	case hal.KeyShift:
		m.shift = ev.Press
		return Event{}, false
	case hal.KeyLeft, hal.KeyRight, hal.KeyUp, hal.KeyDown:
		m.held[ev.Code] = ev.Press
		return Event{}, false
	case hal.KeyEscape:
		if ev.Press {
			return Event{Kind: KindQuit}, true
		}
		return Event{}, false
	case hal.KeyUnknown:
		if !ev.Press || ev.Rune == 0 {
			return Event{}, false
		}
		return classifyRune(ev.Rune)
	}
	return Event{}, false
}

// Frame returns one rotate event per held arrow key.
func (m *Mapper) Frame(dst []Event) []Event {
	step := Coarse
	if m.shift {
		step = Fine
	}
	for _, hk := range heldOrder {
		if m.held[hk.code] {
			dst = append(dst, Event{Kind: KindRotate, Dir: hk.dir, Step: step})
		}
	}
	return dst
}

// Release forgets all held keys, e.g. when the window loses focus.
func (m *Mapper) Release() {
	clear(m.held)
	m.shift = false
}

func classifyRune(r rune) (Event, bool) {
	switch {
	case r >= '0' && r <= '9':
		h, ok := orient.HemisphereFromSelector(int(r - '0'))
		if !ok {
			return Event{}, false
		}
		return Event{Kind: KindConstrain, Hemisphere: h}, true
	}

	switch r {
	case 'r', 'R':
		return Event{Kind: KindReset}, true
	case 'q', 'Q':
		return Event{Kind: KindQuit}, true
	case 'a', 'A':
		return Event{Kind: KindOrbit, Yaw: -1}, true
	case 'd', 'D':
		return Event{Kind: KindOrbit, Yaw: 1}, true
	case 'w', 'W':
		return Event{Kind: KindOrbit, Pitch: 1}, true
	case 's', 'S':
		return Event{Kind: KindOrbit, Pitch: -1}, true
	case '+', '=':
		return Event{Kind: KindZoom, Zoom: -1}, true
	case '-', '_':
		return Event{Kind: KindZoom, Zoom: 1}, true
	case 'm', 'M':
		return Event{Kind: KindToggleMarker}, true
	case 'o', 'O':
		return Event{Kind: KindToggleProjection}, true
	case 'p', 'P':
		return Event{Kind: KindSnapshot}, true
	}
	return Event{}, false
}
