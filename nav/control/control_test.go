package control

import (
	"math"
	"testing"

	"spherenav/hal"
	"spherenav/nav/orient"
)

func press(code hal.KeyCode) hal.KeyEvent { return hal.KeyEvent{Code: code, Press: true} }
func release(code hal.KeyCode) hal.KeyEvent { return hal.KeyEvent{Code: code, Press: false} }
func typed(r rune) hal.KeyEvent { return hal.KeyEvent{Press: true, Rune: r} }

func TestHeldArrowsRotateEveryFrame(t *testing.T) {
	m := NewMapper()
	if _, ok := m.Handle(press(hal.KeyRight)); ok {
		t.Fatal("Handle(Right press) emitted an event, want held state only")
	}
	m.Handle(press(hal.KeyUp))

	for frame := 0; frame < 3; frame++ {
		evs := m.Frame(nil)
		want := []Event{
			{Kind: KindRotate, Dir: AzimuthPositive, Step: Coarse},
			{Kind: KindRotate, Dir: PolarNegative, Step: Coarse},
		}
		if len(evs) != len(want) {
			t.Fatalf("frame %d: Frame() = %+v, want %+v", frame, evs, want)
		}
		for i := range want {
			if evs[i] != want[i] {
				t.Fatalf("frame %d: Frame()[%d] = %+v, want %+v", frame, i, evs[i], want[i])
			}
		}
	}

	m.Handle(release(hal.KeyRight))
	m.Handle(release(hal.KeyUp))
	if evs := m.Frame(nil); len(evs) != 0 {
		t.Fatalf("Frame() after release = %+v, want none", evs)
	}
}

func TestShiftSelectsFineStep(t *testing.T) {
	m := NewMapper()
	m.Handle(press(hal.KeyShift))
	m.Handle(press(hal.KeyLeft))
	evs := m.Frame(nil)
	if len(evs) != 1 || evs[0].Step != Fine || evs[0].Dir != AzimuthNegative {
		t.Fatalf("Frame() = %+v, want one fine azimuth-negative rotate", evs)
	}

	m.Handle(release(hal.KeyShift))
	evs = m.Frame(evs[:0])
	if len(evs) != 1 || evs[0].Step != Coarse {
		t.Fatalf("Frame() after shift release = %+v, want coarse", evs)
	}

	m.Release()
	if evs := m.Frame(nil); len(evs) != 0 {
		t.Fatalf("Frame() after Release = %+v, want none", evs)
	}
}

func TestRuneMapping(t *testing.T) {
	tests := []struct {
		r    rune
		want Event
		ok   bool
	}{
		{'r', Event{Kind: KindReset}, true},
		{'q', Event{Kind: KindQuit}, true},
		{'0', Event{Kind: KindConstrain, Hemisphere: orient.HemisphereNone}, true},
		{'1', Event{Kind: KindConstrain, Hemisphere: orient.HemispherePosX}, true},
		{'2', Event{Kind: KindConstrain, Hemisphere: orient.HemisphereNegX}, true},
		{'5', Event{Kind: KindConstrain, Hemisphere: orient.HemispherePosZ}, true},
		{'6', Event{Kind: KindConstrain, Hemisphere: orient.HemisphereNegZ}, true},
		{'7', Event{}, false},
		{'9', Event{}, false},
		{'a', Event{Kind: KindOrbit, Yaw: -1}, true},
		{'w', Event{Kind: KindOrbit, Pitch: 1}, true},
		{'+', Event{Kind: KindZoom, Zoom: -1}, true},
		{'-', Event{Kind: KindZoom, Zoom: 1}, true},
		{'m', Event{Kind: KindToggleMarker}, true},
		{'o', Event{Kind: KindToggleProjection}, true},
		{'p', Event{Kind: KindSnapshot}, true},
		{'x', Event{}, false},
	}
	for _, tt := range tests {
		m := NewMapper()
		got, ok := m.Handle(typed(tt.r))
		if ok != tt.ok || got != tt.want {
			t.Fatalf("Handle(%q) = %+v, %v; want %+v, %v", tt.r, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEscapeQuitsOnPress(t *testing.T) {
	m := NewMapper()
	if ev, ok := m.Handle(press(hal.KeyEscape)); !ok || ev.Kind != KindQuit {
		t.Fatalf("Handle(Escape press) = %+v, %v; want quit", ev, ok)
	}
	if _, ok := m.Handle(release(hal.KeyEscape)); ok {
		t.Fatal("Handle(Escape release) emitted an event")
	}
}

func TestStepsDeltas(t *testing.T) {
	s := DefaultSteps
	coarse, fine := 6*math.Pi/180, 1.5*math.Pi/180
	tests := []struct {
		ev     Event
		dTheta float64
		dPhi   float64
	}{
		{Event{Kind: KindRotate, Dir: AzimuthPositive}, 0, coarse},
		{Event{Kind: KindRotate, Dir: AzimuthNegative}, 0, -coarse},
		{Event{Kind: KindRotate, Dir: PolarPositive, Step: Fine}, fine, 0},
		{Event{Kind: KindRotate, Dir: PolarNegative, Step: Fine}, -fine, 0},
		{Event{Kind: KindReset}, 0, 0},
	}
	for _, tt := range tests {
		dt, dp := s.Deltas(tt.ev)
		if math.Abs(dt-tt.dTheta) > 1e-12 || math.Abs(dp-tt.dPhi) > 1e-12 {
			t.Fatalf("Deltas(%+v) = (%v, %v), want (%v, %v)", tt.ev, dt, dp, tt.dTheta, tt.dPhi)
		}
	}

	if got := StepsFromDegrees(6, 1.5); math.Abs(got.Coarse-coarse) > 1e-15 || math.Abs(got.Fine-fine) > 1e-15 {
		t.Fatalf("StepsFromDegrees(6, 1.5) = %+v", got)
	}
}
