// Package orient models a direction on the unit sphere as spherical angles.
//
// θ (theta) is the polar angle measured from +Z and stays in [0, π].
// φ (phi) is the azimuth from +X towards +Y around +Z and stays in [0, 2π).
// An optional hemisphere constraint keeps one Cartesian component of the
// direction at a fixed sign; violations are corrected by clamping the angles
// immediately, never reported.
//
// A State is a plain value with no shared globals; the owner decides where it
// lives and passes it around explicitly.
package orient

import "math"

const (
	twoPi = 2 * math.Pi

	// eps is the slack allowed on the constrained component before a
	// direction counts as outside its hemisphere.
	eps = 1e-9
)

// Vec3 is a Cartesian direction.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the Euclidean length ||v||.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// State is the current direction plus its hemisphere constraint.
//
// The zero value points along +Z with no constraint; use New for the +X home.
type State struct {
	theta float64
	phi   float64
	hemi  Hemisphere
}

// New returns a state at the +X pole (θ=π/2, φ=0) with no constraint.
func New() State {
	return State{theta: math.Pi / 2}
}

func (s State) Theta() float64         { return s.theta }
func (s State) Phi() float64           { return s.phi }
func (s State) Hemisphere() Hemisphere { return s.hemi }

// Update applies signed angle increments in radians.
//
// θ is clamped to [0, π], φ wraps modulo 2π, and the active constraint is
// then enforced. Non-finite increments are treated as zero.
func (s *State) Update(deltaTheta, deltaPhi float64) {
	if !finite(deltaTheta) {
		deltaTheta = 0
	}
	if !finite(deltaPhi) {
		deltaPhi = 0
	}
	s.theta = clamp(s.theta+deltaTheta, 0, math.Pi)
	s.phi = wrapTwoPi(s.phi + deltaPhi)
	s.constrain()
}

// SetHemisphere replaces the active constraint and re-clamps the current
// direction to satisfy it. Unknown values remove the constraint.
func (s *State) SetHemisphere(h Hemisphere) {
	if !h.Valid() {
		h = HemisphereNone
	}
	s.hemi = h
	s.constrain()
}

// Reset returns to the +X pole. Under the -X constraint the -X pole
// (θ=π/2, φ=π) is used instead.
func (s *State) Reset() {
	s.theta = math.Pi / 2
	s.phi = 0
	if s.hemi == HemisphereNegX {
		s.phi = math.Pi
	}
	s.constrain()
}

// UnitVector returns (sin θ cos φ, sin θ sin φ, cos θ).
func (s State) UnitVector() Vec3 {
	st, ct := math.Sincos(s.theta)
	sp, cp := math.Sincos(s.phi)
	return Vec3{X: st * cp, Y: st * sp, Z: ct}
}

// Degrees returns θ in [0, 180] and φ in [0, 360) for display.
func (s State) Degrees() (theta, phi float64) {
	theta = s.theta * 180 / math.Pi
	phi = s.phi * 180 / math.Pi
	if phi >= 360 {
		phi -= 360
	}
	return theta, phi
}

// constrain moves the direction onto the nearest boundary of the allowed
// hemisphere when it lies outside it.
//
// ±Z constraints clamp θ only. ±X/±Y constraints clamp φ only, to the nearer
// edge of the 180° azimuth arc centred on the axis; the exact antipode
// resolves counter-clockwise.
func (s *State) constrain() {
	if s.hemi.satisfied(s.UnitVector()) {
		return
	}
	switch s.hemi {
	case HemispherePosZ:
		s.theta = math.Min(s.theta, math.Pi/2)
	case HemisphereNegZ:
		s.theta = math.Max(s.theta, math.Pi/2)
	default:
		axis, ok := s.hemi.axisAzimuth()
		if !ok {
			return
		}
		if wrapPi(s.phi-axis) >= 0 {
			s.phi = wrapTwoPi(axis + math.Pi/2)
		} else {
			s.phi = wrapTwoPi(axis - math.Pi/2)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapTwoPi maps a into [0, 2π).
func wrapTwoPi(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	// -tiny + 2π rounds up to 2π.
	if a >= twoPi {
		a = 0
	}
	return a
}

// wrapPi maps a into (-π, π].
func wrapPi(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a > math.Pi {
		a -= twoPi
	} else if a <= -math.Pi {
		a += twoPi
	}
	return a
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
