package orient

import (
	"math"
	"strings"
)

// Hemisphere restricts one Cartesian component of the direction to a fixed sign.
type Hemisphere uint8

const (
	HemisphereNone Hemisphere = iota
	HemispherePosX
	HemisphereNegX
	HemispherePosY
	HemisphereNegY
	HemispherePosZ
	HemisphereNegZ
)

var hemisphereNames = [...]string{
	HemisphereNone: "None",
	HemispherePosX: "+X",
	HemisphereNegX: "-X",
	HemispherePosY: "+Y",
	HemisphereNegY: "-Y",
	HemispherePosZ: "+Z",
	HemisphereNegZ: "-Z",
}

func (h Hemisphere) String() string {
	if int(h) < len(hemisphereNames) {
		return hemisphereNames[h]
	}
	return "Hemisphere(?)"
}

// Valid reports whether h is one of the seven known constraints.
func (h Hemisphere) Valid() bool { return h <= HemisphereNegZ }

// HemisphereFromSelector maps the numeric selector keys 0..6 to a constraint.
//
// 0 removes the constraint; 1..6 select +X, -X, +Y, -Y, +Z, -Z.
func HemisphereFromSelector(n int) (Hemisphere, bool) {
	if n < 0 || n > int(HemisphereNegZ) {
		return HemisphereNone, false
	}
	return Hemisphere(n), true
}

// ParseHemisphere accepts the labels produced by String (case-insensitive)
// plus "" and "free" as aliases for None.
func ParseHemisphere(s string) (Hemisphere, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none", "free":
		return HemisphereNone, true
	}
	for i, name := range hemisphereNames {
		if strings.EqualFold(name, s) {
			return Hemisphere(i), true
		}
	}
	return HemisphereNone, false
}

// satisfied reports whether the unit vector v lies in the allowed hemisphere.
// Components within eps of zero are on the boundary and always allowed.
func (h Hemisphere) satisfied(v Vec3) bool {
	switch h {
	case HemispherePosX:
		return v.X >= -eps
	case HemisphereNegX:
		return v.X <= eps
	case HemispherePosY:
		return v.Y >= -eps
	case HemisphereNegY:
		return v.Y <= eps
	case HemispherePosZ:
		return v.Z >= -eps
	case HemisphereNegZ:
		return v.Z <= eps
	default:
		return true
	}
}

// axisAzimuth returns the azimuth of the constraint axis for X/Y constraints.
func (h Hemisphere) axisAzimuth() (float64, bool) {
	switch h {
	case HemispherePosX:
		return 0, true
	case HemispherePosY:
		return math.Pi / 2, true
	case HemisphereNegX:
		return math.Pi, true
	case HemisphereNegY:
		return 3 * math.Pi / 2, true
	default:
		return 0, false
	}
}
