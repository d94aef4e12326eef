package quarkgl

import (
	"math"
	"testing"
)

func near32(a, b, tol Scalar) bool { return Scalar(math.Abs(float64(a-b))) <= tol }

func TestMat4MulIdentity(t *testing.T) {
	a := Identity()
	b := Translate(V3(1, 2, 3))
	if got := a.Mul(b); got != b {
		t.Fatalf("identity*a mismatch")
	}
	if got := b.Mul(a); got != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestLookAtNotIdentity(t *testing.T) {
	m := LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	if m == Identity() {
		t.Fatalf("lookAt unexpectedly identity")
	}
}

func TestLookAtMovesTargetOntoAxis(t *testing.T) {
	m := LookAt(V3(0, 0, 8), V3(0, 0, 0), V3(0, 1, 0))
	p := m.MulV4(V3(0, 0, 0).Point())
	if !near32(p.X, 0, 1e-6) || !near32(p.Y, 0, 1e-6) || !near32(p.Z, -8, 1e-5) {
		t.Fatalf("LookAt(origin) = %+v, want (0, 0, -8)", p)
	}
}

func TestTranslateScaleOrder(t *testing.T) {
	m := Translate(V3(1, 0, 0)).Mul(Scale(2))
	p := m.MulV4(V3(1, 1, 1).Point())
	if p != (Vec4{X: 3, Y: 2, Z: 2, W: 1}) {
		t.Fatalf("Translate*Scale(1,1,1) = %+v, want (3, 2, 2, 1)", p)
	}
}

func TestFOVYFromFocal(t *testing.T) {
	fov := FOVYFromFocal(900, 700)
	want := Scalar(2 * math.Atan(350.0/900.0))
	if !near32(fov, want, 1e-6) {
		t.Fatalf("FOVYFromFocal(900, 700) = %v, want %v", fov, want)
	}
	if FOVYFromFocal(0, 700) != 1 {
		t.Fatalf("FOVYFromFocal(0, 700) should fall back to 1 rad")
	}
}

func TestOrbitControllerApply(t *testing.T) {
	c := OrbitController{Radius: 8, MinRadius: 3, MaxRadius: 20}
	var cam Camera
	c.Apply(&cam)
	if !near32(cam.Position.X, 0, 1e-6) || !near32(cam.Position.Y, 0, 1e-6) || !near32(cam.Position.Z, 8, 1e-6) {
		t.Fatalf("Position = %+v, want (0, 0, 8)", cam.Position)
	}

	c.Rotate(math.Pi/2, 0)
	c.Apply(&cam)
	if !near32(cam.Position.X, 8, 1e-5) || !near32(cam.Position.Z, 0, 1e-5) {
		t.Fatalf("Position after yaw = %+v, want (8, 0, 0)", cam.Position)
	}

	c.Rotate(0, 10)
	if c.Pitch != maxPitch {
		t.Fatalf("Pitch = %v, want clamped to %v", c.Pitch, maxPitch)
	}
	c.Apply(&cam)
	if cam.Position.Y <= 7.9 {
		t.Fatalf("Position after pitch = %+v, want camera above target", cam.Position)
	}

	c.Zoom(-100)
	if c.Radius != 3 {
		t.Fatalf("Radius = %v, want 3", c.Radius)
	}
	c.Zoom(100)
	if c.Radius != 20 {
		t.Fatalf("Radius = %v, want 20", c.Radius)
	}
}

func TestColorMulScalar(t *testing.T) {
	c := RGB(200, 100, 50)
	if got := c.MulScalar(0.5); got != (Color{R: 99, G: 49, B: 24, A: 0xFF}) {
		t.Fatalf("MulScalar(0.5) = %+v", got)
	}
	if got := c.MulScalar(2); got != c {
		t.Fatalf("MulScalar(2) = %+v, want %+v", got, c)
	}
	if got := c.MulScalar(-1); got != (Color{A: 0xFF}) {
		t.Fatalf("MulScalar(-1) = %+v, want black", got)
	}
}
