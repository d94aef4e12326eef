package quarkgl

import "math"

// maxPitch keeps the orbit camera off the poles, where LookAt degenerates.
const maxPitch = Scalar(math.Pi/2 - 0.01)

// OrbitController provides basic orbit/zoom interactions for a camera.
//
// It does not depend on any input system. Yaw turns around +Y, pitch tilts
// around +X; at zero yaw and pitch the camera sits on +Z looking at Target.
type OrbitController struct {
	Target Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar
}

func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.clampRadius(c.Radius)
	if r == 0 {
		r = 3
	}

	m := RotateY(c.Yaw).Mul(RotateX(-c.Pitch))
	p := m.MulV4(Vec4{X: 0, Y: 0, Z: r, W: 1})

	cam.Position = c.Target.Add(V3(p.X, p.Y, p.Z))
	cam.Target = c.Target
	cam.Up = V3(0, 1, 0)
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	c.Yaw = wrapAngle(c.Yaw + deltaYaw)
	c.Pitch = clampF32(c.Pitch+deltaPitch, -maxPitch, maxPitch)
}

func (c *OrbitController) Zoom(delta Scalar) {
	c.Radius = c.clampRadius(c.Radius + delta)
}

func (c *OrbitController) clampRadius(r Scalar) Scalar {
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}
	return r
}

func wrapAngle(a Scalar) Scalar {
	return Scalar(math.Remainder(float64(a), 2*math.Pi))
}
