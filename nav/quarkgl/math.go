package quarkgl

import "math"

// Scalar is the numeric type used by QuarkGL math operations.
type Scalar = float32

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec4 is a homogeneous 3D vector.
type Vec4 struct {
	X, Y, Z, W Scalar
}

// Mat4 is a column-major 4x4 matrix.
//
// It matches the conventional OpenGL layout:
// m[col*4+row].
type Mat4 [16]Scalar

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// V3f64 narrows float64 coordinates to a Vec3.
func V3f64(x, y, z float64) Vec3 { return Vec3{X: Scalar(x), Y: Scalar(y), Z: Scalar(z)} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) Scalar { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Len() Scalar {
	return Scalar(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v/|v|, or the zero vector when |v| == 0.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

func (v Vec3) Point() Vec4 { return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1} }

func Clamp01(v Scalar) Scalar {
	return clampF32(v, 0, 1)
}

// Radians converts degrees to radians.
func Radians(deg Scalar) Scalar { return deg * math.Pi / 180 }

// FOVYFromFocal returns the vertical field of view of a pinhole camera whose
// focal length is focalPx pixels on a viewport heightPx pixels tall.
func FOVYFromFocal(focalPx, heightPx Scalar) Scalar {
	if focalPx <= 0 {
		return 1
	}
	return 2 * Scalar(math.Atan(float64(heightPx/2/focalPx)))
}

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m*b (b is applied first).
func (m Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] =
				m[0*4+row]*b[col*4+0] +
					m[1*4+row]*b[col*4+1] +
					m[2*4+row]*b[col*4+2] +
					m[3*4+row]*b[col*4+3]
		}
	}
	return out
}

func (m Mat4) MulV4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

func Translate(v Vec3) Mat4 {
	m := Identity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

func Scale(s Scalar) Mat4 {
	m := Identity()
	m[0] = s
	m[5] = s
	m[10] = s
	return m
}

func RotateX(rad Scalar) Mat4 {
	s, c := sincos(rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func RotateY(rad Scalar) Mat4 {
	s, c := sincos(rad)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func LookAt(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	// Column-major.
	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

func Perspective(fovYRad Scalar, aspect Scalar, zNear, zFar Scalar) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	f := 1 / Scalar(math.Tan(float64(fovYRad)/2))
	nf := 1 / (zNear - zFar)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (zFar + zNear) * nf, -1,
		0, 0, (2 * zFar * zNear) * nf, 0,
	}
}

func Ortho(left, right, bottom, top, zNear, zFar Scalar) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := zFar - zNear
	if rl == 0 {
		rl = 1
	}
	if tb == 0 {
		tb = 1
	}
	if fn == 0 {
		fn = 1
	}
	return Mat4{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(right + left) / rl, -(top + bottom) / tb, -(zFar + zNear) / fn, 1,
	}
}

func sincos(rad Scalar) (s, c Scalar) {
	fs, fc := math.Sincos(float64(rad))
	return Scalar(fs), Scalar(fc)
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
