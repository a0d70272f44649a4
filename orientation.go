package arbor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
)

// Euler holds intrinsic X-then-Y-then-Z rotation angles in radians.
type Euler struct {
	X, Y, Z float64
}

func (e Euler) Quat() mgl64.Quat {
	return mgl64.AnglesToQuat(e.X, e.Y, e.Z, mgl64.XYZ)
}

func (e Euler) Rotate(v mgl64.Vec3) mgl64.Vec3 {
	return e.Quat().Rotate(v)
}

// EulerFromQuat decomposes q back into XYZ angles. Near gimbal lock Z is
// pinned to zero.
func EulerFromQuat(q mgl64.Quat) Euler {
	m := q.Normalize().Mat4()
	m11, m12, m13 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m22, m23 := m.At(1, 1), m.At(1, 2)
	m32, m33 := m.At(2, 1), m.At(2, 2)

	var e Euler
	e.Y = math.Asin(mgl64.Clamp(m13, -1, 1))
	if math.Abs(m13) < 0.9999999 {
		e.X = math.Atan2(-m23, m33)
		e.Z = math.Atan2(-m12, m11)
	} else {
		e.X = math.Atan2(m32, m22)
		e.Z = 0
	}
	return e
}

// rotateTowards turns q towards target by at most step radians.
func rotateTowards(q, target mgl64.Quat, step float64) mgl64.Quat {
	angle := 2 * math.Acos(math.Abs(mgl64.Clamp(q.Normalize().Dot(target.Normalize()), -1, 1)))
	if angle == 0 {
		return q
	}
	t := math.Min(1, step/angle)
	return mgl64.QuatSlerp(q, target, t)
}
