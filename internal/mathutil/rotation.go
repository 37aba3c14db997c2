package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
// Applied to (x, y, z): y' = y·cos − z·sin, z' = y·sin + z·cos.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
// Applied to (x, y, z): x' = x·cos + z·sin, z' = −x·sin + z·cos.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// WrapAngle folds a into [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
