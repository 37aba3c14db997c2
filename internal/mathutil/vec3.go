package mathutil

// Vec3 is a point or direction in object space (value type, stack-allocated).
type Vec3 [3]float64
