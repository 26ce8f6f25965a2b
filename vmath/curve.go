package vmath

// QuadBezier evaluates a quadratic Bézier curve at t in [0,1].
// p0 and p1 are the endpoints, c the single control point
func QuadBezier(p0, c, p1 Vec3F, t float64) Vec3F {
	u := 1 - t
	a := u * u
	b := 2 * u * t
	d := t * t
	return Vec3F{
		X: a*p0.X + b*c.X + d*p1.X,
		Y: a*p0.Y + b*c.Y + d*p1.Y,
		Z: a*p0.Z + b*c.Z + d*p1.Z,
	}
}

// V3FLerp linearly interpolates between a and b by t in [0,1]
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}
