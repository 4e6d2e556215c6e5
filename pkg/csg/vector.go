package csg

import "math"

// Vector is a point or direction in 3-space. It is a value type; all
// operations return new vectors and never mutate the receiver.
type Vector struct {
	X, Y, Z float64
}

// Add returns a + b.
func (a Vector) Add(b Vector) Vector {
	return Vector{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vector) Sub(b Vector) Vector {
	return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a scaled by s.
func (a Vector) Scale(s float64) Vector {
	return Vector{a.X * s, a.Y * s, a.Z * s}
}

// Neg returns -a.
func (a Vector) Neg() Vector {
	return Vector{-a.X, -a.Y, -a.Z}
}

// Dot returns the dot product of a and b.
func (a Vector) Dot(b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of a and b.
func (a Vector) Cross(b Vector) Vector {
	return Vector{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length of a.
func (a Vector) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Unit returns a scaled to unit length.
func (a Vector) Unit() Vector {
	return a.Scale(1 / a.Length())
}

// Lerp returns the linear interpolation between a and b at parameter t,
// with t=0 yielding a and t=1 yielding b.
func (a Vector) Lerp(b Vector, t float64) Vector {
	return a.Add(b.Sub(a).Scale(t))
}
