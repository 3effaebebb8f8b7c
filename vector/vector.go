// Package vector provides the 2D vector used by the path interpolators.
package vector

import (
	"fmt"
	"math"
)

// Vector2 is an immutable 2D vector. Every operation returns a new value.
type Vector2 struct {
	X float64
	Y float64
}

// New creates a Vector2.
func New(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add adds two vectors together.
func Add(v1, v2 Vector2) Vector2 {
	return v1.Add(v2)
}

// Sub subtracts v2 from v1.
func Sub(v1, v2 Vector2) Vector2 {
	return v1.Sub(v2)
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Mult scales v by n.
func (v Vector2) Mult(n float64) Vector2 {
	return Vector2{v.X * n, v.Y * n}
}

// Div divides v by n.
func (v Vector2) Div(n float64) Vector2 {
	return Vector2{v.X / n, v.Y / n}
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Lerp moves from v towards o by t.
func (v Vector2) Lerp(o Vector2, t float64) Vector2 {
	return v.Add(o.Sub(v).Mult(t))
}

// Slice returns the vector as [x, y].
func (v Vector2) Slice() []float64 {
	return []float64{v.X, v.Y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("x: %v, y: %v", v.X, v.Y)
}
