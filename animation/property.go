package animation

// Value is a property value: a single scalar or an ordered list of them.
type Value []float64

// Scalar makes a one element Value.
func Scalar(v float64) Value {
	return Value{v}
}

// End names the strategy that moves a property and its target arguments.
type End struct {
	Strategy string
	Args     Value
}

// A Property describes how one key of a target is read, moved and written.
type Property struct {
	// Param reads the property's current value. It is sampled once per Start.
	Param func(target any) Value

	// End is where the property is going and how.
	End End

	// Set writes the interpolated value back to the target.
	Set func(target any, v ...float64)

	// Format, when set, turns the interpolated value into text which is
	// written with SetText instead of Set.
	Format  func(v ...float64) string
	SetText func(target any, s string)

	// Relative makes End.Args an offset from the value read at Start.
	Relative bool
}

// resolve returns the target arguments for a property that started at from.
// Relative arguments are added to from element by element, from repeating
// across arguments longer than itself, so a path's control points all move
// with its start point.
func (p Property) resolve(from Value) Value {
	to := make(Value, len(p.End.Args))
	copy(to, p.End.Args)
	if !p.Relative || len(from) == 0 {
		return to
	}
	for i := range to {
		to[i] += from[i%len(from)]
	}
	return to
}
