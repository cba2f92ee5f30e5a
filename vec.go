package boxel

// Integer is the set of integer types a Vec2 can hold.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Vec2 is a pair of integers used for positions and sizes.
// Positions may be negative or lie beyond the screen.
type Vec2[T Integer] struct {
	X T
	Y T
}

// V returns a Vec2 with the given components.
func V[T Integer](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Size is a grid or box size in cells.
type Size = Vec2[int]

// Point is a cell position. Negative values are off the top or left edge.
type Point = Vec2[int]
