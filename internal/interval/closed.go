package interval

import "fmt"

// Closed is the default Interval: a closed interval [Start, End].
//
// Start and End are plain fields and may be reassigned at any time; nothing
// relates them until IsValid is asked.
type Closed[T Ordered] struct {
	Start T
	End   T
}

// NewClosed returns [start, end].
func NewClosed[T Ordered](start, end T) Closed[T] {
	return Closed[T]{Start: start, End: end}
}

// Bounds returns Start and End.
func (c Closed[T]) Bounds() (T, T) {
	return c.Start, c.End
}

// IsValid returns true when Start <= End.
func (c Closed[T]) IsValid() bool {
	return IsValid(c.Start, c.End)
}

// Contains reports whether point lies in the interval, bounds included.
func (c Closed[T]) Contains(point T) bool {
	return ContainsPoint[T](c, point)
}

// ContainsInclusive reports whether point lies in the interval. Both bounds
// are included or excluded together.
func (c Closed[T]) ContainsInclusive(point T, inclusive bool) bool {
	return ContainsInclusive[T](c, point, inclusive)
}

// ContainsWith reports whether point lies in the interval with separate
// inclusivity for each bound. See Contains (the package function).
func (c Closed[T]) ContainsWith(point T, startInclusive, endInclusive bool) bool {
	return Contains[T](c, point, startInclusive, endInclusive)
}

// ContainsStart reports whether the start of other lies in c, bounds included.
func (c Closed[T]) ContainsStart(other Interval[T]) bool {
	return ContainsStart[T](c, other, true)
}

// ContainsStartInclusive is ContainsStart with the inclusivity of c's bounds given.
func (c Closed[T]) ContainsStartInclusive(other Interval[T], inclusive bool) bool {
	return ContainsStart[T](c, other, inclusive)
}

// ContainsEnd reports whether the end of other lies in c, bounds included.
func (c Closed[T]) ContainsEnd(other Interval[T]) bool {
	return ContainsEnd[T](c, other, true)
}

// ContainsEndInclusive is ContainsEnd with the inclusivity of c's bounds given.
func (c Closed[T]) ContainsEndInclusive(other Interval[T], inclusive bool) bool {
	return ContainsEnd[T](c, other, inclusive)
}

// Encloses reports whether both endpoints of other lie in c.
func (c Closed[T]) Encloses(other Interval[T]) bool {
	return Encloses[T](c, other)
}

// Intersects reports whether an endpoint of other lies in c.
func (c Closed[T]) Intersects(other Interval[T]) bool {
	return Intersects[T](c, other)
}

// String implements fmt.Stringer.
func (c Closed[T]) String() string {
	return fmt.Sprintf("[%v, %v]", c.Start, c.End)
}
