package interval

// Interval is a closed interval over an ordered type.
//
// Implementations only supply the bounds and the validity predicate. Every
// composite operation (containment, intersection, point generation) is a
// package function taking an Interval, so a type that redefines IsValid gets
// its own predicate used everywhere.
type Interval[T Ordered] interface {
	// Bounds returns the current start and end values.
	Bounds() (start, end T)
	// IsValid reports whether the interval is usable. Most operations return
	// false rather than fail when it is not.
	IsValid() bool
}

// IsValid is the default validity predicate: start <= end.
func IsValid[T Ordered](start, end T) bool {
	return start <= end
}

// Contains reports whether point lies in iv.
//
// A point strictly between start and end is always contained. A point equal
// to start is contained only when startInclusive is set, and one equal to end
// only when endInclusive is set. The bounds are compared as they are, the
// validity of iv is not consulted.
func Contains[T Ordered](iv Interval[T], point T, startInclusive, endInclusive bool) bool {
	start, end := iv.Bounds()
	return (start < point && point < end) ||
		(startInclusive && point == start) ||
		(endInclusive && point == end)
}

// ContainsInclusive is Contains with the same inclusivity on both sides.
func ContainsInclusive[T Ordered](iv Interval[T], point T, inclusive bool) bool {
	return Contains(iv, point, inclusive, inclusive)
}

// ContainsPoint is Contains with both bounds inclusive.
func ContainsPoint[T Ordered](iv Interval[T], point T) bool {
	return ContainsInclusive(iv, point, true)
}

// ContainsStart reports whether both intervals are valid and the start of
// other lies in self.
func ContainsStart[T Ordered](self, other Interval[T], inclusive bool) bool {
	if !self.IsValid() || !other.IsValid() {
		return false
	}
	start, _ := other.Bounds()
	return ContainsInclusive(self, start, inclusive)
}

// ContainsEnd reports whether both intervals are valid and the end of other
// lies in self.
func ContainsEnd[T Ordered](self, other Interval[T], inclusive bool) bool {
	if !self.IsValid() || !other.IsValid() {
		return false
	}
	_, end := other.Bounds()
	return ContainsInclusive(self, end, inclusive)
}

// Encloses reports whether both endpoints of other lie in self, inclusively.
// An interval that merely overlaps other does not enclose it.
func Encloses[T Ordered](self, other Interval[T]) bool {
	return ContainsStart(self, other, true) && ContainsEnd(self, other, true)
}

// Intersects reports whether both intervals are valid and at least one
// endpoint of other lies in self.
//
// Only the endpoints of other are tested. When self sits strictly inside
// other, self.Intersects(other) is false while other.Intersects(self) is
// true; callers needing symmetric overlap must test both directions.
func Intersects[T Ordered](self, other Interval[T]) bool {
	if !self.IsValid() || !other.IsValid() {
		return false
	}
	return ContainsStart(self, other, true) || ContainsEnd(self, other, true)
}

// IntersectsEither is Intersects tested from both sides.
func IntersectsEither[T Ordered](a, b Interval[T]) bool {
	return Intersects(a, b) || Intersects(b, a)
}
