package interval

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Advance moves cursor forward by one step.
type Advance[T Ordered, D Number] func(cursor T, step D) T

// Add is the Advance of numeric intervals whose step has the value type.
func Add[T Number](v, step T) T {
	return v + step
}

// GenerateIntersecting enumerates the points shared by self and each of
// others at a fixed step.
//
// Each other is handled on its own, in order: it must be valid, it is skipped
// unless self intersects it, and otherwise a cursor starting at its start
// value is advanced by step for as long as it lies in both self and other
// (bounds included). Every visited value is kept once. The result is sorted
// ascending.
//
// A non-positive step yields ErrInvalidArgument and an invalid self or other
// yields ErrPreconditionViolation. The step is checked first, then self, then
// the others in order.
func GenerateIntersecting[T Ordered, D Number](self Interval[T], step D, advance Advance[T, D], others ...Interval[T]) ([]T, error) {
	if err := checkGenerate(self, step); err != nil {
		return nil, err
	}
	points := make([]T, 0)
	for i, other := range others {
		if !other.IsValid() {
			return nil, errors.Wrapf(ErrPreconditionViolation, "interval #%d is not valid", i)
		}
		points = walk(self, other, step, advance, points)
	}
	slices.Sort(points)
	return points, nil
}

// GenerateFrom enumerates the points of self at a fixed step. It is
// GenerateIntersecting with self as its only other.
func GenerateFrom[T Ordered, D Number](self Interval[T], step D, advance Advance[T, D]) ([]T, error) {
	return GenerateIntersecting(self, step, advance, self)
}

// GenerateIntersectingParallel returns the same points as
// GenerateIntersecting but walks the others concurrently, at most limit at a
// time (no limit when limit <= 0).
//
// Arguments are checked up front and in the same order as the sequential
// form, so both report the same error for the same input.
func GenerateIntersectingParallel[T Ordered, D Number](ctx context.Context, limit int, self Interval[T], step D, advance Advance[T, D], others ...Interval[T]) ([]T, error) {
	if err := checkGenerate(self, step); err != nil {
		return nil, err
	}
	for i, other := range others {
		if !other.IsValid() {
			return nil, errors.Wrapf(ErrPreconditionViolation, "interval #%d is not valid", i)
		}
	}

	walks := make([][]T, len(others))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, other := range others {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			walks[i] = walk(self, other, step, advance, nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}

	points := make([]T, 0)
	for _, w := range walks {
		points = append(points, w...)
	}
	slices.Sort(points)
	return slices.Compact(points), nil
}

func checkGenerate[T Ordered, D Number](self Interval[T], step D) error {
	if step <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "step must be positive, got %v", step)
	}
	if !self.IsValid() {
		return errors.Wrap(ErrPreconditionViolation, "interval is not valid")
	}
	return nil
}

// walk appends to points every step of other that also lies in self, skipping
// values already present. It stops early if advance does not move the cursor
// forward, which happens on overflow or when the step is lost to float
// rounding.
func walk[T Ordered, D Number](self, other Interval[T], step D, advance Advance[T, D], points []T) []T {
	if !Intersects(self, other) {
		return points
	}
	cursor, _ := other.Bounds()
	for ContainsPoint(self, cursor) && ContainsPoint(other, cursor) {
		if !slices.Contains(points, cursor) {
			points = append(points, cursor)
		}
		next := advance(cursor, step)
		if next <= cursor {
			break
		}
		cursor = next
	}
	return points
}
