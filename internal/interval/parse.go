package interval

import (
	"strings"

	"github.com/pkg/errors"
)

// Parse parses a closed interval, using parseValue for each bound.
//
// Supported formats:
//   - N          a single point, [N, N]
//   - A,B
//   - [A,B]      the form printed by Closed.String
//
// Spaces around bounds are ignored. Open bounds, "(" or ")", are rejected
// since intervals are always closed. The bounds are not checked against each
// other; use IsValid.
func Parse[T Ordered](s string, parseValue func(string) (T, error)) (Closed[T], error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Closed[T]{}, errors.Wrap(ErrInvalidArgument, "empty interval")
	}

	if v[0] == '(' || v[len(v)-1] == ')' {
		return Closed[T]{}, errors.Wrapf(ErrInvalidArgument, "open bounds are not supported: %s", s)
	}
	if v[0] == '[' || v[len(v)-1] == ']' {
		if len(v) < 2 || v[0] != '[' || v[len(v)-1] != ']' {
			return Closed[T]{}, errors.Wrapf(ErrInvalidArgument, "unbalanced brackets: %s", s)
		}
		v = strings.TrimSpace(v[1 : len(v)-1])
	}

	parts := strings.SplitN(v, ",", 2)
	if len(parts) == 1 {
		n, err := parseValue(parts[0])
		if err != nil {
			return Closed[T]{}, errors.Wrapf(err, "invalid point in %q", s)
		}
		return NewClosed(n, n), nil
	}

	left := strings.TrimSpace(parts[0])
	right := strings.TrimSpace(parts[1])
	if left == "" || right == "" {
		return Closed[T]{}, errors.Wrapf(ErrInvalidArgument, "missing bound: %s", s)
	}
	start, err := parseValue(left)
	if err != nil {
		return Closed[T]{}, errors.Wrapf(err, "invalid start in %q", s)
	}
	end, err := parseValue(right)
	if err != nil {
		return Closed[T]{}, errors.Wrapf(err, "invalid end in %q", s)
	}
	return NewClosed(start, end), nil
}
