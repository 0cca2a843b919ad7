package interval

// Ordered is satisfied by every type whose values are totally ordered by the
// built-in comparison operators.
// The ~ prefix lets named types over these underlying types satisfy it too.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~string
}

// Number is the numeric subset of Ordered. Step deltas are always numbers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
