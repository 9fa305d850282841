package tensor

import "slices"

// compare applies cmp elementwise against another column of the identical
// full shape and returns a 0/1-valued column of that shape.
func (a *Array) compare(other *Array, cmp func(x, y float32) bool) (*Array, error) {
	if other == nil || !slices.Equal(a.shape, other.shape) {
		var got []int
		if other != nil {
			got = other.shape
		}
		return nil, &ShapeMismatchError{Want: a.shape, Got: got}
	}
	data := make([]float32, len(a.data))
	for i := range a.data {
		if cmp(a.data[i], other.data[i]) {
			data[i] = 1
		}
	}
	return newArrayTrusted(data, slices.Clone(a.shape), a.cell), nil
}

// Equal compares elementwise for equality.
func (a *Array) Equal(other *Array) (*Array, error) {
	return a.compare(other, func(x, y float32) bool { return x == y })
}

// NotEqual compares elementwise for inequality.
func (a *Array) NotEqual(other *Array) (*Array, error) {
	return a.compare(other, func(x, y float32) bool { return x != y })
}

// Less compares elementwise with <.
func (a *Array) Less(other *Array) (*Array, error) {
	return a.compare(other, func(x, y float32) bool { return x < y })
}

// Greater compares elementwise with >.
func (a *Array) Greater(other *Array) (*Array, error) {
	return a.compare(other, func(x, y float32) bool { return x > y })
}

// LessEqual compares elementwise with <=.
func (a *Array) LessEqual(other *Array) (*Array, error) {
	return a.compare(other, func(x, y float32) bool { return x <= y })
}

// GreaterEqual compares elementwise with >=.
func (a *Array) GreaterEqual(other *Array) (*Array, error) {
	return a.compare(other, func(x, y float32) bool { return x >= y })
}
