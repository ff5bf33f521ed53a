package math

import "golang.org/x/exp/constraints"

func Pow2[T constraints.Integer](bits T) T {
	return T(1) << bits
}

// LowBitsMask returns a value with the lowest `bits` bits set.
func LowBitsMask[T constraints.Integer](bits T) T {
	return Pow2(bits) - 1
}

func InRange[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v <= hi
}
