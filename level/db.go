package level

import "math"

// ToDB converts an amplitude ratio to decibels: 20 * log10(|x|).
// Returns -Inf for zero input.
func ToDB(x float64) float64 {
	a := math.Abs(x)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// ToDBPower converts a power ratio to decibels: 10 * log10(|x|).
// Returns -Inf for zero input.
func ToDBPower(x float64) float64 {
	a := math.Abs(x)
	if a == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(a)
}

// FromDB converts decibels back to an amplitude ratio: 10^(db/20).
func FromDB(db float64) float64 {
	return math.Pow(10, db/20)
}

// FromDBPower converts decibels back to a power ratio: 10^(db/10).
func FromDBPower(db float64) float64 {
	return math.Pow(10, db/10)
}

// ToDBBlock converts src elementwise into dst using the amplitude
// convention, or the power convention when power is set. The slices must
// have equal length and may alias.
func ToDBBlock(dst, src []float64, power bool) {
	if len(dst) != len(src) {
		panic("level: dst and src length mismatch")
	}

	conv := ToDB
	if power {
		conv = ToDBPower
	}
	for i, x := range src {
		dst[i] = conv(x)
	}
}

// FromDBBlock converts src elementwise into dst, inverting ToDBBlock.
func FromDBBlock(dst, src []float64, power bool) {
	if len(dst) != len(src) {
		panic("level: dst and src length mismatch")
	}

	conv := FromDB
	if power {
		conv = FromDBPower
	}
	for i, db := range src {
		dst[i] = conv(db)
	}
}
