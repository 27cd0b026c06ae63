package utils

import "math"

// FloorToInt8 floors x and narrows it to int8 with two's-complement
// wraparound. There is no clamp: 128 becomes -128, 254 becomes -2.
func FloorToInt8(x float32) int8 {
	return int8(int64(math.Floor(float64(x))))
}

// AbsInt returns |v|.
func AbsInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
