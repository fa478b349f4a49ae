package visualize

import (
	"math"
	"strconv"
)

// Metres formats a tide height to one decimal place, as in "4.2m".
//
// An exact tie rounds away from zero, so 4.25 is "4.3m" and -0.25 is
// "-0.3m". The sign is written separately from the digits, and negative
// zero prints as "0.0m".
func Metres(h float64) string {
	return fixed1(h) + "m"
}

func fixed1(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	sign := ""
	if v < 0 {
		sign = "-"
	}
	abs := math.Abs(v)

	// A float is a tie at one decimal exactly when it is an odd number of
	// quarters. Scaling by 4 is exact.
	if q := abs * 4; q == math.Trunc(q) && math.Mod(q, 2) == 1 {
		abs = math.Ceil(abs*10) / 10
	}
	return sign + strconv.FormatFloat(abs, 'f', 1, 64)
}
