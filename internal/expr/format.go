package expr

import (
	"math"
	"strconv"
	"strings"
)

// DefaultDecimals is the number of fractional digits kept by Format.
const DefaultDecimals = 8

// epsilon is the difference between 1 and the next larger float64. It is
// added before rounding so that values like 1.005, stored slightly below
// their decimal form, round up as written.
const epsilon = 2.220446049250313e-16

// maxDigits is the number of significant decimal digits a float64 holds
// without loss. Rounding to more digits than this yields decimals that parse
// back to a neighbouring value.
const maxDigits = 15

// maxDecimals keeps 10^decimals finite.
const maxDecimals = 308

// Format renders v rounded to DefaultDecimals fractional digits.
func Format(v float64) string {
	return FormatDecimals(v, DefaultDecimals)
}

// FormatDecimals renders v in plain decimal notation, rounded half away from
// zero to the given number of fractional digits. Trailing zeros and a
// trailing decimal point are removed. Non-finite values are returned as
// "Infinity", "-Infinity" or "NaN".
//
// The number of fractional digits is reduced as needed so that no more than
// 15 significant digits are rendered.
//
// The output parses back to a value that formats identically.
func FormatDecimals(v float64, decimals int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if v == 0 {
		return "0"
	}
	decimals = fitDecimals(v, decimals)
	v = roundDecimals(v, decimals)
	if v == 0 {
		v = 0 // no "-0"
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// fitDecimals limits decimals so that |v| rounded to that many fractional
// digits has at most maxDigits significant digits.
func fitDecimals(v float64, decimals int) int {
	if decimals < 0 {
		return 0
	}
	if decimals > maxDecimals {
		decimals = maxDecimals
	}
	limit := math.Pow10(maxDigits)
	for decimals > 0 && math.Abs(v)*math.Pow10(decimals) >= limit {
		decimals--
	}
	return decimals
}

// roundDecimals rounds v to the given number of fractional digits.
func roundDecimals(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	if math.Abs(v)*scale >= 1<<52 {
		// No fractional digits left to round at this scale.
		return v
	}
	return math.Round((v+math.Copysign(epsilon, v))*scale) / scale
}
