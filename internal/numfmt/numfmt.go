// Package numfmt converts between the engine's number type (float64) and
// its canonical textual form, and implements the uint32 <-> number
// interplay the core's UINT32_IN_DESC variant depends on.
package numfmt

import (
	"math"
	"strconv"
)

// digitLenTable[k] is 10^k, the smallest uint32 with k+1 decimal digits
// (entry 0 is 1, though 0 also has one digit): n has k+1 digits when
// digitLenTable[k] <= n < digitLenTable[k+1]. Ported from the original engine's
// nums_with_ascending_length table so length queries on a UINT32_IN_DESC
// string stay O(1) instead of formatting on every call.
var digitLenTable = [...]uint32{
	1, 10, 100, 1000, 10000,
	100000, 1000000, 10000000, 100000000, 1000000000,
}

// DigitLength returns the number of decimal digits in n's canonical form.
func DigitLength(n uint32) int {
	length := 1
	for length < len(digitLenTable) && n >= digitLenTable[length] {
		length++
	}
	return length
}

// FormatUint32 returns n's canonical decimal form.
func FormatUint32(n uint32) string {
	return strconv.FormatUint(uint64(n), 10)
}

// FormatNumber returns num's canonical decimal form: "NaN", "Infinity",
// "-Infinity", or a shortest round-tripping decimal otherwise.
func FormatNumber(num float64) string {
	switch {
	case math.IsNaN(num):
		return "NaN"
	case math.IsInf(num, 1):
		return "Infinity"
	case math.IsInf(num, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(num, 'g', -1, 64)
	}
}

// ParseNumber parses a string produced by FormatNumber (or user text) into
// a number. An empty string maps to zero, matching the core's
// string-to-number conversion; unparseable text maps to NaN.
func ParseNumber(s string) float64 {
	if s == "" {
		return 0
	}
	switch s {
	case "NaN":
		return math.NaN()
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// IsNaN reports whether num is NaN.
func IsNaN(num float64) bool {
	return math.IsNaN(num)
}

// CanonicalZero returns the engine's canonical zero value.
func CanonicalZero() float64 {
	return 0
}

// Uint32ToNumber widens a uint32 to the engine's number type exactly.
func Uint32ToNumber(n uint32) float64 {
	return float64(n)
}

// NumberToUint32 implements ECMAScript's ToUint32 abstract operation:
// NaN/Infinity map to zero, finite values are truncated toward zero and
// reduced modulo 2^32.
func NumberToUint32(num float64) uint32 {
	if math.IsNaN(num) || math.IsInf(num, 0) || num == 0 {
		return 0
	}
	trunc := math.Trunc(num)
	mod := math.Mod(trunc, 4294967296)
	if mod < 0 {
		mod += 4294967296
	}
	return uint32(mod)
}
