package luau

import (
	"math"
	"strconv"
)

// formatI32 prints an i32 value as a plain decimal literal.
func formatI32(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// formatI64 prints an i64 value as a plain decimal literal. Luau numbers
// are IEEE-754 doubles, so i64 values outside +-2^53 already lose
// precision once they reach an arithmetic helper; the literal itself is
// still printed exactly since Lua's lexer accepts arbitrary-width integer
// literal text and widens it to a double at parse time the same way
// strconv would round it, which is what the emitted runtime expects.
func formatI64(v int64) string {
	return strconv.FormatInt(v, 10)
}

// formatFloat64 is the shared finite/infinite/NaN formatter for both f32
// (pre-widened) and f64 literals: sign of zero is preserved by
// strconv.FormatFloat itself, infinities become (-)math.huge, and NaNs
// become (-)0/0 with the sign carried by the bit pattern rather than by any
// particular NaN payload (Luau has no literal NaN; math.huge-0/0 is how
// every Lua runtime's standard library constructs one).
func formatFloat64(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "math.huge"
	case math.IsInf(v, -1):
		return "-math.huge"
	case math.IsNaN(v):
		if math.Signbit(v) {
			return "-0/0"
		}
		return "0/0"
	default:
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
}

// formatF64 formats an f64 value given its raw bit pattern.
func formatF64(bits uint64) string {
	return formatFloat64(math.Float64frombits(bits))
}

// formatF32 reinterprets bits as a single-precision float, widens it to a
// double (an exact, lossless conversion in Go), and formats that double.
// Because the widening is exact, the resulting literal parses back to
// precisely the f32 value widened to a double — testable property 5.
func formatF32(bits uint32) string {
	return formatFloat64(float64(math.Float32frombits(bits)))
}
