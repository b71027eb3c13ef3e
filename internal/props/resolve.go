package props

import (
	"strconv"
	"strings"
)

// vectorDelimiter separates elements of vector-valued properties.
const vectorDelimiter = ","

// parseFloatPrefix parses the longest leading substring of s that forms a
// valid floating point number, after skipping leading whitespace. It
// reports false only when no character could be consumed; trailing
// garbage after a valid prefix is ignored, so "1.0abc" parses as 1.0.
// This mirrors strtof, which the device provisioning tooling relies on.
func parseFloatPrefix(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	for end := len(s); end > 0; end-- {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// Float resolves the named scalar property. Absent or unparseable values
// yield def, never zero or a partial result.
func Float(src Source, name string, def float64) float64 {
	if v, ok := parseFloatPrefix(src.Get(name)); ok {
		return v
	}
	return def
}

// Floats resolves the named vector property. The raw value is split on
// commas, tokens that fail to parse are dropped, and def is returned only
// when nothing parses at all. Arity validation is the caller's job: a
// caller that requires a fixed length substitutes its default wholesale
// on a mismatch, never element-wise.
func Floats(src Source, name string, def []float64) []float64 {
	var out []float64
	for _, token := range strings.Split(src.Get(name), vectorDelimiter) {
		if v, ok := parseFloatPrefix(token); ok {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return append([]float64(nil), def...)
	}
	return out
}
