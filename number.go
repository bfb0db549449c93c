package exprtree

import (
	"strconv"
	"strings"
	"unsafe"
)

// ParseNumber parses a decimal integer of type V. Surrounding whitespace is
// ignored, a leading sign is allowed, and digits may be grouped with '_' or
// ',' separators, each of which must sit between two digits. The error is a
// *strconv.NumError for text that is not a number or is out of range for V.
func ParseNumber[V Number](s string) (V, error) {
	s = strings.TrimSpace(s)
	var z V
	bits := int(unsafe.Sizeof(z)) * 8
	if ^z < 0 {
		t, ok := ungroup(s)
		if !ok {
			return 0, &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrSyntax}
		}
		n, err := strconv.ParseInt(t, 10, bits)
		if err != nil {
			return 0, err
		}
		return V(n), nil
	}
	t, ok := ungroup(strings.TrimPrefix(s, "+"))
	if !ok {
		return 0, &strconv.NumError{Func: "ParseUint", Num: s, Err: strconv.ErrSyntax}
	}
	n, err := strconv.ParseUint(t, 10, bits)
	if err != nil {
		return 0, err
	}
	return V(n), nil
}

// ungroup removes digit group separators from s. It reports false if any
// separator lacks a digit on either side.
func ungroup(s string) (string, bool) {
	if !strings.ContainsAny(s, "_,") {
		return s, true
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '_', ',':
			if i == 0 || i+1 == len(s) || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
				return "", false
			}
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
