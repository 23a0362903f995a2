package kinex

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
)

// ParseValue returns the numeric magnitude of a property value. Numbers are
// returned as is. Anything else is read through its string form, taking the
// leading signed decimal numeral; when there is none the magnitude is 0
// and a warning goes to the package [Logger].
func ParseValue(v any) float64 {
	return parseValue(v, Logger())
}

func parseValue(v any, log *slog.Logger) float64 {
	if m, ok := numeric(v); ok {
		return m
	}
	s, ok := text(v)
	if !ok {
		return 0
	}
	num, _ := splitNumeral(s)
	if num == "" {
		if s != "" {
			log.Warn("value has no leading numeral, using 0", "value", s)
		}
		return 0
	}
	// The numeral is well formed, so only range errors are possible and
	// ParseFloat saturates those to ±Inf.
	m, _ := strconv.ParseFloat(num, 64)
	return m
}

// UnitOf returns the unit suffix of a property value: empty for numbers,
// and the text after the leading numeral for strings ("120px" is "px",
// "80" is "").
func UnitOf(v any) string {
	if _, ok := numeric(v); ok {
		return ""
	}
	s, ok := text(v)
	if !ok {
		return ""
	}
	_, unit := splitNumeral(s)
	return unit
}

// FormatValue is the inverse of ParseValue and UnitOf. It returns m as a
// float64 when unit is empty and the shortest decimal form of m followed by
// unit otherwise.
func FormatValue(m float64, unit string) any {
	if unit == "" {
		return m
	}
	return strconv.FormatFloat(m, 'f', -1, 64) + unit
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func text(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case fmt.Stringer:
		return s.String(), true
	}
	return "", false
}

// splitNumeral splits s into its leading signed decimal numeral and the
// remainder. Leading white space is skipped. An exponent is only part of the
// numeral when digits follow it, so "2em" keeps its unit.
func splitNumeral(s string) (num, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if frac > 0 || digits > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return "", s
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
