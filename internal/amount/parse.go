package amount

import (
	"math"
	"strconv"
	"strings"
)

// ParseTyped converts a hand-edited buffer to a number. A comma is read as the
// decimal marker and a dot is never a thousands separator. Anything that does
// not parse yields 0.
func ParseTyped(text string) float64 {
	return parseFloat(strings.ReplaceAll(text, ",", "."))
}

// ParsePasted converts pasted text to a number, deciding per separator count
// whether '.' and ',' mark decimals or thousands:
//
//	"1.23"         -> 1.23        single dot is decimal
//	"1.232"        -> 1.232       still decimal, even with three digits
//	"1,5"          -> 1.5         single comma is decimal
//	"1.234,5"      -> 1234.5      dot groups, comma is decimal
//	"1.233.222,43" -> 1233222.43  repeated dots group
//
// Combinations outside this table, such as several commas, yield 0.
func ParsePasted(text string) float64 {
	dots := strings.Count(text, ".")
	commas := strings.Count(text, ",")

	switch {
	case dots >= 2:
		if commas > 1 {
			return 0
		}
		s := strings.ReplaceAll(text, ".", "")
		return parseFloat(strings.Replace(s, ",", ".", 1))
	case dots == 1 && commas == 0:
		return parseFloat(text)
	case dots == 0 && commas == 1:
		return parseFloat(strings.Replace(text, ",", ".", 1))
	case dots == 1 && commas == 1:
		s := strings.Replace(text, ".", "", 1)
		return parseFloat(strings.Replace(s, ",", ".", 1))
	case dots == 0 && commas == 0:
		return parseFloat(text)
	default:
		return 0
	}
}

// parseFloat accepts plain decimal notation with an optional leading minus.
// strconv would also take "Inf", exponents and hex floats, none of which can
// come from a sanitized buffer.
func parseFloat(s string) float64 {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || !clean(digits) {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}
