package amount

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FractionDigits is the number of decimals every displayed amount carries.
const FractionDigits = 2

// Format renders v with two decimals and a comma marker, no grouping.
// Rounding is half away from zero. NaN and infinities render as zero.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	s := decimal.NewFromFloat(v).StringFixed(FractionDigits)
	return strings.Replace(s, ".", ",", 1)
}
