package amount

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1233222.43, "1233222,43"},
		{1.23, "1,23"},
		{1.232, "1,23"},
		{1.232555, "1,23"},
		{1232111, "1232111,00"},
		{-7, "-7,00"},
		{0, "0,00"},
		{0.005, "0,01"},
		{-0.005, "-0,01"},
		{2.675, "2,68"},
		{-0.001, "0,00"},
		{1e21, "1000000000000000000000,00"},
		{math.NaN(), "0,00"},
		{math.Inf(1), "0,00"},
		{math.Inf(-1), "0,00"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Format(tt.in), "Format(%v)", tt.in)
	}
}

func TestFormatPastedExamples(t *testing.T) {
	require.Equal(t, "1233222,43", Format(ParsePasted("1.233.222,43")))
	require.Equal(t, "1,23", Format(ParsePasted("1.23")))
	require.Equal(t, "1,23", Format(ParsePasted("1.232")))
	require.Equal(t, "1232111,00", Format(ParsePasted("1.232.111")))
}
