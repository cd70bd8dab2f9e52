package cryptodash

import (
	"math"
	"testing"
)

func TestFormatPrice(t *testing.T) {
	testCases := []struct {
		value float64
		want  string
	}{
		{67234.12, "$67,234.12"},
		{3456.78, "$3,456.78"},
		{0.4523, "$0.45"},
		{142.899, "$142.90"},
		{0, "$0.00"},
		{1320000000000, "$1,320,000,000,000.00"},
		{-2.5, "-$2.50"},
		{1e17, "$100,000,000,000,000,000.00"},
		{-1e20, "-$100,000,000,000,000,000,000.00"},
		{math.NaN(), Placeholder},
		{math.Inf(1), Placeholder},
	}
	for _, tc := range testCases {
		if got := FormatPrice(tc.value); got != tc.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatVolume(t *testing.T) {
	testCases := []struct {
		name  string
		value float64
		want  string
	}{
		{"billions", 28_500_000_000, "$28.50B"},
		{"millions", 520_000_000, "$520.00M"},
		{"exactly one billion", 1_000_000_000, "$1.00B"},
		{"rounds up below one billion", 999_999_999, "$1000.00M"},
		{"just below one billion", 999_994_999, "$999.99M"},
		{"exactly one million", 1_000_000, "$1.00M"},
		{"just below one million", 999_999.99, "$999999.99"},
		{"rounds up below one million", 999_999.999, "$1000000.00"},
		{"raw", 1234.5, "$1234.50"},
		{"zero", 0, "$0.00"},
		{"NaN", math.NaN(), Placeholder},
		{"-Inf", math.Inf(-1), Placeholder},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatVolume(tc.value); got != tc.want {
				t.Errorf("FormatVolume(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	testCases := []struct {
		name  string
		value float64
		want  string
	}{
		{"positive", 3.45, "+3.45%"},
		{"negative", -1.23, "-1.23%"},
		{"zero", 0, "+0.00%"},
		{"negative zero", math.Copysign(0, -1), "+0.00%"},
		{"negative rounding to zero", -0.001, "-0.00%"},
		{"rounding", 8.925, "+8.93%"},
		{"NaN", math.NaN(), Placeholder},
		{"+Inf", math.Inf(1), Placeholder},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatPercent(tc.value); got != tc.want {
				t.Errorf("FormatPercent(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestFormatShare(t *testing.T) {
	testCases := []struct {
		name       string
		cap, total float64
		want       string
	}{
		{"bitcoin dominance", 1320e9, 1902.9e9, "69.4%"},
		{"one third", 1, 3, "33.3%"},
		{"two thirds", 2, 3, "66.7%"},
		{"whole market", 5, 5, "100.0%"},
		{"zero total", 1, 0, Placeholder},
		{"NaN cap", math.NaN(), 1, Placeholder},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatShare(tc.cap, tc.total); got != tc.want {
				t.Errorf("FormatShare(%v, %v) = %q, want %q", tc.cap, tc.total, got, tc.want)
			}
		})
	}
}
