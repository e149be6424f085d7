package kyat

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestConvert_RoundTrip(t *testing.T) {
	t.Parallel()

	amounts := []float64{0.01, 1, 10.5, 123456.78}
	pairs := []struct {
		name   string
		r1, r2 float64
	}{
		{name: "test_round_trip_usd_eur", r1: 2100, r2: 2300},
		{name: "test_round_trip_mmk_thb", r1: 1, r2: 58.4},
		{name: "test_round_trip_small_large", r1: 0.0003, r2: 4000},
	}

	for _, tc := range pairs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			for _, a := range amounts {
				got := Convert(Convert(a, tc.r1, tc.r2), tc.r2, tc.r1)
				if diff := cmp.Diff(a, got, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
					t.Errorf("amount %v mismatch (-want, +got):\n%s", a, diff)
				}
			}
		})
	}
}

func TestConvert_Identity(t *testing.T) {
	t.Parallel()

	for _, r := range []float64{1, 3, 58.4, 2100, 0.0003} {
		for _, a := range []float64{0.1, 1, 7.77, 1e9} {
			if got := Convert(a, r, r); got != a {
				t.Errorf("Convert(%v, %v, %v) = %v, want %v", a, r, r, got, a)
			}
		}
	}
}

func TestConvert_TwoHop(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		amount   float64
		from, to float64
		expected string
	}{
		{name: "test_usd_to_mmk", amount: 1, from: 2100, to: 1, expected: "2100.00"},
		{name: "test_usd_to_eur", amount: 10, from: 2100, to: 2300, expected: "9.13"},
		{name: "test_mmk_to_usd", amount: 21000, from: 1, to: 2100, expected: "10.00"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.expected, FormatAmount(Convert(tc.amount, tc.from, tc.to))); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "test_format_integer", value: 2100, expected: "2100.00"},
		{name: "test_format_round_down", value: 9.130434782608695, expected: "9.13"},
		{name: "test_format_round_half_up", value: 0.005, expected: "0.01"},
		{name: "test_format_large", value: 1234567.891, expected: "1234567.89"},
		{name: "test_format_inf", value: math.Inf(1), expected: ""},
		{name: "test_format_nan", value: math.NaN(), expected: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.expected, FormatAmount(tc.value)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestValidAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw   string
		valid bool
	}{
		{raw: "", valid: true},
		{raw: "12", valid: true},
		{raw: "12.", valid: true},
		{raw: ".5", valid: true},
		{raw: ".", valid: true},
		{raw: "0012.340", valid: true},
		{raw: "1.2.3", valid: false},
		{raw: "-1", valid: false},
		{raw: "1e5", valid: false},
		{raw: "abc", valid: false},
		{raw: " 1", valid: false},
		{raw: "1,000", valid: false},
	}

	for _, tc := range testCases {
		if got := ValidAmount(tc.raw); got != tc.valid {
			t.Errorf("ValidAmount(%q) = %v, want %v", tc.raw, got, tc.valid)
		}
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      string
		expected float64
		ok       bool
	}{
		{name: "test_parse_empty", raw: ""},
		{name: "test_parse_dot", raw: "."},
		{name: "test_parse_zero", raw: "0"},
		{name: "test_parse_zero_fraction", raw: "0.00"},
		{name: "test_parse_trailing_dot", raw: "5.", expected: 5, ok: true},
		{name: "test_parse_leading_dot", raw: ".5", expected: 0.5, ok: true},
		{name: "test_parse_overflow", raw: strings.Repeat("9", 400)},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseAmount(tc.raw)
			if diff := cmp.Diff(tc.ok, ok); diff != "" {
				t.Errorf("bad ok (-want, +got): %s", diff)
			}

			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("bad value (-want, +got): %s", diff)
			}
		})
	}
}
