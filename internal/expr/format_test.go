package expr

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{14, "14"},
		{-2, "-2"},
		{0.5, "0.5"},
		{0.1 + 0.2, "0.3"},
		{1.0 / 3, "0.33333333"},
		{2.0 / 3, "0.66666667"},
		{-2.0 / 3, "-0.66666667"},
		{1.23456789012, "1.23456789"},
		{0.000000005, "0.00000001"},
		{-0.000000005, "-0.00000001"},
		{0.000000004, "0"},
		{-0.000000004, "0"},
		{1e-9, "0"},
		{1e15, "1000000000000000"},
		{1e21, "1000000000000000000000"},
		{123456789.125, "123456789.125"},
		{4.5035968829260506e7, "45035968.8292605"},
		{-4.5035968829260506e7, "-45035968.8292605"},
		{9999999.999999999, "10000000"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, c := range cases {
		if got := Format(c.v); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestFormatDecimals(t *testing.T) {
	cases := []struct {
		v        float64
		decimals int
		want     string
	}{
		{1.005, 2, "1.01"},
		{2.5, 0, "3"},
		{-2.5, 0, "-3"},
		{1.25, 1, "1.3"},
		{1.2, -1, "1"},
		{3.14159, 4, "3.1416"},
		{100, 3, "100"},
		{0, 400, "0"},
		{1.5, 400, "1.5"},
	}
	for _, c := range cases {
		if got := FormatDecimals(c.v, c.decimals); got != c.want {
			t.Errorf("FormatDecimals(%v, %d) = %q, want %q", c.v, c.decimals, got, c.want)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	values := []float64{
		0.1 + 0.2, 1.0 / 3, -1.0 / 7, 123.456789555, 45035996.27370497,
		9007199254740993, 1e300, -1e-300, 0.999999995, 99999999.999999999,
		4.5035968829260506e7, 3.4e7 + 1.0/3, 9999999.999999999,
	}
	for _, v := range values {
		checkIdempotent(t, v)
	}
}

func TestFormatIdempotentRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		checkIdempotent(t, 1e7+rng.Float64()*4e7)
		checkIdempotent(t, -rng.Float64()*math.Pow10(rng.Intn(30)-10))
	}
}

func checkIdempotent(t *testing.T, v float64) {
	t.Helper()
	first := Format(v)
	parsed, err := strconv.ParseFloat(first, 64)
	if err != nil {
		t.Fatalf("Format(%v) = %q does not parse: %v", v, first, err)
	}
	if second := Format(parsed); second != first {
		t.Fatalf("Format is not idempotent for %v\n first: %q\nsecond: %q", v, first, second)
	}
}
