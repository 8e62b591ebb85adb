//go:build go1.18
// +build go1.18

package expr

import (
	"math"
	"testing"
)

func FuzzEvaluate(f *testing.F) {
	for _, s := range []string{"2+3*4", "(2+3)*4", "-5+3", "5/0", "2+(3*4", "1.2.3", "-(2)", "--1"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		v, err := Evaluate(s)
		if err != nil {
			if KindOf(err) == 0 {
				t.Fatalf("%q: error without kind: %v", s, err)
			}
			return
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Fatalf("%q: non-finite result %v", s, v)
		}
	})
}

func FuzzFormat(f *testing.F) {
	for _, v := range []float64{0, 0.1, 1.0 / 3, -2.5, 1e21, 4.5035996273704955e7, 4.5035968829260506e7} {
		f.Add(v)
	}
	f.Fuzz(func(t *testing.T, v float64) {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return
		}
		checkIdempotent(t, v)
	})
}
