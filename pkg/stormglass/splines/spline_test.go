package splines

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/spencer-p/coastdash/pkg/stormglass"
)

func ExampleDiscrete() {
	tstart := time.Date(2021, time.April, 3, 10, 30, 0, 0, time.UTC)
	extrema := stormglass.Extrema{{
		Time:   stormglass.Time(tstart),
		Height: 10,
	}, {
		Time:   stormglass.Time(tstart.Add(1000 * time.Hour)),
		Height: 1,
	}}
	discrete := Discrete(CurvesBetween(extrema), 10)
	for i := range discrete {
		fmt.Println(math.Round(discrete[i]))
	}
	// Output:
	// 10
	// 10
	// 9
	// 8
	// 6
	// 5
	// 3
	// 2
	// 1
	// 1
}

func ExampleCurve_Coefficients() {
	tstart := time.Time{}
	tend := tstart.Add(10 * time.Second)
	extrema := stormglass.Extrema{{
		Time:   stormglass.Time(tstart),
		Height: 0,
	}, {
		Time:   stormglass.Time(tend),
		Height: 10,
	}}
	a, b, c, d := CurvesBetween(extrema)[0].Coefficients()
	fmt.Printf("A = %.2f\n", a)
	fmt.Printf("B = %.2f\n", b)
	fmt.Printf("C = %.2f\n", c)
	fmt.Printf("D = %.2f\n", d)
	// Output:
	// A = -0.02
	// B = 0.30
	// C = -0.00
	// D = 0.00
}

func TestSplineEval(t *testing.T) {
	tstart := time.Date(2025, time.April, 18, 0, 0, 0, 0, time.UTC)
	extrema := stormglass.Extrema{
		{Time: stormglass.Time(tstart), Height: 4, Type: stormglass.HighTide},
		{Time: stormglass.Time(tstart.Add(6 * time.Hour)), Height: 1, Type: stormglass.LowTide},
		{Time: stormglass.Time(tstart.Add(12 * time.Hour)), Height: 5, Type: stormglass.HighTide},
	}
	spl := CurvesBetween(extrema)
	if len(spl) != 2 {
		t.Fatalf("got %d curves, wanted 2", len(spl))
	}

	table := []struct {
		at   time.Duration
		want float64
	}{
		{0, 4},
		{3 * time.Hour, 2.5},
		{6 * time.Hour, 1},
		{9 * time.Hour, 3},
		{12 * time.Hour, 5},
	}
	for _, tc := range table {
		if got := spl.Eval(tstart.Add(tc.at)); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Eval(+%s) = %f, wanted %f", tc.at, got, tc.want)
		}
	}

	for _, outside := range []time.Duration{-time.Hour, 13 * time.Hour} {
		if got := spl.Eval(tstart.Add(outside)); !math.IsNaN(got) {
			t.Errorf("Eval(+%s) = %f, wanted NaN", outside, got)
		}
	}
}

func TestCurvesBetweenTooFew(t *testing.T) {
	if spl := CurvesBetween(stormglass.Extrema{{Height: 1}}); spl != nil {
		t.Errorf("got %d curves from one extremum", len(spl))
	}
	if got := Discrete(nil, 5); got != nil {
		t.Errorf("got %v from an empty spline", got)
	}
}
