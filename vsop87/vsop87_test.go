package vsop87

import (
	"math"
	"testing"
)

func TestEvalSeries_ConstantTerm(t *testing.T) {
	s := Series{{A: 2.0, B: 0, C: 0}}
	got := EvalSeries(s, 0, -1)
	if math.Abs(got-2.0) > 1e-12 {
		t.Errorf("EvalSeries constant term = %v, want 2.0", got)
	}
}

func TestEvalSeries_TermLimit(t *testing.T) {
	s := Series{{A: 1, B: 0, C: 0}, {A: 100, B: 0, C: 0}}
	got := EvalSeries(s, 0, 1)
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("EvalSeries with n=1 = %v, want 1 (second term excluded)", got)
	}
}

func TestEvalMoonSeries_ZeroAtArgPiOver2(t *testing.T) {
	s := []MoonTerm{{A: 1, B: math.Pi / 2, C: 0, D: 0, E: 0, F: 0}}
	got := EvalMoonSeries(s, 0)
	if math.Abs(got) > 1e-9 {
		t.Errorf("EvalMoonSeries at cos(pi/2) = %v, want ~0", got)
	}
}

func TestTermCountForDegree_ProportionalScaling(t *testing.T) {
	data := [6]Series{
		make(Series, 100),
		make(Series, 20),
		make(Series, 0),
		{}, {}, {},
	}
	n0 := termCountForDegree(&data, 40, 0)
	if n0 != 40 {
		t.Errorf("degree 0 term count should equal nTerms: got %d", n0)
	}
	n1 := termCountForDegree(&data, 40, 1)
	want := 8 // round(40 * 20/100)
	if n1 != want {
		t.Errorf("degree 1 term count = %d, want %d", n1, want)
	}
}

func TestTermCountForDegree_FloorAtThree(t *testing.T) {
	data := [6]Series{
		make(Series, 100),
		make(Series, 1),
		{}, {}, {}, {},
	}
	n1 := termCountForDegree(&data, 5, 1)
	if n1 < 3 {
		t.Errorf("degree term count must floor at 3: got %d", n1)
	}
}

func TestTermCountForDegree_AllTerms(t *testing.T) {
	data := [6]Series{make(Series, 10), make(Series, 5), {}, {}, {}, {}}
	if n := termCountForDegree(&data, -1, 1); n != -1 {
		t.Errorf("nTerms<0 should signal 'use all terms', got %d", n)
	}
}

func TestEvalDegree_Earth_L0DominatesAtT0(t *testing.T) {
	l := EvalDegree(Earth.L, 0, -1, 0)
	// Earth's L0 constant term alone is 1.75347046 rad; at T=0 all higher
	// powers of t vanish so the sum should be close to that leading term.
	if math.Abs(l-1.75347046) > 0.01 {
		t.Errorf("Earth L at T=0 = %v, want ~1.75347", l)
	}
}

func TestEvalL_Earth_InRadianRange(t *testing.T) {
	for _, T := range []float64{-1, -0.5, 0, 0.5, 1, 5} {
		l := EvalL(Earth.L, T, -1)
		if math.IsNaN(l) || math.IsInf(l, 0) {
			t.Errorf("EvalL(Earth, T=%v) is not finite: %v", T, l)
		}
	}
}

func TestEvalR_Earth_NearOneAU(t *testing.T) {
	r := EvalR(Earth.R, 0, -1)
	if r < 0.95 || r > 1.05 {
		t.Errorf("Earth-Sun distance at J2000 = %v AU, want ~1.0", r)
	}
}

func TestEvalB_Earth_SmallNearEclipticPlane(t *testing.T) {
	b := EvalB(Earth.B, 0, -1)
	if math.Abs(b) > 1*deg2radForTest {
		t.Errorf("Earth ecliptic latitude should be tiny by construction: %v rad", b)
	}
}

func TestPlanetTables_AllFiniteAtJ2000(t *testing.T) {
	tables := map[string]PlanetTable{
		"Mercury": Mercury, "Venus": Venus, "Mars": Mars,
		"Jupiter": Jupiter, "Saturn": Saturn, "Uranus": Uranus, "Neptune": Neptune,
	}
	for name, tab := range tables {
		l := EvalL(tab.L, 0, -1)
		r := EvalR(tab.R, 0, -1)
		if math.IsNaN(l) || math.IsNaN(r) {
			t.Errorf("%s: non-finite result l=%v r=%v", name, l, r)
		}
		if r <= 0 {
			t.Errorf("%s: heliocentric distance must be positive, got %v", name, r)
		}
	}
}

func TestPlanetTables_MeanMotionAdvancesLongitude(t *testing.T) {
	tables := map[string]PlanetTable{
		"Mercury": Mercury, "Venus": Venus, "Mars": Mars,
		"Jupiter": Jupiter, "Saturn": Saturn, "Uranus": Uranus, "Neptune": Neptune,
	}
	for name, tab := range tables {
		l0 := EvalL(tab.L, 0, -1)
		l1 := EvalL(tab.L, 0.01, -1)
		if math.Abs(l1-l0) < 1e-6 {
			t.Errorf("%s: longitude barely changed over 1 Julian year, mean motion may be missing", name)
		}
	}
}

func TestMoonSeries_FiniteAndBounded(t *testing.T) {
	for _, T := range []float64{-1, 0, 1, 10} {
		l := EvalMoonSeries(MoonL, T)
		b := EvalMoonSeries(MoonB, T)
		r := EvalMoonSeries(MoonR, T)
		if math.IsNaN(l) || math.IsNaN(b) || math.IsNaN(r) {
			t.Fatalf("Moon series non-finite at T=%v: l=%v b=%v r=%v", T, l, b, r)
		}
		if math.Abs(b) > 10 {
			t.Errorf("Moon latitude perturbation implausibly large: %v deg-equivalent", b)
		}
	}
}

func TestPlutoOffset_LinearInX(t *testing.T) {
	x0 := PlutoOffset.X.O0
	x1 := PlutoOffset.X.O0 + PlutoOffset.X.O1
	if x0 == x1 {
		t.Error("Pluto X offset should vary with x (O1 must be nonzero)")
	}
}

func TestPlutoSeries_NonEmpty(t *testing.T) {
	if len(PlutoSeries.X0) == 0 || len(PlutoSeries.Y0) == 0 || len(PlutoSeries.Z0) == 0 {
		t.Error("Pluto base series (X0/Y0/Z0) must not be empty")
	}
}

const deg2radForTest = math.Pi / 180.0
