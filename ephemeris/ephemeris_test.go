package ephemeris

import (
	"math"
	"testing"

	"github.com/sxcalendar/lunargo/xconst"
)

func TestEarthHeliocentric_DistanceNearOneAU(t *testing.T) {
	_, _, r := EarthHeliocentric(0, -1)
	if r < 0.95 || r > 1.05 {
		t.Errorf("Earth heliocentric distance = %v AU, want ~1.0", r)
	}
}

func TestSunGeometricLongitude_InRange(t *testing.T) {
	lon := SunGeometricLongitude(0.2, -1)
	if lon < 0 || lon >= 2*math.Pi {
		t.Errorf("Sun geometric longitude out of [0,2pi): %v", lon)
	}
}

func TestSunApparentLongitude_CloseToGeometric(t *testing.T) {
	geo := SunGeometricLongitude(0.1, -1)
	app := SunApparentLongitude(0.1, -1)
	diff := math.Abs(normalizeSigned(app - geo))
	if diff > 1*xconst.Deg2Rad {
		t.Errorf("apparent longitude should be within ~1 deg of geometric: diff=%v rad", diff)
	}
}

func TestTFromSunLongitude_RoundTrip(t *testing.T) {
	target := SunApparentLongitude(0.05, -1)
	t2 := TFromSunLongitude(target)
	if math.Abs(t2-0.05) > 1e-4 {
		t.Errorf("round trip T = %v, want ~0.05", t2)
	}
}

func TestMoonGeometricLongitude_InRange(t *testing.T) {
	lon := MoonGeometricLongitude(0.1, -1)
	if lon < 0 || lon >= 2*math.Pi {
		t.Errorf("Moon geometric longitude out of range: %v", lon)
	}
}

func TestMoonDistance_PlausibleRange(t *testing.T) {
	d := MoonDistance(0, -1)
	if d < 356000 || d > 407000 {
		t.Errorf("Moon distance = %v km, want within perigee/apogee range", d)
	}
}

func TestMoonVelocity_Positive(t *testing.T) {
	v := MoonVelocity(0)
	if v <= 0 {
		t.Errorf("Moon angular velocity should be positive (prograde orbit): %v", v)
	}
}

func TestTFromMoonLongitude_RoundTrip(t *testing.T) {
	target := MoonApparentLongitude(0.05, -1)
	t2 := TFromMoonLongitude(target)
	if math.Abs(t2-0.05) > 1e-3 {
		t.Errorf("round trip T = %v, want ~0.05", t2)
	}
}

func TestMoonSunDiff_InRange(t *testing.T) {
	d := MoonSunDiff(0.1, -1, -1)
	if d < 0 || d >= 2*math.Pi {
		t.Errorf("moon-sun diff out of range: %v", d)
	}
}

func TestTFromDiffFast_ApproximatesTFromDiff(t *testing.T) {
	for _, delta := range []float64{0.1, 1.5, 3.0, 5.0} {
		fast := TFromDiffFast(delta)
		precise := TFromDiff(delta)
		if math.Abs(fast-precise) > 0.01 {
			t.Errorf("fast/precise solvers diverge at delta=%v: fast=%v precise=%v", delta, fast, precise)
		}
	}
}

func TestHeliocentric_AllPlanetsFinite(t *testing.T) {
	bodies := []xconst.PlanetID{
		xconst.Mercury, xconst.Venus, xconst.Mars,
		xconst.Jupiter, xconst.Saturn, xconst.Uranus, xconst.Neptune,
	}
	for _, b := range bodies {
		lon, lat, r, ok := Heliocentric(b, 0.1, -1)
		if !ok {
			t.Errorf("%v: Heliocentric reported not ok", b)
		}
		if math.IsNaN(lon) || math.IsNaN(lat) || math.IsNaN(r) || r <= 0 {
			t.Errorf("%v: Heliocentric produced invalid result lon=%v lat=%v r=%v", b, lon, lat, r)
		}
	}
}

func TestHeliocentric_UnknownBody(t *testing.T) {
	_, _, _, ok := Heliocentric(xconst.Sun, 0, -1)
	if ok {
		t.Error("Heliocentric should report not-ok for the Sun (use EarthHeliocentric+pi instead)")
	}
}

func TestPlutoHeliocentric_PlausibleDistance(t *testing.T) {
	_, _, r := PlutoHeliocentric(0)
	if r < 25 || r > 55 {
		t.Errorf("Pluto heliocentric distance = %v AU, want within its orbital range", r)
	}
}

func TestGeocentric_Planet(t *testing.T) {
	lon, _, r, ok := Geocentric(xconst.Mars, 0.1, -1)
	if !ok {
		t.Fatal("Geocentric(Mars) reported not ok")
	}
	if math.IsNaN(lon) || r <= 0 {
		t.Errorf("Geocentric(Mars) invalid: lon=%v r=%v", lon, r)
	}
}

func TestGeocentric_Pluto(t *testing.T) {
	_, _, r, ok := Geocentric(xconst.Pluto, 0.1, -1)
	if !ok {
		t.Fatal("Geocentric(Pluto) reported not ok")
	}
	if r <= 0 {
		t.Errorf("Geocentric(Pluto) distance should be positive: %v", r)
	}
}

func TestPhaseAngle_RangeAndDegenerate(t *testing.T) {
	phi := PhaseAngle(1.0, 1.5, 0.6)
	if phi < 0 || phi > math.Pi {
		t.Errorf("phase angle out of [0,pi]: %v", phi)
	}
}

func TestLightTimeDays_Positive(t *testing.T) {
	lt := LightTimeDays(1.0)
	if lt <= 0 {
		t.Errorf("light time for 1 AU should be positive: %v", lt)
	}
	// ~8.3 minutes for 1 AU
	if math.Abs(lt*1440-8.317) > 0.1 {
		t.Errorf("1 AU light time = %v days, want ~8.317 minutes", lt*1440)
	}
}

func TestIsRetrograde_PrografeLongitudeIncreasing(t *testing.T) {
	increasing := func(T float64) float64 { return T }
	if IsRetrograde(increasing, 0) {
		t.Error("monotonically increasing longitude should not be flagged retrograde")
	}
	decreasing := func(T float64) float64 { return -T }
	if !IsRetrograde(decreasing, 0) {
		t.Error("monotonically decreasing longitude should be flagged retrograde")
	}
}

func TestLightTimeCorrect_ConvergesAndMatchesNoLightTimeAtZeroDistance(t *testing.T) {
	observer := [3]float64{0, 0, 0}
	constantPos := func(t float64) [3]float64 { return [3]float64{1, 0, 0} }
	pos, lt := LightTimeCorrect(0, observer, constantPos)
	if lt < 0 {
		t.Errorf("light time should be non-negative: %v", lt)
	}
	if math.Abs(pos[0]-1) > 1e-6 {
		t.Errorf("constant position should be unaffected by light-time iteration: %v", pos)
	}
}
