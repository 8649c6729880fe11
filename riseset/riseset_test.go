package riseset

import (
	"math"
	"testing"

	"github.com/sxcalendar/lunargo/xconst"
)

// approxJDJuly2026Noon is a UT1 Julian date near 2026-07-15 12:00, used as
// the seed instant for transit refinement in these tests.
const approxJDJuly2026Noon = 2461236.0

func TestRiseTransitSet_SunAtMidLatitudeHasRiseAndSet(t *testing.T) {
	lat := 40.0 * xconst.Deg2Rad
	lon := -75.0 * xconst.Deg2Rad
	res := RiseTransitSet(Sun, approxJDJuly2026Noon, lon, lat, StandardHorizon)

	if res.AlwaysUp || res.AlwaysDown {
		t.Fatalf("Sun at 40N should rise/set in July: %+v", res)
	}
	if !(res.Rise < res.Transit && res.Transit < res.Set) {
		t.Errorf("expected rise < transit < set, got rise=%v transit=%v set=%v", res.Rise, res.Transit, res.Set)
	}
	if math.Abs(res.Transit-approxJDJuly2026Noon) > 1.0 {
		t.Errorf("transit %v should be within a day of the seed %v", res.Transit, approxJDJuly2026Noon)
	}
}

func TestRiseTransitSet_SunAlwaysUpNearPoleInSummer(t *testing.T) {
	lat := 80.0 * xconst.Deg2Rad
	lon := 0.0
	res := RiseTransitSet(Sun, approxJDJuly2026Noon, lon, lat, StandardHorizon)

	if !res.AlwaysUp {
		t.Errorf("Sun at 80N in mid-July should be always up: %+v", res)
	}
	if !math.IsNaN(res.Rise) || !math.IsNaN(res.Set) {
		t.Errorf("always-up result should report NaN rise/set, got rise=%v set=%v", res.Rise, res.Set)
	}
}

func TestRiseTransitSet_MoonUsesMoonHorizon(t *testing.T) {
	lat := 35.0 * xconst.Deg2Rad
	lon := 139.0 * xconst.Deg2Rad
	res := RiseTransitSet(Moon, approxJDJuly2026Noon, lon, lat, MoonHorizon)

	if res.AlwaysUp || res.AlwaysDown {
		t.Fatalf("Moon at mid-latitude should ordinarily rise/set: %+v", res)
	}
	if math.Abs(res.Set-res.Rise) < 0.2 || math.Abs(res.Set-res.Rise) > 1.0 {
		t.Errorf("Moon above-horizon interval should be roughly half a day: rise=%v set=%v", res.Rise, res.Set)
	}
}

func TestRiseTransitSet_PlanetProducesFiniteTransit(t *testing.T) {
	lat := 10.0 * xconst.Deg2Rad
	lon := 20.0 * xconst.Deg2Rad
	res := RiseTransitSet(Mars, approxJDJuly2026Noon, lon, lat, RefractionHorizon)

	if math.IsNaN(res.Transit) || math.IsInf(res.Transit, 0) {
		t.Errorf("Mars transit should be finite: %v", res.Transit)
	}
}

func TestTwilight_CivilBracketsStandardSunriseSunset(t *testing.T) {
	lat := 45.0 * xconst.Deg2Rad
	lon := 10.0 * xconst.Deg2Rad

	sun := RiseTransitSet(Sun, approxJDJuly2026Noon, lon, lat, StandardHorizon)
	dawn, dusk, ok := Twilight(approxJDJuly2026Noon, lon, lat, CivilHorizon)
	if !ok {
		t.Fatal("civil twilight should resolve at mid-latitude")
	}
	if dawn >= sun.Rise {
		t.Errorf("civil dawn %v should precede sunrise %v", dawn, sun.Rise)
	}
	if dusk <= sun.Set {
		t.Errorf("civil dusk %v should follow sunset %v", dusk, sun.Set)
	}
}

func TestTwilight_DeeperHorizonsBracketShallower(t *testing.T) {
	lat := 45.0 * xconst.Deg2Rad
	lon := 10.0 * xconst.Deg2Rad

	civilDawn, civilDusk, ok := Twilight(approxJDJuly2026Noon, lon, lat, CivilHorizon)
	if !ok {
		t.Fatal("civil twilight should resolve")
	}
	nauticalDawn, nauticalDusk, ok := Twilight(approxJDJuly2026Noon, lon, lat, NauticalHorizon)
	if !ok {
		t.Fatal("nautical twilight should resolve")
	}
	if nauticalDawn >= civilDawn {
		t.Errorf("nautical dawn %v should precede civil dawn %v", nauticalDawn, civilDawn)
	}
	if nauticalDusk <= civilDusk {
		t.Errorf("nautical dusk %v should follow civil dusk %v", nauticalDusk, civilDusk)
	}
}

func TestBodyVelocityPerDay_MoonSlowerThanSun(t *testing.T) {
	if bodyVelocityPerDay(Moon) >= bodyVelocityPerDay(Sun) {
		t.Error("Moon's diurnal rate should be slower than the Sun's 2π/day reference rate")
	}
}
