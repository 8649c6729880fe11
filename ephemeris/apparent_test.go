package ephemeris

import (
	"math"
	"testing"

	"github.com/sxcalendar/lunargo/xconst"
)

func TestApparentGeocentric_MarsInRange(t *testing.T) {
	lon, lat, r, ok := ApparentGeocentric(xconst.Mars, 0.2, -1)
	if !ok {
		t.Fatal("expected a found Mars position")
	}
	if lon < 0 || lon >= 2*math.Pi {
		t.Errorf("longitude out of [0,2pi): %v", lon)
	}
	if math.Abs(lat) > 10*xconst.Deg2Rad {
		t.Errorf("Mars ecliptic latitude out of plausible range: %v rad", lat)
	}
	if r < 0.3 || r > 3.0 {
		t.Errorf("Mars geocentric distance out of plausible range: %v AU", r)
	}
}

func TestApparentGeocentric_UnknownBodyNotFound(t *testing.T) {
	if _, _, _, ok := ApparentGeocentric(xconst.PlanetID(99), 0.2, -1); ok {
		t.Error("an unrecognized planet ID should report not found")
	}
}

func TestEarthVelocityKmPerDay_MatchesOrbitalSpeed(t *testing.T) {
	// Earth's mean orbital speed is ~29.78 km/s; a central difference of
	// the VSOP87 position series should recover that to within a few
	// percent regardless of epoch.
	v := earthVelocityKmPerDay(0.2, -1)
	speed := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	wantKmPerDay := 29.78 * 86400.0
	if math.Abs(speed-wantKmPerDay)/wantKmPerDay > 0.05 {
		t.Errorf("Earth speed = %v km/day, want close to %v km/day", speed, wantKmPerDay)
	}
}
