package ephemeris

import (
	"github.com/sxcalendar/lunargo/coord"
	"github.com/sxcalendar/lunargo/xconst"
)

// earthVelocityStep is the half-width (Julian centuries) used to estimate
// Earth's heliocentric velocity from EarthHeliocentric by central
// difference; VSOP87 has no closed-form derivative the way the teacher's
// SPK Chebyshev segments did, so the apparent-position pipeline
// differentiates the series numerically instead.
const earthVelocityStep = 1e-6

// earthVelocityKmPerDay returns Earth's heliocentric velocity vector in
// km/day at TDB Julian centuries T, via a central difference of its
// rectangular position (spec §4.7's EarthHeliocentric).
func earthVelocityKmPerDay(T float64, nTerms int) [3]float64 {
	pos := func(t float64) [3]float64 {
		lon, lat, r := EarthHeliocentric(t, nTerms)
		x, y, z := coord.SphToRect(lon, lat, r)
		return [3]float64{x * xconst.AUKm, y * xconst.AUKm, z * xconst.AUKm}
	}
	p1 := pos(T - earthVelocityStep)
	p2 := pos(T + earthVelocityStep)
	dtDays := 2 * earthVelocityStep * 36525.0
	return [3]float64{
		(p2[0] - p1[0]) / dtDays,
		(p2[1] - p1[1]) / dtDays,
		(p2[2] - p1[2]) / dtDays,
	}
}

// ApparentGeocentric returns a planet's (or Pluto's) light-time-corrected,
// aberration-corrected, nutation-adjusted geocentric ecliptic
// longitude/latitude (radians) and distance (AU) at TDB Julian centuries
// T. This is the analytical-series equivalent of the teacher's
// spk.ApparentFrom pipeline: light-time iteration against the target's own
// position function, coord.Aberration's full relativistic stellar
// aberration (in place of the teacher's SPK-derived observer velocity, an
// Earth velocity estimated by numerical differentiation of the VSOP87
// series takes that role), then nutation in longitude. Gravitational
// light-deflection is not applied: it needs the deflecting bodies'
// positions at the ray's closest-approach time, which requires a
// barycenter ephemeris this analytical-series pipeline does not carry
// (spec §4.10's rise/transit/set timing only needs longitude accurate to
// light-time and aberration, not sub-milliarcsecond apparent place).
func ApparentGeocentric(body xconst.PlanetID, T float64, nTerms int) (lon, lat, r float64, ok bool) {
	heliocentricAt := func(t float64) ([3]float64, bool) {
		if body == xconst.Pluto {
			plon, plat, pr := PlutoHeliocentric(t)
			x, y, z := coord.SphToRect(plon, plat, pr)
			return [3]float64{x, y, z}, true
		}
		plon, plat, pr, found := Heliocentric(body, t, nTerms)
		if !found {
			return [3]float64{}, false
		}
		x, y, z := coord.SphToRect(plon, plat, pr)
		return [3]float64{x, y, z}, true
	}

	if _, found := heliocentricAt(T); !found {
		return 0, 0, 0, false
	}

	elon, elat, er := EarthHeliocentric(T, nTerms)
	ex, ey, ez := coord.SphToRect(elon, elat, er)
	observer := [3]float64{ex, ey, ez}

	positionFn := func(t float64) [3]float64 {
		pos, _ := heliocentricAt(t)
		return pos
	}

	relPos, lightTime := LightTimeCorrect(T, observer, positionFn)

	relPosKm := [3]float64{relPos[0] * xconst.AUKm, relPos[1] * xconst.AUKm, relPos[2] * xconst.AUKm}
	obsVel := earthVelocityKmPerDay(T, nTerms)
	apparentKm := coord.Aberration(relPosKm, obsVel, lightTime)
	relPos = [3]float64{apparentKm[0] / xconst.AUKm, apparentKm[1] / xconst.AUKm, apparentKm[2] / xconst.AUKm}

	lon, lat, r = coord.RectToSph(relPos[0], relPos[1], relPos[2])

	dpsi, _ := coord.Nutation(T, 0)
	lon = normalizePositive(lon + dpsi)
	return lon, lat, r, true
}
