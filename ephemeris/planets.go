package ephemeris

import (
	"github.com/sxcalendar/lunargo/coord"
	"github.com/sxcalendar/lunargo/vsop87"
	"github.com/sxcalendar/lunargo/xconst"
)

// planetTables maps each non-Earth, non-Pluto PlanetID to its VSOP87
// table, the identical L/B/R pipeline spec §4.9 describes for the Sun and
// Earth, each with its own table and correction triple.
var planetTables = map[xconst.PlanetID]vsop87.PlanetTable{
	xconst.Mercury: vsop87.Mercury,
	xconst.Venus:   vsop87.Venus,
	xconst.Mars:    vsop87.Mars,
	xconst.Jupiter: vsop87.Jupiter,
	xconst.Saturn:  vsop87.Saturn,
	xconst.Uranus:  vsop87.Uranus,
	xconst.Neptune: vsop87.Neptune,
}

// Heliocentric returns a planet's heliocentric ecliptic longitude,
// latitude (radians) and distance (AU) at TDB Julian centuries T, using
// nTerms VSOP87 terms per series. Returns ok=false for the Sun or Pluto
// (Pluto uses PlutoHeliocentric instead, since it is not a VSOP87 body).
func Heliocentric(body xconst.PlanetID, T float64, nTerms int) (lon, lat, r float64, ok bool) {
	if body == xconst.Earth {
		lon, lat, r = EarthHeliocentric(T, nTerms)
		return lon, lat, r, true
	}
	tab, found := planetTables[body]
	if !found {
		return 0, 0, 0, false
	}
	t := julianMillennia(T)
	lon = normalizePositive(vsop87.EvalL(tab.L, t, nTerms))
	lat = vsop87.EvalB(tab.B, t, nTerms)
	r = vsop87.EvalR(tab.R, t, nTerms)
	return lon, lat, r, true
}

// plutoX returns Pluto's x parameter and T' = T/1e8 (spec §4.9):
// x = -1 + 2*(JD2000*365.25 + 1825394.5)/2185000, where JD2000 = T*100
// (T is Julian centuries from J2000, so T*100 Julian years from J2000).
func plutoX(T float64) (x, tPrime float64) {
	jd2000Years := T * 100.0
	x = -1 + 2*(jd2000Years*365.25+1825394.5)/2185000.0
	tPrime = T / 1e8
	return
}

// PlutoHeliocentric returns Pluto's heliocentric ecliptic longitude,
// latitude (radians) and distance (AU), computed from its nine rectangular
// sub-series rather than a VSOP87 L/B/R table (spec §4.9).
func PlutoHeliocentric(T float64) (lon, lat, r float64) {
	x, tPrime := plutoX(T)

	xAU := vsop87.EvalPlutoCoordinate(tPrime, x,
		vsop87.PlutoSeries.X0, vsop87.PlutoSeries.X1, vsop87.PlutoSeries.X2,
		vsop87.PlutoOffset.X.O0, vsop87.PlutoOffset.X.O1)
	yAU := vsop87.EvalPlutoCoordinate(tPrime, x,
		vsop87.PlutoSeries.Y0, vsop87.PlutoSeries.Y1, vsop87.PlutoSeries.Y2,
		vsop87.PlutoOffset.Y.O0, vsop87.PlutoOffset.Y.O1)
	zAU := vsop87.EvalPlutoCoordinate(tPrime, x,
		vsop87.PlutoSeries.Z0, vsop87.PlutoSeries.Z1, vsop87.PlutoSeries.Z2,
		vsop87.PlutoOffset.Z.O0, vsop87.PlutoOffset.Z.O1)

	lon, lat, r = coord.RectToSph(xAU, yAU, zAU)
	lon = normalizePositive(lon)
	return
}

// Geocentric converts a body's heliocentric position to geocentric
// spherical coordinates: the Cartesian difference of the target's and
// Earth's heliocentric rectangular positions, converted back to spherical
// (spec §4.9's "Geocentric transform").
func Geocentric(body xconst.PlanetID, T float64, nTerms int) (lon, lat, r float64, ok bool) {
	var hx, hy, hz float64
	if body == xconst.Pluto {
		plon, plat, pr := PlutoHeliocentric(T)
		hx, hy, hz = coord.SphToRect(plon, plat, pr)
		ok = true
	} else {
		plon, plat, pr, found := Heliocentric(body, T, nTerms)
		if !found {
			return 0, 0, 0, false
		}
		hx, hy, hz = coord.SphToRect(plon, plat, pr)
		ok = true
	}

	elon, elat, er := EarthHeliocentric(T, nTerms)
	ex, ey, ez := coord.SphToRect(elon, elat, er)

	gx, gy, gz := hx-ex, hy-ey, hz-ez
	lon, lat, r = coord.RectToSph(gx, gy, gz)
	lon = normalizePositive(lon)
	return
}
