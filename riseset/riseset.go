// Package riseset computes rise, upper-transit and set instants, and solar
// twilight boundaries, for a ground observer at a fixed longitude/latitude
// (spec §4.10). Unlike the teacher's almanac package -- which bisects a
// sampled altitude function with the search package's zero-crossing finder
// -- this is a direct iterative solve: three Newton-style refinements of
// the transit instant, then a closed-form hour-angle half-width for rise
// and set. almanac.go's body-altitude dispatch and horizon-threshold
// constants are kept as the shape this package generalizes.
package riseset

import (
	"math"

	"github.com/sxcalendar/lunargo/coord"
	"github.com/sxcalendar/lunargo/ephemeris"
	"github.com/sxcalendar/lunargo/timescale"
	"github.com/sxcalendar/lunargo/xconst"
)

// Horizon offsets (radians), per spec §4.10.
const (
	StandardHorizon     = -50.0 / 60.0 * xconst.Deg2Rad                  // sunrise/sunset: refraction + solar semi-diameter
	RefractionHorizon   = -34.0 / 60.0 * xconst.Deg2Rad                  // refraction alone, for planet/star rise-set
	CivilHorizon        = -6.0 * xconst.Deg2Rad
	NauticalHorizon     = -12.0 * xconst.Deg2Rad
	AstronomicalHorizon = -18.0 * xconst.Deg2Rad
	MoonHorizon         = (-50.0 - 15.5 + 57.0) / 60.0 * xconst.Deg2Rad // refraction + semi-diameter - parallax
)

// Body identifies which apparent-position pipeline to use. Sun and Moon get
// their own closed-form ephemeris.* functions; everything else dispatches
// through ephemeris.ApparentGeocentric keyed by the shared xconst.PlanetID.
type Body int

const (
	Sun     Body = Body(xconst.Sun)
	Mercury Body = Body(xconst.Mercury)
	Venus   Body = Body(xconst.Venus)
	Mars    Body = Body(xconst.Mars)
	Jupiter Body = Body(xconst.Jupiter)
	Saturn  Body = Body(xconst.Saturn)
	Uranus  Body = Body(xconst.Uranus)
	Neptune Body = Body(xconst.Neptune)
	Pluto   Body = Body(xconst.Pluto)
	Moon    Body = 100
)

// defaultTerms is the VSOP87/ELP term count used when evaluating apparent
// longitude/latitude during transit refinement. Negative means "all terms".
var defaultTerms = -1

// SetDefaultTerms sets the term count used by this package's apparent
// position evaluations, matching ephemeris.SetDefaultTerms's idiom.
func SetDefaultTerms(n int) {
	defaultTerms = n
}

// Result is one body's rise/transit/set outcome for a single pass through
// the iterative solver, per spec §4.10.
type Result struct {
	Transit         float64 // UT1 Julian date of upper culmination
	Rise            float64 // UT1 Julian date of rising; NaN if AlwaysUp/AlwaysDown
	Set             float64 // UT1 Julian date of setting; NaN if AlwaysUp/AlwaysDown
	AlwaysUp        bool
	AlwaysDown      bool
	TransitAltitude float64 // radians
}

// bodyVelocityPerDay is the diurnal angular rate (radians/day) spec §4.10
// divides the hour-angle residual by during transit refinement: 2π for the
// Sun and every other body dense enough that its own orbital motion barely
// perturbs the sidereal rate, 0.9661·2π for the Moon (whose faster orbital
// motion noticeably slows its apparent transit-to-transit interval).
func bodyVelocityPerDay(body Body) float64 {
	if body == Moon {
		return 0.9661 * xconst.TwoPi
	}
	return xconst.TwoPi
}

// apparentLonLat returns a body's apparent geocentric ecliptic
// longitude/latitude (radians) at TDB Julian centuries T.
func apparentLonLat(body Body, T float64) (lon, lat float64, ok bool) {
	switch body {
	case Sun:
		return ephemeris.SunApparentLongitude(T, defaultTerms), 0, true
	case Moon:
		return ephemeris.MoonApparentLongitude(T, defaultTerms),
			ephemeris.MoonApparentLatitude(T, defaultTerms), true
	default:
		lon, lat, _, ok = ephemeris.ApparentGeocentric(xconst.PlanetID(body), T, defaultTerms)
		return
	}
}

// tdbCenturiesFromUT1 converts a UT1 Julian date to TDB Julian centuries
// since J2000, via ΔT (UT1->TT) then the small TT->TDB periodic term.
func tdbCenturiesFromUT1(jdUT1 float64) float64 {
	jdTT := timescale.UTToTD(jdUT1)
	jdTDB := jdTT + timescale.TDBMinusTT(jdTT)/xconst.SecPerDay
	return (jdTDB - xconst.J2000JD) / xconst.DaysPerJulianCentury
}

// transit runs the three-iteration refinement of spec §4.10's "Iterative
// transit": starting from the longitude-only estimate jd - normalize_signed
// (jd·2π + longitude)/2π, each pass computes the body's apparent equatorial
// coordinates at the current transit estimate, the hour angle there, and
// nudges the estimate by H/v. Returns the converged UT1 transit instant and
// the body's declination there (needed by the rise/set hour-angle formula).
func transit(body Body, jdUT, longitudeRad float64) (jdTransit, delta float64) {
	jdTransit = jdUT - coord.NormalizeSigned(jdUT*xconst.TwoPi+longitudeRad)/xconst.TwoPi
	v := bodyVelocityPerDay(body)

	for i := 0; i < 3; i++ {
		T := tdbCenturiesFromUT1(jdTransit)
		lon, lat, ok := apparentLonLat(body, T)
		if !ok {
			break
		}
		eps := coord.Obliquity(T, coord.P03)
		alpha, dec, _ := coord.Rotate(lon, lat, 1, eps)
		delta = dec

		gst := coord.GAST(jdTransit) * xconst.Deg2Rad
		H := coord.NormalizeSigned(gst + longitudeRad - alpha)
		jdTransit -= H / v
	}
	return jdTransit, delta
}

// RiseTransitSet computes a body's upper-transit instant and, if it crosses
// the given horizon altitude, its rise and set instants, per spec §4.10.
//
// jdUT is a UT1 Julian date near the desired event (e.g. local noon of the
// civil day in question); longitudeRad/latitudeRad are the observer's
// geographic coordinates (east/north positive, radians); horizonRad is one
// of the Horizon constants (StandardHorizon for the Sun, MoonHorizon for
// the Moon, RefractionHorizon for other bodies, or a twilight constant).
func RiseTransitSet(body Body, jdUT, longitudeRad, latitudeRad, horizonRad float64) Result {
	jdTransit, delta := transit(body, jdUT, longitudeRad)
	v := bodyVelocityPerDay(body)

	transitAltitude := math.Pi/2 - math.Abs(latitudeRad-delta)
	res := Result{Transit: jdTransit, TransitAltitude: transitAltitude}

	arg := (math.Sin(horizonRad) - math.Sin(latitudeRad)*math.Sin(delta)) /
		(math.Cos(latitudeRad) * math.Cos(delta))

	if arg < -1 || arg > 1 {
		if transitAltitude > horizonRad {
			res.AlwaysUp = true
		} else {
			res.AlwaysDown = true
		}
		res.Rise = math.NaN()
		res.Set = math.NaN()
		return res
	}

	h0 := math.Acos(arg)
	res.Rise = jdTransit - h0/v
	res.Set = jdTransit + h0/v
	return res
}

// Twilight finds dawn and dusk for the given twilight horizon (CivilHorizon,
// NauticalHorizon or AstronomicalHorizon), reusing the Sun rise/set pipeline
// with "rise"/"set" renamed to "dawn"/"dusk" per spec §4.10. ok is false if
// the Sun never crosses that horizon on the day in question (polar day or
// night at that latitude).
func Twilight(jdUT, longitudeRad, latitudeRad, horizonRad float64) (dawn, dusk float64, ok bool) {
	res := RiseTransitSet(Sun, jdUT, longitudeRad, latitudeRad, horizonRad)
	if res.AlwaysUp || res.AlwaysDown {
		return math.NaN(), math.NaN(), false
	}
	return res.Rise, res.Set, true
}
