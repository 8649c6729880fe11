package ephemeris

import (
	"math"

	"github.com/sxcalendar/lunargo/coord"
	"github.com/sxcalendar/lunargo/vsop87"
	"github.com/sxcalendar/lunargo/xconst"
)

// EarthHeliocentric returns Earth's heliocentric ecliptic longitude,
// latitude (radians) and distance (AU) at TDB Julian centuries T from
// J2000, using nTerms VSOP87 terms per series (negative = all terms), per
// spec §4.7.
func EarthHeliocentric(T float64, nTerms int) (lon, lat, r float64) {
	t := julianMillennia(T)
	lon = normalizePositive(vsop87.EvalL(vsop87.Earth.L, t, nTerms))
	lat = vsop87.EvalB(vsop87.Earth.B, t, nTerms)
	r = vsop87.EvalR(vsop87.Earth.R, t, nTerms)
	return
}

// SunGeometricLongitude returns the Sun's geocentric ecliptic true
// longitude (radians): Earth's heliocentric longitude plus π, normalised
// (spec §4.7).
func SunGeometricLongitude(T float64, nTerms int) float64 {
	lon, _, _ := EarthHeliocentric(T, nTerms)
	return normalizePositive(lon + math.Pi)
}

// fk5Correction applies Meeus's classical VSOP87-to-FK5 frame correction
// (Astronomical Algorithms ch.25 eq.25.9) to a geocentric solar longitude
// (radians) and latitude (radians), returning the corrected pair. This is
// the "small polynomial correction in t_millennia" spec §4.7 names.
func fk5Correction(T, lonRad, latRad float64) (lon2, lat2 float64) {
	lambdaPrime := lonRad - (1.397*T+0.00031*T*T)*xconst.Deg2Rad
	sinLP, cosLP := math.Sincos(lambdaPrime)
	dLonArcsec := -0.09033 + 0.03916*(cosLP+sinLP)*math.Tan(latRad)
	dLatArcsec := 0.03916 * (cosLP - sinLP)
	lon2 = lonRad + dLonArcsec*xconst.Arcsec2Rad
	lat2 = latRad + dLatArcsec*xconst.Arcsec2Rad
	return
}

// sunMeanAnomalyAndEccentricity returns the Sun's mean anomaly (radians)
// and the Earth orbital eccentricity, both low-order polynomials in T
// (Julian centuries from J2000), per the classical solar aberration
// formula referenced by spec §4.7.
func sunMeanAnomalyAndEccentricity(T float64) (M, e float64) {
	Mdeg := 357.52910 + T*(35999.05030-T*(0.0001559+0.00000048*T))
	M = normalizePositive(Mdeg * xconst.Deg2Rad)
	e = 0.016708617 - T*(0.000042037+0.0000001236*T)
	return
}

// SunAberration returns the classical aberration correction to apply to
// the Sun's apparent longitude: ab = -20.49552″*(1+e*cos M)/RAD (spec
// §4.7's closed-form shortcut, distinct from the full relativistic
// transform coord.Aberration uses for the planets).
func SunAberration(T float64) float64 {
	M, e := sunMeanAnomalyAndEccentricity(T)
	abArcsec := -20.49552 * (1 + e*math.Cos(M))
	return abArcsec * xconst.Arcsec2Rad
}

// SunApparentLongitude returns the Sun's apparent geocentric ecliptic
// longitude (radians): geometric longitude + FK5 correction + nutation in
// longitude + aberration (spec §4.7).
func SunApparentLongitude(T float64, nTerms int) float64 {
	lon, _, _ := EarthHeliocentric(T, nTerms)
	lon = normalizePositive(lon + math.Pi)
	lon, _ = fk5Correction(T, lon, 0)
	dpsi, _ := coord.Nutation(T, 0)
	lon += dpsi
	lon += SunAberration(T)
	return normalizePositive(lon)
}

// SolarVelocity returns the Sun's mean apparent angular rate of motion in
// ecliptic longitude, radians per Julian century, with a small periodic
// correction (spec §4.7): approximately 628.332 rad/century plus small
// sinusoidal terms of period near a year and half-year.
func SolarVelocity(T float64) float64 {
	baseRadPerCentury := 628.332
	correctionRadPerCentury := 0.0334*math.Sin(4.669+628.3076*T) + 0.0003*math.Sin(4.6+1256.61*T)
	return baseRadPerCentury + correctionRadPerCentury
}

// TFromSunLongitude solves for the Julian-century time T at which the
// Sun's apparent longitude equals target (radians), using the initial
// guess and two-Newton-iteration schedule of spec §4.7: term counts
// {10, all} (all meaning every available term), with the Newton step's
// derivative taken from SolarVelocity rather than a fixed constant.
func TFromSunLongitude(target float64) float64 {
	v0 := SolarVelocity(0)
	t := (target - 1.75347046 - math.Pi) / v0

	for _, n := range []int{10, -1} {
		lonComputed := SunApparentLongitude(t, n)
		v := SolarVelocity(t)
		residual := normalizeSigned(target - lonComputed)
		t += residual / v
	}
	return t
}
