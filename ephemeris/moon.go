package ephemeris

import (
	"math"

	"github.com/sxcalendar/lunargo/coord"
	"github.com/sxcalendar/lunargo/vsop87"
	"github.com/sxcalendar/lunargo/xconst"
)

// moonMeanLongitude is the linear-in-T base longitude (radians) of spec
// §4.8, before the precession add-on and the VSOP-style perturbation sum.
func moonMeanLongitude(T float64) float64 {
	return 3.81034409 + T*(8399.684730072+T*(-3.319e-5+T*(3.11e-8-T*2.033e-10)))
}

// moonPrecessionArcsec is the small precession-in-longitude polynomial
// (arcsec) added to the Moon's mean longitude before the perturbation sum
// (spec §4.8).
func moonPrecessionArcsec(T float64) float64 {
	return 5029.0966*T + 1.11133*T*T
}

// MoonGeometricLongitude returns the Moon's geocentric geometric ecliptic
// longitude (radians) at Julian centuries T from J2000, summing the VSOP
// style L0..L4 degree series over nTerms terms per series (spec §4.8).
func MoonGeometricLongitude(T float64, nTerms int) float64 {
	base := moonMeanLongitude(T) + moonPrecessionArcsec(T)*xconst.Arcsec2Rad
	perturbation := scaledMoonSeries(vsop87.MoonL, T, nTerms)
	return normalizePositive(base + perturbation)
}

// MoonGeometricLatitude returns the Moon's geocentric ecliptic latitude
// (radians), the same perturbation-sum scheme without the precession
// add-on (spec §4.8).
func MoonGeometricLatitude(T float64, nTerms int) float64 {
	return scaledMoonSeries(vsop87.MoonB, T, nTerms)
}

// MoonDistance returns the Moon's geocentric distance in Earth radii,
// the perturbation-sum scheme applied to the distance series (spec §4.8).
func MoonDistance(T float64, nTerms int) float64 {
	return 385000.56 + scaledMoonSeries(vsop87.MoonR, T, nTerms)
}

// scaledMoonSeries applies the same proportional term-count scaling rule
// vsop87.EvalDegree uses (spec §4.4), but over a flat six-coefficient Moon
// series rather than a [6]Series per-degree table: nTerms caps the number
// of rows evaluated (negative = all rows).
func scaledMoonSeries(s []vsop87.MoonTerm, T float64, nTerms int) float64 {
	n := nTerms
	if n < 0 || n > len(s) {
		n = len(s)
	}
	return vsop87.EvalMoonSeries(s[:n], T)
}

// MoonVelocity returns the Moon's angular velocity in longitude, radians
// per Julian century (spec §4.8):
// v ≈ 8399.71 + 3.45*sin(2.87+8328.69T) + 0.05*sin(5.19+7214.06T)
//
//	+ 0.04*sin(3.51+16657.38T), expressed here in arcsec/century then
//	  converted to radians/century.
func MoonVelocity(T float64) float64 {
	arcsecPerCentury := 8399.71 +
		3.45*math.Sin(2.87+8328.69*T) +
		0.05*math.Sin(5.19+7214.06*T) +
		0.04*math.Sin(3.51+16657.38*T)
	return arcsecPerCentury * xconst.Arcsec2Rad
}

// moonAberrationLongitude returns the Moon's aberration in longitude
// (radians): ab_λ(T) = -3.4e-6 * moon_velocity(T) / RAD (spec §4.8; here
// moon_velocity is already in radians/century so RAD division is folded
// into the constant already being dimensionless).
func moonAberrationLongitude(T float64) float64 {
	return -3.4e-6 * MoonVelocity(T)
}

// moonAberrationLatitude returns the Moon's aberration in latitude,
// depending on the auxiliary arguments a = 8399.685T+5.3813 and
// b = 7214.063T+4.8997 together with the geometric longitude (spec §4.8).
func moonAberrationLatitude(T, geomLon float64) float64 {
	a := 8399.685*T + 5.3813
	b := 7214.063*T + 4.8997
	return -1.85e-6 * math.Sin(a) * math.Cos(geomLon-b)
}

// MoonApparentLongitude returns the Moon's apparent geocentric ecliptic
// longitude (radians): geometric + nutation in longitude + aberration
// (spec §4.8).
func MoonApparentLongitude(T float64, nTerms int) float64 {
	geomLon := MoonGeometricLongitude(T, nTerms)
	dpsi, _ := coord.Nutation(T, 0)
	return normalizePositive(geomLon + dpsi + moonAberrationLongitude(T))
}

// MoonApparentLatitude returns the Moon's apparent geocentric ecliptic
// latitude (radians): geometric latitude plus the latitude aberration
// correction (spec §4.8).
func MoonApparentLatitude(T float64, nTerms int) float64 {
	geomLon := MoonGeometricLongitude(T, nTerms)
	return MoonGeometricLatitude(T, nTerms) + moonAberrationLatitude(T, geomLon)
}

// TFromMoonLongitude solves for T at which the Moon's apparent longitude
// equals target, via the three-stage Newton schedule of spec §4.8: term
// counts {10, 60, all}.
func TFromMoonLongitude(target float64) float64 {
	v0 := MoonVelocity(0)
	t := (target - moonMeanLongitude(0)) / v0

	for _, n := range []int{10, 60, -1} {
		lonComputed := MoonApparentLongitude(t, n)
		v := MoonVelocity(t)
		residual := normalizeSigned(target - lonComputed)
		t += residual / v
	}
	return t
}

// MoonSunDiff returns normalize_positive(moon_apparent - sun_apparent),
// the master function spec §4.8 uses to locate syzygies (new/full moon).
func MoonSunDiff(T float64, nMoon, nSun int) float64 {
	return normalizePositive(MoonApparentLongitude(T, nMoon) - SunApparentLongitude(T, nSun))
}

// TFromDiffFast is the closed-form fast inverse of MoonSunDiff, accurate
// to roughly 600 seconds, using one algebraic correction (spec §4.8).
func TFromDiffFast(delta float64) float64 {
	v := MoonVelocity(0) - SolarVelocity(0)
	t := delta / v
	correctionArcsec := 0.10976*math.Cos(0.784758+8328.69*t+0.000152*t*t) +
		0.02224*math.Cos(0.187131+7214.06*t) -
		0.03342*math.Sin(4.669257+628.3076*t)
	t += correctionArcsec * xconst.Arcsec2Rad / v
	return t
}

// TFromDiff is the precise inverse of MoonSunDiff: three Newton iterations
// with term-count pairs {(3,3), (20,10), (all,60)} (spec §4.8).
func TFromDiff(delta float64) float64 {
	t := TFromDiffFast(delta)
	schedule := [][2]int{{3, 3}, {20, 10}, {-1, 60}}
	for _, nc := range schedule {
		nMoon, nSun := nc[0], nc[1]
		v := MoonVelocity(t) - SolarVelocity(t)
		computed := MoonSunDiff(t, nMoon, nSun)
		residual := normalizeSigned(delta - computed)
		t += residual / v
	}
	return t
}
