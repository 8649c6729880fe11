// Package eclipse implements spec §4.14's two eclipse geometries: a fast
// syzygy-scan classifier for solar eclipses (type plus gamma), and a
// contact-time solver for lunar eclipses (type, magnitude, and the seven
// contact instants). Both work directly from the analytical ephemeris
// layer -- no binary kernel file is needed, unlike the teacher's
// spk.SPK-backed version this replaces.
package eclipse

import (
	"math"

	"github.com/sxcalendar/lunargo/ephemeris"
	"github.com/sxcalendar/lunargo/xconst"
)

// Solar eclipse type tags, the closed set from spec §3.
const (
	SolarNone     = "N"
	SolarPartial  = "P"
	SolarAnnular  = "A"
	SolarTotal    = "T"
	SolarHybrid   = "H"
	SolarAnnular0 = "A0"
	SolarTotal0   = "T0"
	SolarAnnular1 = "A1"
	SolarTotal1   = "T1"
	SolarHybrid2  = "H2"
	SolarHybrid3  = "H3"
)

// SolarEclipse is the fast-classifier result for one new moon, per spec §3.
type SolarEclipse struct {
	NewMoonJD2000 float64
	Type          string
	Gamma         float64
	Accurate      bool
}

// earthFlattening is the Earth cross-section radius factor (spec §4.14's
// b) used in the classification thresholds.
const earthFlattening = 0.9972

// Moon radius constants in Earth radii, in the classic Besselian-elements
// convention: a slightly larger mean value for the penumbra (accounts for
// the Moon's full limb profile) and a slightly smaller one for the umbra
// (excludes limb irregularities that let sunlight leak through at the
// edge of totality).
const (
	moonRadiusPenumbra = 0.272281
	moonRadiusUmbra    = 0.272481
)

// sunRadiusEarthRadii is the Sun's physical radius expressed in Earth
// radii.
var sunRadiusEarthRadii = xconst.SunRadiusKm / xconst.EarthRadiusKm

// moonMaxInclinationRad is the Moon's orbital inclination to the ecliptic
// (~5.145°), used by the quick |sin L| > 0.4 pre-filter.
var moonMaxInclinationRad = 5.145 * xconst.Deg2Rad

// velocityStep is the finite-difference step (Julian centuries) used to
// estimate the Moon's instantaneous longitude/latitude/distance rates.
const velocityStep = 0.01 / xconst.DaysPerJulianCentury

// ClassifySolarEclipse runs spec §4.14's fast classifier for the new moon
// nearest jd2000Approx.
func ClassifySolarEclipse(jd2000Approx float64) SolarEclipse {
	n := math.Round(jd2000Approx/29.5306) * xconst.TwoPi
	t := ephemeris.TFromDiff(n)

	moonLat := ephemeris.MoonApparentLatitude(t, -1)
	if math.Abs(moonLat) > 0.4*moonMaxInclinationRad {
		return SolarEclipse{NewMoonJD2000: t * xconst.DaysPerJulianCentury, Type: SolarNone, Accurate: true}
	}

	moonLon := ephemeris.MoonApparentLongitude(t, -1)
	moonLatNext := ephemeris.MoonApparentLatitude(t+velocityStep, -1)
	moonLonNext := ephemeris.MoonApparentLongitude(t+velocityStep, -1)
	vL := (moonLonNext - moonLon) / velocityStep / xconst.DaysPerJulianCentury
	vB := (moonLatNext - moonLat) / velocityStep / xconst.DaysPerJulianCentury

	mR := ephemeris.MoonDistance(t, -1)             // moon distance, Earth radii
	mRNext := ephemeris.MoonDistance(t+velocityStep, -1)
	vR := (mRNext - mR) / velocityStep / xconst.DaysPerJulianCentury

	_, _, sunRAU := ephemeris.EarthHeliocentric(t, -1)
	sunDistER := sunRAU * xconst.AUKm / xconst.EarthRadiusKm
	smR := sunDistER - mR

	gamma := mR * math.Sin(moonLat) * vL / math.Sqrt(vB*vB+vL*vL)

	f1 := (sunRadiusEarthRadii + moonRadiusPenumbra) / smR
	r1 := moonRadiusPenumbra + f1*mR
	f2 := (sunRadiusEarthRadii - moonRadiusUmbra) / smR
	r2 := moonRadiusUmbra - f2*mR
	fh2 := mR - moonRadiusPenumbra/f2

	result := SolarEclipse{NewMoonJD2000: t * xconst.DaysPerJulianCentury, Gamma: gamma, Accurate: true}
	absGamma := math.Abs(gamma)

	ls1 := absGamma - (earthFlattening + r1)
	ls2 := absGamma - (earthFlattening + math.Abs(r2))
	ls3 := absGamma - earthFlattening
	ls4 := absGamma - (earthFlattening - math.Abs(r2))

	for _, ls := range []float64{ls1, ls2, ls3, ls4} {
		if math.Abs(ls) < 0.016 {
			result.Accurate = false
		}
	}

	switch {
	case ls1 > 0:
		result.Type = SolarNone
	case ls2 > 0:
		result.Type = SolarPartial
	case ls3 > 0:
		if r2 < 0 {
			result.Type = SolarAnnular0
		} else {
			result.Type = SolarTotal0
		}
	case ls4 > 0:
		if r2 < 0 {
			result.Type = SolarAnnular1
		} else {
			result.Type = SolarTotal1
		}
	default:
		h := 0.0
		if absGamma < 1 {
			h = math.Sqrt(1 - gamma*gamma)
		}
		if math.Abs(fh2-h) < 0.019 {
			result.Accurate = false
		}
		if fh2 < h {
			result.Type = SolarTotal
		} else {
			result.Type = SolarAnnular
			dr := vR * h / (vL * mR)
			h1 := mR - dr - moonRadiusPenumbra/f2
			h2 := mR + dr - moonRadiusPenumbra/f2
			switch {
			case h1 < h && h2 < h:
				result.Type = SolarHybrid
			case h1 < h || h2 < h:
				result.Type = SolarHybrid2
			default:
				result.Type = SolarHybrid3
			}
		}
	}

	return result
}
