// Package ephemeris computes apparent positions of the Sun, Moon and the
// eight planets (plus Pluto) from the analytical series in package vsop87,
// replacing the teacher's binary-SPK-file/Chebyshev pipeline with the
// closed-form VSOP87/ELP evaluation spec §4.7-§4.9 calls for. The light-time
// iteration and stellar-aberration pipeline is carried over from the
// teacher's spk.Observe/Apparent shape (coord.Aberration in place of the
// teacher's SPK-derived observer velocity), now applied to
// analytically-evaluated rectangular positions instead of Chebyshev-segment
// lookups. Gravitational light-deflection is not: see ApparentGeocentric's
// doc comment for why.
package ephemeris

import (
	"math"

	"github.com/sxcalendar/lunargo/coord"
	"github.com/sxcalendar/lunargo/xconst"
)

// defaultTerms is the process-wide VSOP87 term count used by callers that
// don't need the inverse solvers' successive-refinement term schedule
// (spec §4.7's {10, all} / §4.8's {10, 60, all} schedules always pick their
// own counts regardless of this knob). Negative means "use every term".
// Matches coord's SetNutationMinPeriod package-var-with-setter idiom.
var defaultTerms = -1

// SetDefaultTerms sets the term count used by single-pass (non-inverse)
// evaluation helpers in this package.
func SetDefaultTerms(n int) {
	defaultTerms = n
}

func normalizePositive(a float64) float64 { return coord.NormalizePositive(a) }
func normalizeSigned(a float64) float64   { return coord.NormalizeSigned(a) }

// julianMillennia converts Julian centuries T (from J2000 TDB) to the t
// argument VSOP87 series expect (Julian millennia).
func julianMillennia(T float64) float64 { return T / 10.0 }

// LightTimeCorrect iterates position = target - observer using the target's
// positionFn(t) until the light-time delay converges, matching the
// teacher's spk.observe loop. t is TDB Julian centuries from J2000;
// positionFn must return a heliocentric or geocentric rectangular position
// in AU. Returns the light-time-corrected relative position (AU) and the
// light time in days.
func LightTimeCorrect(t float64, observerPos [3]float64, positionFn func(t float64) [3]float64) (pos [3]float64, lightTimeDays float64) {
	targetPos := positionFn(t)
	pos = sub3(targetPos, observerPos)
	dist := length3(pos)

	cAUPerCentury := xconst.LightSpeedKmPerDay / xconst.AUKm * 36525.0
	for i := 0; i < 10; i++ {
		newLT := dist / cAUPerCentury // centuries
		if math.Abs(newLT-lightTimeDays) < 1e-14 {
			lightTimeDays = newLT
			break
		}
		lightTimeDays = newLT
		targetPos = positionFn(t - lightTimeDays)
		pos = sub3(targetPos, observerPos)
		dist = length3(pos)
	}
	// lightTimeDays was accumulated in centuries above; convert to days.
	lightTimeDays *= 36525.0
	return
}

// PhaseAngle returns the Sun-target-observer angle (radians) via the law of
// cosines, given heliocentric and geocentric distances and the target's
// distance from the observer.
func PhaseAngle(rAU, deltaAU, sunObserverAU float64) float64 {
	cosPhi := (rAU*rAU + deltaAU*deltaAU - sunObserverAU*sunObserverAU) / (2 * rAU * deltaAU)
	if cosPhi > 1 {
		cosPhi = 1
	}
	if cosPhi < -1 {
		cosPhi = -1
	}
	return math.Acos(cosPhi)
}

// LightTimeDays converts a distance in AU to a light-time delay in days,
// per spec §4.9's `d*AU/c/86400`.
func LightTimeDays(distanceAU float64) float64 {
	return distanceAU * xconst.AUKm / xconst.LightSpeedKmPerSec / xconst.SecPerDay
}

// IsRetrograde tests whether a body's ecliptic longitude is decreasing
// (retrograde) at time T (Julian centuries from J2000) via a numerical
// forward difference with dt = 1e-4 centuries and 2π-wrap handling (spec
// §4.9).
func IsRetrograde(longitudeFn func(T float64) float64, T float64) bool {
	const dt = 1e-4
	l0 := longitudeFn(T)
	l1 := longitudeFn(T + dt)
	diff := normalizeSigned(l1 - l0)
	return diff < 0
}
