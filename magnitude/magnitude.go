// Package magnitude computes visual apparent magnitudes for planets using
// the classical (H, G) phase-law formula (spec §4.9):
//
//	H + 5*log10(r*delta) - 2.5*log10((1-G)*cos(phi/2) + G*cos(phi))
//
// where r is the heliocentric distance (AU), delta is the geocentric
// distance (AU), phi is the Sun-planet-observer phase angle, and H/G are
// per-planet absolute-magnitude/slope constants.
package magnitude

import (
	"math"

	"github.com/sxcalendar/lunargo/coord"
	"github.com/sxcalendar/lunargo/xconst"
)

// hgParams holds the (H, G) pair for one body.
type hgParams struct {
	H, G float64
}

// table carries the standard (H, G) values for the eight planets plus
// Pluto, keyed by xconst.PlanetID ordinal (Sun=0 excluded: the Sun has no
// phase-law magnitude).
var table = map[int]hgParams{
	1: {H: -0.613, G: 0.106}, // Mercury
	2: {H: -4.384, G: 0.113}, // Venus
	4: {H: -1.601, G: 0.150}, // Mars
	5: {H: -9.395, G: 0.500}, // Jupiter
	6: {H: -8.914, G: 0.470}, // Saturn
	7: {H: -7.110, G: 0.700}, // Uranus
	8: {H: -6.890, G: 0.670}, // Neptune
	9: {H: -0.980, G: 0.410}, // Pluto
}

// PhaseLawMagnitude computes the visual apparent magnitude of a planet via
// the (H, G) phase law. planetID matches xconst.PlanetID's ordinal values
// (1=Mercury ... 9=Pluto); returns NaN for the Sun or an unsupported ID.
func PhaseLawMagnitude(planetID int, phaseAngleRad, rAU, deltaAU float64) float64 {
	hg, ok := table[planetID]
	if !ok {
		return math.NaN()
	}
	dm := 5 * math.Log10(rAU*deltaAU)
	phaseTerm := (1-hg.G)*math.Cos(phaseAngleRad/2) + hg.G*math.Cos(phaseAngleRad)
	if phaseTerm <= 0 {
		return math.Inf(1)
	}
	return hg.H + dm - 2.5*math.Log10(phaseTerm)
}

// PhaseAngle returns the Sun-target-observer angle (radians) given the
// Sun-to-target and Earth-to-target vectors, via coord.SeparationAngle's
// Kahan-stable formula (spec §4.9).
func PhaseAngle(sunToTarget, earthToTarget [3]float64) float64 {
	return coord.SeparationAngle(sunToTarget, earthToTarget) * xconst.Deg2Rad
}
