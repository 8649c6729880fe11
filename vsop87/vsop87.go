// Package vsop87 implements the L2 analytical series evaluators of spec
// §4.4: the three-coefficient Poisson-series summation used by VSOP87
// (Σ A·cos(B + C·t)), the Moon's six-coefficient variant, and the
// per-degree (L0…L5) evaluator with its proportional term-count scaling
// rule. It also carries the literal coefficient tables for the Sun/Earth
// and the seven other VSOP87 planets, plus Pluto's separate rectangular
// series (spec §4.9).
//
// Tables here are a practical truncation of the full VSOP87 release data:
// each series keeps its largest-amplitude terms rather than the full
// multi-thousand-row tables, the same truncation approach this module
// already applies to the IAU 2000B nutation series. See DESIGN.md.
package vsop87

import "math"

// Term is one row of a VSOP87 series: A·cos(B + C·t).
type Term struct {
	A, B, C float64
}

// Series is a flat list of terms sharing one power of t.
type Series []Term

// MoonTerm is one row of the Moon's six-coefficient series.
type MoonTerm struct {
	A, B, C, D, E, F float64
}

// Corrections is the per-planet (arcsec, arcsec, 1e-6 AU) add-on applied
// after the degree sum is scaled by the multiplier (spec §3).
type Corrections struct {
	LArcsec float64
	BArcsec float64
	R1e6AU  float64
}

// Table is the per-planet, per-component VSOP87 data: six series (L0…L5,
// or B0…B5, or R0…R5), a scalar multiplier, and the arcsec/1e-6AU
// correction add-on.
type Table struct {
	Series      [6]Series
	Multiplier  float64
	Corrections Corrections
}

// PlanetTable bundles the three components for one body.
type PlanetTable struct {
	L, B, R Table
}

// EvalSeries returns Σ A·cos(B + C·t) over the first n terms of the
// series (all terms if n < 0), per spec §4.4's 3-coefficient evaluator.
func EvalSeries(s Series, t float64, n int) float64 {
	if n < 0 || n > len(s) {
		n = len(s)
	}
	var sum float64
	for i := 0; i < n; i++ {
		term := &s[i]
		sum += term.A * math.Cos(term.B+term.C*t)
	}
	return sum
}

// EvalMoonSeries returns Σ A·cos(B + C·T + D·t² + E·t³ + F·t⁴) where
// t2=T²/1e4, t3=T³/1e8, t4=T⁴/1e8, per spec §4.4's Moon evaluator.
func EvalMoonSeries(s []MoonTerm, T float64) float64 {
	t2 := T * T / 1e4
	t3 := T * T * T / 1e8
	t4 := T * T * T * T / 1e8
	var sum float64
	for i := range s {
		m := &s[i]
		sum += m.A * math.Cos(m.B+m.C*T+m.D*t2+m.E*t3+m.F*t4)
	}
	return sum
}

// termCountForDegree implements spec §4.4's proportional scaling rule:
// n_0 = nTerms; n_i = max(3, round(nTerms * len(data[i])/len(data[0])))
// for i > 0, so higher-order series scale their term count with their
// relative length. nTerms < 0 means "use every term of every series".
func termCountForDegree(data *[6]Series, nTerms, i int) int {
	if nTerms < 0 {
		return -1
	}
	if i == 0 {
		return nTerms
	}
	len0 := len(data[0])
	if len0 == 0 {
		return 3
	}
	n := int(math.Round(float64(nTerms) * float64(len(data[i])) / float64(len0)))
	if n < 3 {
		n = 3
	}
	return n
}

// EvalDegree evaluates a full per-degree VSOP87 table at time t (Julian
// millennia), accumulating Σ_i (EvalSeries(data[i], t, n_i) · t^i) / M and
// adding the corrections, per spec §4.4.
func EvalDegree(tab Table, t float64, nTerms int, correctionUnit float64) float64 {
	var sum float64
	tp := 1.0
	for i := 0; i < 6; i++ {
		if len(tab.Series[i]) == 0 {
			tp *= t
			continue
		}
		n := termCountForDegree(&tab.Series, nTerms, i)
		sum += EvalSeries(tab.Series[i], t, n) * tp
		tp *= t
	}
	sum /= tab.Multiplier
	sum += correctionUnit
	return sum
}

// EvalL evaluates a table's longitude degree sum and adds its arcsec
// correction, converted to radians.
func EvalL(tab Table, t float64, nTerms int) float64 {
	return EvalDegree(tab, t, nTerms, tab.Corrections.LArcsec*arcsec2rad)
}

// EvalB evaluates a table's latitude degree sum and adds its arcsec
// correction, converted to radians.
func EvalB(tab Table, t float64, nTerms int) float64 {
	return EvalDegree(tab, t, nTerms, tab.Corrections.BArcsec*arcsec2rad)
}

// EvalR evaluates a table's radius degree sum and adds its 1e-6 AU
// correction.
func EvalR(tab Table, t float64, nTerms int) float64 {
	return EvalDegree(tab, t, nTerms, tab.Corrections.R1e6AU*1e-6)
}

const arcsec2rad = math.Pi / (180.0 * 3600.0)
