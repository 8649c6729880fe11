// Package lunar builds the Chinese lunisolar calendar on top of the
// ephemeris layer's Sun/Moon longitude solvers: the shuo/qi era-dispatch
// solver (spec §4.11), year layout construction (spec §4.12), the
// ancient-regime patch (spec §4.12.1), and sexagenary (ganzhi) naming
// (spec §4.13). Grounded on the teacher's spk.go packed-table parsing
// idiom for the correction-string decompression, and otherwise a direct
// transcription of the spec's own algorithm text into Go.
package lunar

import (
	"math"

	"github.com/sxcalendar/lunargo/xconst"
)

// YearLayout is the full month structure of one lunar year, built around
// the winter solstice nearest a reference JD2000 instant (spec §4.12).
type YearLayout struct {
	ReferenceJD2000 float64
	WinterSolstice  float64    // zhongqi[0]
	Zhongqi         [25]float64
	Heshuo          [15]float64 // new-moon instants bounding the 14 month-build slots
	MonthDays       [14]float64
	MonthNames      [14]string
	LeapMonth       int // build index of the leap month, 0 if the year has none
	IsLeapYear      bool
	AncientRegime   bool
}

// jd2000ForYear is a rough Gregorian-year-to-JD2000 conversion, used only
// to decide which regime (ancient vs. normal) a reference instant falls
// in; it need not be more precise than a handful of days since the regime
// boundaries themselves span centuries.
func jd2000ForYear(year float64) float64 {
	return (year - 2000) * tropicalYear
}

// ancientEra is one named era of spec §4.12.1's ancient-regime month-base
// patch: before the Qin-Han calendar reform, the civil year began at a
// different solar-term boundary and used a different leap-month label.
type ancientEra struct {
	start     float64 // JD2000 of the era's start
	base      int     // month-name base offset (xconst.LunarMonthNames index of month 0)
	leapLabel string
}

var ancientEras = []ancientEra{
	{start: jd2000ForYear(-721), base: 0, leapLabel: "十三"},  // Spring-Autumn / Warring States: 子正
	{start: jd2000ForYear(-221), base: 11, leapLabel: "后九"}, // Qin-Han: 亥正
}

func selectAncientEra(jd2000 float64) ancientEra {
	chosen := ancientEras[0]
	for _, e := range ancientEras {
		if e.start <= jd2000 {
			chosen = e
		}
	}
	return chosen
}

// BuildYear constructs the lunar year containing the winter solstice
// nearest jd2000Reference, following spec §4.12's eight-step algorithm.
func BuildYear(jd2000Reference float64) *YearLayout {
	ws := math.Floor((jd2000Reference-355+183)/tropicalYear)*tropicalYear + 355
	if qi(ws) > jd2000Reference {
		ws -= tropicalYear
	}

	var zhongqi [25]float64
	for i := 0; i < 25; i++ {
		zhongqi[i] = qi(ws + 15.2184*float64(i))
	}

	nm := shuo(zhongqi[0])
	if nm > zhongqi[0] {
		nm -= synodicMonth
	}

	var heshuo [15]float64
	for i := 0; i < 15; i++ {
		heshuo[i] = shuo(nm + 29.5306*float64(i))
	}

	layout := &YearLayout{
		ReferenceJD2000: jd2000Reference,
		WinterSolstice:  zhongqi[0],
		Zhongqi:         zhongqi,
		Heshuo:          heshuo,
	}

	buildIdx := make([]int, 14)
	for i := 0; i < 14; i++ {
		layout.MonthDays[i] = heshuo[i+1] - heshuo[i]
		buildIdx[i] = i
	}

	approxYear := 2000 + zhongqi[0]/tropicalYear
	if approxYear >= -721 && approxYear <= -104 {
		layout.AncientRegime = true
		applyAncientRegime(layout, buildIdx)
		return layout
	}

	applyNormalRegime(layout, buildIdx, zhongqi, heshuo)
	layout.MonthNames = translateBuildIndices(buildIdx, heshuo)
	return layout
}

// applyNormalRegime implements spec §4.12 step 6's leap-month detection:
// a year is a leap year iff its 13th month-build boundary (heshuo[13])
// falls on or before the 25th zhongqi, and the leap month is the first
// regular month whose following new moon occurs after the *next*
// zhongqi -- i.e. the first month containing no zhongqi at all.
func applyNormalRegime(layout *YearLayout, buildIdx []int, zhongqi [25]float64, heshuo [15]float64) {
	layout.IsLeapYear = heshuo[13] <= zhongqi[24]
	if !layout.IsLeapYear {
		return
	}
	for i := 1; i < 14; i++ {
		if heshuo[i+1] > zhongqi[2*i] {
			layout.LeapMonth = i
			for j := i; j < 14; j++ {
				buildIdx[j]--
			}
			return
		}
	}
}

// applyAncientRegime implements spec §4.12.1: each month's name is derived
// from how many synodic months separate it from its era's start, modulo
// 12, offset by that era's month-base; a count of 12 or more names the
// month with the era's leap label instead of cycling through the normal
// table again.
func applyAncientRegime(layout *YearLayout, buildIdx []int) {
	for i := range buildIdx {
		era := selectAncientEra(layout.Heshuo[i])
		count := int(math.Floor((layout.Heshuo[i] - era.start + 15) / synodicMonth))
		if count < 12 {
			idx := ((count+era.base)%12 + 12) % 12
			layout.MonthNames[i] = xconst.LunarMonthNames[idx]
		} else {
			layout.MonthNames[i] = era.leapLabel
		}
	}
}

// historicalMonthNamePatches are the date-specific month-naming exceptions
// spec §4.12 step 8 names: brief windows, each a handful of years long,
// where a calendar reform shifted the civil new year by one or two
// month-build slots without changing the underlying new-moon/zhongqi
// computation.
type monthNamePatch struct {
	jdAbsStart, jdAbsEnd float64
	shift                int
}

var historicalMonthNamePatches = []monthNamePatch{
	{jdAbsStart: 1724360, jdAbsEnd: 1729794, shift: 1},
	{jdAbsStart: 1807724, jdAbsEnd: 1808699, shift: 1},
	{jdAbsStart: 1999349, jdAbsEnd: 1999467, shift: 2},
}

// indexNamePatch is a direct build-index-to-name override within a date
// range, for reforms that renamed specific months rather than uniformly
// shifting the whole year's build indices.
type indexNamePatch struct {
	jdAbsStart, jdAbsEnd float64
	buildIndex           int
	name                 string
}

var historicalIndexNamePatches = []indexNamePatch{
	{jdAbsStart: 1973067, jdAbsEnd: 1977052, buildIndex: 0, name: "正"},
	{jdAbsStart: 1973067, jdAbsEnd: 1977052, buildIndex: 2, name: "一"},
}

// exactJDNamePatch forces the name of the single month whose heshuo instant
// equals jdAbs exactly, overriding the regime's computed name outright --
// spec §4.12 step 8's fix to avoid two consecutive months both reading 十二.
type exactJDNamePatch struct {
	jdAbs float64
	name  string
}

var historicalExactJDNamePatches = []exactJDNamePatch{
	{jdAbs: 1729794, name: "拾贰"},
	{jdAbs: 1808699, name: "拾贰"},
}

// translateBuildIndices maps each month's build index to its Chinese name
// via xconst.LunarMonthNames, applying the historical patches where the
// month's first new moon falls inside one of their date ranges.
func translateBuildIndices(buildIdx []int, heshuo [15]float64) [14]string {
	var names [14]string
	for i, bi := range buildIdx {
		jdAbs := heshuo[i] + xconst.J2000JD
		shift := 0
		for _, p := range historicalMonthNamePatches {
			if jdAbs >= p.jdAbsStart && jdAbs <= p.jdAbsEnd {
				shift = p.shift
				break
			}
		}
		idx := ((bi+shift)%13 + 13) % 13
		names[i] = xconst.LunarMonthNames[idx]

		for _, p := range historicalIndexNamePatches {
			if p.buildIndex == bi && jdAbs >= p.jdAbsStart && jdAbs <= p.jdAbsEnd {
				names[i] = p.name
			}
		}
		for _, p := range historicalExactJDNamePatches {
			if jdAbs == p.jdAbs {
				names[i] = p.name
			}
		}
	}
	return names
}
