package lunar

import (
	"math"

	"github.com/sxcalendar/lunargo/xconst"
)

// Ganzhi is a sexagenary (stem-branch) label: index is 0-59, StemIndex and
// BranchIndex are index%10 and index%12 respectively.
type Ganzhi struct {
	Index       int
	StemIndex   int
	BranchIndex int
}

// String renders the stem-branch pair, e.g. "甲子".
func (g Ganzhi) String() string {
	return xconst.HeavenlyStems[g.StemIndex] + xconst.EarthlyBranches[g.BranchIndex]
}

// ZodiacName returns the animal sign associated with this ganzhi's branch.
func (g Ganzhi) ZodiacName() string {
	return xconst.Zodiac[g.BranchIndex]
}

func newGanzhi(n int) Ganzhi {
	idx := ((n % 60) + 60) % 60
	return Ganzhi{Index: idx, StemIndex: idx % 10, BranchIndex: idx % 12}
}

// dayGanzhiEpochJD2000 is the JD2000 of 2000-01-07, a 甲子 day (spec §4.13).
const dayGanzhiEpochJD2000 = 6.0

// DayGanzhi returns the sexagenary day label for the given JD2000 (an
// integer day count; fractional days are floored to the start of the
// civil day).
func DayGanzhi(jd2000 float64) Ganzhi {
	n := int(math.Floor(jd2000)) - int(dayGanzhiEpochJD2000)
	return newGanzhi(n)
}

// yearGanzhiEpoch is 1984, a 甲子 year (spec §4.13).
const yearGanzhiEpoch = 1984

// lichunGanzhiOffset is spec §4.13's fixed additive constant
// (365.25*16 - 35) folded into the lichun-boundary year-index formula.
const lichunGanzhiOffset = 365.25*16 - 35

// YearGanzhiByLichun returns the sexagenary year label using the 立春
// (start-of-spring) solar-term boundary to mark the year transition,
// independent of the lunar new year and of the Jan-1 civil-year boundary.
// jd2000 is the instant being labeled; lichunJD2000 is that instant's
// civil year's lichun JD2000 -- if jd2000 precedes it, the instant still
// belongs to the previous sexagenary year (spec §4.13).
func YearGanzhiByLichun(jd2000, lichunJD2000 float64) Ganzhi {
	adjusted := lichunJD2000
	if jd2000 < lichunJD2000 {
		adjusted -= 365
	}
	adjusted += lichunGanzhiOffset
	yearIndex := math.Floor(adjusted/tropicalYear+0.5) + 12000
	return newGanzhi(int(yearIndex))
}

// YearGanzhiByLunarNewYear returns the sexagenary year label using the
// lunar new year (the month-build-index-0 new moon) as the year boundary,
// rather than lichun. civilYear is the Gregorian year containing the
// lunar new year in question.
func YearGanzhiByLunarNewYear(civilYear int, jd2000 float64, lunarNewYearJD2000 float64) Ganzhi {
	year := civilYear
	if jd2000 < lunarNewYearJD2000 {
		year--
	}
	return newGanzhi(year - yearGanzhiEpoch)
}

// monthGanzhiEpochJD2000 is the JD2000 of 1998-12-07 (大雪), a 甲子 month
// boundary (spec §4.13): sexagenary months advance at each of the 12
// jieqi (sectional solar terms), not at the lunar month boundary.
const monthGanzhiEpochJD2000 = -761.0

// MonthGanzhi returns the sexagenary month label for a JD2000 instant,
// given the JD2000 of the most recent jieqi boundary (an odd-indexed
// zhongqi/jieqi crossing) at or before it.
func MonthGanzhi(jieqiBoundaryJD2000 float64) Ganzhi {
	n := int(math.Round((jieqiBoundaryJD2000 - monthGanzhiEpochJD2000) / (tropicalYear / 12)))
	return newGanzhi(n)
}

// HourGanzhi returns the sexagenary hour label (one of the twelve
// two-hour 时辰), derived from the day's ganzhi and the hour-of-day
// (0-23, local civil time): the hour branch is hour//2 rotated so that
// 23:00-01:00 is branch 0 (子), and the hour stem advances with the day
// stem per the standard five-day stem cycle (day stem mod 5 selects which
// of the five stem-starting patterns applies).
func HourGanzhi(day Ganzhi, hour int) Ganzhi {
	branch := ((hour + 1) / 2) % 12
	stem := (day.StemIndex%5*2 + branch) % 10
	return Ganzhi{Index: comboIndex(stem, branch), StemIndex: stem, BranchIndex: branch}
}

// comboIndex finds the sexagenary index matching a given stem (mod 10) and
// branch (mod 12) pair via the Chinese remainder search over the 60-cycle.
func comboIndex(stem, branch int) int {
	for i := 0; i < 60; i++ {
		if i%10 == stem && i%12 == branch {
			return i
		}
	}
	return 0
}
