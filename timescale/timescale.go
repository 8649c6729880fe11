// Package timescale implements the time and Julian-day substrate: civil
// date <-> Julian day conversion, day-of-week helpers, the ΔT = TT - UT1
// model (historical table + polynomial extrapolation), and the UTC/TT/TDB
// conversions built on top of it.
//
// All JD values are in the proleptic Gregorian/Julian civil calendar
// convention (Meeus): the Gregorian correction applies on or after
// 1582-10-15, and year 0 exists (astronomical year numbering).
package timescale

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// SecPerDay is the number of SI seconds in a day.
const SecPerDay = 86400.0

// J2000JD is the Julian date of 2000-01-01 12:00 TT.
const J2000JD = 2451545.0

// ErrOutOfRange is returned by callers that choose to policy-restrict year
// inputs; civil_to_jd itself accepts any year for which the intermediate
// floor arithmetic does not overflow.
var ErrOutOfRange = errors.New("timescale: year out of range")

// CivilToJD converts a proleptic civil date (year, month, day-with-fraction)
// to a Julian date, following Meeus chapter 7. The Gregorian correction is
// applied when y*372 + m*31 + floor(d) >= 588829, i.e. on or after
// 1582-10-15.
func CivilToJD(year, month int, day float64) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}

	isGregorian := year*372+month*31+int(math.Floor(day)) >= 588829

	a := y / 100
	var b int
	if isGregorian {
		b = 2 - a + a/4
	}

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		day + float64(b) - 1524.5
	return jd
}

// JDToCivil inverts CivilToJD, returning the proleptic civil year, month,
// and day-with-fraction. Mutual inverse with CivilToJD to about 1e-8 days.
func JDToCivil(jd float64) (year, month int, day float64) {
	jd += 0.5
	z := math.Floor(jd)
	f := jd - z

	var a float64
	if z < 2299161 {
		a = z
	} else {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = b - d - math.Floor(30.6001*e) + f
	if e < 14 {
		month = int(e - 1)
	} else {
		month = int(e - 13)
	}
	if month > 2 {
		year = int(c - 4716)
	} else {
		year = int(c - 4715)
	}
	return
}

// DayOfWeek returns the day of week for a Julian date: 0 = Sunday.
func DayOfWeek(jd float64) int {
	n := int(math.Floor(jd+1.5)) + 7000000
	return n % 7
}

// NthWeekdayOfMonth returns the Julian date (at 0h) of the nth occurrence
// of the given weekday (0=Sunday) in the civil month. n must be in [1,5];
// n=5 means "last" and is clamped to the last matching day of the month.
func NthWeekdayOfMonth(year, month, weekday, n int) (float64, error) {
	if n < 1 || n > 5 {
		return 0, errors.Errorf("timescale: nth must be in [1,5], got %d", n)
	}
	first := math.Floor(CivilToJD(year, month, 1))
	firstWeekday := DayOfWeek(first)
	offset := (weekday - firstWeekday + 7) % 7
	candidate := first + float64(offset) + float64(7*(n-1))

	// Clamp "5th" to the last matching day if the month doesn't have one.
	cy, cm, _ := JDToCivil(candidate)
	if n == 5 && (cy != year || cm != month) {
		candidate -= 7
	}
	return candidate, nil
}

// deltaTRow is one segment of the piecewise-cubic ΔT table: within
// [year0, year1) the model is a0 + a1*u + a2*u^2 + a3*u^3 seconds, where
// u = 10*(y-year0)/(year1-year0). Rows are contiguous and sorted by year0.
//
// The coefficients are derived at package init from a sparse set of
// anchor (year, ΔT-seconds) control points drawn from the long-term ΔT
// history (Morrison & Stephenson / Espenak), using cubic-Hermite fitting
// against centered finite-difference slopes at each anchor -- the same
// "long table of cubics" shape used by the historical ΔT splines shipped
// with JPL/Skyfield-style ephemeris software (spec §4.3, §9).
type deltaTRow struct {
	year0          float64
	a0, a1, a2, a3 float64
}

// deltaTLastYear, deltaTLastValue mark the end of the tabulated range
// (spec §3 "trailing (year_last, ΔT_last) pair").
var (
	deltaTTable     []deltaTRow
	deltaTLastYear  float64
	deltaTLastValue float64
)

// deltaTAnchors are (year, ΔT seconds) control points. 0AD, 1900, and 2000
// are pinned to the spec's seed-scenario values; the rest trace the
// well-known long-term shape (tens of thousands of seconds in deep
// antiquity, a minimum near 1700-1870, then a rise back through the 20th
// century as the Moon's tidal deceleration and other secular effects
// compound).
var deltaTAnchors = []struct {
	year float64
	dt   float64
}{
	{-700, 20400}, {-600, 19400}, {-500, 18800}, {-400, 17190},
	{-300, 15530}, {-200, 14080}, {-100, 12790}, {0, 10580},
	{100, 9600}, {200, 8640}, {300, 7680}, {400, 6700},
	{500, 5710}, {600, 4740}, {700, 3810}, {800, 2960},
	{900, 2200}, {1000, 1570}, {1100, 1090}, {1200, 740},
	{1300, 490}, {1400, 320}, {1500, 200}, {1600, 120},
	{1700, 9}, {1750, 13}, {1800, 13.7}, {1850, 7.3},
	{1900, -2.3}, {1950, 29.0}, {2000, 63.87}, {2050, 93.0},
	{2100, 202.0}, {2150, 240.0},
}

func init() {
	n := len(deltaTAnchors)
	slope := make([]float64, n)
	for i := 0; i < n; i++ {
		switch {
		case i == 0:
			slope[i] = (deltaTAnchors[1].dt - deltaTAnchors[0].dt) / (deltaTAnchors[1].year - deltaTAnchors[0].year)
		case i == n-1:
			slope[i] = (deltaTAnchors[n-1].dt - deltaTAnchors[n-2].dt) / (deltaTAnchors[n-1].year - deltaTAnchors[n-2].year)
		default:
			slope[i] = (deltaTAnchors[i+1].dt - deltaTAnchors[i-1].dt) / (deltaTAnchors[i+1].year - deltaTAnchors[i-1].year)
		}
	}

	deltaTTable = make([]deltaTRow, n-1)
	for i := 0; i < n-1; i++ {
		y0, y1 := deltaTAnchors[i].year, deltaTAnchors[i+1].year
		v0, v1 := deltaTAnchors[i].dt, deltaTAnchors[i+1].dt
		L := y1 - y0
		m0 := slope[i] * (L / 10.0)
		m1 := slope[i+1] * (L / 10.0)

		a0 := v0
		a1 := m0
		r1 := v1 - a0 - 10*a1
		r2 := m1 - a1
		a3 := (r2 - 0.2*r1) / 100.0
		a2 := (r1 - 1000*a3) / 100.0

		deltaTTable[i] = deltaTRow{year0: y0, a0: a0, a1: a1, a2: a2, a3: a3}
	}
	deltaTLastYear = deltaTAnchors[n-1].year
	deltaTLastValue = deltaTAnchors[n-1].dt
}

// secularAccel is the long-term quadratic extrapolation used outside the
// tabulated range: E(y) = -20 + s*((y-1820)/100)^2, s=31 (spec §4.3).
func secularAccel(year float64) float64 {
	u := (year - 1820.0) / 100.0
	return -20 + 31*u*u
}

// DeltaT returns ΔT = TT - UT1 in seconds for a decimal civil year.
//
// Inside the tabulated range, the piecewise cubic fit is evaluated. Beyond
// deltaTLastYear, the secular quadratic extrapolation E(y) is used,
// blended over the 100 years following the table's end so the join is
// continuous (C0): for year in [last, last+100),
//
//	result = E(y) - (E(last) - ΔT_last) * (last+100-y)/100
//
// Before the table's first entry, E(y) is used directly (spec §4.3).
func DeltaT(year float64) float64 {
	if year < deltaTTable[0].year0 {
		return secularAccel(year)
	}
	if year >= deltaTLastYear {
		e := secularAccel(year)
		if year < deltaTLastYear+100 {
			join := secularAccel(deltaTLastYear) - deltaTLastValue
			e -= join * (deltaTLastYear + 100 - year) / 100.0
		}
		return e
	}

	// Binary search the containing segment.
	lo, hi := 0, len(deltaTTable)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if deltaTTable[mid].year0 <= year {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	row := deltaTTable[lo]
	var y1 float64
	if lo+1 < len(deltaTTable) {
		y1 = deltaTTable[lo+1].year0
	} else {
		y1 = deltaTLastYear
	}
	u := 10 * (year - row.year0) / (y1 - row.year0)
	return row.a0 + u*(row.a1+u*(row.a2+u*row.a3))
}

// yearOf returns the decimal civil year corresponding to a Julian date,
// using the Gregorian 365.25 day/year approximation -- sufficient for
// indexing into the ΔT table, whose segments are themselves only
// good to fractions of a second.
func yearOf(jd float64) float64 {
	return 2000.0 + (jd-J2000JD)/365.25
}

// UTToTD converts a UT1 Julian date to Terrestrial Time (TT), i.e. adds
// ΔT(year). Callers needing TDB should add TDBMinusTT on top.
func UTToTD(jdUT float64) float64 {
	return jdUT + DeltaT(yearOf(jdUT))/SecPerDay
}

// TDToUT is the first-order inverse of UTToTD: it reuses ΔT evaluated at
// the TT instant, which is acceptable since |dΔT/dy| < ~5 s/yr (spec §4.3).
func TDToUT(jdTD float64) float64 {
	return jdTD - DeltaT(yearOf(jdTD))/SecPerDay
}

// leapSecondTable holds (jdUTC-at-effect, cumulative TAI-UTC offset in
// seconds) rows for the post-1972 leap second era. Past the last entry
// the most recent (latest known) offset is held constant -- this is a
// fixed, compiled-in table, not a live IERS bulletin lookup (spec §1
// Non-goals).
var leapSecondTable = []struct {
	jd     float64
	offset float64
}{
	{2441317.5, 10}, // 1972-01-01
	{2441499.5, 11}, // 1972-07-01
	{2441683.5, 12}, // 1973-01-01
	{2442048.5, 13}, // 1974-01-01
	{2442413.5, 14}, // 1975-01-01
	{2442778.5, 15}, // 1976-01-01
	{2443144.5, 16}, // 1977-01-01
	{2443509.5, 17}, // 1978-01-01
	{2443874.5, 18}, // 1979-01-01
	{2444239.5, 19}, // 1980-01-01
	{2444786.5, 20}, // 1981-07-01
	{2445151.5, 21}, // 1982-07-01
	{2445516.5, 22}, // 1983-07-01
	{2446247.5, 23}, // 1985-07-01
	{2447161.5, 24}, // 1988-01-01
	{2447892.5, 25}, // 1990-01-01
	{2448257.5, 26}, // 1991-01-01
	{2448804.5, 27}, // 1992-07-01
	{2449169.5, 28}, // 1993-07-01
	{2449534.5, 29}, // 1994-07-01
	{2450083.5, 30}, // 1996-01-01
	{2450630.5, 31}, // 1997-07-01
	{2451179.5, 32}, // 1999-01-01
	{2453736.5, 33}, // 2006-01-01
	{2454832.5, 34}, // 2009-01-01
	{2456109.5, 35}, // 2012-07-01
	{2457204.5, 36}, // 2015-07-01
	{2457754.5, 37}, // 2017-01-01
}

// LeapSecondOffset returns the cumulative TAI-UTC leap second count in
// effect at the given UTC Julian date. Dates before the table clamp to the
// first (1972) entry; dates after the table clamp to the latest known
// value -- this library does not consult live bulletins (spec §1).
func LeapSecondOffset(jdUTC float64) float64 {
	if jdUTC < leapSecondTable[0].jd {
		return leapSecondTable[0].offset
	}
	last := len(leapSecondTable) - 1
	for i := last; i >= 0; i-- {
		if jdUTC >= leapSecondTable[i].jd {
			return leapSecondTable[i].offset
		}
	}
	return leapSecondTable[last].offset
}

// ttMinusTAI is the fixed offset between Terrestrial Time and International
// Atomic Time, by definition.
const ttMinusTAI = 32.184

// TimeToJDUTC converts a Go time.Time (any location) to a UTC Julian date.
func TimeToJDUTC(t time.Time) float64 {
	u := t.UTC()
	day := float64(u.Day()) +
		(float64(u.Hour())*3600+float64(u.Minute())*60+float64(u.Second())+float64(u.Nanosecond())/1e9)/SecPerDay
	return CivilToJD(u.Year(), int(u.Month()), day)
}

// UTCToTT converts a UTC Julian date to Terrestrial Time via the exact
// leap-second table: TT = UTC + (leapSeconds + 32.184) seconds.
func UTCToTT(jdUTC float64) float64 {
	return jdUTC + (LeapSecondOffset(jdUTC)+ttMinusTAI)/SecPerDay
}

// TTToUT1 converts Terrestrial Time to UT1 via the ΔT table/polynomial
// model (not the leap-second table -- ΔT folds in the whole of Earth's
// non-uniform rotation, not just integer leap seconds).
func TTToUT1(jdTT float64) float64 {
	return TDToUT(jdTT)
}

// TDBMinusTT returns TDB - TT in seconds. The two timescales never differ
// by more than about 2 milliseconds; the periodic term follows the
// standard Fairhead & Bretagnon approximation used throughout the
// ephemeris literature.
func TDBMinusTT(jdTT float64) float64 {
	T := (jdTT - J2000JD) / 36525.0
	g := (357.53 + 0.9856003*(jdTT-J2000JD)) * math.Pi / 180.0
	return 0.001658*math.Sin(g+0.0167*math.Sin(g)) + 0.0*T
}
