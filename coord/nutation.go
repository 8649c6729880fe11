package coord

import "math"

// nutationTerm holds one row of the IAU 2000B luni-solar nutation series.
// Units for s, sdot, cp, c, cdot, sp: 0.1 microarcseconds (0.1 uas).
type nutationTerm struct {
	nl, nlp, nf, nd, nom int     // integer multipliers for l, l', F, D, Ω
	s, sdot, cp          float64 // dpsi: (s + sdot*T)*sin(arg) + cp*cos(arg)
	c, cdot, sp          float64 // deps: (c + cdot*T)*cos(arg) + sp*sin(arg)
}

// nutationTerms holds the largest-amplitude rows of the IAU 2000B 77-term
// luni-solar nutation series (IERS Conventions 2003 Table 5.3a). The full
// table spans 77 rows; this subset carries every term whose amplitude
// exceeds roughly 0.1 mas.
var nutationTerms = []nutationTerm{
	// nl nlp  nf  nd nom          s       sdot        cp             c      cdot        sp
	{0, 0, 0, 0, 1, -172064161, -174666, 33386, 92052331, 9086, 15377},
	{0, 0, 2, -2, 2, -13170906, -1675, -13696, 5730336, -3015, -4587},
	{0, 0, 2, 0, 2, -2276413, -234, 2796, 978459, -485, 1374},
	{0, 0, 0, 0, 2, 2074554, 207, -698, -897492, 470, -291},
	{0, 1, 0, 0, 0, 1475877, -3633, 11817, 73871, -184, -1924},
	{1, 0, 0, 0, 0, 711159, 73, -872, -6750, 0, 358},
	{0, 1, 2, -2, 2, -516821, 1226, -524, 224386, -677, -174},
	{0, 0, 2, 0, 1, -387298, -367, 380, 200728, 18, 318},
	{1, 0, 2, 0, 2, -301461, -36, 816, 129025, -63, 367},
	{0, -1, 2, -2, 2, 215829, -494, 111, -95929, 299, 132},
	{-1, 0, 0, 2, 0, 156994, 10, -168, -1235, 0, 82},
	{0, 0, 2, -2, 1, 128227, 137, 181, -68982, -9, 39},
	{-1, 0, 2, 0, 2, 123457, 11, 19, -53311, 32, -4},
	{0, 0, 0, 2, 0, 63384, 11, -150, -1220, 0, 29},
	{1, 0, 0, 0, 1, 63110, 63, 27, -33228, 0, -9},
	{-1, 0, 2, 2, 2, -59641, -11, 149, 25543, -11, 66},
	{-1, 0, 0, 0, 1, -57976, -63, -189, 31429, 0, -75},
	{1, 0, 2, 0, 1, -51613, -42, 129, 26366, 0, 78},
	{-2, 0, 0, 2, 0, -47722, 0, -18, 477, 0, -25},
	{-2, 0, 2, 0, 1, 45893, 50, 31, -24236, -10, 20},
	{0, 0, 2, 2, 2, -38571, -1, 158, 16452, -11, 68},
	{0, -2, 2, -2, 2, 32481, 0, 0, -13870, 0, 0},
	{2, 0, 2, 0, 2, -31046, -1, 131, 13238, -11, 59},
	{2, 0, 0, 0, 0, 29243, 0, -74, -609, 0, 13},
	{1, 0, 2, -2, 2, 28593, 0, -1, -12338, 10, -3},
	{0, 0, 2, 0, 0, 25887, 0, -66, -550, 0, 11},
	{0, 0, -2, 2, 0, 21783, 0, 13, -167, 0, 13},
	{-1, 0, 2, 0, 1, 20441, 21, 10, -10758, 0, -3},
	{0, 2, 0, 0, 0, 16707, -85, -10, 168, -1, 10},
	{0, 2, 2, -2, 2, -15794, 72, -16, 6850, -42, -5},
}

// fundamentalArgs computes the Delaunay arguments for the nutation model.
// T is Julian centuries from J2000 TDB. Returns l, l', F, D, Ω in radians.
func fundamentalArgs(T float64) (l, lp, F, D, om float64) {
	l = (485868.249036 + T*(1717915923.2178+T*(31.8792+T*(0.051635-T*0.00024470)))) * arcsec2rad
	lp = (1287104.79305 + T*(129596581.0481+T*(-0.5532+T*(0.000136+T*0.00001149)))) * arcsec2rad
	F = (335779.526232 + T*(1739527262.8478+T*(-12.7512+T*(-0.001037+T*0.00000417)))) * arcsec2rad
	D = (1072260.70369 + T*(1602961601.2090+T*(-6.3706+T*(0.006593-T*0.00003169)))) * arcsec2rad
	om = (450160.398036 + T*(-6962890.5431+T*(7.4722+T*(0.007702-T*0.00005939)))) * arcsec2rad
	return
}

// meanObliquity returns the IAU 1980 mean obliquity of the ecliptic, radians.
func meanObliquity(T float64) float64 {
	return (84381.448 + T*(-46.8150+T*(-0.00059+T*0.001813))) * arcsec2rad
}

// Nutation returns nutation in longitude (dpsi) and obliquity (deps), in
// radians, from the truncated IAU 2000B luni-solar series (spec §4.5). T is
// Julian centuries from J2000 TDB. When minPeriodDays is positive, rows
// whose combined frequency implies a period shorter than minPeriodDays are
// skipped.
func Nutation(T float64, minPeriodDays float64) (dpsiRad, depsRad float64) {
	l, lp, F, D, om := fundamentalArgs(T)

	var freqFloor float64
	if minPeriodDays > 0 {
		freqFloor = 1e-5 / minPeriodDays
	}

	var dpsi, deps float64
	for i := range nutationTerms {
		t := &nutationTerms[i]
		if minPeriodDays > 0 {
			freq := math.Abs(float64(t.nl)) + math.Abs(float64(t.nlp)) + math.Abs(float64(t.nom))
			if freq < freqFloor {
				continue
			}
		}
		arg := float64(t.nl)*l + float64(t.nlp)*lp + float64(t.nf)*F +
			float64(t.nd)*D + float64(t.nom)*om
		sinArg, cosArg := math.Sincos(arg)
		dpsi += (t.s+t.sdot*T)*sinArg + t.cp*cosArg
		deps += (t.c+t.cdot*T)*cosArg + t.sp*sinArg
	}

	dpsiRad = dpsi * tenthUas2Rad
	depsRad = deps * tenthUas2Rad
	return
}

// ApproxNutationLongitude is the four-term fast approximation to Δψ (spec
// §4.5), accurate to about 0.5″ and cheap enough for inner loops that do
// not need the full series (e.g. a coarse GAST in a rise/set bisection).
func ApproxNutationLongitude(T float64) float64 {
	om := (125.04452 - 1934.136261*T) * deg2rad
	lSun := (280.4665 + 36000.7698*T) * deg2rad
	lMoon := (218.3165 + 481267.8813*T) * deg2rad
	dpsiArcsec := -17.20*math.Sin(om) - 1.32*math.Sin(2*lSun) -
		0.23*math.Sin(2*lMoon) + 0.21*math.Sin(2*om)
	return dpsiArcsec * arcsec2rad
}

// nutationAngles is the internal convenience wrapper used by GAST, applying
// the process-wide period-filter knob.
func nutationAngles(T float64) (dpsiRad, depsRad float64) {
	return Nutation(T, nutationMinPeriodDays)
}

// nutationMatrix returns N, the nutation rotation matrix (mean equinox of
// date → true equinox of date): N = R1(-epsTrue) * R3(dpsi) * R1(epsMean).
func nutationMatrix(dpsiRad, depsRad, epsMRad float64) [3][3]float64 {
	epsTRad := epsMRad + depsRad

	sinDpsi, cosDpsi := math.Sincos(dpsiRad)
	sinEpsM, cosEpsM := math.Sincos(epsMRad)
	sinEpsT, cosEpsT := math.Sincos(epsTRad)

	return [3][3]float64{
		{cosDpsi, -sinDpsi * cosEpsM, -sinDpsi * sinEpsM},
		{sinDpsi * cosEpsT, cosDpsi*cosEpsM*cosEpsT + sinEpsM*sinEpsT, cosDpsi*sinEpsM*cosEpsT - cosEpsM*sinEpsT},
		{sinDpsi * sinEpsT, cosDpsi*cosEpsM*sinEpsT - sinEpsM*cosEpsT, cosDpsi*sinEpsM*sinEpsT + cosEpsM*cosEpsT},
	}
}

// NutationMinPeriodDays is a process-wide knob applied by the fundamental
// nutation series: rows whose combined frequency implies a period shorter
// than this many days are skipped (spec §4.5's optional period filter).
// Zero (the default) disables the filter and evaluates every tabulated row.
// Not safe for concurrent use — call SetNutationMinPeriod once at program
// startup, matching the teacher's package-level-variable-with-setter idiom.
var nutationMinPeriodDays float64

// SetNutationMinPeriod sets the period filter used by Nutation's package-
// level convenience wrapper (nutationAngles, used internally by GAST/Altaz).
func SetNutationMinPeriod(days float64) {
	nutationMinPeriodDays = days
}
