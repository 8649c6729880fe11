package eclipse

import (
	"math"

	"github.com/sxcalendar/lunargo/coord"
	"github.com/sxcalendar/lunargo/ephemeris"
	"github.com/sxcalendar/lunargo/xconst"
)

// Lunar eclipse type tags, the closed set from spec §3.
const (
	LunarNone      = "none"
	LunarPenumbral = "penumbral"
	LunarPartial   = "partial"
	LunarTotal     = "total"
)

// LunarEclipse carries the full contact-time record of spec §3: a type
// tag, seven contact JDs (0 meaning not applicable), a magnitude, the
// underlying full-moon JD, and the three apparent radii at the extremum.
type LunarEclipse struct {
	Type              string
	FullMoonJD2000    float64
	MaximumJD2000     float64
	PenumbralStartJD  float64
	PartialStartJD    float64
	TotalStartJD      float64
	TotalEndJD        float64
	PartialEndJD      float64
	PenumbralEndJD    float64
	Magnitude         float64
	MoonRadiusRad     float64
	UmbraRadiusRad    float64
	PenumbraRadiusRad float64
}

// atmosphericEnlargement is the mean enlargement of Earth's shadow due to
// its atmosphere, spec §4.14's 51/50 factor.
const atmosphericEnlargement = 51.0 / 50.0

// sunHorizontalParallaxArcsec and sunSemidiameterArcsec are the fixed mean
// solar parallax/semidiameter corrections spec §4.14 folds into the
// shadow-radius formulas.
const (
	sunHorizontalParallaxArcsec = 8.794
	sunSemidiameterArcsec       = 959.63
)

// shadowCoordinates returns spec §4.14's working coordinates x(t), y(t)
// (radians) and the three apparent radii (radians) at Julian centuries T.
func shadowCoordinates(T float64) (x, y, rMoon, rUmbra, rPenumbra float64) {
	moonLon := ephemeris.MoonApparentLongitude(T, -1)
	moonLat := ephemeris.MoonApparentLatitude(T, -1)
	sunLon := ephemeris.SunApparentLongitude(T, -1)
	_, earthLat, dSunAU := ephemeris.EarthHeliocentric(T, -1)
	// The Sun's geocentric ecliptic latitude is the negative of Earth's
	// heliocentric latitude -- the two position vectors are antiparallel.
	sunLat := -earthLat

	x = coord.NormalizeSigned(moonLon+math.Pi-sunLon) * math.Cos(moonLat/2)
	y = moonLat + sunLat

	dMoonKm := ephemeris.MoonDistance(T, -1) * xconst.EarthRadiusKm

	rMoon = xconst.MoonRadiusKm / dMoonKm
	rUmbra = (xconst.EarthRadiusKm/dMoonKm - (sunSemidiameterArcsec-sunHorizontalParallaxArcsec)*xconst.Arcsec2Rad/dSunAU) * atmosphericEnlargement
	rPenumbra = (xconst.EarthRadiusKm/dMoonKm + (sunSemidiameterArcsec+sunHorizontalParallaxArcsec)*xconst.Arcsec2Rad/dSunAU) * atmosphericEnlargement
	return
}

// ClassifyLunarEclipse finds and classifies the lunar eclipse nearest the
// full moon closest to jd2000Approx, per spec §4.14's extremum-finding and
// contact-time solver. All JD fields are JD2000 (TDB); fields for stages
// the eclipse never reaches are left at 0.
func ClassifyLunarEclipse(jd2000Approx float64) LunarEclipse {
	k := math.Round((jd2000Approx/29.5306 - 0.5))
	tFull := ephemeris.TFromDiff(k*xconst.TwoPi + math.Pi)
	fullMoonJD2000 := tFull * xconst.DaysPerJulianCentury

	x0, y0, _, _, _ := shadowCoordinates(tFull)

	dtCenturies := velocityStep
	x1, y1, _, _, _ := shadowCoordinates(tFull + dtCenturies)
	dtDays := dtCenturies * xconst.DaysPerJulianCentury
	vx := (x1 - x0) / dtDays
	vy := (y1 - y0) / dtDays

	// Extremum of x(t)²+y(t)² under the local linear approximation
	// x(t)≈x0+vx·Δt, y(t)≈y0+vy·Δt, Δt in days.
	deltaDays := -(x0*vx + y0*vy) / (vx*vx + vy*vy)
	tExtremumJD2000 := fullMoonJD2000 + deltaDays

	// Re-evaluate the coordinates (and the radii, which drift with
	// distance) at the refined extremum instant.
	xMin, yMin, rMoon, rUmbra, rPenumbra := shadowCoordinates(tExtremumJD2000 / xconst.DaysPerJulianCentury)
	dMin := math.Hypot(xMin, yMin)

	ecl := LunarEclipse{
		Type:              LunarNone,
		FullMoonJD2000:    fullMoonJD2000,
		MaximumJD2000:     tExtremumJD2000,
		MoonRadiusRad:     rMoon,
		UmbraRadiusRad:    rUmbra,
		PenumbraRadiusRad: rPenumbra,
	}

	if dMin > rMoon+rPenumbra {
		return ecl
	}

	ecl.Type = LunarPenumbral
	ecl.PenumbralStartJD, ecl.PenumbralEndJD = contactTimes(tExtremumJD2000, xMin, yMin, vx, vy, rMoon+rPenumbra)

	if dMin <= rMoon+rUmbra {
		ecl.Type = LunarPartial
		ecl.Magnitude = (rMoon + rUmbra - dMin) / rMoon / 2
		ecl.PartialStartJD, ecl.PartialEndJD = contactTimes(tExtremumJD2000, xMin, yMin, vx, vy, rMoon+rUmbra)

		if dMin <= rUmbra-rMoon {
			ecl.Type = LunarTotal
			ecl.TotalStartJD, ecl.TotalEndJD = contactTimes(tExtremumJD2000, xMin, yMin, vx, vy, rUmbra-rMoon)
		}
	}

	return ecl
}

// solveContactQuadratic is spec §4.14's contact-time formula for the pair
// of instants at which the Moon-shadow separation equals radius r, given
// the local linear track (x0,y0)+(vx,vy)·Δt anchored at jdOrigin (JD2000
// days; vx, vy in radians/day).
func solveContactQuadratic(jdOrigin, x0, y0, vx, vy, r float64) (tIn, tEg float64, ok bool) {
	b := y0*vx - x0*vy
	a := vx*vx + vy*vy
	bTerm := vx * b
	c := b*b - r*r*vy*vy

	disc := bTerm*bTerm - a*c
	if disc < 0 || a == 0 {
		return 0, 0, false
	}
	sqrtDisc := math.Sqrt(disc)

	tIn = jdOrigin + ((-bTerm-sqrtDisc)/a-x0)/vx
	tEg = jdOrigin + ((-bTerm+sqrtDisc)/a-x0)/vx
	return tIn, tEg, true
}

// contactTimes solves for ingress/egress at radius r, then recomputes the
// shadow coordinates from scratch at each solved instant and resolves the
// quadratic once more from that fresh origin -- spec §4.14's
// re-evaluation step, needed for minute-level precision since the radii
// and the track origin drift slowly with distance over the eclipse.
func contactTimes(jdExtremum, x0, y0, vx, vy, r float64) (ingress, egress float64) {
	tIn, tEg, ok := solveContactQuadratic(jdExtremum, x0, y0, vx, vy, r)
	if !ok {
		return 0, 0
	}
	return refineContact(tIn, vx, vy, r), refineContact(tEg, vx, vy, r)
}

func refineContact(tApprox, vx, vy, r float64) float64 {
	x, y, _, _, _ := shadowCoordinates(tApprox / xconst.DaysPerJulianCentury)
	tIn, tEg, ok := solveContactQuadratic(tApprox, x, y, vx, vy, r)
	if !ok {
		return tApprox
	}
	if math.Abs(tIn-tApprox) <= math.Abs(tEg-tApprox) {
		return tIn
	}
	return tEg
}
