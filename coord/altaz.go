package coord

import "math"

// Altaz converts a geocentric J2000 equatorial rectangular position vector
// to altitude and azimuth for a ground observer at the given geodetic
// latitude and longitude. jdUT1 is the UT1 Julian date (needed for Earth
// rotation).
//
// Returns altitude (degrees, positive above horizon, geometric — no
// refraction), azimuth (degrees, 0=North, 90=East, spec §9's north-based
// clockwise-positive convention), and distance (km).
//
// The rotation chain is: J2000 → mean equator of date (precession) → true
// equator of date (nutation) → Earth-fixed frame (Earth rotation via GAST)
// → local horizon (lat/lon).
func Altaz(posJ2000 [3]float64, latDeg, lonDeg, jdUT1 float64) (altDeg, azDeg, distKm float64) {
	T := (jdUT1 - j2000JD) / 36525.0

	// Precession: J2000 -> mean equator of date.
	xMean, yMean, zMean := EquatorialPrecess(posJ2000[0], posJ2000[1], posJ2000[2], T)

	// Nutation: mean equator -> true equator of date.
	dpsiRad, depsRad := nutationAngles(T)
	epsM := meanObliquity(T)
	N := nutationMatrix(dpsiRad, depsRad, epsM)
	xTrue := N[0][0]*xMean + N[0][1]*yMean + N[0][2]*zMean
	yTrue := N[1][0]*xMean + N[1][1]*yMean + N[1][2]*zMean
	zTrue := N[2][0]*xMean + N[2][1]*yMean + N[2][2]*zMean

	// Earth rotation: true equator of date -> Earth-fixed, via Rz(-GAST).
	gastRad := GAST(jdUT1) * deg2rad
	sinG, cosG := math.Sincos(gastRad)
	xFixed := cosG*xTrue + sinG*yTrue
	yFixed := -sinG*xTrue + cosG*yTrue
	zFixed := zTrue

	// Local horizon: Earth-fixed -> topocentric North-East-Up.
	lat := latDeg * deg2rad
	lon := lonDeg * deg2rad
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)

	x1 := cosLon*xFixed + sinLon*yFixed
	y1 := -sinLon*xFixed + cosLon*yFixed
	z1 := zFixed

	xLocal := -sinLat*x1 + cosLat*z1
	yLocal := y1
	zLocal := cosLat*x1 + sinLat*z1

	distKm = math.Sqrt(xLocal*xLocal + yLocal*yLocal + zLocal*zLocal)
	rXY := math.Sqrt(xLocal*xLocal + yLocal*yLocal)
	altDeg = math.Atan2(zLocal, rXY) * rad2deg
	azDeg = math.Mod(math.Atan2(yLocal, xLocal)*rad2deg+360.0, 360.0)

	return
}

// HourAngleDec computes the local hour angle and declination of a
// geocentric J2000 equatorial position vector for an observer at the given
// longitude. jdUT1 is the UT1 Julian date.
//
// Hour angle is measured westward from the local meridian (0° = on
// meridian, positive = west). Declination is measured from the true
// equator of date.
func HourAngleDec(posJ2000 [3]float64, lonDeg, jdUT1 float64) (haDeg, decDeg float64) {
	T := (jdUT1 - j2000JD) / 36525.0

	xMean, yMean, zMean := EquatorialPrecess(posJ2000[0], posJ2000[1], posJ2000[2], T)

	dpsiRad, depsRad := nutationAngles(T)
	epsM := meanObliquity(T)
	N := nutationMatrix(dpsiRad, depsRad, epsM)
	xTrue := N[0][0]*xMean + N[0][1]*yMean + N[0][2]*zMean
	yTrue := N[1][0]*xMean + N[1][1]*yMean + N[1][2]*zMean
	zTrue := N[2][0]*xMean + N[2][1]*yMean + N[2][2]*zMean

	r := math.Sqrt(xTrue*xTrue + yTrue*yTrue + zTrue*zTrue)
	if r == 0 {
		return 0, 0
	}
	rXY := math.Sqrt(xTrue*xTrue + yTrue*yTrue)
	decDeg = math.Atan2(zTrue, rXY) * rad2deg
	raDeg := math.Mod(math.Atan2(yTrue, xTrue)*rad2deg+360.0, 360.0)

	gastDeg := GAST(jdUT1)
	haDeg = math.Mod(gastDeg+lonDeg-raDeg+720.0, 360.0)

	return
}
