package coord

import "math"

// PrecessionModel selects which polynomial-coefficient table is used for
// the precession angles, per spec §3/§4.6.
type PrecessionModel int

const (
	// IAU1976 is the Lieske (1977) four-coefficient polynomial, the
	// precession model paired with the IAU 1980 nutation theory.
	IAU1976 PrecessionModel = iota
	// IAU2000 reuses the IAU1976 precession polynomials (the IAU 2000
	// resolutions revised nutation, not precession) paired with the
	// IAU 2000B nutation series used elsewhere in this package.
	IAU2000
	// P03 is the IAU 2006 (Capitaine et al. 2003) six-coefficient
	// polynomial, paired with a quartic closed-form obliquity.
	P03
)

var precessionModel = P03

// SetPrecessionModel sets the process-wide precession model used by
// PrecessionAngles and the J2000↔date rotations. Default is P03. Not safe
// for concurrent use — call once at program startup, matching
// SetNutationPrecision's idiom.
func SetPrecessionModel(m PrecessionModel) {
	precessionModel = m
}

// zetaZTheta returns the three equatorial precession angles (ζ_A, z_A, θ_A)
// in radians for Julian centuries T under the given model.
func zetaZTheta(T float64, model PrecessionModel) (zetaA, zA, thetaA float64) {
	switch model {
	case P03:
		zetaA = (2.650545 + 2306.083227*T + 0.2988499*T*T +
			0.01801828*T*T*T - 0.000005971*T*T*T*T) * arcsec2rad
		zA = (-2.650545 + 2306.077181*T + 1.0927348*T*T +
			0.01826837*T*T*T - 0.000028596*T*T*T*T) * arcsec2rad
		thetaA = (2004.191903*T - 0.4294934*T*T -
			0.04182264*T*T*T - 0.000007089*T*T*T*T) * arcsec2rad
	default: // IAU1976, IAU2000 share the Lieske (1977) cubic polynomials
		zetaA = (2306.2181*T + 0.30188*T*T + 0.017998*T*T*T) * arcsec2rad
		zA = (2306.2181*T + 1.09468*T*T + 0.018203*T*T*T) * arcsec2rad
		thetaA = (2004.3109*T - 0.42665*T*T - 0.041833*T*T*T) * arcsec2rad
	}
	return
}

// Obliquity returns the mean obliquity of the ecliptic at T (Julian
// centuries since J2000), in radians, under the given precession model:
// IAU1976/IAU2000 use the Lieske(1979)/IAU1980 polynomial, P03 the IAU 2006
// quartic closed form (spec §4.6: "the P03 closed-form ε(T) is provided as
// a direct polynomial for the hot path").
func Obliquity(T float64, model PrecessionModel) float64 {
	if model == P03 {
		return (84381.406 + T*(-46.836769+T*(-0.0001831+T*(0.00200340+T*(-0.000000576-T*0.0000000434))))) * arcsec2rad
	}
	return meanObliquity(T)
}

// precessionMatrixInverse computes P^T, the transpose of the equatorial
// precession rotation matrix P (J2000 → mean equator and equinox of date),
// using the process-wide precessionModel. P^T transforms date → J2000.
func precessionMatrixInverse(T float64) [3][3]float64 {
	zetaA, zA, thetaA := zetaZTheta(T, precessionModel)

	cosZetaA, sinZetaA := math.Cos(zetaA), math.Sin(zetaA)
	cosZA, sinZA := math.Cos(zA), math.Sin(zA)
	cosThetaA, sinThetaA := math.Cos(thetaA), math.Sin(thetaA)

	// P = Rz(-zA) · Ry(thetaA) · Rz(-zetaA); we want P^T.
	p11 := cosZA*cosThetaA*cosZetaA - sinZA*sinZetaA
	p12 := -cosZA*cosThetaA*sinZetaA - sinZA*cosZetaA
	p13 := -cosZA * sinThetaA
	p21 := sinZA*cosThetaA*cosZetaA + cosZA*sinZetaA
	p22 := -sinZA*cosThetaA*sinZetaA + cosZA*cosZetaA
	p23 := -sinZA * sinThetaA
	p31 := sinThetaA * cosZetaA
	p32 := -sinThetaA * sinZetaA
	p33 := cosThetaA

	return [3][3]float64{
		{p11, p21, p31},
		{p12, p22, p32},
		{p13, p23, p33},
	}
}

// EquatorialPrecess rotates an equatorial rectangular position from J2000
// to the mean equator and equinox of date (spec §4.6 "Equatorial J2000 →
// date"). Use EquatorialPrecessInverse for the reverse rotation.
func EquatorialPrecess(x, y, z float64, T float64) (x2, y2, z2 float64) {
	PT := precessionMatrixInverse(T) // date -> J2000; apply transpose for J2000 -> date
	x2 = PT[0][0]*x + PT[1][0]*y + PT[2][0]*z
	y2 = PT[0][1]*x + PT[1][1]*y + PT[2][1]*z
	z2 = PT[0][2]*x + PT[1][2]*y + PT[2][2]*z
	return
}

// EquatorialPrecessInverse rotates an equatorial rectangular position from
// the mean equator and equinox of date back to J2000.
func EquatorialPrecessInverse(x, y, z float64, T float64) (x2, y2, z2 float64) {
	PT := precessionMatrixInverse(T)
	x2 = PT[0][0]*x + PT[0][1]*y + PT[0][2]*z
	y2 = PT[1][0]*x + PT[1][1]*y + PT[1][2]*z
	z2 = PT[2][0]*x + PT[2][1]*y + PT[2][2]*z
	return
}

// EclipticPrecess rotates an ecliptic spherical coordinate from J2000 to
// the mean ecliptic and equinox of date via the multi-step rotation of
// spec §4.6: add φ (pi) to λ, rotate by ω (w) about x, subtract χ (x) from
// λ, rotate by −ε about x is NOT part of the ecliptic step (that belongs
// to the ecliptic↔equatorial conversion in Rotate); here we only apply the
// precession-specific longitude shift and pole wobble.
func EclipticPrecess(lon, lat float64, T float64) (lon2, lat2 float64) {
	phi, w, chi := eclipticPrecessionAngles(T, precessionModel)

	lon1 := lon + phi
	lon3, lat3, _ := Rotate(lon1, lat, 1, w)
	lon2 = NormalizePositive(lon3 - chi)
	lat2 = lat3
	return
}

// EclipticPrecessInverse inverts EclipticPrecess.
func EclipticPrecessInverse(lon, lat float64, T float64) (lon2, lat2 float64) {
	phi, w, chi := eclipticPrecessionAngles(T, precessionModel)

	lon1 := lon + chi
	lon3, lat3, _ := Rotate(lon1, lat, -1, -w)
	_ = lon3
	lon2 = NormalizePositive(lon3 - phi)
	lat2 = lat3
	return
}

// eclipticPrecessionAngles returns (φ, ω, χ) in radians, the ecliptic
// precession parameters (Williams 1994 / Capitaine et al. 2003 style
// cubic polynomials), used by EclipticPrecess.
func eclipticPrecessionAngles(T float64, model PrecessionModel) (phi, w, chi float64) {
	switch model {
	case P03:
		phi = (5038.481507*T - 1.0790069*T*T - 0.00114045*T*T*T) * arcsec2rad
		w = Obliquity(0, P03) + (-0.025754*T+0.0512623*T*T-0.00772503*T*T*T)*arcsec2rad
		chi = (10.556403*T - 2.3814292*T*T - 0.00121197*T*T*T) * arcsec2rad
	default:
		phi = (5029.0966*T + 1.11113*T*T - 0.000006*T*T*T) * arcsec2rad
		w = Obliquity(0, IAU1976) + (0)*T
		chi = (10.5526*T - 2.38064*T*T - 0.001125*T*T*T) * arcsec2rad
	}
	return
}
