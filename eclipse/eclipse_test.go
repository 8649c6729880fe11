package eclipse

import (
	"math"
	"testing"
)

func TestClassifySolarEclipse_ReturnsKnownType(t *testing.T) {
	// 2024-04-08 was a total solar eclipse over North America; its JD2000
	// is roughly 8864.
	result := ClassifySolarEclipse(8864.0)
	switch result.Type {
	case SolarTotal, SolarTotal0, SolarTotal1, SolarHybrid, SolarHybrid2, SolarHybrid3:
	default:
		t.Errorf("expected a total-family type near 2024-04-08, got %q (gamma=%v)", result.Type, result.Gamma)
	}
	if math.Abs(result.NewMoonJD2000-8864.0) > 2 {
		t.Errorf("new moon JD2000 %v too far from seed 8864", result.NewMoonJD2000)
	}
}

func TestClassifySolarEclipse_FarFromNodeIsNone(t *testing.T) {
	// Most new moons are not eclipses; scan a handful and expect at least
	// one N result among them.
	foundNone := false
	for k := 0.0; k < 12; k++ {
		r := ClassifySolarEclipse(9000.0 + k*29.5306)
		if r.Type == SolarNone {
			foundNone = true
			break
		}
	}
	if !foundNone {
		t.Error("expected at least one non-eclipse new moon in a 12-month scan")
	}
}

func TestClassifySolarEclipse_GammaBoundedNearEclipse(t *testing.T) {
	result := ClassifySolarEclipse(8864.0)
	if math.Abs(result.Gamma) > 2 {
		t.Errorf("gamma %v implausible for a classified eclipse", result.Gamma)
	}
}

func TestClassifyLunarEclipse_KnownTotalEclipse(t *testing.T) {
	// 2021-05-26 was a total lunar eclipse; its JD2000 is roughly 7816.46.
	ecl := ClassifyLunarEclipse(7816.0)
	if ecl.Type != LunarTotal {
		t.Fatalf("expected total lunar eclipse near 2021-05-26, got %q", ecl.Type)
	}
	if ecl.Magnitude <= 1.0 {
		t.Errorf("total eclipse magnitude %v should exceed 1.0", ecl.Magnitude)
	}
	if !(ecl.PenumbralStartJD < ecl.PartialStartJD &&
		ecl.PartialStartJD < ecl.TotalStartJD &&
		ecl.TotalStartJD <= ecl.MaximumJD2000 &&
		ecl.MaximumJD2000 <= ecl.TotalEndJD &&
		ecl.TotalEndJD < ecl.PartialEndJD &&
		ecl.PartialEndJD < ecl.PenumbralEndJD) {
		t.Errorf("contact times out of order: %+v", ecl)
	}
}

func TestClassifyLunarEclipse_NonEclipseFullMoonHasNoneType(t *testing.T) {
	// Scan a run of full moons and expect at least one with no eclipse.
	foundNone := false
	for k := 0.0; k < 12; k++ {
		ecl := ClassifyLunarEclipse(9000.0 + k*29.5306)
		if ecl.Type == LunarNone {
			foundNone = true
			break
		}
	}
	if !foundNone {
		t.Error("expected at least one non-eclipse full moon in a 12-month scan")
	}
}

func TestShadowCoordinates_RadiiArePositiveAndOrdered(t *testing.T) {
	_, _, rMoon, rUmbra, rPenumbra := shadowCoordinates(0.26)
	if rMoon <= 0 || rPenumbra <= 0 {
		t.Fatalf("moon/penumbra radii should be positive: moon=%v penumbra=%v", rMoon, rPenumbra)
	}
	if rPenumbra <= rUmbra {
		t.Errorf("penumbra radius %v should exceed umbra radius %v", rPenumbra, rUmbra)
	}
}
