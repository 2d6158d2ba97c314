package transfer

import "math"

// SMPTE ST 2084 (PQ) constants.
const (
	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32
)

// LinearToPQ applies the ST 2084 inverse EOTF. Linear 1.0 is the PQ peak
// (10000 cd/m²). Negative input mirrors the curve.
func LinearToPQ(l float64) float64 {
	if l < 0 {
		return -LinearToPQ(-l)
	}
	p := math.Pow(l, pqM1)
	return math.Pow((pqC1+pqC2*p)/(1+pqC3*p), pqM2)
}

// PQToLinear applies the ST 2084 EOTF, the inverse of LinearToPQ.
func PQToLinear(e float64) float64 {
	if e < 0 {
		return -PQToLinear(-e)
	}
	p := math.Pow(e, 1/pqM2)
	return math.Pow(max(p-pqC1, 0)/(pqC2-pqC3*p), 1/pqM1)
}

// BT.601 camera curve constants, shared by BT.709 and 10-bit BT.2020.
const (
	bt601Alpha     = 1.099
	bt601Beta      = 0.018
	bt601Slope     = 4.5
	bt601Exponent  = 0.45
	bt601Threshold = bt601Beta * bt601Slope
)

// LinearToBT601 applies the ITU-R BT.601 OETF.
// Formula: if l < 0.018: 4.5*l; else: 1.099*pow(l, 0.45)-0.099
func LinearToBT601(l float64) float64 {
	if l < bt601Beta {
		return l * bt601Slope
	}
	return bt601Alpha*math.Pow(l, bt601Exponent) - (bt601Alpha - 1)
}

// BT601ToLinear inverts LinearToBT601.
func BT601ToLinear(e float64) float64 {
	if e < bt601Threshold {
		return e / bt601Slope
	}
	return math.Pow((e+bt601Alpha-1)/bt601Alpha, 1/bt601Exponent)
}
