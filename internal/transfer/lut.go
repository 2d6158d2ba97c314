package transfer

// decodeLUT maps every sRGB byte to its linear value.
// 256 entries, 2KB. Built once at init and read-only afterwards.
var decodeLUT [256]float64

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = SRGBToLinear(U8ToUnit(uint8(i)))
	}
}

// DecodeU8 converts an sRGB byte to linear light using the lookup table.
//
// Example:
//
//	l := DecodeU8(128) // ~0.2159 (not 0.5!)
func DecodeU8(s uint8) float64 {
	return decodeLUT[s]
}
