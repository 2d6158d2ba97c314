// Package shader provides WGSL versions of the sRGB transfer functions so
// that GPU passes decode and encode colors exactly like the CPU side.
//
// The WGSL constants match those used by colorenc conversions. Library
// returns the bare functions for inclusion in a larger shader; DecodeSource
// is a complete compute shader that decodes a buffer of sRGB colors to
// linear light. Compile turns either into SPIR-V words via naga.
package shader

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/colorenc"
)

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic uint32 = 0x07230203

// DecodeWorkgroupSize is the workgroup size of the decode entry point.
// Dispatch ceil(count / DecodeWorkgroupSize) workgroups.
const DecodeWorkgroupSize = 64

// DecodeEntryPoint is the compute entry point of DecodeSource.
const DecodeEntryPoint = "main"

var (
	// ErrEmptySource is returned when Compile is given no source.
	ErrEmptySource = errors.New("shader: empty source")

	// ErrInvalidSPIRV is returned when the compiler output is not a SPIR-V
	// module.
	ErrInvalidSPIRV = errors.New("shader: invalid SPIR-V output")
)

//go:embed transfer.wgsl
var transferWGSL string

//go:embed decode.wgsl
var decodeWGSL string

// Library returns the WGSL transfer functions srgb_eotf, srgb_oetf,
// srgb_to_linear and linear_to_srgb.
func Library() string {
	return transferWGSL
}

// DecodeSource returns a compute shader that decodes colors in place.
//
// Bindings (group 0):
//
//	0: uniform { count: u32, premultiply: u32 }
//	1: storage, read_write array<vec4<f32>>
func DecodeSource() string {
	return transferWGSL + "\n" + decodeWGSL
}

// Compile compiles WGSL source to SPIR-V words.
func Compile(src string) ([]uint32, error) {
	if src == "" {
		return nil, ErrEmptySource
	}

	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("shader: failed to compile: %w", err)
	}
	if len(spirvBytes) < 4 || len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	if words[0] != SPIRVMagic {
		return nil, fmt.Errorf("%w: magic 0x%08X", ErrInvalidSPIRV, words[0])
	}

	colorenc.LoggerFor("shader").Debug("compiled", "words", len(words))
	return words, nil
}
