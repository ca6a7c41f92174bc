// Package colorutil provides the small fixed-width color records and
// weighted-interpolation primitives shared by every BC block decoder.
package colorutil

import "github.com/goopsie/ddsbc/pkg/bitutil"

// RGBA8 is a four 8-bit-channel color (B8G8R8A8 in storage order used by
// BC1/BC2/BC3's 5/6/5-expanded endpoints, but addressed by field name).
type RGBA8 struct {
	R, G, B, A uint8
}

// RGB16 holds three 16-bit channels, the unquantized domain BC6H decodes
// into before producing half-float output.
type RGB16 struct {
	R, G, B uint16
}

// DecodeRGB565 unpacks a 16-bit B5G6R5 value into an 8-bit-per-channel
// color with alpha fixed at 255, expanding each channel by bit replication.
func DecodeRGB565(c uint16) RGBA8 {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	return RGBA8{
		R: bitutil.ExpandChannelTo8(r5, 5),
		G: bitutil.ExpandChannelTo8(g6, 6),
		B: bitutil.ExpandChannelTo8(b5, 5),
		A: 255,
	}
}

// Interpolate3 returns ((3-factor)*ca + factor*cb + 1) / 3 per channel,
// for factor in {1,2} (the BC1 8-color-mode 1/3 and 2/3 entries).
func Interpolate3(ca, cb RGBA8, factor int) RGBA8 {
	lerp := func(a, b uint8) uint8 {
		return uint8((uint32(3-factor)*uint32(a) + uint32(factor)*uint32(b) + 1) / 3)
	}
	return RGBA8{R: lerp(ca.R, cb.R), G: lerp(ca.G, cb.G), B: lerp(ca.B, cb.B), A: 255}
}

// Interpolate2 returns ((1-factor)*ca + factor*cb) / 2 per channel, for
// factor in {0,1} (the BC1 3-color-mode midpoint).
func Interpolate2(ca, cb RGBA8, factor int) RGBA8 {
	lerp := func(a, b uint8) uint8 {
		return uint8((uint32(1-factor)*uint32(a) + uint32(factor)*uint32(b)) / 2)
	}
	return RGBA8{R: lerp(ca.R, cb.R), G: lerp(ca.G, cb.G), B: lerp(ca.B, cb.B), A: 255}
}

// Interpolate64 returns ((64-factor)*ca + factor*cb + 32) >> 6 per
// channel, for factor in 0..64 — the BC6H/BC7 color-weight table lerp.
func Interpolate64(ca, cb RGBA8, factor int) RGBA8 {
	lerp := func(a, b uint8) uint8 {
		return uint8((uint32(64-factor)*uint32(a) + uint32(factor)*uint32(b) + 32) >> 6)
	}
	return RGBA8{R: lerp(ca.R, cb.R), G: lerp(ca.G, cb.G), B: lerp(ca.B, cb.B), A: lerp(ca.A, cb.A)}
}

// Interpolate64Alpha is Interpolate64 with an independent alpha weight,
// used by BC7 when color and alpha draw indices from different bitstreams.
func Interpolate64Alpha(ca, cb RGBA8, factorC, factorA int) RGBA8 {
	c := Interpolate64(ca, cb, factorC)
	c.A = uint8((uint32(64-factorA)*uint32(ca.A) + uint32(factorA)*uint32(cb.A) + 32) >> 6)
	return c
}

// Interpolate64RGB16 is Interpolate64 over the 16-bit unquantized domain
// BC6H works in, rounding the same way.
func Interpolate64RGB16(ca, cb RGB16, factor int) RGB16 {
	lerp := func(a, b uint16) uint16 {
		return uint16((uint32(64-factor)*uint32(a) + uint32(factor)*uint32(b) + 32) >> 6)
	}
	return RGB16{R: lerp(ca.R, cb.R), G: lerp(ca.G, cb.G), B: lerp(ca.B, cb.B)}
}
