package block

import "github.com/goopsie/ddsbc/pkg/bitutil"

// bc6hMask returns the all-ones mask for an n-bit unsigned field.
func bc6hMask(n int) int32 {
	return int32(1)<<uint(n) - 1
}

// bc6hUnquantizeMagnitude is the unsigned unquantize rule of spec.md
// §4.C step 5: identity once bits is wide enough to already cover the
// 16-bit domain, 0 maps to 0, the all-ones value maps to 0xFFFF, and
// every other value is rescaled by ((x<<15)+0x4000)>>(bits-1).
func bc6hUnquantizeMagnitude(x int32, bits int) int32 {
	if bits >= 15 {
		return x
	}
	if x == 0 {
		return 0
	}
	if x == bc6hMask(bits) {
		return 0xFFFF
	}
	return ((x << 15) + 0x4000) >> uint(bits-1)
}

// bc6hUnquantize applies spec.md §4.C step 5 to one decoded endpoint
// channel: the unsigned rule directly, or (when signed) the same rule
// applied to the magnitude with bits-1, sign reattached, with an
// EPB>=16 identity shortcut.
func bc6hUnquantize(x int32, bits int, signed bool) int32 {
	if !signed {
		return bc6hUnquantizeMagnitude(x, bits)
	}
	if bits >= 16 {
		return x
	}
	sign := int32(1)
	v := x
	if v < 0 {
		sign = -1
		v = -v
	}
	return sign * bc6hUnquantizeMagnitude(v, bits-1)
}

// bc6hFinalUnquantize applies spec.md §4.C step 8 to an interpolated,
// already-unquantized 16-bit-domain component: unsigned (x*31)>>6, or
// signed sign-isolate then (x*31)>>5 with the sign reattached.
func bc6hFinalUnquantize(x int32, signed bool) int32 {
	if !signed {
		return (x * 31) >> 6
	}
	sign := int32(1)
	v := x
	if v < 0 {
		sign = -1
		v = -v
	}
	return sign * ((v * 31) >> 5)
}

// bc6hToHalfBits folds a finally-unquantized component into an IEEE
// half-float bit pattern, clamped to the largest finite half magnitude.
func bc6hToHalfBits(v int32, signed bool) uint16 {
	sign := uint16(0)
	if signed && v < 0 {
		sign = 0x8000
		v = -v
	}
	if v > 0x7BFF {
		v = 0x7BFF
	}
	return sign | uint16(v)
}

// DecompressBC6HBlock decodes a 16-byte BC6H block into 16 texels of
// three half-float components (R, G, B; BC6H carries no alpha). dst is
// addressed in uint16 elements: dstStrideX is the element distance
// between adjacent pixels (at least 3) and dstPitchY the element
// distance between rows.
//
// Bit layout follows spec.md §4.C's decode pipeline literally: mode
// selector, then the base endpoint and every subsequent endpoint's
// per-channel delta (each at its own DBr/DBg/DBb width), then — only
// for two-subset modes — the 5-bit partition-set id, landing at bit 77
// exactly because the selector+endpoint fields above sum to 77 bits for
// every two-subset mode (65 for single-subset, with no partition id),
// matching the index-bit-stream start spec.md places at 82/65. An
// unrecognized 5-bit mode pattern (one of the 4 reserved codes 19, 23,
// 27 and 31) is the reserved/invalid case: the whole 4x4 region decodes
// to zero.
func DecompressBC6HBlock(dst []uint16, dstStrideX, dstPitchY int, src []byte, signed bool) {
	lo := uint64(bitutil.U32FromLE(src, 0)) | uint64(bitutil.U32FromLE(src, 4))<<32
	hi := uint64(bitutil.U32FromLE(src, 8)) | uint64(bitutil.U32FromLE(src, 12))<<32

	pos := 0
	read := func(n int) int32 {
		if n == 0 {
			return 0
		}
		v := int32(bitutil.ExtractBits64(lo, hi, pos, n))
		pos += n
		return v
	}

	sel2 := int(read(2))
	var info *bc6hModeInfo
	if sel2 == 0 || sel2 == 1 {
		info = lookupBC6HMode(sel2, false, 0)
	} else {
		sel3 := int(read(3))
		sel5 := sel2 | (sel3 << 2)
		info = lookupBC6HMode(sel2, true, sel5)
	}
	if info == nil {
		zeroFillHalf4x4(dst, dstStrideX, dstPitchY)
		return
	}

	type comp struct{ r, g, b int32 }
	numEP := 2 * info.NS
	raw := make([]comp, numEP)

	raw[0].r = read(info.EPB)
	raw[0].g = read(info.EPB)
	raw[0].b = read(info.EPB)

	for e := 1; e < numEP; e++ {
		if !info.Transformed {
			raw[e].r = read(info.EPB)
			raw[e].g = read(info.EPB)
			raw[e].b = read(info.EPB)
			continue
		}
		dr := read(info.DBr)
		dg := read(info.DBg)
		db := read(info.DBb)
		if info.ReverseDelta {
			dr = int32(bitutil.ReverseBits(uint32(dr), info.DBr))
			dg = int32(bitutil.ReverseBits(uint32(dg), info.DBg))
			db = int32(bitutil.ReverseBits(uint32(db), info.DBb))
		}
		sdr := bitutil.SignExtend(uint32(dr), info.DBr)
		sdg := bitutil.SignExtend(uint32(dg), info.DBg)
		sdb := bitutil.SignExtend(uint32(db), info.DBb)
		mask := bc6hMask(info.EPB)
		raw[e].r = (raw[0].r + sdr) & mask
		raw[e].g = (raw[0].g + sdg) & mask
		raw[e].b = (raw[0].b + sdb) & mask
	}

	if signed {
		raw[0].r = bitutil.SignExtend(uint32(raw[0].r), info.EPB)
		raw[0].g = bitutil.SignExtend(uint32(raw[0].g), info.EPB)
		raw[0].b = bitutil.SignExtend(uint32(raw[0].b), info.EPB)
		for e := 1; e < numEP; e++ {
			raw[e].r = bitutil.SignExtend(uint32(raw[e].r)&uint32(bc6hMask(info.EPB)), info.EPB)
			raw[e].g = bitutil.SignExtend(uint32(raw[e].g)&uint32(bc6hMask(info.EPB)), info.EPB)
			raw[e].b = bitutil.SignExtend(uint32(raw[e].b)&uint32(bc6hMask(info.EPB)), info.EPB)
		}
	}

	ns := info.NS
	partitionID := 0
	if ns == 2 {
		partitionID = int(read(5))
	}

	endpoints := make([]comp, numEP)
	for e := range raw {
		endpoints[e].r = bc6hUnquantize(raw[e].r, info.EPB, signed)
		endpoints[e].g = bc6hUnquantize(raw[e].g, info.EPB, signed)
		endpoints[e].b = bc6hUnquantize(raw[e].b, info.EPB, signed)
	}

	anchors := bc7Anchors(ns, partitionID)
	subsetOf := func(texel int) int {
		if ns == 1 {
			return 0
		}
		return bc7Partition(ns, partitionID, texel)
	}

	indices := make([]int, 16)
	for t := 0; t < 16; t++ {
		width := info.IndexBits
		if anchors[subsetOf(t)] == t {
			width--
		}
		indices[t] = int(read(width))
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			t := y*4 + x
			s := subsetOf(t)
			e0, e1 := endpoints[2*s], endpoints[2*s+1]
			factor := bc7Factor(info.IndexBits, indices[t])

			lerp := func(a, b int32) int32 {
				return (a*int32(64-factor) + b*int32(factor) + 32) >> 6
			}
			r := bc6hToHalfBits(bc6hFinalUnquantize(lerp(e0.r, e1.r), signed), signed)
			g := bc6hToHalfBits(bc6hFinalUnquantize(lerp(e0.g, e1.g), signed), signed)
			b := bc6hToHalfBits(bc6hFinalUnquantize(lerp(e0.b, e1.b), signed), signed)

			off := pixelOffset(dstStrideX, dstPitchY, x, y)
			dst[off+0] = r
			dst[off+1] = g
			dst[off+2] = b
		}
	}
}

func zeroFillHalf4x4(dst []uint16, dstStrideX, dstPitchY int) {
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			off := pixelOffset(dstStrideX, dstPitchY, x, y)
			dst[off+0] = 0
			dst[off+1] = 0
			dst[off+2] = 0
		}
	}
}
