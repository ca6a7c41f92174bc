package block

import (
	"github.com/goopsie/ddsbc/pkg/bitutil"
	"github.com/goopsie/ddsbc/pkg/colorutil"
)

// bc7Endpoint holds one decoded, 8-bit-expanded color/alpha endpoint.
type bc7Endpoint = colorutil.RGBA8

// DecompressBC7Block decodes a 16-byte BC7 block into 16 RGBA8 texels.
// dst, dstStrideX and dstPitchY address the destination the same way as
// the other block decoders: 4 bytes per pixel (R,G,B,A), row-major.
//
// An unrecognized mode byte (all eight mode-select bits zero) is not a
// valid BC7 encoding; per the decoder's zero-fill-on-invalid-block
// policy the whole 4x4 region is written as transparent black and no
// error is raised, matching how a GPU sampler would treat the bits.
func DecompressBC7Block(dst []byte, dstStrideX, dstPitchY int, src []byte) {
	lo := uint64(bitutil.U32FromLE(src, 0)) | uint64(bitutil.U32FromLE(src, 4))<<32
	hi := uint64(bitutil.U32FromLE(src, 8)) | uint64(bitutil.U32FromLE(src, 12))<<32

	mode := -1
	for i := 0; i < 8; i++ {
		if src[0]&(1<<uint(i)) != 0 {
			mode = i
			break
		}
	}
	if mode == -1 {
		zeroFill4x4(dst, dstStrideX, dstPitchY)
		return
	}

	info := bc7Modes[mode]
	pos := mode + 1

	read := func(n int) int {
		if n == 0 {
			return 0
		}
		v := int(bitutil.ExtractBits64(lo, hi, pos, n))
		pos += n
		return v
	}

	partitionID := read(info.PB)
	rotation := read(info.RB)
	indexSelection := read(info.ISB)

	ns := info.NS
	numEP := 2 * ns

	// Endpoints: R,G,B channels always; alpha channel only if AB>0.
	raw := make([][4]int, numEP)
	for ch := 0; ch < 3; ch++ {
		for e := 0; e < numEP; e++ {
			raw[e][ch] = read(info.CB)
		}
	}
	if info.AB > 0 {
		for e := 0; e < numEP; e++ {
			raw[e][3] = read(info.AB)
		}
	}

	// p-bits: either one per endpoint (EPB) or one shared per subset (SPB).
	pbits := make([]int, numEP)
	if info.EPB == 1 {
		for e := 0; e < numEP; e++ {
			pbits[e] = read(1)
		}
	} else if info.SPB == 1 {
		for s := 0; s < ns; s++ {
			b := read(1)
			pbits[2*s] = b
			pbits[2*s+1] = b
		}
	}

	precision := info.CB
	if info.EPB == 1 || info.SPB == 1 {
		precision++
	}

	hasPBit := info.EPB == 1 || info.SPB == 1

	endpoints := make([]bc7Endpoint, numEP)
	for e := 0; e < numEP; e++ {
		expand := func(v, bits int) uint8 {
			if hasPBit {
				v = (v << 1) | pbits[e]
			}
			return bitutil.ExpandChannelTo8(uint32(v), bits)
		}
		endpoints[e].R = expand(raw[e][0], precision)
		endpoints[e].G = expand(raw[e][1], precision)
		endpoints[e].B = expand(raw[e][2], precision)
		if info.AB > 0 {
			aprec := info.AB
			if hasPBit {
				aprec++
			}
			endpoints[e].A = expand(raw[e][3], aprec)
		} else {
			endpoints[e].A = 0xFF
		}
	}

	anchors := bc7Anchors(ns, partitionID)
	subsetOf := func(texel int) int {
		if ns == 1 {
			return 0
		}
		return bc7Partition(ns, partitionID, texel)
	}
	isAnchor := func(texel, subset int) bool {
		return anchors[subset] == texel
	}

	primary := make([]int, 16)
	for t := 0; t < 16; t++ {
		width := info.IB
		if isAnchor(t, subsetOf(t)) {
			width--
		}
		primary[t] = read(width)
	}

	var secondary []int
	if info.IB2 > 0 {
		secondary = make([]int, 16)
		for t := 0; t < 16; t++ {
			width := info.IB2
			if isAnchor(t, subsetOf(t)) {
				width--
			}
			secondary[t] = read(width)
		}
	}

	colorIdx, alphaIdx := primary, primary
	colorWidth, alphaWidth := info.IB, info.IB
	if secondary != nil {
		if indexSelection == 0 {
			alphaIdx, alphaWidth = secondary, info.IB2
		} else {
			colorIdx, colorWidth = secondary, info.IB2
			alphaIdx, alphaWidth = primary, info.IB
		}
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			t := y*4 + x
			s := subsetOf(t)
			e0, e1 := endpoints[2*s], endpoints[2*s+1]

			cf := bc7Factor(colorWidth, colorIdx[t])
			af := 0
			if info.AB > 0 {
				af = bc7Factor(alphaWidth, alphaIdx[t])
			}
			c := colorutil.Interpolate64Alpha(e0, e1, cf, af)
			if info.AB == 0 {
				c.A = 0xFF
			}

			px := [4]uint8{c.R, c.G, c.B, c.A}
			switch rotation {
			case 1:
				px[0], px[3] = px[3], px[0]
			case 2:
				px[1], px[3] = px[3], px[1]
			case 3:
				px[2], px[3] = px[3], px[2]
			}

			off := pixelOffset(dstStrideX, dstPitchY, x, y)
			dst[off+0] = px[0]
			dst[off+1] = px[1]
			dst[off+2] = px[2]
			dst[off+3] = px[3]
		}
	}
}

func zeroFill4x4(dst []byte, dstStrideX, dstPitchY int) {
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			off := pixelOffset(dstStrideX, dstPitchY, x, y)
			dst[off+0] = 0
			dst[off+1] = 0
			dst[off+2] = 0
			dst[off+3] = 0
		}
	}
}
