package block

// bc4Indices unpacks the 48 bits of 3-bit indices from a BC4 block's
// last 6 bytes. The stream is stored as two 3-byte (24-bit) triplets,
// LSB-first within each triplet: the first triplet covers rows 0-1, the
// second covers rows 2-3.
func bc4Indices(src []byte) [16]uint32 {
	var idx [16]uint32
	for half := 0; half < 2; half++ {
		b := src[3*half : 3*half+3]
		bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
		for i := 0; i < 8; i++ {
			idx[half*8+i] = (bits >> uint(3*i)) & 0x7
		}
	}
	return idx
}

// bc4PaletteUnsigned builds the 8-entry unsigned BC4 palette from the two
// endpoint bytes, per the /7 (e0>e1) or /5-plus-sentinels (e0<=e1) rule.
func bc4PaletteUnsigned(e0, e1 byte) [8]byte {
	var p [8]byte
	p[0], p[1] = e0, e1
	a, b := uint32(e0), uint32(e1)
	if e0 > e1 {
		for i := uint32(1); i <= 6; i++ {
			p[1+i] = byte((uint32(7-i)*a + i*b) / 7)
		}
	} else {
		for i := uint32(1); i <= 4; i++ {
			p[1+i] = byte((uint32(5-i)*a + i*b) / 5)
		}
		p[6] = 0x00
		p[7] = 0xFF
	}
	return p
}

// bc4PaletteSigned builds the 8-entry signed BC4 palette, treating the
// endpoints as two's-complement bytes with sentinels -128/+127 in the
// 6-interpolated-entry case.
func bc4PaletteSigned(e0, e1 int8) [8]int8 {
	var p [8]int8
	p[0], p[1] = e0, e1
	a, b := int32(e0), int32(e1)
	if e0 > e1 {
		for i := int32(1); i <= 6; i++ {
			p[1+i] = int8((int32(7-i)*a + i*b) / 7)
		}
	} else {
		for i := int32(1); i <= 4; i++ {
			p[1+i] = int8((int32(5-i)*a + i*b) / 5)
		}
		p[6] = -128
		p[7] = 127
	}
	return p
}

// DecompressBC4Block decodes an 8-byte BC4 block into a single channel
// (one byte per pixel, written at byte offset 0 of each pixel's stride
// slot). signed selects the two's-complement endpoint interpretation;
// the decoded byte is then the raw signed-or-unsigned 8-bit value.
func DecompressBC4Block(dst []byte, dstStrideX, dstPitchY int, src []byte, signed bool) {
	idx := bc4Indices(src[2:8])

	if signed {
		pal := bc4PaletteSigned(int8(src[0]), int8(src[1]))
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				v := pal[idx[y*4+x]]
				dst[pixelOffset(dstStrideX, dstPitchY, x, y)] = byte(v)
			}
		}
		return
	}

	pal := bc4PaletteUnsigned(src[0], src[1])
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v := pal[idx[y*4+x]]
			dst[pixelOffset(dstStrideX, dstPitchY, x, y)] = v
		}
	}
}
