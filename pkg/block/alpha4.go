package block

import "github.com/goopsie/ddsbc/pkg/bitutil"

// DecompressAlpha4Block decodes an 8-byte 4-bit-alpha block into a
// single R channel, one byte per pixel. Eight bytes encode sixteen
// nibbles MSB-first per byte, in row-major order; each nibble is
// bit-replicated to a full 8-bit value.
func DecompressAlpha4Block(dst []byte, dstStrideX, dstPitchY int, src []byte) {
	idx := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x += 2 {
			b := src[idx]
			idx++
			hi := uint32(b>>4) & 0xF
			lo := uint32(b) & 0xF
			dst[pixelOffset(dstStrideX, dstPitchY, x, y)] = bitutil.ExpandChannelTo8(hi, 4)
			dst[pixelOffset(dstStrideX, dstPitchY, x+1, y)] = bitutil.ExpandChannelTo8(lo, 4)
		}
	}
}
