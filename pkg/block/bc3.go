package block

// DecompressBC3Block decodes a 16-byte BC3 block: the first 8 bytes are
// an unsigned BC4 block written to the alpha channel (offset 3), the
// second 8 bytes are a BC1 block (ordinary color0-vs-color1 comparison,
// RGB only) written to the RGB channels. Unlike BC2, BC3's RGB half is
// not forced into the opaque branch: alpha already comes from the BC4
// half, but the RGB decode still follows plain BC1 rules and can still
// land in the three-color-plus-black palette for some endpoint pairs.
func DecompressBC3Block(dst []byte, dstStrideX, dstPitchY int, src []byte) {
	DecompressBC4Block(dst[3:], dstStrideX, dstPitchY, src[0:8], false)
	DecompressBC1Block(dst, dstStrideX, dstPitchY, src[8:16], true, false)
}
