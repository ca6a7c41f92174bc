package block

// DecompressBC2Block decodes a 16-byte BC2 block: the first 8 bytes are
// an Alpha4 block written to the alpha channel (offset 3), the second 8
// bytes are a BC1 block, RGB only, with the opaque four-color palette
// forced regardless of the color0-vs-color1 comparison (alpha already
// comes from the Alpha4 half, so the transparent-black entry would be
// meaningless here).
func DecompressBC2Block(dst []byte, dstStrideX, dstPitchY int, src []byte) {
	DecompressAlpha4Block(dst[3:], dstStrideX, dstPitchY, src[0:8])
	DecompressBC1Block(dst, dstStrideX, dstPitchY, src[8:16], false, false)
}
