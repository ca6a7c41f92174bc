package block

// DecompressBC5Block decodes a 16-byte BC5 block: two independent BC4
// blocks, the first writing channel 0 (R) and the second writing channel
// 1 (G) of the destination. The caller's stride must therefore be at
// least 2 bytes per pixel.
func DecompressBC5Block(dst []byte, dstStrideX, dstPitchY int, src []byte, signed bool) {
	// Channel 0: offset the destination view by 0 bytes.
	DecompressBC4Block(dst, dstStrideX, dstPitchY, src[0:8], signed)
	// Channel 1: offset the destination view by 1 byte so BC4's
	// single-channel write lands in the G slot instead of R.
	DecompressBC4Block(dst[1:], dstStrideX, dstPitchY, src[8:16], signed)
}
