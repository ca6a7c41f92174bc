// Package block implements the per-format 4x4 block decoders for the
// S3TC/RGTC/BPTC compressed texture families (BC1 through BC7). Every
// decoder is a pure function: it reads exactly one block's worth of
// source bytes and writes into a caller-provided destination rectangle
// addressed by dstStrideX (bytes between adjacent pixels in a row) and
// dstPitchY (bytes between rows). No decoder retains its arguments past
// return or touches shared state, so they are safe to call concurrently
// on disjoint destination regions.
package block

// pixelOffset returns the byte offset of pixel (x, y) within a 4x4 block
// whose origin is dst[0], given the caller's stride/pitch.
func pixelOffset(stride, pitch, x, y int) int {
	return y*pitch + x*stride
}
