// Package imagedec tiles the per-block decoders in pkg/block across a
// whole (block-aligned) image surface: width and height must each be a
// multiple of 4, per the caller-facing non-goal of supporting partial
// edge blocks.
package imagedec

import "github.com/goopsie/ddsbc/pkg/block"

const blockDim = 4

// blockGrid returns the block-column and block-row counts for a
// block-aligned width/height.
func blockGrid(width, height int) (bw, bh int) {
	return width / blockDim, height / blockDim
}

// DecompressBC1 decodes a BC1-compressed surface into RGBA8 (4
// bytes/pixel, dstPitch bytes between rows). useAlpha selects whether
// the 1-bit alpha channel is honored (DDS FourCC "DXT1" with the
// BC1-opaque convention still decodes useAlpha=true; callers that know
// the surface is alpha-less may pass false to skip writing it).
func DecompressBC1(dst []byte, dstPitch, width, height int, src []byte, useAlpha bool) {
	bw, bh := blockGrid(width, height)
	const srcBlockSize = 8
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			off := (by*bw + bx) * srcBlockSize
			dstOff := by*4*dstPitch + bx*4*4
			block.DecompressBC1Block(dst[dstOff:], 4, dstPitch, src[off:off+srcBlockSize], true, useAlpha)
		}
	}
}

// DecompressBC2 decodes a BC2-compressed surface into RGBA8.
func DecompressBC2(dst []byte, dstPitch, width, height int, src []byte) {
	bw, bh := blockGrid(width, height)
	const srcBlockSize = 16
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			off := (by*bw + bx) * srcBlockSize
			dstOff := by*4*dstPitch + bx*4*4
			block.DecompressBC2Block(dst[dstOff:], 4, dstPitch, src[off:off+srcBlockSize])
		}
	}
}

// DecompressBC3 decodes a BC3-compressed surface into RGBA8.
func DecompressBC3(dst []byte, dstPitch, width, height int, src []byte) {
	bw, bh := blockGrid(width, height)
	const srcBlockSize = 16
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			off := (by*bw + bx) * srcBlockSize
			dstOff := by*4*dstPitch + bx*4*4
			block.DecompressBC3Block(dst[dstOff:], 4, dstPitch, src[off:off+srcBlockSize])
		}
	}
}

// DecompressBC4 decodes a BC4-compressed surface into a single 8-bit
// channel (dstPitch bytes between rows, 1 byte/pixel).
func DecompressBC4(dst []byte, dstPitch, width, height int, src []byte, signed bool) {
	bw, bh := blockGrid(width, height)
	const srcBlockSize = 8
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			off := (by*bw + bx) * srcBlockSize
			dstOff := by*4*dstPitch + bx*4
			block.DecompressBC4Block(dst[dstOff:], 1, dstPitch, src[off:off+srcBlockSize], signed)
		}
	}
}

// DecompressBC5 decodes a BC5-compressed surface into two 8-bit
// channels (dstPitch bytes between rows, 2 bytes/pixel).
func DecompressBC5(dst []byte, dstPitch, width, height int, src []byte, signed bool) {
	bw, bh := blockGrid(width, height)
	const srcBlockSize = 16
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			off := (by*bw + bx) * srcBlockSize
			dstOff := by*4*dstPitch + bx*2
			block.DecompressBC5Block(dst[dstOff:], 2, dstPitch, src[off:off+srcBlockSize], signed)
		}
	}
}

// DecompressBC6H decodes a BC6H-compressed HDR surface into three
// half-float components per pixel. dst is addressed in uint16 elements;
// dstPitch is the element distance between rows (at least 3*width).
func DecompressBC6H(dst []uint16, dstPitch, width, height int, src []byte, signed bool) {
	bw, bh := blockGrid(width, height)
	const srcBlockSize = 16
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			off := (by*bw + bx) * srcBlockSize
			dstOff := by*4*dstPitch + bx*4*3
			block.DecompressBC6HBlock(dst[dstOff:], 3, dstPitch, src[off:off+srcBlockSize], signed)
		}
	}
}

// DecompressBC7 decodes a BC7-compressed surface into RGBA8.
func DecompressBC7(dst []byte, dstPitch, width, height int, src []byte) {
	bw, bh := blockGrid(width, height)
	const srcBlockSize = 16
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			off := (by*bw + bx) * srcBlockSize
			dstOff := by*4*dstPitch + bx*4*4
			block.DecompressBC7Block(dst[dstOff:], 4, dstPitch, src[off:off+srcBlockSize])
		}
	}
}
