package block

import (
	"github.com/goopsie/ddsbc/pkg/bitutil"
	"github.com/goopsie/ddsbc/pkg/colorutil"
)

// DecompressBC1Block decodes an 8-byte BC1 block: two little-endian
// B5G6R5 colors followed by sixteen 2-bit indices.
//
// allowThreeColor selects the standard BC1 rule: when true, the palette's
// third and fourth entries follow the color0-vs-color1 comparison
// (four-color opaque mode when color0 > color1, three-color-plus-
// transparent mode otherwise). BC2 passes false for its RGB half,
// forcing the opaque four-color palette unconditionally, since its
// transparent-black 3-color entry would be meaningless once alpha comes
// from the separate Alpha4 block; BC3 passes true, since its RGB half
// follows the ordinary rule. useAlpha controls whether a 4th output byte
// (alpha) is written per pixel; when false only RGB is written (stride
// must be >= 3).
func DecompressBC1Block(dst []byte, dstStrideX, dstPitchY int, src []byte, allowThreeColor, useAlpha bool) {
	c0 := bitutil.U16FromLE(src, 0)
	c1 := bitutil.U16FromLE(src, 2)
	indices := bitutil.U32FromLE(src, 4)

	color0 := colorutil.DecodeRGB565(c0)
	color1 := colorutil.DecodeRGB565(c1)

	var palette [4]colorutil.RGBA8
	palette[0], palette[1] = color0, color1
	if !allowThreeColor || c0 > c1 {
		palette[2] = colorutil.Interpolate3(color0, color1, 1)
		palette[3] = colorutil.Interpolate3(color0, color1, 2)
	} else {
		palette[2] = colorutil.Interpolate2(color0, color1, 1)
		palette[3] = colorutil.RGBA8{R: 0, G: 0, B: 0, A: 0}
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			idx := (indices >> uint(2*(y*4+x))) & 0x3
			c := palette[idx]
			off := pixelOffset(dstStrideX, dstPitchY, x, y)
			dst[off+0] = c.R
			dst[off+1] = c.G
			dst[off+2] = c.B
			if useAlpha {
				dst[off+3] = c.A
			}
		}
	}
}
