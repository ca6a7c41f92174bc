package imagedec

import "testing"

func TestDecompressBC1Tiling(t *testing.T) {
	// Two side-by-side blocks, each opaque white (color0=white, color1=
	// black, all indices 0).
	oneBlock := []byte{0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	src := append(append([]byte{}, oneBlock...), oneBlock...)

	width, height := 8, 4
	pitch := width * 4
	dst := make([]byte, pitch*height)

	DecompressBC1(dst, pitch, width, height, src, true)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := y*pitch + x*4
			if dst[off] != 0xFF || dst[off+1] != 0xFF || dst[off+2] != 0xFF || dst[off+3] != 0xFF {
				t.Fatalf("pixel (%d,%d) = %v, want opaque white", x, y, dst[off:off+4])
			}
		}
	}
}

func TestDecompressBC4TilingSingleChannel(t *testing.T) {
	oneBlock := []byte{255, 0, 0, 0, 0, 0, 0, 0}
	width, height := 4, 4
	pitch := width
	dst := make([]byte, pitch*height)
	DecompressBC4(dst, pitch, width, height, oneBlock, false)
	for _, v := range dst {
		if v != 255 {
			t.Fatalf("got %d, want 255", v)
		}
	}
}
