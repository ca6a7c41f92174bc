package dds

import (
	"encoding/binary"
	"testing"
)

// buildDDS assembles a minimal legacy (non-DX10) DDS file with a BC1
// FourCC payload, width x height, mipMapCount levels, and a linear-size
// payload of linearSize bytes.
func buildDDS(width, height, mipMapCount int, fourCC uint32, linearSize int) []byte {
	buf := make([]byte, 4+headerSize+linearSize)
	binary.LittleEndian.PutUint32(buf[0:4], ddsMagic)

	h := buf[4 : 4+headerSize]
	binary.LittleEndian.PutUint32(h[0:4], headerSize)
	flags := uint32(headerFlagCaps | headerFlagHeight | headerFlagWidth | headerFlagPixelFormat | headerFlagLinearSize)
	if mipMapCount > 1 {
		flags |= headerFlagMipMapCount
	}
	binary.LittleEndian.PutUint32(h[4:8], flags)
	binary.LittleEndian.PutUint32(h[8:12], uint32(height))
	binary.LittleEndian.PutUint32(h[12:16], uint32(width))
	binary.LittleEndian.PutUint32(h[16:20], uint32(linearSize))
	binary.LittleEndian.PutUint32(h[24:28], uint32(mipMapCount))

	pf := h[72 : 72+pixelFormatSize]
	binary.LittleEndian.PutUint32(pf[0:4], pixelFormatSize)
	binary.LittleEndian.PutUint32(pf[4:8], pixelFlagFourCC)
	binary.LittleEndian.PutUint32(pf[8:12], fourCC)

	caps := uint32(0x1000)
	if mipMapCount > 1 {
		caps |= capsMipMap
	}
	binary.LittleEndian.PutUint32(h[104:108], caps)

	return buf
}

func TestLoadFromBytesMagicGate(t *testing.T) {
	bad := []byte("NOTADDS!" + string(make([]byte, 124)))
	tex := LoadFromBytes(bad)
	if tex.OK() {
		t.Fatal("expected failure for non-DDS magic")
	}
}

func TestLoadFromBytesHeaderSizeCheck(t *testing.T) {
	data := buildDDS(4, 4, 1, fourCCDXT1, 8)
	binary.LittleEndian.PutUint32(data[4:8], 123) // corrupt dwSize
	tex := LoadFromBytes(data)
	if tex.OK() {
		t.Fatal("expected failure for wrong header size")
	}
}

func TestLoadFromBytesBC1(t *testing.T) {
	data := buildDDS(8, 8, 1, fourCCDXT1, 8*4) // 2x2 blocks * 8 bytes
	tex := LoadFromBytes(data)
	if !tex.OK() {
		t.Fatalf("load failed: %s", tex.ErrorMessage())
	}
	if tex.InternalFormat != FormatBC1UNorm {
		t.Fatalf("format = %v, want BC1_UNORM", tex.InternalFormat)
	}
	if tex.AlphaMode != AlphaModePremultiplied {
		t.Fatalf("alpha mode = %v, want premultiplied", tex.AlphaMode)
	}
	if tex.Size.X != 8 || tex.Size.Y != 8 {
		t.Fatalf("size = %v, want 8x8", tex.Size)
	}
}

func TestGetMipMapsSizes(t *testing.T) {
	data := buildDDS(256, 256, 9, fourCCDXT1, 256*256/2)
	tex := LoadFromBytes(data)
	if !tex.OK() {
		t.Fatalf("load failed: %s", tex.ErrorMessage())
	}
	table := make([]MipMapInfo, 9)
	n := tex.GetMipMaps(table, 0)
	if n != 9 {
		t.Fatalf("n = %d, want 9", n)
	}
	want := []int{256, 128, 64, 32, 16, 8, 4, 2, 1}
	for k, w := range want {
		if table[k].Size.X != w || table[k].Size.Y != w {
			t.Fatalf("level %d size = %v, want %dx%d", k, table[k].Size, w, w)
		}
	}
}

func TestChannelMaskCanonicalization(t *testing.T) {
	m, ok := canonicalizeMask(0x0000FF00)
	if !ok || m.shift != 8 || m.width != 8 {
		t.Fatalf("mask = %+v, ok=%v", m, ok)
	}
	if _, ok := canonicalizeMask(0x0000FF0F); ok {
		t.Fatal("expected non-contiguous mask to be rejected")
	}
}

func TestParseRGBMasksKnownTuples(t *testing.T) {
	f, err := parseRGBMasks(32, 0x00FF0000, 0x0000FF00, 0x000000FF, 0xFF000000, true)
	if err != nil || f != FormatB8G8R8A8UNorm {
		t.Fatalf("f=%v err=%v, want B8G8R8A8_UNORM", f, err)
	}
	f, err = parseRGBMasks(32, 0x000000FF, 0x0000FF00, 0x00FF0000, 0xFF000000, true)
	if err != nil || f != FormatR8G8B8A8UNorm {
		t.Fatalf("f=%v err=%v, want R8G8B8A8_UNORM", f, err)
	}
}

func TestCubeVolumeExclusivity(t *testing.T) {
	data := buildDDS(8, 8, 1, fourCCDXT1, 32)
	h := data[4 : 4+headerSize]
	caps2 := uint32(caps2Cubemap | caps2CubemapPositiveX)
	binary.LittleEndian.PutUint32(h[108:112], caps2)
	tex := LoadFromBytes(data)
	if !tex.OK() {
		t.Fatalf("load failed: %s", tex.ErrorMessage())
	}
	if tex.CubeFaces.Count != 1 {
		t.Fatalf("cube face count = %d, want 1", tex.CubeFaces.Count)
	}
	if tex.Dimension != 2 {
		t.Fatalf("dimension = %d, want 2", tex.Dimension)
	}
}
