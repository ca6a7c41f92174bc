package formatmap

import (
	"testing"

	"github.com/goopsie/ddsbc/pkg/dds"
)

func TestVulkanBC1OpaqueSpecialCase(t *testing.T) {
	opaque := Vulkan(dds.FormatBC1UNorm, dds.AlphaModeOpaque)
	if opaque.Format != vkFormatBC1RGBUNormBlock {
		t.Errorf("opaque BC1 = %d, want RGB block %d", opaque.Format, vkFormatBC1RGBUNormBlock)
	}

	straight := Vulkan(dds.FormatBC1UNorm, dds.AlphaModeStraight)
	if straight.Format != vkFormatBC1RGBAUNormBlock {
		t.Errorf("straight BC1 = %d, want RGBA block %d", straight.Format, vkFormatBC1RGBAUNormBlock)
	}
}

func TestVulkanUnknownIsApprox(t *testing.T) {
	v := Vulkan(dds.FormatB8G8R8X8UNorm, dds.AlphaModeOpaque)
	if !v.IsApprox {
		t.Error("expected IsApprox for a format with no table entry")
	}
}

func TestOpenGLBC1OpaqueSpecialCase(t *testing.T) {
	opaque := OpenGL(dds.FormatBC1UNorm, dds.AlphaModeOpaque)
	if opaque.InternalFormat != glCompressedRGBS3TCDXT1 {
		t.Errorf("opaque BC1 internal format = 0x%x, want 0x%x", opaque.InternalFormat, glCompressedRGBS3TCDXT1)
	}
	straight := OpenGL(dds.FormatBC1UNorm, dds.AlphaModeStraight)
	if straight.InternalFormat != glCompressedRGBAS3TCDXT1 {
		t.Errorf("straight BC1 internal format = 0x%x, want 0x%x", straight.InternalFormat, glCompressedRGBAS3TCDXT1)
	}
}

func TestDirect3DIdentityPassthrough(t *testing.T) {
	tests := []dds.InternalFormat{
		dds.FormatBC7UNorm, dds.FormatR8G8B8A8UNorm, dds.FormatBC6HSF16,
	}
	for _, f := range tests {
		got := Direct3D(f)
		if got.DxgiFormat != uint32(f) {
			t.Errorf("Direct3D(%v) = %d, want %d", f, got.DxgiFormat, uint32(f))
		}
	}
}
