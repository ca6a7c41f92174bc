package dds

import "fmt"

// InternalFormat is the library's normalized pixel-format tag. Its
// numeric values are chosen to match the DXGI_FORMAT enumeration so a
// Direct3D lookup (see pkg/formatmap) can be a direct pass-through; a
// tag of 0 means undefined, mirroring DXGI_FORMAT_UNKNOWN.
type InternalFormat uint32

const (
	FormatUnknown InternalFormat = 0

	FormatR32G32B32A32Typeless InternalFormat = 1
	FormatR32G32B32A32Float    InternalFormat = 2
	FormatR32G32B32A32UInt     InternalFormat = 3
	FormatR32G32B32A32SInt     InternalFormat = 4

	FormatR32G32B32Typeless InternalFormat = 5
	FormatR32G32B32Float    InternalFormat = 6
	FormatR32G32B32UInt     InternalFormat = 7
	FormatR32G32B32SInt     InternalFormat = 8

	FormatR16G16B16A16Typeless InternalFormat = 9
	FormatR16G16B16A16Float    InternalFormat = 10
	FormatR16G16B16A16UNorm    InternalFormat = 11
	FormatR16G16B16A16UInt     InternalFormat = 12
	FormatR16G16B16A16SNorm    InternalFormat = 13
	FormatR16G16B16A16SInt     InternalFormat = 14

	FormatR32G32Typeless InternalFormat = 15
	FormatR32G32Float    InternalFormat = 16
	FormatR32G32UInt     InternalFormat = 17
	FormatR32G32SInt     InternalFormat = 18

	FormatR10G10B10A2Typeless InternalFormat = 23
	FormatR10G10B10A2UNorm    InternalFormat = 24
	FormatR10G10B10A2UInt     InternalFormat = 25
	FormatR11G11B10Float      InternalFormat = 26

	FormatR8G8B8A8Typeless InternalFormat = 27
	FormatR8G8B8A8UNorm    InternalFormat = 28
	FormatR8G8B8A8UNormSRGB InternalFormat = 29
	FormatR8G8B8A8UInt     InternalFormat = 30
	FormatR8G8B8A8SNorm    InternalFormat = 31
	FormatR8G8B8A8SInt     InternalFormat = 32

	FormatR16G16Typeless InternalFormat = 33
	FormatR16G16Float    InternalFormat = 34
	FormatR16G16UNorm    InternalFormat = 35
	FormatR16G16UInt     InternalFormat = 36
	FormatR16G16SNorm    InternalFormat = 37
	FormatR16G16SInt     InternalFormat = 38

	FormatR32Typeless InternalFormat = 39
	FormatD32Float    InternalFormat = 40
	FormatR32Float    InternalFormat = 41
	FormatR32UInt     InternalFormat = 42
	FormatR32SInt     InternalFormat = 43

	FormatR24G8Typeless      InternalFormat = 44
	FormatD24UNormS8UInt     InternalFormat = 45

	FormatR8G8Typeless InternalFormat = 48
	FormatR8G8UNorm    InternalFormat = 49
	FormatR8G8UInt     InternalFormat = 50
	FormatR8G8SNorm    InternalFormat = 51
	FormatR8G8SInt     InternalFormat = 52

	FormatR16Typeless InternalFormat = 53
	FormatR16Float    InternalFormat = 54
	FormatD16UNorm    InternalFormat = 55
	FormatR16UNorm    InternalFormat = 56
	FormatR16UInt     InternalFormat = 57
	FormatR16SNorm    InternalFormat = 58
	FormatR16SInt     InternalFormat = 59

	FormatR8Typeless InternalFormat = 60
	FormatR8UNorm    InternalFormat = 61
	FormatR8UInt     InternalFormat = 62
	FormatR8SNorm    InternalFormat = 63
	FormatR8SInt     InternalFormat = 64
	FormatA8UNorm    InternalFormat = 65
	FormatR1UNorm    InternalFormat = 66

	FormatR9G9B9E5SharedExp InternalFormat = 67
	FormatR8G8B8G8UNorm     InternalFormat = 68
	FormatG8R8G8B8UNorm     InternalFormat = 69

	FormatBC1Typeless InternalFormat = 70
	FormatBC1UNorm    InternalFormat = 71
	FormatBC1UNormSRGB InternalFormat = 72
	FormatBC2Typeless InternalFormat = 73
	FormatBC2UNorm    InternalFormat = 74
	FormatBC2UNormSRGB InternalFormat = 75
	FormatBC3Typeless InternalFormat = 76
	FormatBC3UNorm    InternalFormat = 77
	FormatBC3UNormSRGB InternalFormat = 78
	FormatBC4Typeless InternalFormat = 79
	FormatBC4UNorm    InternalFormat = 80
	FormatBC4SNorm    InternalFormat = 81
	FormatBC5Typeless InternalFormat = 82
	FormatBC5UNorm    InternalFormat = 83
	FormatBC5SNorm    InternalFormat = 84

	FormatB5G6R5UNorm   InternalFormat = 85
	FormatB5G5R5A1UNorm InternalFormat = 86
	FormatB8G8R8A8UNorm InternalFormat = 87
	FormatB8G8R8X8UNorm InternalFormat = 88

	FormatB8G8R8A8Typeless  InternalFormat = 90
	FormatB8G8R8A8UNormSRGB InternalFormat = 91
	FormatB8G8R8X8Typeless  InternalFormat = 92
	FormatB8G8R8X8UNormSRGB InternalFormat = 93

	FormatBC6HTypeless InternalFormat = 94
	FormatBC6HUF16     InternalFormat = 95
	FormatBC6HSF16     InternalFormat = 96
	FormatBC7Typeless  InternalFormat = 97
	FormatBC7UNorm     InternalFormat = 98
	FormatBC7UNormSRGB InternalFormat = 99

	// Legacy D3D9 YUV/palette formats: recognized but never decoded.
	FormatAYUV InternalFormat = 100
	FormatY410 InternalFormat = 101
	FormatY416 InternalFormat = 102
	FormatNV12 InternalFormat = 103
	FormatP010 InternalFormat = 104
	FormatP016 InternalFormat = 105
	FormatYUY2 InternalFormat = 107
	FormatY210 InternalFormat = 108
	FormatY216 InternalFormat = 109
	FormatNV11 InternalFormat = 110
	FormatAI44 InternalFormat = 111
	FormatIA44 InternalFormat = 112
	FormatP8   InternalFormat = 113
	FormatA8P8 InternalFormat = 114

	FormatB4G4R4A4UNorm InternalFormat = 115
)

var formatNames = map[InternalFormat]string{
	FormatUnknown:               "UNKNOWN",
	FormatR32G32B32A32Float:     "R32G32B32A32_FLOAT",
	FormatR16G16B16A16Float:     "R16G16B16A16_FLOAT",
	FormatR16G16B16A16UNorm:     "R16G16B16A16_UNORM",
	FormatR11G11B10Float:        "R11G11B10_FLOAT",
	FormatR8G8B8A8UNorm:         "R8G8B8A8_UNORM",
	FormatR8G8B8A8UNormSRGB:     "R8G8B8A8_UNORM_SRGB",
	FormatR8G8B8A8SNorm:         "R8G8B8A8_SNORM",
	FormatR32Float:              "R32_FLOAT",
	FormatR16Float:              "R16_FLOAT",
	FormatR16UNorm:              "R16_UNORM",
	FormatR8UNorm:               "R8_UNORM",
	FormatA8UNorm:               "A8_UNORM",
	FormatR9G9B9E5SharedExp:     "R9G9B9E5_SHAREDEXP",
	FormatBC1UNorm:              "BC1_UNORM",
	FormatBC1UNormSRGB:          "BC1_UNORM_SRGB",
	FormatBC2UNorm:              "BC2_UNORM",
	FormatBC2UNormSRGB:          "BC2_UNORM_SRGB",
	FormatBC3UNorm:              "BC3_UNORM",
	FormatBC3UNormSRGB:          "BC3_UNORM_SRGB",
	FormatBC4UNorm:              "BC4_UNORM",
	FormatBC4SNorm:              "BC4_SNORM",
	FormatBC5UNorm:              "BC5_UNORM",
	FormatBC5SNorm:              "BC5_SNORM",
	FormatB5G6R5UNorm:           "B5G6R5_UNORM",
	FormatB5G5R5A1UNorm:         "B5G5R5A1_UNORM",
	FormatB8G8R8A8UNorm:         "B8G8R8A8_UNORM",
	FormatB8G8R8X8UNorm:         "B8G8R8X8_UNORM",
	FormatBC6HUF16:              "BC6H_UF16",
	FormatBC6HSF16:              "BC6H_SF16",
	FormatBC7UNorm:              "BC7_UNORM",
	FormatBC7UNormSRGB:          "BC7_UNORM_SRGB",
	FormatR8G8UNorm:             "R8G8_UNORM",
	FormatR8G8SNorm:             "R8G8_SNORM",
	FormatR16G16UNorm:           "R16G16_UNORM",
	FormatR16G16SNorm:           "R16G16_SNORM",
	FormatR16G16B16A16SNorm:     "R16G16B16A16_SNORM",
	FormatB4G4R4A4UNorm:         "B4G4R4A4_UNORM",
	FormatYUY2:                  "YUY2",
}

// String returns the format's DXGI-style name, or a numeric fallback
// for tags this package recognizes only by number.
func (f InternalFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FORMAT(%d)", uint32(f))
}

// IsBlockCompressed reports whether f names one of the BC1-BC7 families
// (any typeless/UNORM/SNORM/UFLOAT/SFLOAT/SRGB variant).
func (f InternalFormat) IsBlockCompressed() bool {
	return f >= FormatBC1Typeless && f <= FormatBC5SNorm || f >= FormatBC6HTypeless && f <= FormatBC7UNormSRGB
}
