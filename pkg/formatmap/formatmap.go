// Package formatmap translates dds.InternalFormat values into the format
// identifiers used by the three major graphics APIs. These are pure
// lookup tables: nothing here touches a GPU or a driver, so a caller is
// expected to feed the result straight into whichever API it targets.
//
// The BC1 family carries a single InternalFormat for both the opaque
// and punch-through-alpha interpretations; a texture's AlphaMode
// disambiguates which one a caller actually wants, which is why the
// Vulkan and OpenGL lookups take an AlphaMode alongside the format.
package formatmap

import "github.com/goopsie/ddsbc/pkg/dds"

// VulkanFormat is a VkFormat value plus whether the mapping is exact.
type VulkanFormat struct {
	Format   uint32
	IsApprox bool
}

// OpenGLFormat is the {base internal format, sized internal format,
// format, type} tuple glTexImage2D/glCompressedTexImage2D need, plus the
// GL extension that must be present for it to be valid.
type OpenGLFormat struct {
	BaseInternalFormat uint32
	InternalFormat     uint32
	Format             uint32
	Type               uint32
	ExtensionsBitmask  uint32
	IsApprox           bool
}

// Direct3DFormat is a DXGI_FORMAT value.
type Direct3DFormat struct {
	DxgiFormat uint32
}

// GL extension bits set in OpenGLFormat.ExtensionsBitmask.
const (
	ExtS3TC uint32 = 1 << iota
	ExtRGTC
	ExtBPTC
	ExtNone
)

const (
	glUnsignedByte = 0x1401
	glHalfFloat    = 0x140B
	glFloat        = 0x1406
	glRGBA         = 0x1908
	glRGB          = 0x1907
	glRed          = 0x1903
	glRG           = 0x8227
	glAlpha        = 0x1906
	glRGBA8        = 0x8058

	glCompressedRGBS3TCDXT1  = 0x83F0
	glCompressedRGBAS3TCDXT1 = 0x83F1
	glCompressedRGBAS3TCDXT3 = 0x83F2
	glCompressedRGBAS3TCDXT5 = 0x83F3

	glCompressedRedRGTC1       = 0x8DBB
	glCompressedSignedRedRGTC1 = 0x8DBC
	glCompressedRGRGTC2        = 0x8DBD
	glCompressedSignedRGRGTC2  = 0x8DBE

	glCompressedRGBABPTCUNorm       = 0x8E8C
	glCompressedSRGBAlphaBPTCUNorm  = 0x8E8D
	glCompressedRGBBPTCSignedFloat  = 0x8E8E
	glCompressedRGBBPTCUnsignedFloat = 0x8E8F
)

const (
	vkFormatUndefined = 0

	vkFormatR8UNorm         = 9
	vkFormatR8G8UNorm       = 16
	vkFormatR8G8B8A8UNorm   = 37
	vkFormatB8G8R8A8UNorm   = 44
	vkFormatR16SFloat       = 76
	vkFormatR16G16B16A16SFloat = 97
	vkFormatR32G32SFloat    = 103
	vkFormatR32G32B32A32SFloat = 109
	vkFormatB5G6R5UNormPack16 = 5

	vkFormatBC1RGBUNormBlock   = 131
	vkFormatBC1RGBASRGBBlock   = 134
	vkFormatBC1RGBAUNormBlock  = 133
	vkFormatBC2UNormBlock      = 135
	vkFormatBC2SRGBBlock       = 136
	vkFormatBC3UNormBlock      = 137
	vkFormatBC3SRGBBlock       = 138
	vkFormatBC4UNormBlock      = 139
	vkFormatBC4SNormBlock      = 140
	vkFormatBC5UNormBlock      = 141
	vkFormatBC5SNormBlock      = 142
	vkFormatBC6HUFloatBlock    = 143
	vkFormatBC6HSFloatBlock    = 144
	vkFormatBC7UNormBlock      = 145
	vkFormatBC7SRGBBlock       = 146
	vkFormatBC1RGBUNormSRGBBlock = 132
)

// isBC1Opaque reports whether f is a BC1 family member being used
// without a punch-through alpha channel, per the BC1-opaque special
// case named in both the Vulkan and OpenGL contracts.
func isBC1Opaque(f dds.InternalFormat, alphaMode dds.AlphaMode) bool {
	switch f {
	case dds.FormatBC1Typeless, dds.FormatBC1UNorm, dds.FormatBC1UNormSRGB:
		return alphaMode == dds.AlphaModeOpaque
	default:
		return false
	}
}

// Vulkan maps f to a VkFormat. BC1 families with an opaque AlphaMode
// return the RGB-only block format rather than the RGBA one.
func Vulkan(f dds.InternalFormat, alphaMode dds.AlphaMode) VulkanFormat {
	if isBC1Opaque(f, alphaMode) {
		if f == dds.FormatBC1UNormSRGB {
			return VulkanFormat{Format: vkFormatBC1RGBUNormSRGBBlock}
		}
		return VulkanFormat{Format: vkFormatBC1RGBUNormBlock}
	}
	switch f {
	case dds.FormatBC1UNorm:
		return VulkanFormat{Format: vkFormatBC1RGBAUNormBlock}
	case dds.FormatBC1UNormSRGB:
		return VulkanFormat{Format: vkFormatBC1RGBASRGBBlock}
	case dds.FormatBC2UNorm:
		return VulkanFormat{Format: vkFormatBC2UNormBlock}
	case dds.FormatBC2UNormSRGB:
		return VulkanFormat{Format: vkFormatBC2SRGBBlock}
	case dds.FormatBC3UNorm:
		return VulkanFormat{Format: vkFormatBC3UNormBlock}
	case dds.FormatBC3UNormSRGB:
		return VulkanFormat{Format: vkFormatBC3SRGBBlock}
	case dds.FormatBC4UNorm:
		return VulkanFormat{Format: vkFormatBC4UNormBlock}
	case dds.FormatBC4SNorm:
		return VulkanFormat{Format: vkFormatBC4SNormBlock}
	case dds.FormatBC5UNorm:
		return VulkanFormat{Format: vkFormatBC5UNormBlock}
	case dds.FormatBC5SNorm:
		return VulkanFormat{Format: vkFormatBC5SNormBlock}
	case dds.FormatBC6HUF16:
		return VulkanFormat{Format: vkFormatBC6HUFloatBlock}
	case dds.FormatBC6HSF16:
		return VulkanFormat{Format: vkFormatBC6HSFloatBlock}
	case dds.FormatBC7UNorm:
		return VulkanFormat{Format: vkFormatBC7UNormBlock}
	case dds.FormatBC7UNormSRGB:
		return VulkanFormat{Format: vkFormatBC7SRGBBlock}
	case dds.FormatR8UNorm:
		return VulkanFormat{Format: vkFormatR8UNorm}
	case dds.FormatR8G8UNorm:
		return VulkanFormat{Format: vkFormatR8G8UNorm}
	case dds.FormatR8G8B8A8UNorm:
		return VulkanFormat{Format: vkFormatR8G8B8A8UNorm}
	case dds.FormatB8G8R8A8UNorm:
		return VulkanFormat{Format: vkFormatB8G8R8A8UNorm}
	case dds.FormatR16Float:
		return VulkanFormat{Format: vkFormatR16SFloat}
	case dds.FormatR16G16B16A16Float:
		return VulkanFormat{Format: vkFormatR16G16B16A16SFloat}
	case dds.FormatR32G32Float:
		return VulkanFormat{Format: vkFormatR32G32SFloat}
	case dds.FormatR32G32B32A32Float:
		return VulkanFormat{Format: vkFormatR32G32B32A32SFloat}
	case dds.FormatB5G6R5UNorm:
		return VulkanFormat{Format: vkFormatB5G6R5UNormPack16}
	default:
		// No exact VkFormat counterpart known to this table; B8G8R8X8
		// and the legacy D3D9 YUV/palette formats fall here.
		return VulkanFormat{Format: vkFormatUndefined, IsApprox: true}
	}
}

// OpenGL maps f to the glTexImage2D/glCompressedTexImage2D argument
// tuple, with the same BC1-opaque special case as Vulkan.
func OpenGL(f dds.InternalFormat, alphaMode dds.AlphaMode) OpenGLFormat {
	if isBC1Opaque(f, alphaMode) {
		return OpenGLFormat{BaseInternalFormat: glRGB, InternalFormat: glCompressedRGBS3TCDXT1, ExtensionsBitmask: ExtS3TC}
	}
	switch f {
	case dds.FormatBC1UNorm, dds.FormatBC1UNormSRGB:
		return OpenGLFormat{BaseInternalFormat: glRGBA, InternalFormat: glCompressedRGBAS3TCDXT1, ExtensionsBitmask: ExtS3TC}
	case dds.FormatBC2UNorm, dds.FormatBC2UNormSRGB:
		return OpenGLFormat{BaseInternalFormat: glRGBA, InternalFormat: glCompressedRGBAS3TCDXT3, ExtensionsBitmask: ExtS3TC}
	case dds.FormatBC3UNorm, dds.FormatBC3UNormSRGB:
		return OpenGLFormat{BaseInternalFormat: glRGBA, InternalFormat: glCompressedRGBAS3TCDXT5, ExtensionsBitmask: ExtS3TC}
	case dds.FormatBC4UNorm:
		return OpenGLFormat{BaseInternalFormat: glRed, InternalFormat: glCompressedRedRGTC1, ExtensionsBitmask: ExtRGTC}
	case dds.FormatBC4SNorm:
		return OpenGLFormat{BaseInternalFormat: glRed, InternalFormat: glCompressedSignedRedRGTC1, ExtensionsBitmask: ExtRGTC}
	case dds.FormatBC5UNorm:
		return OpenGLFormat{BaseInternalFormat: glRG, InternalFormat: glCompressedRGRGTC2, ExtensionsBitmask: ExtRGTC}
	case dds.FormatBC5SNorm:
		return OpenGLFormat{BaseInternalFormat: glRG, InternalFormat: glCompressedSignedRGRGTC2, ExtensionsBitmask: ExtRGTC}
	case dds.FormatBC6HUF16:
		return OpenGLFormat{BaseInternalFormat: glRGB, InternalFormat: glCompressedRGBBPTCUnsignedFloat, ExtensionsBitmask: ExtBPTC}
	case dds.FormatBC6HSF16:
		return OpenGLFormat{BaseInternalFormat: glRGB, InternalFormat: glCompressedRGBBPTCSignedFloat, ExtensionsBitmask: ExtBPTC}
	case dds.FormatBC7UNorm:
		return OpenGLFormat{BaseInternalFormat: glRGBA, InternalFormat: glCompressedRGBABPTCUNorm, ExtensionsBitmask: ExtBPTC}
	case dds.FormatBC7UNormSRGB:
		return OpenGLFormat{BaseInternalFormat: glRGBA, InternalFormat: glCompressedSRGBAlphaBPTCUNorm, ExtensionsBitmask: ExtBPTC}
	case dds.FormatR8G8B8A8UNorm:
		return OpenGLFormat{BaseInternalFormat: glRGBA, InternalFormat: glRGBA8, Format: glRGBA, Type: glUnsignedByte, ExtensionsBitmask: ExtNone}
	case dds.FormatR16G16B16A16Float:
		return OpenGLFormat{BaseInternalFormat: glRGBA, Format: glRGBA, Type: glHalfFloat, ExtensionsBitmask: ExtNone}
	case dds.FormatR32G32B32A32Float:
		return OpenGLFormat{BaseInternalFormat: glRGBA, Format: glRGBA, Type: glFloat, ExtensionsBitmask: ExtNone}
	case dds.FormatR8UNorm:
		return OpenGLFormat{BaseInternalFormat: glRed, Format: glRed, Type: glUnsignedByte, ExtensionsBitmask: ExtNone}
	case dds.FormatA8UNorm:
		return OpenGLFormat{BaseInternalFormat: glAlpha, Format: glAlpha, Type: glUnsignedByte, ExtensionsBitmask: ExtNone}
	case dds.FormatB8G8R8A8UNorm:
		// No core GL enum distinguishes BGRA order from RGBA order in
		// the base/internal format alone; GL_BGRA requires GL_EXT_bgra
		// or desktop GL 1.2. Approximated as RGBA8 storage.
		return OpenGLFormat{BaseInternalFormat: glRGBA, InternalFormat: glRGBA8, Format: glRGBA, Type: glUnsignedByte, ExtensionsBitmask: ExtNone, IsApprox: true}
	default:
		return OpenGLFormat{IsApprox: true}
	}
}

// Direct3D maps f to its DXGI_FORMAT. Since InternalFormat's numeric
// space is aligned with DXGI_FORMAT by construction (see
// dds.InternalFormat's doc comment), every format in the 0..132 range
// this package recognizes is an identity pass-through; anything outside
// that range (there is none today, since InternalFormat tops out at
// FormatB4G4R4A4UNorm=115) would map to 0.
func Direct3D(f dds.InternalFormat) Direct3DFormat {
	if uint32(f) > 132 {
		return Direct3DFormat{DxgiFormat: 0}
	}
	return Direct3DFormat{DxgiFormat: uint32(f)}
}
