package dds

import "encoding/binary"

// pixelFormatResult is what parsePixelFormat resolves the 32-byte
// DDS_PIXELFORMAT block to: the normalized format, any alpha-mode
// implied by the legacy FourCC, and whether the caller must continue
// on to the DXT10 extension header.
type pixelFormatResult struct {
	format    InternalFormat
	alphaMode AlphaMode
	isDX10    bool
}

// parsePixelFormat dispatches on the ALPHA|FOURCC|RGB|YUV|LUMINANCE|
// BUMPDUDV flag combination in a 32-byte DDS_PIXELFORMAT block, per
// §4.E step 5.
func parsePixelFormat(pf []byte) (pixelFormatResult, *Error) {
	flags := binary.LittleEndian.Uint32(pf[4:8])
	fourCC := binary.LittleEndian.Uint32(pf[8:12])
	rgbBitCount := binary.LittleEndian.Uint32(pf[12:16])
	rMask := binary.LittleEndian.Uint32(pf[16:20])
	gMask := binary.LittleEndian.Uint32(pf[20:24])
	bMask := binary.LittleEndian.Uint32(pf[24:28])
	aMask := binary.LittleEndian.Uint32(pf[28:32])

	switch {
	case flags&pixelFlagFourCC != 0:
		return parseFourCC(fourCC)

	case flags&pixelFlagRGB != 0:
		f, err := parseRGBMasks(rgbBitCount, rMask, gMask, bMask, aMask, flags&pixelFlagAlphaPixels != 0)
		if err != nil {
			return pixelFormatResult{}, err
		}
		return pixelFormatResult{format: f, alphaMode: AlphaModeStraight}, nil

	case flags&pixelFlagLuminance != 0:
		switch rgbBitCount {
		case 8:
			return pixelFormatResult{format: FormatR8UNorm, alphaMode: AlphaModeOpaque}, nil
		case 16:
			if flags&pixelFlagAlphaPixels != 0 {
				return pixelFormatResult{format: FormatR8G8UNorm, alphaMode: AlphaModeStraight}, nil
			}
			return pixelFormatResult{format: FormatR16UNorm, alphaMode: AlphaModeOpaque}, nil
		default:
			return pixelFormatResult{}, newError(UnsupportedFormat, "unsupported LUMINANCE bit count %d", rgbBitCount)
		}

	case flags&pixelFlagBumpDUDV != 0:
		if _, ok := canonicalizeMask(rMask); !ok {
			return pixelFormatResult{}, newError(UnsupportedFormat, "non-contiguous BUMPDUDV red mask")
		}
		switch rgbBitCount {
		case 16:
			return pixelFormatResult{format: FormatR8G8SNorm, alphaMode: AlphaModeUnknown}, nil
		case 32:
			if aMask != 0 {
				return pixelFormatResult{format: FormatR8G8B8A8SNorm, alphaMode: AlphaModeUnknown}, nil
			}
			return pixelFormatResult{format: FormatR16G16SNorm, alphaMode: AlphaModeUnknown}, nil
		default:
			return pixelFormatResult{}, newError(UnsupportedFormat, "unsupported BUMPDUDV bit count %d", rgbBitCount)
		}

	case flags&pixelFlagAlpha != 0:
		if rgbBitCount != 8 {
			return pixelFormatResult{}, newError(UnsupportedFormat, "ALPHA pixel format with bit count %d, want 8", rgbBitCount)
		}
		return pixelFormatResult{format: FormatA8UNorm, alphaMode: AlphaModeStraight}, nil

	case flags&pixelFlagYUV != 0:
		return pixelFormatResult{}, newError(UnsupportedFormat, "YUV pixel format is not decoded")

	default:
		return pixelFormatResult{}, newError(UnsupportedFormat, "no recognized pixel-format flag set")
	}
}

func parseFourCC(fourCC uint32) (pixelFormatResult, *Error) {
	switch fourCC {
	case fourCCDX10:
		return pixelFormatResult{isDX10: true}, nil
	case fourCCDXT1:
		return pixelFormatResult{format: FormatBC1UNorm, alphaMode: AlphaModePremultiplied}, nil
	case fourCCDXT2:
		return pixelFormatResult{format: FormatBC2UNorm, alphaMode: AlphaModePremultiplied}, nil
	case fourCCDXT3:
		return pixelFormatResult{format: FormatBC2UNorm, alphaMode: AlphaModeStraight}, nil
	case fourCCDXT4:
		return pixelFormatResult{format: FormatBC3UNorm, alphaMode: AlphaModePremultiplied}, nil
	case fourCCDXT5:
		return pixelFormatResult{format: FormatBC3UNorm, alphaMode: AlphaModeStraight}, nil
	case fourCCATI1, fourCCBC4U:
		return pixelFormatResult{format: FormatBC4UNorm, alphaMode: AlphaModeUnknown}, nil
	case fourCCBC4S:
		return pixelFormatResult{format: FormatBC4SNorm, alphaMode: AlphaModeUnknown}, nil
	case fourCCATI2, fourCCBC5U:
		return pixelFormatResult{format: FormatBC5UNorm, alphaMode: AlphaModeUnknown}, nil
	case fourCCBC5S:
		return pixelFormatResult{format: FormatBC5SNorm, alphaMode: AlphaModeUnknown}, nil
	case fourCCRGBG:
		return pixelFormatResult{format: FormatR8G8B8G8UNorm, alphaMode: AlphaModeOpaque}, nil
	case fourCCGRGB:
		return pixelFormatResult{format: FormatG8R8G8B8UNorm, alphaMode: AlphaModeOpaque}, nil
	case fourCCYUY2:
		return pixelFormatResult{}, newError(UnsupportedFormat, "YUY2 pixel format is not decoded")
	// One-byte D3DFMT sentinels for float/SNORM/UNORM 16-bit formats,
	// stored in the low byte of the FourCC field rather than as ASCII.
	case 0x71:
		return pixelFormatResult{format: FormatR16G16B16A16Float, alphaMode: AlphaModeStraight}, nil
	case 0x73:
		return pixelFormatResult{format: FormatR32G32Float, alphaMode: AlphaModeUnknown}, nil
	case 0x74:
		return pixelFormatResult{format: FormatR32G32B32A32Float, alphaMode: AlphaModeStraight}, nil
	case 0x6E:
		return pixelFormatResult{format: FormatR16G16B16A16SNorm, alphaMode: AlphaModeStraight}, nil
	case 0x24:
		return pixelFormatResult{format: FormatR16G16B16A16UNorm, alphaMode: AlphaModeStraight}, nil
	case 0x6F:
		return pixelFormatResult{format: FormatR16Float, alphaMode: AlphaModeUnknown}, nil
	default:
		return pixelFormatResult{}, newError(UnsupportedFormat, "unrecognized FourCC 0x%08x", fourCC)
	}
}

func parseRGBMasks(bitCount, r, g, b, a uint32, hasAlpha bool) (InternalFormat, *Error) {
	for _, m := range []uint32{r, g, b, a} {
		if _, ok := canonicalizeMask(m); !ok {
			return 0, newError(UnsupportedFormat, "non-contiguous channel mask 0x%08x", m)
		}
	}
	switch bitCount {
	case 32:
		switch {
		case r == 0x00FF0000 && g == 0x0000FF00 && b == 0x000000FF && a == 0xFF000000:
			return FormatB8G8R8A8UNorm, nil
		case r == 0x00FF0000 && g == 0x0000FF00 && b == 0x000000FF && a == 0:
			return FormatB8G8R8X8UNorm, nil
		case r == 0x000000FF && g == 0x0000FF00 && b == 0x00FF0000 && a == 0xFF000000:
			return FormatR8G8B8A8UNorm, nil
		case r == 0x0000FFFF && g == 0xFFFF0000 && b == 0 && a == 0:
			return FormatR16G16UNorm, nil
		default:
			return 0, newError(UnsupportedFormat, "unrecognized 32-bit RGB mask set")
		}
	case 16:
		switch {
		case r == 0xF800 && g == 0x07E0 && b == 0x001F && a == 0:
			return FormatB5G6R5UNorm, nil
		case r == 0x7C00 && g == 0x03E0 && b == 0x001F && (a == 0x8000 || (!hasAlpha && a == 0)):
			return FormatB5G5R5A1UNorm, nil
		case r == 0x0F00 && g == 0x00F0 && b == 0x000F && a == 0xF000:
			return FormatB4G4R4A4UNorm, nil
		default:
			return 0, newError(UnsupportedFormat, "unrecognized 16-bit RGB mask set")
		}
	default:
		return 0, newError(UnsupportedFormat, "unsupported RGB bit count %d", bitCount)
	}
}

// applyDX10 parses the 20-byte DDS_HEADER_DXT10 extension and fills in
// the fields it governs: format, dimension, cube faces and array
// length, per §4.E step 6.
func applyDX10(tex *Texture, dx10 []byte) *Error {
	dxgiFormat := binary.LittleEndian.Uint32(dx10[0:4])
	resourceDimension := binary.LittleEndian.Uint32(dx10[4:8])
	miscFlag := binary.LittleEndian.Uint32(dx10[8:12])
	arraySize := binary.LittleEndian.Uint32(dx10[12:16])
	miscFlags2 := binary.LittleEndian.Uint32(dx10[16:20])

	if dxgiFormat > 132 {
		return newError(UnsupportedFormat, "dxgiFormat %d out of range", dxgiFormat)
	}
	tex.InternalFormat = InternalFormat(dxgiFormat)

	switch resourceDimension {
	case resourceDimensionTexture1D:
		tex.Dimension = 1
	case resourceDimensionTexture2D:
		tex.Dimension = 2
	case resourceDimensionTexture3D:
		tex.Dimension = 3
	default:
		return newError(ContainerError, "unrecognized resourceDimension %d", resourceDimension)
	}

	if arraySize < 1 {
		arraySize = 1
	}
	tex.ArrayLength = int(arraySize)

	if miscFlag&miscFlagTextureCube != 0 {
		tex.CubeFaces = CubeFaces{Mask: 0x3F, Count: 6}
		if tex.Dimension != 2 {
			return newError(InconsistentMetadata, "TEXTURECUBE misc flag with resourceDimension %d", resourceDimension)
		}
	}

	switch miscFlags2 & 0x7 {
	case 1:
		tex.AlphaMode = AlphaModeStraight
	case 2:
		tex.AlphaMode = AlphaModePremultiplied
	case 3:
		tex.AlphaMode = AlphaModeOpaque
	case 4:
		tex.AlphaMode = AlphaModeCustom
	default:
		tex.AlphaMode = AlphaModeUnknown
	}
	return nil
}
