package dds

// DDS magic and header-layout constants, following the teacher's
// idiom of offset-based binary.LittleEndian access rather than
// encoding/binary struct tags: the legacy DDS_HEADER predates Go and
// its field layout (11 reserved words, embedded pixel format, trailing
// caps) does not map cleanly onto a single Go struct tag scheme.
const (
	ddsMagic = 0x20534444 // "DDS "

	headerSize       = 124
	pixelFormatSize  = 32
	dx10HeaderSize   = 20

	headerFlagCaps        = 0x1
	headerFlagHeight      = 0x2
	headerFlagWidth       = 0x4
	headerFlagPitch       = 0x8
	headerFlagPixelFormat = 0x1000
	headerFlagMipMapCount = 0x20000
	headerFlagDepth       = 0x800000
	headerFlagLinearSize  = 0x80000

	capsMipMap  = 0x400000
	caps2Cubemap = 0x200
	caps2Volume  = 0x200000

	caps2CubemapPositiveX = 0x400
	caps2CubemapNegativeX = 0x800
	caps2CubemapPositiveY = 0x1000
	caps2CubemapNegativeY = 0x2000
	caps2CubemapPositiveZ = 0x4000
	caps2CubemapNegativeZ = 0x8000

	pixelFlagAlphaPixels = 0x1
	pixelFlagAlpha       = 0x2
	pixelFlagFourCC      = 0x4
	pixelFlagRGB         = 0x40
	pixelFlagYUV         = 0x200
	pixelFlagLuminance   = 0x20000
	pixelFlagBumpDUDV    = 0x80000

	fourCCDX10 = 0x30315844 // "DX10"
	fourCCDXT1 = 0x31545844
	fourCCDXT2 = 0x32545844
	fourCCDXT3 = 0x33545844
	fourCCDXT4 = 0x34545844
	fourCCDXT5 = 0x35545844
	fourCCATI1 = 0x31495441
	fourCCATI2 = 0x32495441
	fourCCBC4U = 0x55344342
	fourCCBC4S = 0x53344342
	fourCCBC5U = 0x55354342
	fourCCBC5S = 0x53354342
	fourCCRGBG = 0x47424752
	fourCCGRGB = 0x42475247
	fourCCYUY2 = 0x32595559
)

// resourceDimension values from DDS_HEADER_DXT10.resourceDimension.
const (
	resourceDimensionTexture1D = 2
	resourceDimensionTexture2D = 3
	resourceDimensionTexture3D = 4
)

const (
	miscFlagTextureCube = 0x4
)
