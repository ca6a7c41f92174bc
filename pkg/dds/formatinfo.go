package dds

// blockByteSize returns the compressed byte size of one 4x4 block for
// f, or 0 if f is not block-compressed. BC1/BC4 pack a block into 8
// bytes; every other BC family uses 16.
func blockByteSize(f InternalFormat) int {
	switch {
	case f == FormatBC1Typeless || f == FormatBC1UNorm || f == FormatBC1UNormSRGB:
		return 8
	case f == FormatBC4Typeless || f == FormatBC4UNorm || f == FormatBC4SNorm:
		return 8
	case f.IsBlockCompressed():
		return 16
	default:
		return 0
	}
}

// rowGranularity returns how many texel rows one pitch.y unit actually
// covers: 4 for block-compressed formats (a pitch row is one row of
// 4x4 blocks), 1 otherwise. Non-block-aligned compressed dimensions are
// out of scope, so size.y is always an exact multiple when this is 4.
func rowGranularity(f InternalFormat) int {
	if f.IsBlockCompressed() {
		return 4
	}
	return 1
}
