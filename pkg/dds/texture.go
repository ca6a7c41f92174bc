// Package dds parses DirectDraw Surface texture containers: the
// classic 124-byte header with its legacy pixel-format flags, the
// optional 20-byte DXT10 extension, and the mipmap table implied by
// both. It does not decode pixel data itself; callers dispatch on
// Texture.InternalFormat and invoke the matching pkg/imagedec decoder.
package dds

import (
	"encoding/binary"
	"io"
)

// AlphaMode records how a texture's alpha channel should be
// interpreted, independent of its InternalFormat.
type AlphaMode int

const (
	AlphaModeUnknown AlphaMode = iota
	AlphaModeStraight
	AlphaModePremultiplied
	AlphaModeOpaque
	AlphaModeCustom
)

func (m AlphaMode) String() string {
	switch m {
	case AlphaModeStraight:
		return "straight"
	case AlphaModePremultiplied:
		return "premultiplied"
	case AlphaModeOpaque:
		return "opaque"
	case AlphaModeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// CubeFaces records which of the six cubemap faces are present.
type CubeFaces struct {
	Mask  uint8 // bit i set iff face i (±X,±Y,±Z in caps2 bit order) is present
	Count int
}

// Size3 is a {x,y,z} texel extent; z is depth for 3D textures and 1
// otherwise.
type Size3 struct {
	X, Y, Z int
}

// Pitch is the row/slice byte stride of one mip level.
type Pitch struct {
	Y, Z int
}

// Texture is the descriptor produced by LoadFromBytes/LoadFromFile: the
// normalized result of reconciling the legacy pixel-format path with
// the DXT10 extension. Data is a borrowed or owned reference to the
// raw file bytes; Offset0 is where pixel data begins within Data.
type Texture struct {
	Data   []byte
	owned  bool
	Offset0 int
	NBytes  int

	Size  Size3
	Pitch Pitch

	ArrayLength  int
	NMipLevels   int
	Dimension    int
	CubeFaces    CubeFaces
	AlphaMode    AlphaMode
	IsVolume     bool
	InternalFormat InternalFormat

	err *Error
}

// OK reports whether the load succeeded; when false, ErrorMessage
// describes why.
func (t *Texture) OK() bool { return t.err == nil }

// ErrorMessage returns the human-readable error from a failed load, or
// "" if the load succeeded.
func (t *Texture) ErrorMessage() string {
	if t.err == nil {
		return ""
	}
	return t.err.Error()
}

// Err returns the kind-tagged error from a failed load, or nil if the
// load succeeded.
func (t *Texture) Err() *Error { return t.err }

// Close releases any internally owned copy of the file bytes. It is a
// no-op for a Texture that borrows caller-owned bytes.
func (t *Texture) Close() {
	if t.owned {
		t.Data = nil
	}
}

func (t *Texture) String() string {
	if !t.OK() {
		return "dds.Texture{error: " + t.ErrorMessage() + "}"
	}
	return "dds.Texture{" +
		itoa(t.Size.X) + "x" + itoa(t.Size.Y) + "x" + itoa(t.Size.Z) +
		", mips=" + itoa(t.NMipLevels) +
		", array=" + itoa(t.ArrayLength) +
		", format=" + t.InternalFormat.String() +
		", alpha=" + t.AlphaMode.String() + "}"
}

func itoa(v int) string {
	// Small, allocation-light decimal formatter; avoids pulling in
	// strconv purely for this diagnostic string.
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func failure(kind ErrorKind, format string, args ...any) *Texture {
	return &Texture{err: newError(kind, format, args...)}
}

// LoadFromFile reads all of r and parses it as a DDS file. The
// returned Texture owns its copy of the bytes; Close releases it.
func LoadFromFile(r io.Reader) (*Texture, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tex := LoadFromBytes(data)
	tex.owned = true
	return tex, nil
}

// LoadFromBytes parses data as a DDS file. data is borrowed: the
// returned Texture's Data field aliases it and Close is a no-op. On any
// parse failure, the returned Texture's OK() is false and
// ErrorMessage() describes the problem; LoadFromBytes itself never
// returns a nil pointer or panics on malformed input.
func LoadFromBytes(data []byte) *Texture {
	if len(data) < 4+headerSize {
		return failure(ContainerError, "file too short to contain a DDS header")
	}
	if binary.LittleEndian.Uint32(data[0:4]) != ddsMagic {
		return failure(ContainerError, "not a DDS file")
	}

	h := data[4 : 4+headerSize]
	dwSize := binary.LittleEndian.Uint32(h[0:4])
	if dwSize != headerSize {
		return failure(ContainerError, "header size %d, want %d", dwSize, headerSize)
	}

	flags := binary.LittleEndian.Uint32(h[4:8])
	height := int(binary.LittleEndian.Uint32(h[8:12]))
	width := int(binary.LittleEndian.Uint32(h[12:16]))
	pitchOrLinearSize := int(binary.LittleEndian.Uint32(h[16:20]))
	depth := int(binary.LittleEndian.Uint32(h[20:24]))
	mipMapCount := int(binary.LittleEndian.Uint32(h[24:28]))
	// h[28:72] is dwReserved1[11] (44 bytes).
	pf := h[72 : 72+pixelFormatSize]
	caps := binary.LittleEndian.Uint32(h[104:108])
	caps2 := binary.LittleEndian.Uint32(h[108:112])

	if flags&headerFlagDepth == 0 {
		depth = 1
	}
	if depth < 1 {
		depth = 1
	}
	if mipMapCount < 1 {
		mipMapCount = 1
	}

	tex := &Texture{
		Size:        Size3{X: width, Y: height, Z: depth},
		NMipLevels:  mipMapCount,
		ArrayLength: 1,
		Dimension:   2,
	}

	pfResult, perr := parsePixelFormat(pf)
	if perr != nil {
		return failure(perr.Kind, "%s", perr.Message)
	}
	tex.InternalFormat = pfResult.format
	tex.AlphaMode = pfResult.alphaMode

	offset0 := 4 + headerSize
	if pfResult.isDX10 {
		if len(data) < offset0+dx10HeaderSize {
			return failure(ContainerError, "truncated DXT10 extension header")
		}
		dx10 := data[offset0 : offset0+dx10HeaderSize]
		if err := applyDX10(tex, dx10); err != nil {
			return failure(err.Kind, "%s", err.Message)
		}
		offset0 += dx10HeaderSize
	}
	tex.Offset0 = offset0

	if tex.CubeFaces.Count > 0 && tex.Dimension != 2 {
		return failure(InconsistentMetadata, "cube texture with dimension %d, want 2", tex.Dimension)
	}
	if tex.Dimension == 3 && tex.ArrayLength != 1 {
		return failure(InconsistentMetadata, "3D texture with array length %d, want 1", tex.ArrayLength)
	}
	if mipMapCount > 1 && caps&capsMipMap == 0 {
		return failure(InconsistentMetadata, "mip count %d with no MIPMAP cap bit", mipMapCount)
	}

	if caps2&caps2Cubemap != 0 {
		populateCubeFaces(tex, caps2)
		if tex.CubeFaces.Count == 0 {
			return failure(InconsistentMetadata, "cubemap with no faces set")
		}
	}
	tex.IsVolume = caps2&caps2Volume != 0

	if err := computeLevel0Layout(tex, pitchOrLinearSize, flags); err != nil {
		return failure(err.Kind, "%s", err.Message)
	}

	tex.Data = data
	return tex
}

func populateCubeFaces(tex *Texture, caps2 uint32) {
	faceBits := []uint32{
		caps2CubemapPositiveX, caps2CubemapNegativeX,
		caps2CubemapPositiveY, caps2CubemapNegativeY,
		caps2CubemapPositiveZ, caps2CubemapNegativeZ,
	}
	var mask uint8
	count := 0
	for i, bit := range faceBits {
		if caps2&bit != 0 {
			mask |= 1 << uint(i)
			count++
		}
	}
	tex.CubeFaces = CubeFaces{Mask: mask, Count: count}
}

// computeLevel0Layout derives pitch.y, pitch.z and nbytes for the base
// mip level, following §4.E step 4: exactly one of DDSD_PITCH and
// DDSD_LINEARSIZE should be set. pitch.y is the byte stride of one row
// of rowGranularity texel rows (4 for block-compressed formats, since a
// pitch row there is one row of 4x4 blocks; 1 otherwise), matching how
// dwPitchOrLinearSize is actually populated by DDS writers.
func computeLevel0Layout(tex *Texture, pitchOrLinearSize int, flags uint32) *Error {
	gran := rowGranularity(tex.InternalFormat)
	switch {
	case flags&headerFlagPitch != 0:
		tex.Pitch.Y = pitchOrLinearSize
	case flags&headerFlagLinearSize != 0:
		blockRows := (tex.Size.Y + gran - 1) / gran
		if blockRows > 0 {
			tex.Pitch.Y = pitchOrLinearSize / blockRows
		}
	default:
		return newError(UnsupportedFormat, "neither DDSD_PITCH nor DDSD_LINEARSIZE is set")
	}
	tex.Pitch.Z = ((tex.Size.Y + gran - 1) / gran) * tex.Pitch.Y
	tex.NBytes = tex.Size.Z * tex.Pitch.Z
	return nil
}
