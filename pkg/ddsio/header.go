// Package ddsio provides an optional convenience loader for DDS files
// carried inside a zstd-compressed wrapper. Nothing in the DDS/BC wire
// format itself is zstd-compressed; this package exists because texture
// payloads are frequently shipped as compressed archives, and adapts the
// teacher's generic zstd-archive header/reader/writer trio to that one
// concrete use.
package ddsio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Magic identifies a zstd-compressed DDS archive: "ZDDS".
var Magic = [4]byte{0x5a, 0x44, 0x44, 0x53}

// HeaderSize is the fixed binary size of Header.
const HeaderSize = 28

// Header precedes the zstd stream in a compressed DDS archive.
type Header struct {
	Magic            [4]byte
	HeaderLength     uint32
	Length           uint64 // uncompressed (DDS file) size
	CompressedLength uint64
	// DXGIFormat carries the wrapped DDS payload's DXGI_FORMAT when known
	// (the value a DX10 header extension would report), so a reader can
	// route to the right BC decoder without first inflating the stream.
	// 0 when the wrapped DDS is a legacy (non-DX10) file or the format
	// wasn't known at write time.
	DXGIFormat uint32
}

// Size returns the binary size of the header.
func (h *Header) Size() int {
	return binary.Size(h)
}

// Validate checks the header for internal consistency.
func (h *Header) Validate() error {
	if h.Magic != Magic {
		return fmt.Errorf("invalid magic: expected %x, got %x", Magic, h.Magic)
	}
	if h.HeaderLength != HeaderSize {
		return fmt.Errorf("invalid header length: expected %d, got %d", HeaderSize, h.HeaderLength)
	}
	if h.Length == 0 {
		return fmt.Errorf("uncompressed size is zero")
	}
	if h.CompressedLength == 0 {
		return fmt.Errorf("compressed size is zero")
	}
	return nil
}

// MarshalBinary encodes the header to binary form.
func (h *Header) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, h); err != nil {
		return nil, fmt.Errorf("marshal header: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes the header from binary form and validates it.
func (h *Header) UnmarshalBinary(data []byte) error {
	buf := bytes.NewReader(data)
	if err := binary.Read(buf, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("unmarshal header: %w", err)
	}
	return h.Validate()
}

// NewHeader builds a header for an archive of the given sizes, tagged
// with the wrapped DDS payload's DXGI_FORMAT (0 if unknown).
func NewHeader(uncompressedSize, compressedSize uint64, dxgiFormat uint32) *Header {
	return &Header{
		Magic:            Magic,
		HeaderLength:     HeaderSize,
		Length:           uncompressedSize,
		CompressedLength: compressedSize,
		DXGIFormat:       dxgiFormat,
	}
}
