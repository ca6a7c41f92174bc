package ddsio

import (
	"bytes"
	"testing"
)

func TestHeaderMarshalUnmarshal(t *testing.T) {
	original := NewHeader(1024, 512, 71) // 71 = DXGI_FORMAT_BC1_UNORM
	data, err := original.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded := &Header{}
	if err := decoded.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if *decoded != *original {
		t.Errorf("mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestHeaderInvalidMagic(t *testing.T) {
	h := &Header{Magic: [4]byte{0, 0, 0, 0}, HeaderLength: HeaderSize, Length: 1024, CompressedLength: 512}
	if err := h.Validate(); err == nil {
		t.Error("expected error for invalid magic")
	}
}

func TestReadCompressedRoundTrip(t *testing.T) {
	original := []byte("a fake DDS file's worth of bytes, repeated a bit: DDS DDS DDS DDS DDS")

	var buf bytes.Buffer
	ws := &seekableBuffer{Buffer: &buf}
	if err := WriteCompressed(ws, original, WithDXGIFormat(98)); err != nil { // BC7_UNORM
		t.Fatalf("write: %v", err)
	}

	decoded, err := ReadCompressed(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Errorf("data mismatch: got %q, want %q", decoded, original)
	}

	header := &Header{}
	if err := header.UnmarshalBinary(buf.Bytes()[:HeaderSize]); err != nil {
		t.Fatalf("parse header: %v", err)
	}
	if header.DXGIFormat != 98 {
		t.Errorf("DXGIFormat = %d, want 98", header.DXGIFormat)
	}
}

func TestReadCompressedFallsBackToPlainDDS(t *testing.T) {
	plain := []byte("DDS " + "not actually compressed, just raw bytes")
	out, err := ReadCompressed(bytes.NewReader(plain))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(out, plain) {
		t.Errorf("expected passthrough of non-ZDDS input, got %q", out)
	}
}

type seekableBuffer struct {
	*bytes.Buffer
	pos int64
}

func (s *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case 0:
		newPos = offset
	case 1:
		newPos = s.pos + offset
	case 2:
		newPos = int64(s.Buffer.Len()) + offset
	}
	s.pos = newPos
	return newPos, nil
}

func (s *seekableBuffer) Write(p []byte) (n int, err error) {
	for int64(s.Buffer.Len()) < s.pos {
		s.Buffer.WriteByte(0)
	}
	if s.pos < int64(s.Buffer.Len()) {
		data := s.Buffer.Bytes()
		n = copy(data[s.pos:], p)
		if n < len(p) {
			m, werr := s.Buffer.Write(p[n:])
			n += m
			if werr != nil {
				return n, werr
			}
		}
	} else {
		n, err = s.Buffer.Write(p)
	}
	s.pos += int64(n)
	return n, err
}
