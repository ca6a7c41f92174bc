package ddsio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/DataDog/zstd"
)

// ReadCompressed reads r fully and returns the raw DDS bytes it
// contains. If r starts with the ZDDS magic, the header is validated
// and the remainder is decompressed with zstd; otherwise the bytes are
// returned unchanged, on the assumption that r is already a plain DDS
// file (dds.LoadFromBytes will reject anything that isn't).
func ReadCompressed(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if len(data) < HeaderSize || [4]byte{data[0], data[1], data[2], data[3]} != Magic {
		return data, nil
	}

	header := &Header{}
	if err := header.UnmarshalBinary(data[:HeaderSize]); err != nil {
		return nil, fmt.Errorf("parse ZDDS header: %w", err)
	}

	compressed := data[HeaderSize:]
	if uint64(len(compressed)) != header.CompressedLength {
		return nil, fmt.Errorf("compressed length %d doesn't match header %d", len(compressed), header.CompressedLength)
	}

	zr := zstd.NewReader(bytes.NewReader(compressed))
	defer zr.Close()

	out := make([]byte, header.Length)
	n, err := io.ReadFull(zr, out)
	if err != nil {
		return nil, fmt.Errorf("decompress content: %w", err)
	}
	if uint64(n) != header.Length {
		return nil, fmt.Errorf("incomplete decompress: expected %d, got %d", header.Length, n)
	}
	return out, nil
}
