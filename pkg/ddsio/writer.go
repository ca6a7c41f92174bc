package ddsio

import (
	"fmt"
	"io"

	"github.com/DataDog/zstd"
)

// DefaultCompressionLevel is the default zstd level used by WriteCompressed.
const DefaultCompressionLevel = zstd.BestSpeed

// Writer wraps an io.WriteSeeker to produce a ZDDS archive: a Header
// followed by a zstd stream of the DDS bytes. The header is written as a
// placeholder up front and rewritten with the true compressed size once
// Close has flushed the compressor, mirroring the teacher's archive.Writer.
type Writer struct {
	dst        io.WriteSeeker
	zWriter    *zstd.Writer
	header     *Header
	level      int
	dxgiFormat uint32
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithCompressionLevel overrides the zstd compression level.
func WithCompressionLevel(level int) WriterOption {
	return func(w *Writer) { w.level = level }
}

// WithDXGIFormat tags the archive header with the wrapped DDS payload's
// DXGI_FORMAT, so ReadCompressed callers can inspect it without
// decompressing the stream first.
func WithDXGIFormat(format uint32) WriterOption {
	return func(w *Writer) { w.dxgiFormat = format }
}

// NewWriter creates a Writer that will emit a ZDDS archive of
// uncompressedSize bytes to dst.
func NewWriter(dst io.WriteSeeker, uncompressedSize uint64, opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		dst:   dst,
		level: DefaultCompressionLevel,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.header = NewHeader(uncompressedSize, 0, w.dxgiFormat)

	headerBytes, err := w.header.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshal header: %w", err)
	}
	if _, err := dst.Write(headerBytes); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	w.zWriter = zstd.NewWriterLevel(dst, w.level)
	return w, nil
}

// Write compresses and writes p.
func (w *Writer) Write(p []byte) (int, error) {
	return w.zWriter.Write(p)
}

// Close flushes the compressor and rewrites the header with the actual
// compressed size.
func (w *Writer) Close() error {
	if err := w.zWriter.Close(); err != nil {
		return fmt.Errorf("close compressor: %w", err)
	}

	pos, err := w.dst.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("get position: %w", err)
	}
	w.header.CompressedLength = uint64(pos) - uint64(w.header.Size())

	if _, err := w.dst.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek to start: %w", err)
	}
	headerBytes, err := w.header.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal header: %w", err)
	}
	if _, err := w.dst.Write(headerBytes); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.dst.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("seek to end: %w", err)
	}
	return nil
}

// WriteCompressed encodes ddsData as a ZDDS archive to dst.
func WriteCompressed(dst io.WriteSeeker, ddsData []byte, opts ...WriterOption) error {
	w, err := NewWriter(dst, uint64(len(ddsData)), opts...)
	if err != nil {
		return err
	}
	if _, err := w.Write(ddsData); err != nil {
		return fmt.Errorf("write content: %w", err)
	}
	return w.Close()
}
