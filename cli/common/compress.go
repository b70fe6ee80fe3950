package common

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const (
	CompressNone = "none"
	CompressZstd = "zstd"

	zstdExt = ".zst"
)

var (
	compressTypes = []string{CompressNone, CompressZstd}
)

// CheckCompressType returns an error for unknown compression names
func CheckCompressType(compressType string) error {
	if compressType == "" || StringSliceContains(compressTypes, compressType) {
		return nil
	}

	return fmt.Errorf("Unsupported compression %q, supported are: %v", compressType, compressTypes)
}

// CompressedPath returns path with the compression extension added
func CompressedPath(path string, compressType string) string {
	if compressType == CompressZstd {
		return path + zstdExt
	}

	return path
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewCompressWriter wraps w with the encoder for compressType.
// Close must be called to flush the encoder, it doesn't close w.
func NewCompressWriter(w io.Writer, compressType string) (io.WriteCloser, error) {
	switch compressType {
	case "", CompressNone:
		return nopWriteCloser{w}, nil
	case CompressZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("Failed to create zstd encoder: %s", err)
		}
		return enc, nil
	}

	return nil, fmt.Errorf("Unsupported compression %q", compressType)
}

// NewDecompressReader wraps r with the decoder for compressType
func NewDecompressReader(r io.Reader, compressType string) (io.ReadCloser, error) {
	switch compressType {
	case "", CompressNone:
		return io.NopCloser(r), nil
	case CompressZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("Failed to create zstd decoder: %s", err)
		}
		return dec.IOReadCloser(), nil
	}

	return nil, fmt.Errorf("Unsupported compression %q", compressType)
}

// CompressTypeByPath returns the compression of a file by its extension
func CompressTypeByPath(path string) string {
	if strings.HasSuffix(path, zstdExt) {
		return CompressZstd
	}

	return CompressNone
}

type decompressedFile struct {
	io.ReadCloser
	file *os.File
}

func (f decompressedFile) Close() error {
	f.ReadCloser.Close()
	return f.file.Close()
}

// OpenDecompressed opens path for reading, files with
// the ".zst" extension are decompressed on the fly
func OpenDecompressed(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	reader, err := NewDecompressReader(file, CompressTypeByPath(path))
	if err != nil {
		file.Close()
		return nil, err
	}

	return decompressedFile{ReadCloser: reader, file: file}, nil
}
