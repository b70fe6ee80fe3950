package vecfile

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
)

const (
	FvecsFormat = "fvecs"
	IvecsFormat = "ivecs"
	FbinFormat  = "fbin"
	IbinFormat  = "ibin"

	valueSize  = 4
	headerSize = 8
)

// File is a read-only memory mapped vector file.
// Vectors are addressed by index, every vector has Dim() values.
type File struct {
	Path   string
	Format string

	f    *os.File
	data mmap.MMap

	dim     int
	count   int
	offset  int // data offset of the first vector
	stride  int // bytes between vectors
	isFloat bool
}

// FormatByPath returns the file format by its extension
func FormatByPath(path string) (string, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")

	switch format {
	case FvecsFormat, IvecsFormat, FbinFormat, IbinFormat:
		return format, nil
	}

	return "", fmt.Errorf("Unknown vector file format %q, supported are: %s",
		filepath.Ext(path), strings.Join([]string{FvecsFormat, IvecsFormat, FbinFormat, IbinFormat}, ", "))
}

// Open maps the file and checks its layout
func Open(path string) (*File, error) {
	format, err := FormatByPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to open vector file: %s", err)
	}

	file := File{
		Path:    path,
		Format:  format,
		f:       f,
		isFloat: format == FvecsFormat || format == FbinFormat,
	}

	fileInfo, err := f.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("Failed to get vector file info: %s", err)
	}

	// empty file can't be mapped
	if fileInfo.Size() > 0 {
		if file.data, err = mmap.Map(f, mmap.RDONLY, 0); err != nil {
			file.Close()
			return nil, fmt.Errorf("Failed to map vector file: %s", err)
		}
	}

	switch format {
	case FvecsFormat, IvecsFormat:
		err = file.parseVecsLayout()
	default:
		err = file.parseBinLayout()
	}

	if err != nil {
		file.Close()
		return nil, fmt.Errorf("Invalid %s file %s: %s", format, path, err)
	}

	return &file, nil
}

// .fvecs and .ivecs: each vector is prefixed by its dimension
func (file *File) parseVecsLayout() error {
	size := len(file.data)
	if size == 0 {
		return nil
	}

	if size < valueSize {
		return fmt.Errorf("File is too short")
	}

	dim := int(int32(binary.LittleEndian.Uint32(file.data)))
	if dim <= 0 {
		return fmt.Errorf("Bad dimension %d", dim)
	}

	// record can't be larger than the file
	if dim >= size/valueSize {
		return fmt.Errorf("File is truncated: dimension %d doesn't fit into %d bytes", dim, size)
	}

	stride := valueSize * (dim + 1)
	if size%stride != 0 {
		return fmt.Errorf("File size %d isn't a multiple of the record size %d", size, stride)
	}

	file.dim = dim
	file.stride = stride
	file.count = size / stride
	file.offset = valueSize

	for i := 1; i < file.count; i++ {
		recordDim := int(int32(binary.LittleEndian.Uint32(file.data[i*stride:])))
		if recordDim != dim {
			return fmt.Errorf("Vector %d has dimension %d, expected %d", i, recordDim, dim)
		}
	}

	return nil
}

// .fbin and .ibin: uint32 count and uint32 dimension, then the values
func (file *File) parseBinLayout() error {
	size := len(file.data)
	if size < headerSize {
		return fmt.Errorf("File is too short")
	}

	count := int(binary.LittleEndian.Uint32(file.data))
	dim := int(binary.LittleEndian.Uint32(file.data[valueSize:]))
	if dim == 0 && count > 0 {
		return fmt.Errorf("Bad dimension %d", dim)
	}

	// count*dim can overflow, so compare against the available values
	if dim > 0 && count > (size-headerSize)/(dim*valueSize) {
		return fmt.Errorf("File is truncated: header describes %d vectors of dimension %d, got %d bytes",
			count, dim, size)
	}

	file.dim = dim
	file.count = count
	file.stride = dim * valueSize
	file.offset = headerSize

	return nil
}

func (file *File) Dim() int {
	return file.dim
}

func (file *File) Len() int {
	return file.count
}

func (file *File) IsFloat() bool {
	return file.isFloat
}

func (file *File) vectorBytes(i int) []byte {
	start := i*file.stride + file.offset
	return file.data[start : start+file.dim*valueSize]
}

// Float32s returns the i-th vector of a float file
func (file *File) Float32s(i int) ([]float32, error) {
	if err := file.checkIndex(i, true); err != nil {
		return nil, err
	}

	raw := file.vectorBytes(i)
	vector := make([]float32, file.dim)
	for j := range vector {
		vector[j] = math.Float32frombits(binary.LittleEndian.Uint32(raw[j*valueSize:]))
	}

	return vector, nil
}

// Int32s returns the i-th vector of an integer file
func (file *File) Int32s(i int) ([]int32, error) {
	if err := file.checkIndex(i, false); err != nil {
		return nil, err
	}

	raw := file.vectorBytes(i)
	vector := make([]int32, file.dim)
	for j := range vector {
		vector[j] = int32(binary.LittleEndian.Uint32(raw[j*valueSize:]))
	}

	return vector, nil
}

func (file *File) checkIndex(i int, isFloat bool) error {
	if file.isFloat != isFloat {
		return fmt.Errorf("%s file doesn't contain %s values", file.Format, valueKind(isFloat))
	}

	if i < 0 || i >= file.count {
		return fmt.Errorf("Vector index %d is out of range [0, %d)", i, file.count)
	}

	return nil
}

func valueKind(isFloat bool) string {
	if isFloat {
		return "float"
	}
	return "integer"
}

// Close unmaps the file and closes it
func (file *File) Close() error {
	if file.data != nil {
		if err := file.data.Unmap(); err != nil {
			return err
		}
		file.data = nil
	}

	if file.f != nil {
		err := file.f.Close()
		file.f = nil
		return err
	}

	return nil
}
