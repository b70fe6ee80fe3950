package vecfile

import (
	"bytes"
	"encoding/binary"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVecs(t *testing.T, path string, vectors ...interface{}) {
	var buf bytes.Buffer
	for _, vector := range vectors {
		var dim int
		switch v := vector.(type) {
		case []float32:
			dim = len(v)
		case []int32:
			dim = len(v)
		}
		require.Nil(t, binary.Write(&buf, binary.LittleEndian, int32(dim)))
		require.Nil(t, binary.Write(&buf, binary.LittleEndian, vector))
	}
	require.Nil(t, ioutil.WriteFile(path, buf.Bytes(), 0644))
}

func writeBin(t *testing.T, path string, count, dim uint32, values interface{}) {
	var buf bytes.Buffer
	require.Nil(t, binary.Write(&buf, binary.LittleEndian, count))
	require.Nil(t, binary.Write(&buf, binary.LittleEndian, dim))
	require.Nil(t, binary.Write(&buf, binary.LittleEndian, values))
	require.Nil(t, ioutil.WriteFile(path, buf.Bytes(), 0644))
}

func TestFormatByPath(t *testing.T) {
	assert := assert.New(t)

	for _, format := range []string{FvecsFormat, IvecsFormat, FbinFormat, IbinFormat} {
		actual, err := FormatByPath("/data/base." + format)
		assert.Nil(err)
		assert.Equal(format, actual)
	}

	_, err := FormatByPath("base.csv")
	assert.EqualError(err, `Unknown vector file format ".csv", supported are: fvecs, ivecs, fbin, ibin`)
}

func TestOpenFvecs(t *testing.T) {
	assert := assert.New(t)

	dir, err := ioutil.TempDir("", "vecfile")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "base.fvecs")
	writeVecs(t, path, []float32{1, 2, 3}, []float32{4.5, -5, 0.25})

	file, err := Open(path)
	require.Nil(t, err)
	defer file.Close()

	assert.Equal(3, file.Dim())
	assert.Equal(2, file.Len())
	assert.True(file.IsFloat())

	vector, err := file.Float32s(1)
	assert.Nil(err)
	assert.Equal([]float32{4.5, -5, 0.25}, vector)

	_, err = file.Float32s(2)
	assert.EqualError(err, "Vector index 2 is out of range [0, 2)")

	_, err = file.Int32s(0)
	assert.EqualError(err, "fvecs file doesn't contain integer values")
}

func TestOpenIvecs(t *testing.T) {
	assert := assert.New(t)

	dir, err := ioutil.TempDir("", "vecfile")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "gt.ivecs")
	writeVecs(t, path, []int32{7, 1}, []int32{-2, 100})

	file, err := Open(path)
	require.Nil(t, err)
	defer file.Close()

	assert.Equal(2, file.Dim())
	assert.Equal(2, file.Len())
	assert.False(file.IsFloat())

	vector, err := file.Int32s(0)
	assert.Nil(err)
	assert.Equal([]int32{7, 1}, vector)

	vector, err = file.Int32s(1)
	assert.Nil(err)
	assert.Equal([]int32{-2, 100}, vector)

	// dimensions mismatch
	writeVecs(t, path, []int32{1, 2}, []int32{3})
	_, err = Open(path)
	assert.NotNil(err)

	// truncated record
	writeVecs(t, path, []int32{1, 2, 3})
	content, err := ioutil.ReadFile(path)
	require.Nil(t, err)
	require.Nil(t, ioutil.WriteFile(path, content[:len(content)-2], 0644))
	_, err = Open(path)
	assert.NotNil(err)

	// dimension is larger than the file
	var buf bytes.Buffer
	require.Nil(t, binary.Write(&buf, binary.LittleEndian, []int32{0x7fffffff, 1, 2}))
	require.Nil(t, ioutil.WriteFile(path, buf.Bytes(), 0644))
	_, err = Open(path)
	assert.NotNil(err)
	assert.Contains(err.Error(), "File is truncated")

	// empty file
	require.Nil(t, ioutil.WriteFile(path, nil, 0644))
	file, err = Open(path)
	assert.Nil(err)
	assert.Equal(0, file.Len())
	assert.Nil(file.Close())
}

func TestOpenBin(t *testing.T) {
	assert := assert.New(t)

	dir, err := ioutil.TempDir("", "vecfile")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	fbinPath := filepath.Join(dir, "query.fbin")
	writeBin(t, fbinPath, 2, 2, []float32{0.5, 1.5, 2.5, 3.5})

	file, err := Open(fbinPath)
	require.Nil(t, err)

	assert.Equal(2, file.Dim())
	assert.Equal(2, file.Len())

	vector, err := file.Float32s(1)
	assert.Nil(err)
	assert.Equal([]float32{2.5, 3.5}, vector)
	assert.Nil(file.Close())

	ibinPath := filepath.Join(dir, "gt.ibin")
	writeBin(t, ibinPath, 1, 3, []int32{9, 8, 7})

	file, err = Open(ibinPath)
	require.Nil(t, err)

	vector32, err := file.Int32s(0)
	assert.Nil(err)
	assert.Equal([]int32{9, 8, 7}, vector32)
	assert.Nil(file.Close())

	// header says more than the file has
	writeBin(t, ibinPath, 2, 3, []int32{9, 8, 7})
	_, err = Open(ibinPath)
	assert.NotNil(err)
	assert.Contains(err.Error(), "File is truncated")

	// count*dim overflows, header only
	writeBin(t, fbinPath, 1<<31, 1<<31, []float32{})
	assert.NotPanics(func() {
		file, err = Open(fbinPath)
	})
	assert.NotNil(err)
	assert.Contains(err.Error(), "File is truncated")

	writeBin(t, ibinPath, 0xffffffff, 0xffffffff, []int32{1, 2})
	_, err = Open(ibinPath)
	assert.NotNil(err)
	assert.Contains(err.Error(), "File is truncated")

	// no header
	require.Nil(t, ioutil.WriteFile(ibinPath, []byte{1, 0}, 0644))
	_, err = Open(ibinPath)
	assert.NotNil(err)
	assert.Contains(err.Error(), "File is too short")

	_, err = Open(filepath.Join(dir, "missing.fbin"))
	assert.NotNil(err)
}
