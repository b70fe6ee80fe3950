package convert

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/vecbench/vbench/cli/common"
	"github.com/vecbench/vbench/cli/context"
	"github.com/vecbench/vbench/cli/vecfile"
)

const (
	BaseMode        = "base"
	QueryMode       = "query"
	GroundTruthMode = "groundtruth"

	DefaultPrecision = 6

	outFileSuffix = "_load_data.sh"
	column        = "data"
)

var (
	modes = []string{BaseMode, QueryMode, GroundTruthMode}
)

// Modes returns supported conversion modes
func Modes() []string {
	return modes
}

func checkMode(mode string) error {
	if !common.StringSliceContains(modes, mode) {
		return fmt.Errorf("Unsupported mode %q, supported are: %s", mode, strings.Join(modes, ", "))
	}
	return nil
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// DefaultOutPath returns <input dir>/<input base name>_load_data.sh
func DefaultOutPath(inputPath string) string {
	return filepath.Join(filepath.Dir(inputPath), baseName(inputPath)+outFileSuffix)
}

func formatFloats(vector []float32, precision int) []string {
	values := make([]string, len(vector))
	for i, value := range vector {
		values[i] = strconv.FormatFloat(float64(value), 'f', precision, 32)
	}
	return values
}

func formatInts(vector []int32) []string {
	values := make([]string, len(vector))
	for i, value := range vector {
		values[i] = strconv.FormatInt(int64(value), 10)
	}
	return values
}

// Write converts all vectors of file to text according to the mode
func Write(w io.Writer, file *vecfile.File, mode, table string, precision int) error {
	if err := checkMode(mode); err != nil {
		return err
	}

	isFloatMode := mode != GroundTruthMode
	if file.IsFloat() != isFloatMode {
		return fmt.Errorf("Mode %s can't be used with %s file", mode, file.Format)
	}

	bufWriter := bufio.NewWriter(w)

	if mode == BaseMode {
		if _, err := fmt.Fprintf(bufWriter, "create table %s(%s vector(%d));\n", table, column, file.Dim()); err != nil {
			return err
		}
	}

	for i := 0; i < file.Len(); i++ {
		var line string

		switch mode {
		case BaseMode, QueryMode:
			vector, err := file.Float32s(i)
			if err != nil {
				return err
			}

			values := formatFloats(vector, precision)
			if mode == BaseMode {
				line = fmt.Sprintf("insert into %s values (vector '[%s]');", table, strings.Join(values, ", "))
			} else {
				line = strings.Join(values, ",")
			}

		case GroundTruthMode:
			vector, err := file.Int32s(i)
			if err != nil {
				return err
			}

			line = strings.Join(formatInts(vector), ",")
		}

		if _, err := fmt.Fprintln(bufWriter, line); err != nil {
			return err
		}
	}

	return bufWriter.Flush()
}

// Run converts ctx.Convert.InputPath and returns the output file path
func Run(ctx *context.Ctx) (string, error) {
	convertCtx := &ctx.Convert

	if err := checkMode(convertCtx.Mode); err != nil {
		return "", err
	}
	if err := common.CheckCompressType(convertCtx.Compress); err != nil {
		return "", err
	}
	if convertCtx.Precision < 0 {
		return "", fmt.Errorf("Precision can't be negative, got %d", convertCtx.Precision)
	}

	table := convertCtx.Table
	if table == "" {
		table = baseName(convertCtx.InputPath)
	}

	outPath := convertCtx.OutPath
	if outPath == "" {
		outPath = DefaultOutPath(convertCtx.InputPath)
	}
	outPath = common.CompressedPath(outPath, convertCtx.Compress)

	file, err := vecfile.Open(convertCtx.InputPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	log.Infof("Converting %d vectors of dimension %d from %s", file.Len(), file.Dim(), convertCtx.InputPath)

	convert := func() error {
		return common.WriteFileAtomic(outPath, func(w io.Writer) error {
			compressWriter, err := common.NewCompressWriter(w, convertCtx.Compress)
			if err != nil {
				return err
			}

			if err := Write(compressWriter, file, convertCtx.Mode, table, convertCtx.Precision); err != nil {
				compressWriter.Close()
				return err
			}

			return compressWriter.Close()
		})
	}

	if err := common.RunFunctionWithSpinner(convert, "Converting...", !ctx.Cli.Verbose); err != nil {
		return "", fmt.Errorf("Failed to convert %s: %s", convertCtx.InputPath, err)
	}

	return outPath, nil
}
