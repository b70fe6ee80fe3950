package datagen

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/vecbench/vbench/cli/common"
	"github.com/vecbench/vbench/cli/context"
)

const (
	FloatSchema  = "float"
	VectorSchema = "vector"

	DefaultDim       = 16
	DefaultRows      = 1000
	DefaultPrecision = 12

	valueScale = 10
)

// Opts describes one synthetic data file
type Opts struct {
	Schema       string
	Table        string
	ColumnPrefix string
	Dim          int
	Rows         int
	Precision    int
}

type schemaDefaults struct {
	table        string
	columnPrefix string
	fileName     string
}

var (
	schemas = map[string]schemaDefaults{
		FloatSchema:  {table: "b", columnPrefix: "b", fileName: "float_load_data.sh"},
		VectorSchema: {table: "a", columnPrefix: "b", fileName: "vector_load_data.sh"},
	}
)

// OptsFromCtx fills Opts from the command line, taking
// the schema defaults for unset values
func OptsFromCtx(datagenCtx *context.DatagenCtx) (Opts, error) {
	defaults, found := schemas[datagenCtx.Schema]
	if !found {
		return Opts{}, fmt.Errorf("Unsupported schema %q, supported are: %s, %s",
			datagenCtx.Schema, FloatSchema, VectorSchema)
	}

	opts := Opts{
		Schema:       datagenCtx.Schema,
		Table:        datagenCtx.Table,
		ColumnPrefix: datagenCtx.ColumnPrefix,
		Dim:          datagenCtx.Dim,
		Rows:         datagenCtx.Rows,
		Precision:    datagenCtx.Precision,
	}

	if opts.Table == "" {
		opts.Table = defaults.table
	}
	if opts.ColumnPrefix == "" {
		opts.ColumnPrefix = defaults.columnPrefix
	}

	if opts.Dim <= 0 {
		return Opts{}, fmt.Errorf("Dimension should be positive, got %d", opts.Dim)
	}
	if opts.Rows < 0 {
		return Opts{}, fmt.Errorf("Rows count can't be negative, got %d", opts.Rows)
	}
	if opts.Precision < 0 {
		return Opts{}, fmt.Errorf("Precision can't be negative, got %d", opts.Precision)
	}

	return opts, nil
}

// DefaultFileName returns the output file name used for the schema
func DefaultFileName(schema string) string {
	return schemas[schema].fileName
}

// CreateTableStatement returns the table definition for opts
func CreateTableStatement(opts *Opts) string {
	if opts.Schema == VectorSchema {
		return fmt.Sprintf("create table %s(%s vector(%d));", opts.Table, opts.ColumnPrefix, opts.Dim)
	}

	columns := make([]string, opts.Dim)
	for i := range columns {
		columns[i] = fmt.Sprintf("%s%d float", opts.ColumnPrefix, i)
	}

	return fmt.Sprintf("create table %s(%s);", opts.Table, strings.Join(columns, ", "))
}

// InsertStatement returns the insert statement for one row
func InsertStatement(opts *Opts, row []float64) string {
	values := make([]string, len(row))
	for i, value := range row {
		values[i] = strconv.FormatFloat(value, 'f', opts.Precision, 64)
	}

	joined := strings.Join(values, ", ")

	if opts.Schema == VectorSchema {
		return fmt.Sprintf("insert into %s values (vector '[%s]');", opts.Table, joined)
	}

	return fmt.Sprintf("insert into %s values (%s);", opts.Table, joined)
}

// RandomRow returns dim values from [0, 10)
func RandomRow(rng *rand.Rand, dim int) []float64 {
	row := make([]float64, dim)
	for i := range row {
		row[i] = rng.Float64() * valueScale
	}

	return row
}

// Write writes the table definition and opts.Rows random inserts to w
func Write(w io.Writer, opts *Opts, rng *rand.Rand) error {
	bufWriter := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bufWriter, CreateTableStatement(opts)); err != nil {
		return err
	}

	for i := 0; i < opts.Rows; i++ {
		if _, err := fmt.Fprintln(bufWriter, InsertStatement(opts, RandomRow(rng, opts.Dim))); err != nil {
			return err
		}
	}

	return bufWriter.Flush()
}

// NewRand returns the random source for the run.
// Without a seed the output differs from run to run.
func NewRand(datagenCtx *context.DatagenCtx) *rand.Rand {
	seed := datagenCtx.Seed
	if !datagenCtx.SeedIsSet {
		seed = time.Now().UnixNano()
	}

	log.Debugf("Random seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}

// Generate writes the synthetic data file and returns its path
func Generate(ctx *context.Ctx) (string, error) {
	opts, err := OptsFromCtx(&ctx.Datagen)
	if err != nil {
		return "", err
	}

	if err := common.CheckCompressType(ctx.Datagen.Compress); err != nil {
		return "", err
	}

	outPath := ctx.Datagen.OutPath
	if outPath == "" {
		outPath = DefaultFileName(opts.Schema)
	}
	if ctx.Project.DataDir != "" && !filepath.IsAbs(outPath) {
		outPath = filepath.Join(ctx.Project.DataDir, outPath)
	}
	outPath = common.CompressedPath(outPath, ctx.Datagen.Compress)

	rng := NewRand(&ctx.Datagen)

	if ctx.Cli.Verbose {
		common.PrintParams("Synthetic data", opts)
	}

	generate := func() error {
		return common.WriteFileAtomic(outPath, func(w io.Writer) error {
			compressWriter, err := common.NewCompressWriter(w, ctx.Datagen.Compress)
			if err != nil {
				return err
			}

			if err := Write(compressWriter, &opts, rng); err != nil {
				compressWriter.Close()
				return fmt.Errorf("Failed to write rows: %s", err)
			}

			return compressWriter.Close()
		})
	}

	log.Infof("Generating %d rows of dimension %d into %s", opts.Rows, opts.Dim, outPath)
	if err := common.RunFunctionWithSpinner(generate, "Generating...", !ctx.Cli.Verbose); err != nil {
		return "", err
	}

	return outPath, nil
}
