package workload

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vecbench/vbench/cli/project"
)

const (
	IvfflatType = "ivfflat"
	HnswType    = "hnsw"

	DefaultRepetitions = 5
	defaultColumn      = "data"
	datasetFileExt     = ".bin"
)

// Sweep describes one index-build parameter sweep.
// Every parameter value gets its own script.
type Sweep struct {
	Name string

	Dataset     string
	DatasetFile string
	Table       string
	Column      string
	IndexType   string

	Params      []int
	Repetitions int

	QueryFile       string
	GroundTruthFile string

	OutDir string
}

// scriptCtx is passed to the script templates
type scriptCtx struct {
	Sweep
	Index int
	Param int
}

func (sweep *Sweep) ctxFor(i int) scriptCtx {
	return scriptCtx{
		Sweep: *sweep,
		Index: i,
		Param: sweep.Params[i],
	}
}

// SetDefaults fills fields that can be derived from the dataset name.
// Relative output directories are joined to baseDir.
func (sweep *Sweep) SetDefaults(baseDir string) {
	if sweep.Table == "" {
		sweep.Table = sweep.Dataset
	}

	if sweep.DatasetFile == "" && sweep.Dataset != "" {
		sweep.DatasetFile = sweep.Dataset + datasetFileExt
	}

	if sweep.Column == "" {
		sweep.Column = defaultColumn
	}

	if sweep.OutDir == "" && sweep.Dataset != "" {
		sweep.OutDir = fmt.Sprintf("%s-%s", sweep.Dataset, sweep.IndexType)
	}

	if sweep.OutDir != "" && baseDir != "" && !filepath.IsAbs(sweep.OutDir) {
		sweep.OutDir = filepath.Join(baseDir, sweep.OutDir)
	}
}

// ApplyDatasetInfo fills fields that aren't set yet from a dataset descriptor
func (sweep *Sweep) ApplyDatasetInfo(info *project.DatasetInfo) {
	if sweep.DatasetFile == "" {
		sweep.DatasetFile = info.DatasetFile
	}
	if sweep.QueryFile == "" {
		sweep.QueryFile = info.QueryFile
	}
	if sweep.GroundTruthFile == "" {
		sweep.GroundTruthFile = info.GroundTruthFile
	}
	if sweep.Table == "" {
		sweep.Table = info.Table
	}
	if sweep.Column == "" {
		sweep.Column = info.Column
	}
}

// Validate checks that every token of the script grammar is set.
// Parameter values and paths aren't checked.
func (sweep *Sweep) Validate() error {
	if _, found := scriptTemplates[sweep.IndexType]; !found {
		return fmt.Errorf("Unsupported index type %q, supported are: %s",
			sweep.IndexType, strings.Join(IndexTypes(), ", "))
	}

	required := []struct {
		name  string
		value string
	}{
		{"dataset", sweep.Dataset},
		{"dataset file", sweep.DatasetFile},
		{"table", sweep.Table},
		{"column", sweep.Column},
		{"query file", sweep.QueryFile},
		{"ground truth file", sweep.GroundTruthFile},
		{"output directory", sweep.OutDir},
	}

	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("Sweep %s: %s isn't specified", sweep.ID(), field.name)
		}
		if strings.ContainsAny(field.value, " \t\n") && field.name != "output directory" {
			return fmt.Errorf("Sweep %s: %s %q contains whitespace", sweep.ID(), field.name, field.value)
		}
	}

	if sweep.Repetitions < 0 {
		return fmt.Errorf("Sweep %s: repetitions count can't be negative", sweep.ID())
	}

	return nil
}

// ID returns the sweep name, or dataset-indextype for unnamed sweeps
func (sweep *Sweep) ID() string {
	if sweep.Name != "" {
		return sweep.Name
	}

	return fmt.Sprintf("%s-%s", sweep.Dataset, sweep.IndexType)
}

// FromConf builds a sweep from a .vbench.yml definition
func FromConf(name string, conf project.SweepConf) Sweep {
	sweep := Sweep{
		Name:            name,
		Dataset:         conf.Dataset,
		DatasetFile:     conf.DatasetFile,
		Table:           conf.Table,
		Column:          conf.Column,
		IndexType:       conf.IndexType,
		Params:          append([]int(nil), conf.Params...),
		Repetitions:     DefaultRepetitions,
		QueryFile:       conf.QueryFile,
		GroundTruthFile: conf.GroundTruthFile,
		OutDir:          conf.OutDir,
	}

	// explicit 0 is kept, such scripts run no queries
	if conf.Repetitions != nil {
		sweep.Repetitions = *conf.Repetitions
	}

	return sweep
}
