package workload

import (
	"sort"
)

const (
	turingQueryFile       = "/ssd_root/dataset/turing10m/testQuery10K.fbin"
	turingGroundTruthFile = "/ssd_root/dataset/turing10m/clu_msturing10M_gt100"

	deepQueryFile       = "/home/jin467/dataset/deep10M/deep1b_gt/deep1b/deep1B_queries.fvecs"
	deepGroundTruthFile = "/home/jin467/dataset/deep10M/deep10M_groundtruth.ivecs"
)

var (
	ivfflatParams = []int{3, 5, 7, 10, 20, 30, 40, 50}
	hnswParams    = []int{100, 200, 300, 400, 500, 600, 700, 800}

	presets = map[string]Sweep{
		"turing10m-ivfflat": {
			Dataset:         "turing10m",
			DatasetFile:     "turing10m.bin",
			Table:           "turing10m",
			Column:          "data",
			IndexType:       IvfflatType,
			Params:          ivfflatParams,
			Repetitions:     DefaultRepetitions,
			QueryFile:       turingQueryFile,
			GroundTruthFile: turingGroundTruthFile,
			OutDir:          "turing10m-ivfflat",
		},
		"turing10m-hnsw": {
			Dataset:         "turing10m",
			DatasetFile:     "turing10m.bin",
			Table:           "turing10m",
			Column:          "data",
			IndexType:       HnswType,
			Params:          hnswParams,
			Repetitions:     DefaultRepetitions,
			QueryFile:       turingQueryFile,
			GroundTruthFile: turingGroundTruthFile,
			OutDir:          "turing10m-hnsw",
		},
		"deep10m-ivfflat": {
			Dataset:         "deep10m",
			DatasetFile:     "deep10m.bin",
			Table:           "deep10m",
			Column:          "data",
			IndexType:       IvfflatType,
			Params:          ivfflatParams,
			Repetitions:     DefaultRepetitions,
			QueryFile:       deepQueryFile,
			GroundTruthFile: deepGroundTruthFile,
			OutDir:          "deep_10m-ivfflat",
		},
	}
)

// PresetNames returns built-in sweep names in lexical order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// GetPreset returns a copy of the built-in sweep
func GetPreset(name string) (Sweep, bool) {
	preset, found := presets[name]
	if !found {
		return Sweep{}, false
	}

	preset.Name = name
	preset.Params = append([]int(nil), preset.Params...)

	return preset, true
}
