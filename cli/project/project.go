package project

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// SweepConf is a sweep definition from the "sweeps" section of .vbench.yml
type SweepConf struct {
	Dataset         string `mapstructure:"dataset"`
	DatasetFile     string `mapstructure:"dataset-file"`
	Table           string `mapstructure:"table"`
	Column          string `mapstructure:"column"`
	IndexType       string `mapstructure:"index-type"`
	Params          []int  `mapstructure:"params"`
	Repetitions     *int   `mapstructure:"repetitions"`
	QueryFile       string `mapstructure:"query-file"`
	GroundTruthFile string `mapstructure:"ground-truth-file"`
	OutDir          string `mapstructure:"out-dir"`
	DatasetInfo     string `mapstructure:"dataset-info"`
}

type SweepConfs map[string]SweepConf

func InternalError(format string, a ...interface{}) error {
	prefix := "Whoops! It looks like something is wrong with vbench. " +
		"Please, report a bug with the steps to reproduce it. " +
		"The error is: "

	return fmt.Errorf(prefix+format, a...)
}

// GetSweepConfs decodes the "sweeps" section
func GetSweepConfs(conf VBenchConf) (SweepConfs, error) {
	sweeps := make(SweepConfs)

	rawSweeps, found := conf[sweepsSection]
	if !found || rawSweeps == nil {
		return sweeps, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &sweeps,
	})
	if err != nil {
		return nil, InternalError("Failed to create sweeps decoder: %s", err)
	}

	if err := decoder.Decode(rawSweeps); err != nil {
		return nil, fmt.Errorf("Failed to parse %s section: %s", sweepsSection, err)
	}

	return sweeps, nil
}

// Names returns sweep names in lexical order
func (sweeps SweepConfs) Names() []string {
	names := make([]string, 0, len(sweeps))
	for name := range sweeps {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
