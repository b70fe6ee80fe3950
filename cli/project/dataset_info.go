package project

import (
	"fmt"

	"github.com/robfig/config"
)

const (
	datasetFileOptName = "DATASET_FILE"
	queryOptName       = "QUERY"
	groundTruthOptName = "GROUND_TRUTH"
	tableOptName       = "TABLE"
	columnOptName      = "COLUMN"
)

// DatasetInfo describes where the files of one dataset live.
// It's read from a plain KEY=VALUE descriptor placed next to the dataset.
type DatasetInfo struct {
	DatasetFile     string
	QueryFile       string
	GroundTruthFile string
	Table           string
	Column          string
}

func ReadDatasetInfo(path string) (*DatasetInfo, error) {
	c, err := config.ReadDefault(path)
	if err != nil {
		return nil, fmt.Errorf("%s is specified in bad format: %s", path, err)
	}

	var info DatasetInfo

	info.DatasetFile, _ = c.RawStringDefault(datasetFileOptName)
	info.QueryFile, _ = c.RawStringDefault(queryOptName)
	info.GroundTruthFile, _ = c.RawStringDefault(groundTruthOptName)
	info.Table, _ = c.RawStringDefault(tableOptName)
	info.Column, _ = c.RawStringDefault(columnOptName)

	if info.QueryFile == "" && info.GroundTruthFile == "" && info.DatasetFile == "" {
		return nil, fmt.Errorf(
			"You should specify at least one of %s, %s and %s in %s",
			datasetFileOptName, queryOptName, groundTruthOptName, path,
		)
	}

	return &info, nil
}
