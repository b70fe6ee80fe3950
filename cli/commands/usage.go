package commands

// COMMON
const (
	verboseUsage = `Verbose output`
	quietUsage   = `Show only errors`
	debugUsage   = `Debug mode`

	confUsage = `Path to the configuration file
Defaults to ./.vbench.yml
`

	outDirUsage = `Directory relative output paths are resolved against
Defaults to ./ (or "out-dir" in config)
`

	dataDirUsage = `Directory generated data files are written to
Defaults to ./ (or "data-dir" in config)
`

	compressUsage = `Compress the output file
Supported values: none, zstd
The ".zst" extension is added for zstd
`

	precisionUsage = `Number of digits after the decimal point
`
)

// WORKLOAD
const (
	allUsage = `Generate scripts for all known sweeps
`

	checkUsage = `Don't write anything, only compare scripts on disk
with the generated ones and show the differences
`

	datasetInfoUsage = `Path to the data set description file
KEY=VALUE lines with DATASET_FILE, QUERY, GROUND_TRUTH,
TABLE and COLUMN keys fill the unset sweep fields
`

	datasetUsage = `Data set name
Describes a sweep with flags instead of sweep names
`

	datasetFileUsage = `Data set file to load
Defaults to <dataset>.bin
Used only with --dataset
`

	tableUsage = `Table name
Defaults to the data set name
Used only with --dataset
`

	columnUsage = `Vector column name
Defaults to "data"
Used only with --dataset
`

	indexTypeUsage = `Index type: ivfflat or hnsw
Used only with --dataset
`

	paramsUsage = `Comma separated sweep parameters
One script is generated per parameter
Used only with --dataset
`

	repetitionsUsage = `Number of query runs in every script
Used only with --dataset
`

	queryUsage = `Query vectors file
Used only with --dataset
`

	groundTruthUsage = `Ground truth file
Used only with --dataset
`

	sweepOutDirUsage = `Directory the scripts are written to
Defaults to <dataset>-<index type>
Used only with --dataset
`
)

// AVERAGE
const (
	inputUsage = `Result file to average
`
)

// DATAGEN
const (
	schemaUsage = `Table schema: float or vector
`

	dimUsage = `Number of values in a row
`

	rowsUsage = `Number of rows to insert
`

	seedUsage = `Random seed
Runs with the same seed produce the same file
`

	datagenTableUsage = `Table name
Defaults to "b" for float and "a" for vector schema
`

	columnPrefixUsage = `Column name (prefix for float schema)
Defaults to "b"
`

	datagenOutUsage = `Output file
Defaults to <schema>_load_data.sh
`
)

// CONVERT
const (
	convertOutUsage = `Output file
Defaults to <input dir>/<input name>_load_data.sh
`

	convertTableUsage = `Table name for base mode
Defaults to the input file name without extension
`
)

// RECALL
const (
	recallOutUsage = `Result file
Defaults to result.txt in --out-dir
`
)

const (
	completionDirUsage = `Directory to write completion scripts to
Each shell gets its own subdirectory
`
)
