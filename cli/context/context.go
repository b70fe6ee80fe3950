package context

type Ctx struct {
	Project  ProjectCtx
	Cli      CliCtx
	Workload WorkloadCtx
	Average  AverageCtx
	Datagen  DatagenCtx
	Convert  ConvertCtx
	Recall   RecallCtx
}

type ProjectCtx struct {
	ConfPath string
	OutDir   string
	DataDir  string
}

type CliCtx struct {
	Verbose bool
	Debug   bool
	Quiet   bool
}

type WorkloadCtx struct {
	Presets []string
	All     bool
	Check   bool

	DatasetInfoPath string

	Dataset         string
	DatasetFile     string
	Table           string
	Column          string
	IndexType       string
	Params          []int
	Repetitions     int
	QueryFile       string
	GroundTruthFile string
	OutDir          string
}

type AverageCtx struct {
	InputPath string
}

type DatagenCtx struct {
	Schema       string
	Table        string
	ColumnPrefix string
	Dim          int
	Rows         int
	Precision    int
	Seed         int64
	SeedIsSet    bool
	OutPath      string
	Compress     string
}

type ConvertCtx struct {
	Mode      string
	InputPath string
	OutPath   string
	Table     string
	Precision int
	Compress  string
}

type RecallCtx struct {
	AnswerPath      string
	GroundTruthPath string
	OutPath         string
}
