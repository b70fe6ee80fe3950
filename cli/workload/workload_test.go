package workload

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vecbench/vbench/cli/context"
	"github.com/vecbench/vbench/cli/project"
)

func TestPresets(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"deep10m-ivfflat", "turing10m-hnsw", "turing10m-ivfflat"}, PresetNames())

	preset, found := GetPreset("turing10m-hnsw")
	assert.True(found)
	assert.Equal("turing10m-hnsw", preset.Name)
	assert.Equal([]int{100, 200, 300, 400, 500, 600, 700, 800}, preset.Params)
	assert.Nil(preset.Validate())

	// presets are copied
	preset.Params[0] = 1
	preset, _ = GetPreset("turing10m-hnsw")
	assert.Equal(100, preset.Params[0])

	preset, found = GetPreset("deep10m-ivfflat")
	assert.True(found)
	assert.Equal("deep_10m-ivfflat", preset.OutDir)

	_, found = GetPreset("unknown")
	assert.False(found)
}

func TestSweepSetDefaults(t *testing.T) {
	assert := assert.New(t)

	sweep := Sweep{Dataset: "sift1m", IndexType: HnswType}
	sweep.SetDefaults("base")

	assert.Equal("sift1m", sweep.Table)
	assert.Equal("sift1m.bin", sweep.DatasetFile)
	assert.Equal("data", sweep.Column)
	assert.Equal(filepath.Join("base", "sift1m-hnsw"), sweep.OutDir)

	// absolute out dir isn't joined
	sweep = Sweep{Dataset: "sift1m", IndexType: HnswType, OutDir: "/abs/dir"}
	sweep.SetDefaults("base")
	assert.Equal("/abs/dir", sweep.OutDir)
}

func TestSweepApplyDatasetInfo(t *testing.T) {
	assert := assert.New(t)

	sweep := Sweep{Dataset: "sift1m", QueryFile: "q.fvecs"}
	sweep.ApplyDatasetInfo(&project.DatasetInfo{
		DatasetFile:     "sift.bin",
		QueryFile:       "other.fvecs",
		GroundTruthFile: "gt.ivecs",
		Table:           "sift",
	})

	assert.Equal("sift.bin", sweep.DatasetFile)
	assert.Equal("q.fvecs", sweep.QueryFile)
	assert.Equal("gt.ivecs", sweep.GroundTruthFile)
	assert.Equal("sift", sweep.Table)
}

func TestSweepValidate(t *testing.T) {
	assert := assert.New(t)

	sweep := getTestSweep(IvfflatType, []int{1}, "out")
	assert.Nil(sweep.Validate())

	sweep.IndexType = "flat"
	assert.EqualError(sweep.Validate(), `Unsupported index type "flat", supported are: hnsw, ivfflat`)

	sweep = getTestSweep(IvfflatType, []int{1}, "out")
	sweep.QueryFile = ""
	assert.EqualError(sweep.Validate(), "Sweep turing10m-ivfflat: query file isn't specified")

	sweep = getTestSweep(IvfflatType, []int{1}, "out")
	sweep.Table = "my table"
	assert.EqualError(sweep.Validate(), `Sweep turing10m-ivfflat: table "my table" contains whitespace`)

	sweep = getTestSweep(IvfflatType, []int{1}, "out")
	sweep.Repetitions = -1
	assert.EqualError(sweep.Validate(), "Sweep turing10m-ivfflat: repetitions count can't be negative")
}

func TestFromConf(t *testing.T) {
	assert := assert.New(t)

	// repetitions aren't specified
	sweep := FromConf("sift", project.SweepConf{Dataset: "sift", Params: []int{1, 2}})
	assert.Equal("sift", sweep.Name)
	assert.Equal([]int{1, 2}, sweep.Params)
	assert.Equal(DefaultRepetitions, sweep.Repetitions)

	// explicit zero is kept
	zero := 0
	sweep = FromConf("sift", project.SweepConf{Dataset: "sift", Repetitions: &zero})
	assert.Equal(0, sweep.Repetitions)

	three := 3
	sweep = FromConf("sift", project.SweepConf{Dataset: "sift", Repetitions: &three})
	assert.Equal(3, sweep.Repetitions)

	// negative count is kept to be rejected by Validate
	negative := -1
	sweep = FromConf("sift", project.SweepConf{Dataset: "sift", Repetitions: &negative})
	assert.Equal(-1, sweep.Repetitions)
}

func TestFillSweeps(t *testing.T) {
	assert := assert.New(t)

	var ctx context.Ctx
	var sweeps []Sweep
	var err error

	conf := project.VBenchConf{
		"sweeps": map[interface{}]interface{}{
			"turing10m-hnsw": map[interface{}]interface{}{
				"dataset":           "turing10m",
				"index-type":        "hnsw",
				"params":            []interface{}{16, 32},
				"query-file":        "q.fbin",
				"ground-truth-file": "gt",
			},
		},
	}

	// nothing is specified
	_, err = FillSweeps(&ctx, conf)
	assert.NotNil(err)
	assert.True(strings.Contains(err.Error(), "Known sweeps: turing10m-hnsw, deep10m-ivfflat, turing10m-ivfflat"))

	// config shadows preset
	ctx = context.Ctx{}
	ctx.Project.OutDir = "out"
	ctx.Workload.Presets = []string{"turing10m-hnsw", "deep10m-ivfflat"}
	sweeps, err = FillSweeps(&ctx, conf)
	assert.Nil(err)
	assert.Len(sweeps, 2)
	assert.Equal([]int{16, 32}, sweeps[0].Params)
	assert.Equal(DefaultRepetitions, sweeps[0].Repetitions)
	assert.Equal(filepath.Join("out", "turing10m-hnsw"), sweeps[0].OutDir)
	assert.Equal("turing10m.bin", sweeps[0].DatasetFile)
	assert.Equal(filepath.Join("out", "deep_10m-ivfflat"), sweeps[1].OutDir)

	// all
	ctx = context.Ctx{}
	ctx.Workload.All = true
	sweeps, err = FillSweeps(&ctx, conf)
	assert.Nil(err)
	assert.Len(sweeps, 3)

	// unknown
	ctx = context.Ctx{}
	ctx.Workload.Presets = []string{"sift1m-hnsw"}
	_, err = FillSweeps(&ctx, conf)
	assert.NotNil(err)
	assert.True(strings.Contains(err.Error(), `Unknown sweep "sift1m-hnsw"`))

	// ad hoc sweep
	ctx = context.Ctx{}
	ctx.Workload.Dataset = "sift1m"
	ctx.Workload.IndexType = "ivfflat"
	ctx.Workload.Params = []int{1, 2}
	ctx.Workload.Repetitions = 3
	ctx.Workload.QueryFile = "q.fvecs"
	ctx.Workload.GroundTruthFile = "gt.ivecs"
	sweeps, err = FillSweeps(&ctx, nil)
	assert.Nil(err)
	assert.Len(sweeps, 1)
	assert.Equal("sift1m-ivfflat", sweeps[0].ID())
	assert.Equal("sift1m-ivfflat", sweeps[0].OutDir)
	assert.Equal(3, sweeps[0].Repetitions)

	// ad hoc sweep can't be mixed with names
	ctx.Workload.Presets = []string{"turing10m-hnsw"}
	_, err = FillSweeps(&ctx, nil)
	assert.EqualError(err, "Sweep names and --all can't be used with --dataset")
}

func TestFillSweepsDatasetInfo(t *testing.T) {
	assert := assert.New(t)

	infoFile, err := ioutil.TempFile("", "dataset-*.txt")
	require.Nil(t, err)
	defer os.Remove(infoFile.Name())

	_, err = infoFile.WriteString("QUERY=/data/sift_query.fvecs\nGROUND_TRUTH=/data/sift_gt.ivecs\n")
	require.Nil(t, err)
	require.Nil(t, infoFile.Close())

	var ctx context.Ctx
	ctx.Workload.Dataset = "sift1m"
	ctx.Workload.IndexType = "hnsw"
	ctx.Workload.Params = []int{100}
	ctx.Workload.Repetitions = 5
	ctx.Workload.DatasetInfoPath = infoFile.Name()

	sweeps, err := FillSweeps(&ctx, nil)
	assert.Nil(err)
	assert.Equal("/data/sift_query.fvecs", sweeps[0].QueryFile)
	assert.Equal("/data/sift_gt.ivecs", sweeps[0].GroundTruthFile)
}

func TestRunCheck(t *testing.T) {
	assert := assert.New(t)

	outDir, err := ioutil.TempDir("", "workload")
	require.Nil(t, err)
	defer os.RemoveAll(outDir)

	var ctx context.Ctx
	sweeps := []Sweep{getTestSweep(IvfflatType, []int{3, 5}, outDir)}

	// nothing is written yet
	ctx.Workload.Check = true
	err = Run(&ctx, sweeps)
	assert.EqualError(err, "2 script(s) are missing or differ from the generated ones")

	diffs, err := Check(&sweeps[0])
	assert.Nil(err)
	assert.False(diffs[0].Exists)

	ctx.Workload.Check = false
	assert.Nil(Run(&ctx, sweeps))

	ctx.Workload.Check = true
	assert.Nil(Run(&ctx, sweeps))

	// spoil one script
	path, err := ScriptPath(&sweeps[0], 1)
	require.Nil(t, err)
	require.Nil(t, ioutil.WriteFile(path, []byte("load turing10m.bin turing10m\nquit\n"), 0644))

	diffs, err = Check(&sweeps[0])
	assert.Nil(err)
	assert.False(diffs[0].Changed())
	assert.True(diffs[1].Changed())
	assert.True(diffs[1].Exists)
	assert.Contains(diffs[1].DiffLines, "+create_index turing10m data ivfflat 5")

	err = Run(&ctx, sweeps)
	assert.EqualError(err, "1 script(s) are missing or differ from the generated ones")
}
