package workload

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/vecbench/vbench/cli/common"
	"github.com/vecbench/vbench/cli/context"
	"github.com/vecbench/vbench/cli/project"
)

// FillSweeps collects the sweeps to run from the command line
// and the sweeps section of .vbench.yml.
// Sweeps defined in the config file shadow built-in presets with the same name.
func FillSweeps(ctx *context.Ctx, conf project.VBenchConf) ([]Sweep, error) {
	sweepConfs, err := project.GetSweepConfs(conf)
	if err != nil {
		return nil, err
	}

	var sweeps []Sweep

	if ctx.Workload.Dataset != "" {
		if len(ctx.Workload.Presets) > 0 || ctx.Workload.All {
			return nil, fmt.Errorf("Sweep names and --all can't be used with --dataset")
		}

		sweeps = append(sweeps, sweepFromFlags(&ctx.Workload))
	} else {
		names := ctx.Workload.Presets
		if ctx.Workload.All {
			names = allSweepNames(sweepConfs)
		}

		if len(names) == 0 {
			return nil, fmt.Errorf(
				"Specify sweep name(s), --all or --dataset. Known sweeps: %s",
				strings.Join(allSweepNames(sweepConfs), ", "),
			)
		}

		for _, name := range names {
			sweep, err := getNamedSweep(name, sweepConfs)
			if err != nil {
				return nil, err
			}
			sweeps = append(sweeps, sweep)
		}
	}

	for i := range sweeps {
		sweep := &sweeps[i]

		datasetInfoPath := ctx.Workload.DatasetInfoPath
		if sweepConf, found := sweepConfs[sweep.Name]; found && sweepConf.DatasetInfo != "" && datasetInfoPath == "" {
			datasetInfoPath = sweepConf.DatasetInfo
		}

		if datasetInfoPath != "" {
			info, err := project.ReadDatasetInfo(datasetInfoPath)
			if err != nil {
				return nil, fmt.Errorf("Failed to read dataset info: %s", err)
			}
			sweep.ApplyDatasetInfo(info)
		}

		sweep.SetDefaults(ctx.Project.OutDir)

		if err := sweep.Validate(); err != nil {
			return nil, err
		}
	}

	return sweeps, nil
}

func sweepFromFlags(workloadCtx *context.WorkloadCtx) Sweep {
	return Sweep{
		Dataset:         workloadCtx.Dataset,
		DatasetFile:     workloadCtx.DatasetFile,
		Table:           workloadCtx.Table,
		Column:          workloadCtx.Column,
		IndexType:       workloadCtx.IndexType,
		Params:          append([]int(nil), workloadCtx.Params...),
		Repetitions:     workloadCtx.Repetitions,
		QueryFile:       workloadCtx.QueryFile,
		GroundTruthFile: workloadCtx.GroundTruthFile,
		OutDir:          workloadCtx.OutDir,
	}
}

func getNamedSweep(name string, sweepConfs project.SweepConfs) (Sweep, error) {
	if sweepConf, found := sweepConfs[name]; found {
		log.Debugf("Sweep %s is defined in the config file", name)
		return FromConf(name, sweepConf), nil
	}

	if preset, found := GetPreset(name); found {
		return preset, nil
	}

	return Sweep{}, fmt.Errorf("Unknown sweep %q. Known sweeps: %s",
		name, strings.Join(allSweepNames(sweepConfs), ", "))
}

func allSweepNames(sweepConfs project.SweepConfs) []string {
	names := sweepConfs.Names()

	for _, name := range PresetNames() {
		if !common.StringSliceContains(names, name) {
			names = append(names, name)
		}
	}

	return names
}

// Run writes (or checks, if ctx.Workload.Check is set) the scripts of every sweep
func Run(ctx *context.Ctx, sweeps []Sweep) error {
	if ctx.Workload.Check {
		return checkSweeps(sweeps)
	}

	for i := range sweeps {
		sweep := &sweeps[i]

		log.Infof("Generating %d %s script(s) for %s in %s",
			len(sweep.Params), sweep.IndexType, sweep.ID(), sweep.OutDir)
		if ctx.Cli.Verbose {
			common.PrintParams(sweep.ID(), sweep)
		}

		if len(sweep.Params) == 0 {
			log.Warnf("Sweep %s has no parameters, nothing to write", sweep.ID())
			continue
		}

		paths, err := Generate(sweep)
		for _, path := range paths {
			res := common.Res{ID: path, Status: common.ResStatusOk}
			log.Infof("%s", res.String())
		}
		if err != nil {
			res := common.Res{ID: sweep.ID(), Status: common.ResStatusFailed, Error: err}
			log.Errorf("%s", res.String())
			return res.FormatError()
		}

		stale, err := FindStale(sweep, paths)
		if err != nil {
			log.Warnf("Failed to look for stale scripts: %s", err)
		}
		for _, path := range stale {
			log.Warnf("%s doesn't belong to the %s sweep anymore", path, sweep.ID())
		}
	}

	return nil
}

func checkSweeps(sweeps []Sweep) error {
	changedCount := 0

	for i := range sweeps {
		sweep := &sweeps[i]

		diffs, err := Check(sweep)
		if err != nil {
			return err
		}

		for _, scriptDiff := range diffs {
			res := common.Res{ID: scriptDiff.Path, Status: common.ResStatusUnchanged}
			if scriptDiff.Changed() {
				res.Status = common.ResStatusChanged
				changedCount++
			}

			log.Infof("%s", res.String())
			if len(scriptDiff.DiffLines) > 0 {
				fmt.Println(strings.Join(ColorizeDiffLines(scriptDiff.DiffLines), "\n"))
			}
		}
	}

	if changedCount > 0 {
		return fmt.Errorf("%d script(s) are missing or differ from the generated ones", changedCount)
	}

	return nil
}
