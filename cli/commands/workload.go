package commands

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/vecbench/vbench/cli/project"
	"github.com/vecbench/vbench/cli/workload"
)

func init() {
	var workloadCmd = &cobra.Command{
		Use:   "workload [SWEEP_NAME...]",
		Short: "Generate benchmark workload scripts",
		Long:  fmt.Sprintf("Generate benchmark workload scripts\n\n%s", workloadDoc()),
		Run: func(cmd *cobra.Command, args []string) {
			err := runWorkloadCmd(cmd, args)
			if err != nil {
				log.Fatalf(err.Error())
			}
		},
		ValidArgsFunction: ShellCompSweepNames,
	}

	rootCmd.AddCommand(workloadCmd)

	configureFlags(workloadCmd)

	workloadCmd.Flags().BoolVar(&ctx.Workload.All, "all", false, allUsage)
	workloadCmd.Flags().BoolVar(&ctx.Workload.Check, "check", false, checkUsage)

	addConfFlag(workloadCmd)
	addOutDirFlag(workloadCmd)
	workloadCmd.Flags().StringVar(&ctx.Workload.DatasetInfoPath, "dataset-info", "", datasetInfoUsage)

	workloadCmd.Flags().StringVar(&ctx.Workload.Dataset, "dataset", "", datasetUsage)
	workloadCmd.Flags().StringVar(&ctx.Workload.DatasetFile, "dataset-file", "", datasetFileUsage)
	workloadCmd.Flags().StringVar(&ctx.Workload.Table, "table", "", tableUsage)
	workloadCmd.Flags().StringVar(&ctx.Workload.Column, "column", "", columnUsage)
	workloadCmd.Flags().StringVar(&ctx.Workload.IndexType, "index-type", workload.IvfflatType, indexTypeUsage)
	workloadCmd.Flags().IntSliceVar(&ctx.Workload.Params, "params", nil, paramsUsage)
	workloadCmd.Flags().IntVar(&ctx.Workload.Repetitions, "repetitions", workload.DefaultRepetitions, repetitionsUsage)
	workloadCmd.Flags().StringVar(&ctx.Workload.QueryFile, "query", "", queryUsage)
	workloadCmd.Flags().StringVar(&ctx.Workload.GroundTruthFile, "ground-truth", "", groundTruthUsage)
	workloadCmd.Flags().StringVar(&ctx.Workload.OutDir, "sweep-out-dir", "", sweepOutDirUsage)
}

func runWorkloadCmd(cmd *cobra.Command, args []string) error {
	ctx.Workload.Presets = args

	if ctx.Workload.Dataset == "" {
		for _, name := range adHocFlags {
			if cmd.Flags().Changed(name) {
				return fmt.Errorf("--%s can be used only with --dataset", name)
			}
		}
	}

	conf, err := fillProjectPaths()
	if err != nil {
		return err
	}

	sweeps, err := workload.FillSweeps(&ctx, conf)
	if err != nil {
		return err
	}

	return workload.Run(&ctx, sweeps)
}

var adHocFlags = []string{
	"dataset-file", "table", "column", "index-type", "params",
	"repetitions", "query", "ground-truth", "sweep-out-dir",
}

// ShellCompSweepNames completes built-in and configured sweep names
func ShellCompSweepNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := workload.PresetNames()

	if conf, err := project.ParseConf(&ctx); err == nil {
		if sweepConfs, err := project.GetSweepConfs(conf); err == nil {
			names = append(sweepConfs.Names(), names...)
		}
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

func workloadDoc() string {
	return fmt.Sprintf(`Writes one script per sweep parameter into the sweep output directory.
Each script loads the data set, builds the index and runs the queries
several times.

Built-in sweeps: %s
Sweeps from the "sweeps" section of .vbench.yml shadow built-in ones.

Use --dataset to describe a sweep with flags instead of a name.
Supported index types: %s`,
		strings.Join(workload.PresetNames(), ", "),
		strings.Join(workload.IndexTypes(), ", "),
	)
}
