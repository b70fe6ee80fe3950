package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vecbench/vbench/cli/project"
)

func setDefaultValue(flags *pflag.FlagSet, name string, value string) error {
	flag := flags.Lookup(name)
	if flag == nil {
		return fmt.Errorf("Failed to find %s flag", name)
	}

	if !flag.Changed {
		flag.Value.Set(value)
	}

	return nil
}

func configureFlags(cmd *cobra.Command) {
	cmd.Flags().SortFlags = false
}

func addConfFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ctx.Project.ConfPath, "config", "", confUsage)
}

func addOutDirFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ctx.Project.OutDir, "out-dir", "", outDirUsage)
}

func addDataDirFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ctx.Project.DataDir, "data-dir", "", dataDirUsage)
}

func addCompressFlag(cmd *cobra.Command, compress *string) {
	cmd.Flags().StringVar(compress, "compress", "", compressUsage)
}

// fillProjectPaths reads .vbench.yml and sets output and data directories
func fillProjectPaths() (project.VBenchConf, error) {
	conf, err := project.ParseConf(&ctx)
	if err != nil {
		return nil, err
	}

	if err := project.SetPaths(&ctx, conf); err != nil {
		return nil, err
	}

	return conf, nil
}
