package commands

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/vecbench/vbench/cli/average"
)

func init() {
	var averageCmd = &cobra.Command{
		Use:   "average [RESULT_FILE]",
		Short: "Average benchmark result lines",
		Long:  averageDoc,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := runAverageCmd(cmd, args)
			if err != nil {
				log.Fatalf(err.Error())
			}
		},
	}

	rootCmd.AddCommand(averageCmd)

	configureFlags(averageCmd)

	averageCmd.Flags().StringVar(&ctx.Average.InputPath, "input", average.DefaultInputPath, inputUsage)
}

func runAverageCmd(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		if err := setDefaultValue(cmd.Flags(), "input", args[0]); err != nil {
			return err
		}
	}

	return average.Run(&ctx)
}

const averageDoc = `Average benchmark result lines

Each line of the result file is a ", " separated list of
"<build>/<query>" pairs. For every line the mean of the pair sums
is printed, each value followed by ", ".

RESULT_FILE is used if --input isn't specified.`
