package commands

import (
	"fmt"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
	"github.com/vecbench/vbench/cli/context"
	"github.com/vecbench/vbench/cli/version"
)

var (
	ctx         context.Ctx
	needVersion bool
	rootCmd     = &cobra.Command{
		Use:   "vbench",
		Short: "Vector index benchmark tools",
		Long: `Vector index benchmark tools

Generates workload scripts for IVF-Flat and HNSW parameter sweeps,
summarizes benchmark results, generates and converts data sets
and measures recall.`,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setLogLevel()
		},

		Run: func(cmd *cobra.Command, args []string) {
			if needVersion {
				printVersion()
				return
			}
			cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&ctx.Cli.Verbose, "verbose", false, verboseUsage)
	rootCmd.PersistentFlags().BoolVar(&ctx.Cli.Quiet, "quiet", false, quietUsage)
	rootCmd.PersistentFlags().BoolVar(&ctx.Cli.Debug, "debug", false, debugUsage)
	rootCmd.Flags().BoolVar(&needVersion, "version", false, "Show version information")

	initLogger()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}

func initLogger() {
	log.SetHandler(cli.Default)
}

func setLogLevel() {
	if ctx.Cli.Debug {
		ctx.Cli.Verbose = true
	}

	if ctx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if ctx.Cli.Quiet {
		log.SetLevel(log.ErrorLevel)
	}
}

func printVersion() {
	fmt.Print(version.BuildCliVersionString())
}
