package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultCompletionDir = "completion"

type completionWriter struct {
	fileName func(cmdName string) string
	write    func(root *cobra.Command, path string) error
}

var completionWriters = map[string]completionWriter{
	"bash": {
		fileName: func(cmdName string) string { return cmdName },
		write:    (*cobra.Command).GenBashCompletionFile,
	},
	"zsh": {
		fileName: func(cmdName string) string { return "_" + cmdName },
		write:    (*cobra.Command).GenZshCompletionFile,
	},
	"fish": {
		fileName: func(cmdName string) string { return cmdName + ".fish" },
		write: func(root *cobra.Command, path string) error {
			return root.GenFishCompletionFile(path, true)
		},
	},
}

var completionShells = []string{"bash", "fish", "zsh"}

var completionDir string

func init() {
	var completionCmd = &cobra.Command{
		Use:   "completion [SHELL...]",
		Short: "Generate shell completion scripts",
		Long: fmt.Sprintf("Generate shell completion scripts\n\n"+
			"Writes <dir>/<shell>/<file> for every SHELL (all by default).\n"+
			"Supported shells: %s", strings.Join(completionShells, ", ")),
		ValidArgs: completionShells,
		Args:      cobra.OnlyValidArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			cutFlagsDesc(rootCmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			paths, err := writeCompletions(cmd.Root(), completionDir, args)
			if err != nil {
				log.Fatalf(err.Error())
			}

			for _, path := range paths {
				log.Infof("Completion script is written to %s", path)
			}
		},
	}

	rootCmd.AddCommand(completionCmd)

	configureFlags(completionCmd)

	completionCmd.Flags().StringVar(&completionDir, "dir", defaultCompletionDir, completionDirUsage)
}

// cutFlagsDesc leaves only the first line of flag usages,
// zsh shows multiline descriptions badly
func cutFlagsDesc(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Usage = strings.SplitN(f.Usage, "\n", 2)[0]
	})

	for _, subCmd := range cmd.Commands() {
		cutFlagsDesc(subCmd)
	}
}

// writeCompletions writes completion scripts of root for the shells
// and returns the written paths
func writeCompletions(root *cobra.Command, dir string, shells []string) ([]string, error) {
	if len(shells) == 0 {
		shells = completionShells
	}

	var paths []string
	for _, shell := range shells {
		writer, found := completionWriters[shell]
		if !found {
			return nil, fmt.Errorf("Unsupported shell %q, supported are: %s",
				shell, strings.Join(completionShells, ", "))
		}

		shellDir := filepath.Join(dir, shell)
		if err := os.MkdirAll(shellDir, 0755); err != nil {
			return nil, fmt.Errorf("Failed to create completion directory: %s", err)
		}

		path := filepath.Join(shellDir, writer.fileName(root.Name()))
		if err := writer.write(root, path); err != nil {
			return nil, fmt.Errorf("Failed to generate %s completion: %s", shell, err)
		}

		paths = append(paths, path)
	}

	return paths, nil
}
