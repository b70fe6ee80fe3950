package commands

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/vecbench/vbench/cli/common"
	"github.com/vecbench/vbench/cli/convert"
)

func init() {
	var convertCmd = &cobra.Command{
		Use:   "convert MODE VECTOR_FILE",
		Short: "Convert binary vector file to text",
		Long:  fmt.Sprintf("Convert binary vector file to text\n\n%s", convertDoc()),
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			err := runConvertCmd(cmd, args)
			if err != nil {
				log.Fatalf(err.Error())
			}
		},
		ValidArgs: convert.Modes(),
	}

	rootCmd.AddCommand(convertCmd)

	configureFlags(convertCmd)

	convertCmd.Flags().StringVar(&ctx.Convert.OutPath, "out", "", convertOutUsage)
	convertCmd.Flags().StringVar(&ctx.Convert.Table, "table", "", convertTableUsage)
	convertCmd.Flags().IntVar(&ctx.Convert.Precision, "precision", convert.DefaultPrecision, precisionUsage)
	addCompressFlag(convertCmd, &ctx.Convert.Compress)
}

func runConvertCmd(cmd *cobra.Command, args []string) error {
	ctx.Convert.Mode = args[0]
	ctx.Convert.InputPath = args[1]

	path, err := convert.Run(&ctx)
	if err != nil {
		return err
	}

	res := common.Res{ID: path, Status: common.ResStatusOk}
	log.Infof("%s", res.String())

	return nil
}

func convertDoc() string {
	return fmt.Sprintf(`Reads .fvecs, .ivecs, .fbin or .ibin file and writes:

  base         table definition and one insert per vector
  query        one line of "," separated values per vector
  groundtruth  one line of "," separated ids per vector

Supported modes: %s
Table name defaults to the file name without extension.
Output defaults to <file dir>/<file name>_load_data.sh`,
		strings.Join(convert.Modes(), ", "),
	)
}
