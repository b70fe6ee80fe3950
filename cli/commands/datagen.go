package commands

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/vecbench/vbench/cli/common"
	"github.com/vecbench/vbench/cli/datagen"
)

func init() {
	var datagenCmd = &cobra.Command{
		Use:   "datagen",
		Short: "Generate synthetic data load script",
		Long:  datagenDoc,
		Args:  cobra.MaximumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			err := runDatagenCmd(cmd, args)
			if err != nil {
				log.Fatalf(err.Error())
			}
		},
	}

	rootCmd.AddCommand(datagenCmd)

	configureFlags(datagenCmd)

	datagenCmd.Flags().StringVar(&ctx.Datagen.Schema, "schema", datagen.FloatSchema, schemaUsage)
	datagenCmd.Flags().IntVar(&ctx.Datagen.Dim, "dim", datagen.DefaultDim, dimUsage)
	datagenCmd.Flags().IntVar(&ctx.Datagen.Rows, "rows", datagen.DefaultRows, rowsUsage)
	datagenCmd.Flags().IntVar(&ctx.Datagen.Precision, "precision", datagen.DefaultPrecision, precisionUsage)
	datagenCmd.Flags().Int64Var(&ctx.Datagen.Seed, "seed", 0, seedUsage)
	datagenCmd.Flags().StringVar(&ctx.Datagen.Table, "table", "", datagenTableUsage)
	datagenCmd.Flags().StringVar(&ctx.Datagen.ColumnPrefix, "column-prefix", "", columnPrefixUsage)
	datagenCmd.Flags().StringVar(&ctx.Datagen.OutPath, "out", "", datagenOutUsage)
	addCompressFlag(datagenCmd, &ctx.Datagen.Compress)

	addConfFlag(datagenCmd)
	addDataDirFlag(datagenCmd)
}

func runDatagenCmd(cmd *cobra.Command, args []string) error {
	ctx.Datagen.SeedIsSet = cmd.Flags().Changed("seed")

	if _, err := fillProjectPaths(); err != nil {
		return err
	}

	path, err := datagen.Generate(&ctx)
	if err != nil {
		return err
	}

	res := common.Res{ID: path, Status: common.ResStatusOk}
	log.Infof("%s", res.String())

	return nil
}

const datagenDoc = `Generate synthetic data load script

Writes a table definition followed by --rows insert statements
with random values from [0, 10).

Schemas:
  float   table b(b0 float, ..., b<dim-1> float)
  vector  table a(b vector(<dim>))

The output is written to --data-dir unless --out is an absolute path.
Values differ between runs unless --seed is specified.`
