package commands

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/vecbench/vbench/cli/common"
	"github.com/vecbench/vbench/cli/recall"
)

func init() {
	var recallCmd = &cobra.Command{
		Use:   "recall ANSWER_FILE GROUND_TRUTH_FILE",
		Short: "Compute recall of query answers",
		Long:  recallDoc,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			err := runRecallCmd(cmd, args)
			if err != nil {
				log.Fatalf(err.Error())
			}
		},
	}

	rootCmd.AddCommand(recallCmd)

	configureFlags(recallCmd)

	recallCmd.Flags().StringVar(&ctx.Recall.OutPath, "out", recall.DefaultOutPath, recallOutUsage)
	addConfFlag(recallCmd)
	addOutDirFlag(recallCmd)
}

func runRecallCmd(cmd *cobra.Command, args []string) error {
	ctx.Recall.AnswerPath = args[0]
	ctx.Recall.GroundTruthPath = args[1]

	if _, err := fillProjectPaths(); err != nil {
		return err
	}

	path, err := recall.Run(&ctx)
	if err != nil {
		return err
	}

	res := common.Res{ID: path, Status: common.ResStatusOk}
	log.Infof("%s", res.String())

	return nil
}

const recallDoc = `Compute recall of query answers

ANSWER_FILE contains one line of space separated ids per query,
GROUND_TRUTH_FILE contains one line of "," separated ids per query
(see "vbench convert groundtruth").

The recall of each query is written on its own line, followed by
an empty line and the mean recall.`
