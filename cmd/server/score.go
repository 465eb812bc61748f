package main

import (
	"github.com/spf13/cobra"

	"transparencyai/internal/model"
	"transparencyai/internal/service"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute the transparency score for a request read from --file or stdin",
		RunE:  runScore,
	}
	cmd.Flags().String("file", "", "path to a transparency-score request body (default stdin)")
	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	var req model.ScoreRequest
	if err := decodeInput(cmd, &req); err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), service.NewScoreService().Score(req))
}
