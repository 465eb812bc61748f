package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"transparencyai/internal/app"
	"transparencyai/internal/model"
)

func newQuestionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Generate follow-up questions for a request read from --file or stdin",
		Example: `  echo '{"productId":"p1","contextText":"eco packaging"}' | transparencyai questions`,
		RunE: runQuestions,
	}
	cmd.Flags().String("file", "", "path to a generate-questions request body (default stdin)")
	return cmd
}

func runQuestions(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var req model.QuestionRequest
	if err := decodeInput(cmd, &req); err != nil {
		return err
	}

	a := app.New(cmd.Context(), cfg, logger)
	defer a.Close()

	return printJSON(cmd.OutOrStdout(), a.QuestionService.Generate(cmd.Context(), req))
}

// decodeInput reads the JSON body named by --file, or stdin
func decodeInput(cmd *cobra.Command, v any) error {
	var r io.Reader = cmd.InOrStdin()
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return eris.Wrapf(err, "open %s", path)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return eris.Wrap(err, "decode request")
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
