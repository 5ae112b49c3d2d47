package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizrun/internal/bank"
)

var validateCmd = &cobra.Command{
	Use:   "validate PATH...",
	Short: "Check question bank files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0

		for _, path := range args {
			f, err := bank.Load(path)
			if err == nil {
				fmt.Fprintf(out, "ok    %s  (%d questions, %s)\n", path, len(f.Questions), f.Version)
				continue
			}

			failed++
			var verr *bank.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(out, "FAIL  %s\n", path)
				for _, p := range verr.Problems {
					fmt.Fprintf(out, "      - %s\n", p)
				}
				continue
			}
			fmt.Fprintf(out, "FAIL  %s\n      - %v\n", path, err)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d bank files invalid", failed, len(args))
		}
		return nil
	},
}
