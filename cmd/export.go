package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizrun/internal/render"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write an HTML answer key for a bank",
	Long: "Plays the bank through with every correct answer selected and writes the " +
		"question panels and the results panel as a standalone HTML page.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, closer, err := newLogger(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closer.Close()

		b, source, err := loadBank(cmd)
		if err != nil {
			return err
		}

		outPath, _ := cmd.Flags().GetString("out")
		var w io.Writer = cmd.OutOrStdout()
		if outPath != "" && outPath != "-" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			w = f
		}

		err = render.ExportAnswerKey(w, render.Document{
			Title:       b.Title,
			Description: b.Description,
			Questions:   b.Quiz(),
			Messages:    b.ResultMessages(),
		}, log.WithField("bank", source))
		if err != nil {
			return fmt.Errorf("export %s: %w", source, err)
		}

		log.WithFields(logrus.Fields{
			"bank": source,
			"out":  outPath,
		}).Debug("answer key written")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")
}
