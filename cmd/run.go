package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizrun/internal/app"
)

// runApp loads the bank and launches the TUI. The terminal belongs to the
// TUI, so logs only go to a log file when one is configured.
func runApp(cmd *cobra.Command) error {
	log, closer, err := newLogger(cmd, nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	b, source, err := loadBank(cmd)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"bank":      source,
		"questions": len(b.Questions),
	}).Info("bank loaded")

	return app.Run(app.Options{
		Bank:   b,
		Source: source,
		Logger: log,
	})
}
