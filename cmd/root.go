package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizrun/internal/bank"
	"github.com/abhisek/quizrun/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "quizrun",
	Short: "Multiple-choice exam practice in the terminal",
	Long: "quizrun presents a question bank one question at a time, locks each answer, " +
		"explains it, and scores the attempt.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDotEnv(".env")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command with ctx, which is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank file (overrides QUIZRUN_BANK; default: built-in bank)")
	rootCmd.PersistentFlags().String("log-file", "", "Append logs to this file (overrides QUIZRUN_LOG_FILE)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: error, warn, info, debug (overrides QUIZRUN_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json (overrides QUIZRUN_LOG_FORMAT)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = currentVersion()
}

// loadDotEnv reads KEY=value pairs from path into the environment without
// overriding variables that are already set. A missing file is fine.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// resolveBankPath returns the bank path using --bank (highest priority),
// then QUIZRUN_BANK. An empty result means the built-in bank.
func resolveBankPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p
	}
	return os.Getenv("QUIZRUN_BANK")
}

// loadBank loads the resolved bank and returns it with a label describing
// where it came from.
func loadBank(cmd *cobra.Command) (*bank.File, string, error) {
	path := resolveBankPath(cmd)
	if path == "" {
		f, err := bank.Default()
		if err != nil {
			return nil, "", fmt.Errorf("load built-in bank: %w", err)
		}
		return f, bank.DefaultPath, nil
	}
	f, err := bank.Load(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

// newLogger builds the process logger from QUIZRUN_LOG_* overridden by the
// --log-* flags. Without a log file, output goes to fallback.
func newLogger(cmd *cobra.Command, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	cfg := logging.ConfigFromEnv()
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.File = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.Format = v
	}
	return logging.New(cfg, fallback)
}
