package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizrun/internal/bank"
	"github.com/abhisek/quizrun/internal/draft"
	"github.com/abhisek/quizrun/internal/llm"
	"github.com/abhisek/quizrun/internal/quiz"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft a new question bank with an LLM",
	Long: "Asks the configured LLM provider for a bank on a topic, validates it like any " +
		"other bank, and writes it as JSON or YAML depending on the --out extension.\n\n" +
		"The provider comes from QUIZRUN_LLM_PROVIDER and QUIZRUN_<PROVIDER>_API_KEY, or from " +
		"GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY when unset.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		title, _ := cmd.Flags().GetString("title")
		outPath, _ := cmd.Flags().GetString("out")
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}
		}

		log, closer, err := newLogger(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closer.Close()

		// Questions from an explicitly chosen bank are passed along so the
		// draft does not repeat them.
		var avoid []string
		if path := resolveBankPath(cmd); path != "" {
			existing, err := bank.Load(path)
			if err != nil {
				return err
			}
			for _, q := range existing.Questions {
				avoid = append(avoid, q.Text)
			}
		}

		llmCfg := llm.ConfigFromEnv()
		provider, err := llm.NewProvider(cmd.Context(), llmCfg, log)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		cfg := draft.DefaultConfig()
		cfg.Timeout = llmCfg.Timeout
		d := draft.New(provider, cfg, log)

		fmt.Fprintf(cmd.ErrOrStderr(), "Drafting %d questions on %q with %s...\n", count, topic, provider.ModelID())
		f, err := d.Draft(cmd.Context(), draft.Input{
			Topic:      topic,
			Count:      count,
			Difficulty: quiz.Difficulty(difficulty),
			Title:      title,
			Avoid:      avoid,
		})
		if err != nil {
			return err
		}

		if err := bank.Write(outPath, f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d questions to %s\n", len(f.Questions), outPath)
		return nil
	},
}

func init() {
	draftCmd.Flags().String("topic", "", "Subject of the bank, e.g. \"Java SE 17 generics\"")
	draftCmd.Flags().Int("count", 10, "Number of questions")
	draftCmd.Flags().String("difficulty", "", "easy, medium or hard (default: a mix)")
	draftCmd.Flags().String("title", "", "Bank title (default: chosen by the model)")
	draftCmd.Flags().StringP("out", "o", "", "Output file; .json writes JSON, anything else YAML")
	draftCmd.Flags().Bool("force", false, "Overwrite an existing output file")
	_ = draftCmd.MarkFlagRequired("topic")
	_ = draftCmd.MarkFlagRequired("out")
}
