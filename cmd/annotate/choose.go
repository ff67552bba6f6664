package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/annotate"
	"github.com/fwojciec/annotate/bubbletea"
	"github.com/fwojciec/annotate/csvfile"
	"github.com/spf13/cobra"
)

// ErrNoPairs is returned when the comparisons file yields no A/B pairs.
var ErrNoPairs = errors.New("no pairs to choose between")

// choicesPath returns the path for the choices file given a comparisons path.
// foo.csv -> foo-choices.csv
func choicesPath(inputPath string) string {
	return derivedPath(inputPath, "-choices", ".csv")
}

func newChooseCommand(cctx *commandContext) *cobra.Command {
	var promptsFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "choose [comparisons.csv]",
		Short: "Choose between A/B summary pairs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.config()
			if err != nil {
				return err
			}

			inputPath := cfg.Paths.Comparisons
			if len(args) > 0 {
				inputPath = args[0]
			}
			if inputPath == "" {
				return errors.New("no comparisons file: pass a path or set paths.comparisons in the config")
			}

			promptsPath := promptsFlag
			if promptsPath == "" {
				promptsPath = cfg.Paths.Prompts
			}

			outputPath := outputFlag
			if outputPath == "" {
				outputPath = cfg.Paths.Progress
			}
			if outputPath == "" {
				outputPath = choicesPath(inputPath)
			}

			logger, err := cctx.newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			pairs, err := csvfile.NewComparisonsLoader().Load(inputPath)
			if err != nil {
				return fmt.Errorf("load comparisons: %w", err)
			}
			if len(pairs) == 0 {
				return ErrNoPairs
			}

			// Summaries can ride along in the comparisons file itself; the
			// prompt table fills in the rest.
			var prompts annotate.PromptTable
			if promptsPath != "" {
				prompts, err = csvfile.NewPromptLoader().Load(promptsPath)
				if err != nil {
					return fmt.Errorf("load prompts: %w", err)
				}
			}
			pairs = annotate.AttachText(pairs, prompts)

			// Resume from a previous run when the output file exists.
			store := csvfile.NewChoiceStore()
			prior, err := store.Load(outputPath)
			if err != nil {
				return fmt.Errorf("load prior choices: %w", err)
			}
			choices := annotate.MergeChoices(pairs, prior)

			theme, err := cctx.theme()
			if err != nil {
				return err
			}

			m := bubbletea.NewChooseModel(pairs,
				bubbletea.WithChoiceStore(store, outputPath),
				bubbletea.WithExistingChoices(choices),
				bubbletea.WithChooseStyles(theme.Styles()),
				bubbletea.WithChooseLogger(logger),
			)

			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run UI: %w", err)
			}

			// The model autosaves on every choice and shares the choices map,
			// so a final save covers sessions with zero new choices too.
			if err := store.Save(outputPath, pairs, choices); err != nil {
				return fmt.Errorf("save choices: %w", err)
			}

			answered := 0
			for _, c := range choices {
				if c.Value != "" {
					answered++
				}
			}
			fmt.Printf("Chose %d of %d pairs. Progress saved to %s\n", answered, len(pairs), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&promptsFlag, "prompts", "p", "", "Prompt table CSV with per-model summaries")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Choices output path (default: <comparisons>-choices.csv)")

	return cmd
}
