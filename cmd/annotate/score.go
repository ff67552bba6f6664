package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/annotate"
	"github.com/fwojciec/annotate/bubbletea"
	"github.com/fwojciec/annotate/chroma"
	"github.com/fwojciec/annotate/jsonfile"
	"github.com/spf13/cobra"
)

// ErrNoItems is returned when the input file yields no items to score.
var ErrNoItems = errors.New("no items to score")

// scoresPath returns the path for the scores export given an input path.
// foo.json -> foo-scores.json
func scoresPath(inputPath string) string {
	return derivedPath(inputPath, "-scores", ".json")
}

func newScoreCommand(cctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "score [items.json]",
		Short: "Score items one at a time (0, 0.5, or 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.config()
			if err != nil {
				return err
			}

			inputPath := cfg.Paths.Items
			if len(args) > 0 {
				inputPath = args[0]
			}
			if inputPath == "" {
				return errors.New("no items file: pass a path or set paths.items in the config")
			}

			outputPath := outputFlag
			if outputPath == "" {
				outputPath = cfg.Paths.Progress
			}
			if outputPath == "" {
				outputPath = scoresPath(inputPath)
			}

			logger, err := cctx.newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			loader := jsonfile.NewLoader()
			input, err := loader.Load(inputPath)
			if err != nil {
				return fmt.Errorf("load items: %w", err)
			}

			session := annotate.NewSession(annotate.ScoreValues,
				annotate.WithHideCompleted(cfg.UI.HideCompleted),
			)
			session.Load(input)
			if len(session.IDs()) == 0 {
				return ErrNoItems
			}

			// Resume from a previous run when the output file exists.
			store := jsonfile.NewStore()
			prior, err := store.Load(outputPath)
			if err != nil {
				return fmt.Errorf("load prior scores: %w", err)
			}
			if prior != nil {
				session.MergeExport(prior)
			}

			theme, err := cctx.theme()
			if err != nil {
				return err
			}
			tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
			if err != nil {
				return fmt.Errorf("set up highlighting: %w", err)
			}

			opts := []bubbletea.ScoreModelOption{
				bubbletea.WithExportStore(store, outputPath),
				bubbletea.WithScoreStyles(theme.Styles()),
				bubbletea.WithScoreTokenizer(tokenizer),
				bubbletea.WithScoreLogger(logger),
			}
			if len(cfg.UI.Categories) > 0 {
				opts = append(opts, bubbletea.WithCategories(cfg.UI.Categories))
			}

			m := bubbletea.NewScoreModel(session, opts...)

			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run UI: %w", err)
			}

			// The model autosaves on every judgment; save once more so a
			// session with zero judgments still leaves a resumable export.
			if err := store.Save(outputPath, session.Export()); err != nil {
				return fmt.Errorf("save scores: %w", err)
			}

			judged, total := session.Progress()
			fmt.Printf("Scored %d of %d items. Progress saved to %s\n", judged, total, outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Scores output path (default: <items>-scores.json)")

	return cmd
}
