package main

import (
	"fmt"

	"github.com/fwojciec/annotate/csvfile"
	"github.com/fwojciec/annotate/jsonfile"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// flattenConcurrency bounds how many export files are processed at once.
const flattenConcurrency = 4

// flatPath returns the CSV output path for an export file.
// foo-scores.json -> foo-scores.csv
func flatPath(inputPath string) string {
	return derivedPath(inputPath, "", ".csv")
}

func newFlattenCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flatten <export.json> [export.json...]",
		Short: "Flatten score exports into CSV files",
		Long: `Flatten reads one or more score export documents and writes a CSV
per input with one row per item: the item key, its id and content fields
when the payload carries them, and the recorded score.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := cctx.newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			store := jsonfile.NewStore()

			g, _ := errgroup.WithContext(cmd.Context())
			g.SetLimit(flattenConcurrency)
			for _, inputPath := range args {
				g.Go(func() error {
					exp, err := store.Load(inputPath)
					if err != nil {
						return fmt.Errorf("load %s: %w", inputPath, err)
					}
					if exp == nil {
						return fmt.Errorf("load %s: file not found", inputPath)
					}
					outputPath := flatPath(inputPath)
					if err := csvfile.WriteItems(outputPath, exp); err != nil {
						return fmt.Errorf("write %s: %w", outputPath, err)
					}
					fmt.Printf("%s -> %s (%d items)\n", inputPath, outputPath, len(exp.Judgments))
					return nil
				})
			}
			return g.Wait()
		},
	}

	return cmd
}
