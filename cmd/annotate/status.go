package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/annotate/jsonfile"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newStatusCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <export.json>",
		Short: "Show scoring progress for an export document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := jsonfile.NewStore().Load(args[0])
			if err != nil {
				return fmt.Errorf("load export: %w", err)
			}
			if exp == nil {
				return fmt.Errorf("load export: %s not found", args[0])
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"#", "Item", "Score", "Scored At"})
			tw.SetColumnConfigs([]table.ColumnConfig{
				{Number: 1, Align: text.AlignRight},
				{Number: 3, Align: text.AlignRight},
			})

			scored := 0
			for i, id := range exp.Order {
				score := ""
				if v, ok := exp.Judgment(id); ok {
					score = string(v)
					scored++
				}
				scoredAt := ""
				if t, ok := exp.JudgedAt[id]; ok && !t.IsZero() {
					scoredAt = t.Format(time.RFC3339)
				}
				tw.AppendRow(table.Row{i + 1, id, score, scoredAt})
			}
			tw.Render()

			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d items scored (session %s)\n",
				scored, len(exp.Order), exp.Meta.SessionID)
			return nil
		},
	}

	return cmd
}
