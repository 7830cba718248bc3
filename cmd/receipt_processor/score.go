package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/SscSPs/receipt_processor/internal/apperrors"
	"github.com/SscSPs/receipt_processor/internal/core/domain"
	"github.com/SscSPs/receipt_processor/internal/utils/mapping"
	"github.com/SscSPs/receipt_processor/internal/utils/receiptfile"
	"github.com/SscSPs/receipt_processor/internal/utils/rewards"
	"github.com/SscSPs/receipt_processor/internal/utils/validation"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func scoreCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "score <receipt-file>",
		Short: "Score a receipt file without starting the server",
		Long:  "Validates and scores a JSON or YAML receipt (chosen by file extension) and prints the per-rule breakdown.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			breakdown, err := scoreFile(args[0])
			if err != nil {
				var validationErr *apperrors.ValidationError
				if errors.As(err, &validationErr) {
					for _, msg := range validationErr.Messages {
						fmt.Fprintln(cmd.ErrOrStderr(), "-", msg)
					}
				}
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(breakdown)
			}
			renderBreakdown(cmd.OutOrStdout(), breakdown)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")
	return cmd
}

func scoreFile(path string) (domain.PointsBreakdown, error) {
	req, err := receiptfile.Load(path)
	if err != nil {
		return domain.PointsBreakdown{}, err
	}
	if msgs := validation.ValidateReceipt(req); len(msgs) > 0 {
		return domain.PointsBreakdown{}, apperrors.NewValidationError(msgs)
	}
	receipt, err := mapping.ToDomainReceipt(req)
	if err != nil {
		return domain.PointsBreakdown{}, err
	}
	return rewards.CalculateBreakdown(receipt), nil
}

func renderBreakdown(out io.Writer, breakdown domain.PointsBreakdown) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"Rule", "Description", "Points"})
	for _, e := range breakdown.Entries {
		tw.AppendRow(table.Row{e.Rule, e.Description, e.Points})
	}
	tw.AppendFooter(table.Row{"", "Total", breakdown.Total})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	tw.Render()
}
