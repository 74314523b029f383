package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"langprep/internal/codeseq"
	"langprep/internal/textutil"
)

type ngramRow struct {
	Index int    `json:"index"`
	Width int    `json:"width"`
	Hex   string `json:"hex"`
	Text  string `json:"text"`
}

type ngramsReport struct {
	Source            string     `json:"source"`
	CodePoints        int        `json:"code_points"`
	ScriptBiasApplied bool       `json:"script_bias_applied"`
	URLsRemoved       int        `json:"urls_removed"`
	EmailsRemoved     int        `json:"emails_removed"`
	Ngrams            []ngramRow `json:"ngrams"`
}

func newNgramsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ngrams [file]",
		Short: "Print the n-gram tokens extracted from the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, source, err := ctx.buildSequence(cmd, firstArg(args))
			if err != nil {
				return err
			}

			tokens := seq.Ngrams()
			stats := seq.ScrubStats()
			report := ngramsReport{
				Source:            source,
				CodePoints:        seq.Len(),
				ScriptBiasApplied: seq.ScriptBiasApplied(),
				URLsRemoved:       stats.URLs,
				EmailsRemoved:     stats.Emails,
				Ngrams:            make([]ngramRow, 0, len(tokens)),
			}
			for i, token := range tokens {
				report.Ngrams = append(report.Ngrams, ngramRow{
					Index: i + 1,
					Width: len(token) / codeseq.CodeUnitSize,
					Hex:   textutil.HexToken(token),
					Text:  textutil.DisplayToken(token),
				})
			}

			out := cmd.OutOrStdout()
			switch ctx.outputFormat(out) {
			case "json":
				return writeJSON(cmd, report)
			case "table":
				rows := make([][]string, 0, len(report.Ngrams))
				for _, row := range report.Ngrams {
					rows = append(rows, []string{strconv.Itoa(row.Index), strconv.Itoa(row.Width), row.Hex, row.Text})
				}
				fmt.Fprintln(out, renderTable([]string{"#", "Width", "Hex", "Text"}, rows, []columnAlignment{alignRight, alignRight, alignLeft, alignLeft}))
				fmt.Fprintf(out, "%d n-grams from %d code points (%s)\n", len(report.Ngrams), report.CodePoints, source)
			default:
				for _, row := range report.Ngrams {
					fmt.Fprintf(out, "%s\t%s\n", row.Hex, row.Text)
				}
			}
			return nil
		},
	}
}
