package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"langprep/internal/textutil"
)

type profileEntry struct {
	Rank  int     `json:"rank"`
	Hex   string  `json:"hex"`
	Text  string  `json:"text"`
	Width int     `json:"width"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

type profileReport struct {
	Sources  []string       `json:"sources"`
	Total    int            `json:"total"`
	Distinct int            `json:"distinct"`
	Entries  []profileEntry `json:"entries"`
}

// collectProfile builds one profile over the n-grams of every named input.
// No names means stdin.
func (c *commandContext) collectProfile(cmd *cobra.Command, names []string) (*textutil.Profile, []string, error) {
	if len(names) == 0 {
		names = []string{""}
	}
	var (
		tokens  []string
		sources []string
	)
	for _, name := range names {
		seq, source, err := c.buildSequence(cmd, name)
		if err != nil {
			return nil, nil, err
		}
		tokens = append(tokens, seq.Ngrams()...)
		sources = append(sources, source)
	}
	return textutil.NewProfile(tokens), sources, nil
}

func newProfileCommand(ctx *commandContext) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "profile [file...]",
		Short: "Show the most frequent n-grams of the input",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, sources, err := ctx.collectProfile(cmd, args)
			if err != nil {
				return err
			}
			limit := top
			if limit <= 0 {
				limit = ctx.config.Output.Top
			}

			report := profileReport{
				Sources:  sources,
				Total:    profile.Total(),
				Distinct: profile.Distinct(),
			}
			for i, entry := range profile.Top(limit) {
				report.Entries = append(report.Entries, profileEntry{
					Rank:  i + 1,
					Hex:   textutil.HexToken(entry.Token),
					Text:  textutil.DisplayToken(entry.Token),
					Width: entry.Width,
					Count: entry.Count,
					Share: float64(entry.Count) / float64(report.Total),
				})
			}

			out := cmd.OutOrStdout()
			switch ctx.outputFormat(out) {
			case "json":
				return writeJSON(cmd, report)
			case "table":
				rows := make([][]string, 0, len(report.Entries))
				for _, e := range report.Entries {
					rows = append(rows, []string{
						strconv.Itoa(e.Rank),
						e.Text,
						e.Hex,
						strconv.Itoa(e.Width),
						strconv.Itoa(e.Count),
						fmt.Sprintf("%.2f%%", e.Share*100),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Rank", "Text", "Hex", "Width", "Count", "Share"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight},
				))
				fmt.Fprintf(out, "%d n-grams, %d distinct\n", report.Total, report.Distinct)
			default:
				for _, e := range report.Entries {
					fmt.Fprintf(out, "%d\t%s\t%s\n", e.Count, e.Hex, e.Text)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 0, "Number of entries to show (default output.top)")
	return cmd
}
