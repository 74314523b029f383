package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"langprep/internal/textutil"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <file> <file>",
		Short: "Compare the n-gram profiles of two inputs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, leftSources, err := ctx.collectProfile(cmd, args[:1])
			if err != nil {
				return err
			}
			right, rightSources, err := ctx.collectProfile(cmd, args[1:])
			if err != nil {
				return err
			}
			similarity := textutil.CosineSimilarity(left, right)

			out := cmd.OutOrStdout()
			switch ctx.outputFormat(out) {
			case "json":
				return writeJSON(cmd, struct {
					Left        string  `json:"left"`
					Right       string  `json:"right"`
					LeftNgrams  int     `json:"left_ngrams"`
					RightNgrams int     `json:"right_ngrams"`
					Similarity  float64 `json:"similarity"`
				}{leftSources[0], rightSources[0], left.Total(), right.Total(), similarity})
			case "table":
				rows := [][]string{
					{leftSources[0], strconv.Itoa(left.Total()), strconv.Itoa(left.Distinct())},
					{rightSources[0], strconv.Itoa(right.Total()), strconv.Itoa(right.Distinct())},
				}
				fmt.Fprintln(out, renderTable([]string{"Source", "N-grams", "Distinct"}, rows, []columnAlignment{alignLeft, alignRight, alignRight}))
				fmt.Fprintf(out, "Cosine similarity: %.4f\n", similarity)
			default:
				fmt.Fprintf(out, "%.4f\n", similarity)
			}
			return nil
		},
	}
}
