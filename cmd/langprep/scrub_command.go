package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"langprep/internal/codeseq"
	"langprep/internal/logging"
)

func newScrubCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scrub [file]",
		Short: "Remove URLs and email addresses from the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.commandLogger(cmd)
			if err != nil {
				return err
			}
			data, source, err := readInput(cmd, firstArg(args), ctx.config.Input.MaxBytes)
			if err != nil {
				return err
			}

			opts := codeseq.ScrubOptions{
				URLs:   ctx.config.Preprocess.ScrubURLs,
				Emails: ctx.config.Preprocess.ScrubEmails,
			}
			scrubbed, stats := codeseq.Scrub(data, opts)
			logger.Debug("input scrubbed",
				logging.String(logging.FieldSource, source),
				logging.Int("input_bytes", len(data)),
				logging.Int("output_bytes", len(scrubbed)),
				logging.Int("urls_removed", stats.URLs),
				logging.Int("emails_removed", stats.Emails),
			)

			out := cmd.OutOrStdout()
			switch ctx.outputFormat(out) {
			case "json":
				return writeJSON(cmd, struct {
					Source        string `json:"source"`
					Text          string `json:"text"`
					InputBytes    int    `json:"input_bytes"`
					OutputBytes   int    `json:"output_bytes"`
					URLsRemoved   int    `json:"urls_removed"`
					EmailsRemoved int    `json:"emails_removed"`
				}{source, string(scrubbed), len(data), len(scrubbed), stats.URLs, stats.Emails})
			case "table":
				if _, err := out.Write(scrubbed); err != nil {
					return err
				}
				fmt.Fprintln(out)
				rows := [][]string{
					{"URLs removed", strconv.Itoa(stats.URLs)},
					{"Emails removed", strconv.Itoa(stats.Emails)},
					{"Bytes", fmt.Sprintf("%d → %d", len(data), len(scrubbed))},
				}
				fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			default:
				_, err := out.Write(scrubbed)
				return err
			}
			return nil
		},
	}
}
