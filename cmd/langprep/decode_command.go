package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"langprep/internal/codeseq"
	"langprep/internal/logging"
	"langprep/internal/textutil"
	"langprep/internal/unicodeblock"
)

type codePointRow struct {
	Index     int    `json:"index"`
	CodePoint string `json:"code_point"`
	Char      string `json:"char"`
	Block     string `json:"block"`
}

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Print code points with their Unicode blocks",
		Long: "Print the code points of the processed input together with the Unicode block each belongs to.\n" +
			"With --raw only the decoder runs: no scrubbing, script bias filter, or normalization.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				codes  []rune
				source string
			)
			if raw {
				logger, err := ctx.commandLogger(cmd)
				if err != nil {
					return err
				}
				data, src, err := readInput(cmd, firstArg(args), ctx.config.Input.MaxBytes)
				if err != nil {
					return err
				}
				source = src
				if codes, err = codeseq.Decode(data); err != nil {
					logger.Warn("decode failed", logging.String(logging.FieldSource, source), logging.Error(err))
					return fmt.Errorf("decode %s: %w", source, err)
				}
			} else {
				seq, src, err := ctx.buildSequence(cmd, firstArg(args))
				if err != nil {
					return err
				}
				codes, source = seq.Codes(), src
			}

			rows := make([]codePointRow, 0, len(codes))
			for i, r := range codes {
				rows = append(rows, codePointRow{
					Index:     i + 1,
					CodePoint: fmt.Sprintf("U+%04X", r),
					Char:      textutil.DisplayRune(r),
					Block:     unicodeblock.Of(r).String(),
				})
			}

			out := cmd.OutOrStdout()
			switch ctx.outputFormat(out) {
			case "json":
				return writeJSON(cmd, struct {
					Source     string         `json:"source"`
					CodePoints []codePointRow `json:"code_points"`
				}{source, rows})
			case "table":
				cells := make([][]string, 0, len(rows))
				for _, row := range rows {
					cells = append(cells, []string{strconv.Itoa(row.Index), row.CodePoint, row.Char, row.Block})
				}
				fmt.Fprintln(out, renderTable([]string{"#", "Code Point", "Char", "Block"}, cells, []columnAlignment{alignRight}))
			default:
				for _, row := range rows {
					fmt.Fprintf(out, "%s\t%s\t%s\n", row.CodePoint, row.Char, row.Block)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Decode only; skip scrubbing, script bias filtering, and normalization")
	return cmd
}
