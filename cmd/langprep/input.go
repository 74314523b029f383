package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"langprep/internal/codeseq"
	"langprep/internal/config"
	"langprep/internal/logging"
)

const stdinSource = "stdin"

// readInput reads the named file, or stdin when name is empty or "-".
// Inputs larger than limit are rejected rather than truncated.
func readInput(cmd *cobra.Command, name string, limit int64) ([]byte, string, error) {
	name = strings.TrimSpace(name)
	var (
		reader io.Reader
		source string
	)
	if name == "" || name == "-" {
		reader = cmd.InOrStdin()
		source = stdinSource
	} else {
		path, err := config.ExpandPath(name)
		if err != nil {
			return nil, "", err
		}
		file, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("read input: %w", err)
		}
		defer file.Close()
		reader = file
		source = path
	}

	data, err := io.ReadAll(io.LimitReader(reader, limit+1))
	if err != nil {
		return nil, "", fmt.Errorf("read input %s: %w", source, err)
	}
	if int64(len(data)) > limit {
		return nil, "", fmt.Errorf("read input %s: exceeds input.max_bytes (%d)", source, limit)
	}
	return data, source, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// buildSequence reads one input and runs it through the configured pipeline.
func (c *commandContext) buildSequence(cmd *cobra.Command, name string) (*codeseq.Sequence, string, error) {
	logger, err := c.commandLogger(cmd)
	if err != nil {
		return nil, "", err
	}
	data, source, err := readInput(cmd, name, c.config.Input.MaxBytes)
	if err != nil {
		return nil, "", err
	}
	sourceAttr := logging.String(logging.FieldSource, source)
	opts := c.pipelineOptions(c.logger.With(sourceAttr))
	seq, err := newSequence(logger.With(sourceAttr), data, opts)
	if err != nil {
		return nil, source, fmt.Errorf("process %s: %w", source, err)
	}
	return seq, source, nil
}

func newSequence(logger *slog.Logger, data []byte, opts []codeseq.Option) (*codeseq.Sequence, error) {
	seq, err := codeseq.New(data, opts...)
	switch {
	case errors.Is(err, codeseq.ErrDecode) && len(data) == 0:
		logger.Warn("input is empty", logging.Error(err))
	case errors.Is(err, codeseq.ErrDecode):
		logger.Warn("input could not be decoded", logging.Int("input_bytes", len(data)), logging.Error(err))
	case errors.Is(err, codeseq.ErrInvalidEncoding):
		logger.Warn("input is not valid UTF-8", logging.Error(err))
	case err == nil:
		logger.Debug("input processed",
			logging.Int("code_points", seq.Len()),
			logging.Bool("script_bias_applied", seq.ScriptBiasApplied()),
		)
	}
	return seq, err
}
