package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string, stdin, configPath string) (string, string, error) {
	t.Helper()
	cmd, cmdCtx := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	if closeErr := cmdCtx.close(); closeErr != nil {
		t.Fatalf("close logs: %v", closeErr)
	}
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
