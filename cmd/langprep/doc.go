// Package main hosts the langprep CLI entrypoint and command graph.
//
// The Cobra-based command tree reads text from a file or stdin, runs it
// through the code-sequence pipeline (scrub, decode, script bias filter,
// normalization) and renders the result: n-gram tokens, decoded code points
// with their Unicode blocks, scrubbed text, or a frequency profile. It also
// scaffolds and validates the TOML configuration.
//
// Keep this package lean: the pipeline lives in internal/codeseq and its
// collaborators; commands here only resolve configuration, read input, and
// format output.
package main
