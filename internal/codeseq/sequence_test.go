package codeseq

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"langprep/internal/normalize"
)

func identity() Option {
	return WithNormalizer(normalize.Identity{})
}

func TestNewInvalidLeadByte(t *testing.T) {
	seq, err := New([]byte{0xFF, 'a', 'b'})
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("New error = %v, want ErrInvalidEncoding", err)
	}
	if seq != nil {
		t.Fatal("expected no sequence on decode failure")
	}
}

func TestNewEmptyInput(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrDecode) {
		t.Fatalf("New(nil) error = %v, want ErrDecode", err)
	}
}

func TestNewTruncatedTail(t *testing.T) {
	seq, err := New([]byte{'A', 0xE3}, identity())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := seq.Codes(); !slices.Equal(got, []rune{'A'}) {
		t.Fatalf("Codes() = %U, want [U+0041]", got)
	}
}

func TestNewRunsStepsInOrder(t *testing.T) {
	var seen []rune
	recorder := normalize.Func(func(codes []rune) []rune {
		seen = slices.Clone(codes)
		return codes
	})
	input := "ab me@example.com Привет"
	seq, err := New([]byte(input), WithNormalizer(recorder))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	// Scrubbing removes the email before the bias filter counts Latin code
	// points, so the Cyrillic word dominates and "ab" is dropped.
	if want := "   Привет"; string(seen) != want {
		t.Fatalf("normalizer saw %q, want %q", string(seen), want)
	}
	if !seq.ScriptBiasApplied() {
		t.Fatal("expected script bias to apply")
	}
	if stats := seq.ScrubStats(); stats.Emails != 1 || stats.URLs != 0 {
		t.Fatalf("unexpected scrub stats %+v", stats)
	}
}

func TestNewDefaultNormalizer(t *testing.T) {
	seq, err := New([]byte("Hello, World! https://example.com"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := seq.String(); got != "Hello World " {
		t.Fatalf("String() = %q, want %q", got, "Hello World ")
	}
	if seq.Len() != len("Hello World ") {
		t.Fatalf("Len() = %d", seq.Len())
	}
}

func TestNewOptions(t *testing.T) {
	input := []byte("ab see https://x.example Жж")
	seq, err := New(input, identity(), WithScrubOptions(ScrubOptions{}), WithoutScriptBias())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := seq.String(); got != string(input) {
		t.Fatalf("String() = %q, want input unchanged", got)
	}
	if seq.ScriptBiasApplied() {
		t.Fatal("expected script bias to be skipped")
	}
}

func TestSequenceOwnsStorage(t *testing.T) {
	input := []byte("abc")
	seq, err := New(input, identity())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	input[0] = 'z'
	codes := seq.Codes()
	codes[1] = 'z'
	if got := seq.String(); got != "abc" {
		t.Fatalf("sequence mutated through caller storage: %q", got)
	}
}

func TestSequenceNgrams(t *testing.T) {
	seq, err := New([]byte("abcde"), identity())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ngrams := seq.Ngrams()
	lengths := make([]int, len(ngrams))
	for i, ngram := range ngrams {
		lengths[i] = len(ngram)
	}
	if want := []int{4, 8, 12, 12, 12}; !slices.Equal(lengths, want) {
		t.Fatalf("token lengths = %v, want %v", lengths, want)
	}
}

func TestNilSequence(t *testing.T) {
	var seq *Sequence
	if seq.Len() != 0 || seq.Codes() != nil || seq.Ngrams() != nil || seq.String() != "" {
		t.Fatal("expected nil sequence accessors to return zero values")
	}
}

func TestNewLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, err := New([]byte("mail me@example.com"), WithLogger(logger), identity()); err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"msg":"code sequence built"`, `"component":"codeseq"`, `"emails_removed":1`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in log output, got %s", want, out)
		}
	}
}
