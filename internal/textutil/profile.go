package textutil

import (
	"cmp"
	"encoding/hex"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode"

	"langprep/internal/codeseq"
)

// Entry is one ranked token in a Profile.
type Entry struct {
	Token string
	Count int
	// Width is the number of code points the token spans.
	Width int
}

// Profile is a term-frequency vector over n-gram tokens.
type Profile struct {
	counts map[string]int
	total  int
	norm   float64
}

// NewProfile counts tokens. Returns nil if tokens is empty.
func NewProfile(tokens []string) *Profile {
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	var norm float64
	for _, count := range counts {
		norm += float64(count) * float64(count)
	}
	return &Profile{
		counts: counts,
		total:  len(tokens),
		norm:   math.Sqrt(norm),
	}
}

// Total returns the number of tokens counted, duplicates included.
func (p *Profile) Total() int {
	if p == nil {
		return 0
	}
	return p.total
}

// Distinct returns the number of unique tokens.
func (p *Profile) Distinct() int {
	if p == nil {
		return 0
	}
	return len(p.counts)
}

// Count returns how often token occurred.
func (p *Profile) Count(token string) int {
	if p == nil {
		return 0
	}
	return p.counts[token]
}

// Top returns up to n entries ordered by count descending, then by token
// bytes. n <= 0 returns every entry.
func (p *Profile) Top(n int) []Entry {
	if p == nil {
		return nil
	}
	entries := make([]Entry, 0, len(p.counts))
	for token, count := range p.counts {
		entries = append(entries, Entry{Token: token, Count: count, Width: len(token) / codeseq.CodeUnitSize})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Token, b.Token)
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// CosineSimilarity computes the cosine similarity between two profiles.
// Returns 0 if either profile is nil.
func CosineSimilarity(a, b *Profile) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	if len(b.counts) < len(a.counts) {
		a, b = b, a
	}
	var dot float64
	for token, count := range a.counts {
		if other, ok := b.counts[token]; ok {
			dot += float64(count) * float64(other)
		}
	}
	if dot == 0 {
		return 0
	}
	return min(dot/(a.norm*b.norm), 1)
}

// HexToken renders the raw token bytes as lowercase hex.
func HexToken(token string) string {
	return hex.EncodeToString([]byte(token))
}

// DisplayToken renders the code points a token encodes using DisplayRune.
func DisplayToken(token string) string {
	var b strings.Builder
	for _, r := range codeseq.NgramCodes(token) {
		b.WriteString(DisplayRune(r))
	}
	return b.String()
}

// DisplayRune renders a space as '_' and non-printable code points as U+XXXX.
func DisplayRune(r rune) string {
	switch {
	case r == ' ':
		return "_"
	case unicode.IsPrint(r):
		return string(r)
	default:
		return fmt.Sprintf("U+%04X", r)
	}
}
