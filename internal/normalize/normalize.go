package normalize

import (
	"slices"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"langprep/internal/unicodeblock"
)

// Normalizer rewrites a sequence in place and returns the possibly shorter
// slice over the same backing array.
type Normalizer interface {
	Normalize(codes []rune) []rune
}

// Func adapts a plain function to Normalizer.
type Func func(codes []rune) []rune

// Normalize calls f.
func (f Func) Normalize(codes []rune) []rune {
	return f(codes)
}

// Identity leaves sequences untouched.
type Identity struct{}

// Normalize returns codes unchanged.
func (Identity) Normalize(codes []rune) []rune {
	return codes
}

// Canonical is the default normalizer. It is stateless and safe for
// concurrent use.
type Canonical struct {
	widthFold bool
}

// Option customises a Canonical normalizer.
type Option func(*Canonical)

// WithWidthFold toggles folding of fullwidth and halfwidth forms.
func WithWidthFold(enabled bool) Option {
	return func(c *Canonical) {
		c.widthFold = enabled
	}
}

// NewCanonical returns a Canonical normalizer with width folding enabled.
func NewCanonical(opts ...Option) *Canonical {
	c := &Canonical{widthFold: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	sharedOnce sync.Once
	shared     *Canonical
)

// Shared returns the process-wide default normalizer, creating it on first use.
func Shared() Normalizer {
	sharedOnce.Do(func() {
		shared = NewCanonical()
	})
	return shared
}

// Normalize applies width folding, composition, block folding, and separator
// collapsing in that order.
func (c *Canonical) Normalize(codes []rune) []rune {
	if len(codes) == 0 {
		return codes
	}
	if c.widthFold {
		for i, r := range codes {
			codes[i] = foldWidth(r)
		}
	}
	codes = compose(codes)
	for i, r := range codes {
		codes[i] = foldBlock(r)
	}
	return collapseSpaces(codes)
}

func foldWidth(r rune) rune {
	p := width.LookupRune(r)
	switch p.Kind() {
	case width.EastAsianFullwidth:
		if n := p.Narrow(); n != 0 {
			return n
		}
	case width.EastAsianHalfwidth:
		if w := p.Wide(); w != 0 {
			return w
		}
	}
	return r
}

// compose applies NFC to each run of valid scalar values. Values that cannot
// be represented in UTF-8 are kept verbatim so they survive normalization. A
// segment is replaced only when composition made it shorter.
func compose(codes []rune) []rune {
	out := codes[:0]
	for start := 0; start < len(codes); {
		if !utf8.ValidRune(codes[start]) {
			out = append(out, codes[start])
			start++
			continue
		}
		end := start
		for end < len(codes) && utf8.ValidRune(codes[end]) {
			end++
		}
		out = composeRun(out, string(codes[start:end]))
		start = end
	}
	return out
}

// composeRun appends the NFC form of s to out. A segment that NFC only
// reorders (canonical ordering of combining marks) keeps its input order, and
// no appended segment is longer than the one read, so out never overtakes
// unread input.
func composeRun(out []rune, s string) []rune {
	if norm.NFC.IsNormalString(s) {
		for _, r := range s {
			out = append(out, r)
		}
		return out
	}
	var it norm.Iter
	it.InitString(norm.NFC, s)
	for !it.Done() {
		from := it.Pos()
		seg := it.Next()
		orig := s[from:it.Pos()]
		if utf8.RuneCount(seg) > utf8.RuneCountInString(orig) || reordered(seg, orig) {
			seg = []byte(orig)
		}
		for len(seg) > 0 {
			r, size := utf8.DecodeRune(seg)
			out = append(out, r)
			seg = seg[size:]
		}
	}
	return out
}

// reordered reports whether seg holds the same runes as orig in a different
// order.
func reordered(seg []byte, orig string) bool {
	if string(seg) == orig {
		return false
	}
	a := []rune(string(seg))
	b := []rune(orig)
	if len(a) != len(b) {
		return false
	}
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// foldBlock maps code points onto a per-block representative.
func foldBlock(r rune) rune {
	switch unicodeblock.Of(r) {
	case unicodeblock.BasicLatin:
		if r < 'A' || (r > 'Z' && r < 'a') || r > 'z' {
			return ' '
		}
	case unicodeblock.Latin1Supplement:
		if !unicode.IsLetter(r) {
			return ' '
		}
	case unicodeblock.GeneralPunctuation:
		return ' '
	case unicodeblock.Arabic:
		if r == 0x06CC {
			return 0x064A
		}
	case unicodeblock.LatinExtendedAdditional:
		if r >= 0x1EA0 {
			return 0x1EC3
		}
	case unicodeblock.Hiragana:
		return 0x3042
	case unicodeblock.Katakana:
		return 0x30A2
	case unicodeblock.Bopomofo, unicodeblock.BopomofoExtended:
		return 0x3105
	case unicodeblock.HangulSyllables:
		return 0xAC00
	}
	return r
}

func collapseSpaces(codes []rune) []rune {
	out := codes[:0]
	for _, r := range codes {
		if r == ' ' && len(out) > 0 && out[len(out)-1] == ' ' {
			continue
		}
		out = append(out, r)
	}
	return out
}
