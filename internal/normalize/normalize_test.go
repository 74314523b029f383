package normalize

import (
	"slices"
	"sync"
	"testing"
)

func TestCanonicalNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []rune
		want  []rune
	}{
		{"empty", nil, nil},
		{"ascii letters kept", []rune("Hello"), []rune("Hello")},
		{"ascii separators become one space", []rune("a, b!!c"), []rune("a b c")},
		{"digits are separators", []rune("x42y"), []rune("x y")},
		{"latin1 letter kept", []rune("café"), []rune("café")},
		{"latin1 punctuation folded", []rune("a«b»"), []rune("a b ")},
		{"general punctuation folded", []rune("a—b"), []rune("a b")},
		{"hiragana representative", []rune("ひらがな"), []rune{0x3042, 0x3042, 0x3042, 0x3042}},
		{"katakana representative", []rune("カタ"), []rune{0x30A2, 0x30A2}},
		{"hangul representative", []rune("한국"), []rune{0xAC00, 0xAC00}},
		{"bopomofo representative", []rune{0x3106, 0x31A1}, []rune{0x3105, 0x3105}},
		{"arabic yeh", []rune{0x06CC, 0x0628}, []rune{0x064A, 0x0628}},
		{"latin extended additional high", []rune{0x1EA1, 0x1E00}, []rune{0x1EC3, 0x1E00}},
		{"cjk ideographs untouched", []rune("中文"), []rune("中文")},
		{"fullwidth ascii narrowed", []rune("ＡＢ"), []rune("AB")},
		{"combining sequence composed", []rune{'e', 0x0301}, []rune{0xE9}},
		{"uncomposable marks keep input order", []rune{'q', 0x0301, 0x0323}, []rune{'q', 0x0301, 0x0323}},
		{"singleton mapped", []rune{0x212B}, []rune{0xC5}},
		{"marks already canonical kept", []rune{'q', 0x0323, 0x0301}, []rune{'q', 0x0323, 0x0301}},
	}
	n := NewCanonical()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := slices.Clone(tt.input)
			got := n.Normalize(input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Normalize(%q) = %q, want %q", string(tt.input), string(got), string(tt.want))
			}
		})
	}
}

func TestCanonicalNormalizeInPlace(t *testing.T) {
	input := []rune("a  b")
	got := NewCanonical().Normalize(input)
	if len(got) != 3 {
		t.Fatalf("expected collapsed length 3, got %d", len(got))
	}
	if &got[0] != &input[0] {
		t.Fatal("expected result to share the input backing array")
	}
}

func TestCanonicalWithoutWidthFold(t *testing.T) {
	got := NewCanonical(WithWidthFold(false)).Normalize([]rune("Ａ"))
	if !slices.Equal(got, []rune("Ａ")) {
		t.Errorf("Normalize without width fold = %q, want fullwidth A", string(got))
	}
}

func TestCanonicalHalfwidthKatakanaWidened(t *testing.T) {
	got := NewCanonical().Normalize([]rune{0xFF76})
	if !slices.Equal(got, []rune{0x30A2}) {
		t.Errorf("Normalize(halfwidth KA) = %U, want [U+30A2]", got)
	}
	got = NewCanonical(WithWidthFold(false)).Normalize([]rune{0xFF76})
	if !slices.Equal(got, []rune{0xFF76}) {
		t.Errorf("Normalize(halfwidth KA) without width fold = %U, want [U+FF76]", got)
	}
}

func TestCanonicalKeepsUnencodableValues(t *testing.T) {
	input := []rune{0xD800, 'e', 0x0301, 0x110000}
	got := NewCanonical().Normalize(input)
	want := []rune{0xD800, 0xE9, 0x110000}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize = %U, want %U", got, want)
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	input := []rune("Ж中Я")
	got := NewCanonical().Normalize(slices.Clone(input))
	if !slices.Equal(got, input) {
		t.Errorf("Normalize reordered or altered %q: got %q", string(input), string(got))
	}
}

func TestIdentityAndFunc(t *testing.T) {
	input := []rune("a, b")
	if got := (Identity{}).Normalize(input); !slices.Equal(got, input) {
		t.Errorf("Identity changed input: %q", string(got))
	}
	first := Func(func(codes []rune) []rune { return codes[:1] })
	if got := first.Normalize(input); len(got) != 1 {
		t.Errorf("Func normalizer len = %d, want 1", len(got))
	}
}

func TestSharedConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]Normalizer, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Shared()
		}(i)
	}
	wg.Wait()
	for i, n := range results {
		if n != results[0] {
			t.Fatalf("Shared() call %d returned a different instance", i)
		}
	}
}
