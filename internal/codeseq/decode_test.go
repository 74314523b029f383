package codeseq

import (
	"errors"
	"slices"
	"testing"
)

func TestDecodeRoundTrip(t *testing.T) {
	inputs := []string{
		"hello",
		"Привет мир",
		"日本語のテキスト",
		"emoji 😀 ok",
		"mixed é ñ ü ß",
		"عربى",
		"\x00\x7f",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			codes, err := Decode([]byte(input))
			if err != nil {
				t.Fatalf("Decode(%q) returned error: %v", input, err)
			}
			if got := string(Encode(nil, codes)); got != input {
				t.Errorf("Encode(Decode(%q)) = %q", input, got)
			}
			if !slices.Equal(codes, []rune(input)) {
				t.Errorf("Decode(%q) = %U, want %U", input, codes, []rune(input))
			}
		})
	}
}

func TestDecodeInvalidLeadByte(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"0xFF", []byte{0xFF, 'a'}},
		{"continuation as lead", []byte{'a', 0x80}},
		{"five byte prefix", []byte{0xF8, 0x80, 0x80, 0x80, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes, err := Decode(tt.input)
			if !errors.Is(err, ErrInvalidEncoding) {
				t.Fatalf("Decode(% X) error = %v, want ErrInvalidEncoding", tt.input, err)
			}
			if codes != nil {
				t.Fatalf("Decode(% X) returned partial codes %U", tt.input, codes)
			}
		})
	}
}

func TestDecodeTruncatedTail(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []rune
	}{
		{"three byte lead only", []byte{'A', 0xE3}, []rune{'A'}},
		{"three byte missing one", []byte{'A', 0xE3, 0x81}, []rune{'A'}},
		{"two byte lead only", []byte{'x', 'y', 0xC3}, []rune{'x', 'y'}},
		{"four byte missing one", []byte{0xF0, 0x9F, 0x98}, []rune{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes, err := Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode(% X) returned error: %v", tt.input, err)
			}
			if !slices.Equal(codes, tt.want) {
				t.Errorf("Decode(% X) = %U, want %U", tt.input, codes, tt.want)
			}
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, input := range [][]byte{nil, {}} {
		if _, err := Decode(input); !errors.Is(err, ErrDecode) {
			t.Errorf("Decode(%v) error = %v, want ErrDecode", input, err)
		}
	}
}

func TestDecodeUncheckedContinuationBytes(t *testing.T) {
	// Continuation bytes are masked, not validated.
	codes, err := Decode([]byte{0xC3, 0x29})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if want := rune(0x3<<6 | 0x29); len(codes) != 1 || codes[0] != want {
		t.Fatalf("Decode = %U, want [%U]", codes, want)
	}
}

func TestDecodeFourByteLeadRange(t *testing.T) {
	codes, err := Decode([]byte{0xF5, 0x80, 0x80, 0x80})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(codes) != 1 || codes[0] != 0x140000 {
		t.Fatalf("Decode = %U, want [U+140000]", codes)
	}
}

func TestReadCodePointCursorGuard(t *testing.T) {
	data := []byte("ab")
	for _, cursor := range []int{-1, 2, 10} {
		if _, _, err := readCodePoint(data, cursor); !errors.Is(err, ErrDecode) {
			t.Errorf("readCodePoint(cursor=%d) error = %v, want ErrDecode", cursor, err)
		}
	}
	if _, _, err := readCodePoint(nil, 0); !errors.Is(err, ErrDecode) {
		t.Errorf("readCodePoint(nil) error = %v, want ErrDecode", err)
	}
}
