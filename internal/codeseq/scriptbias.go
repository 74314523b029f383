package codeseq

import "langprep/internal/unicodeblock"

const (
	latinRangeFirst = 0x0041
	latinRangeLast  = 0x007A
	nonLatinFloor   = 0x0300
)

// BlockClassifier resolves the Unicode block of a code point.
type BlockClassifier interface {
	BlockOf(r rune) unicodeblock.Block
}

// FilterScriptBias drops code points in U+0041..U+007A when the sequence is
// dominated by non-Latin script, reporting whether it did so. The range
// includes the ASCII punctuation between 'Z' and 'a'.
//
// Code points at or above U+0300 count as non-Latin unless they belong to
// Latin Extended Additional. Filtering happens in place.
func FilterScriptBias(codes []rune, blocks BlockClassifier) ([]rune, bool) {
	if blocks == nil {
		blocks = unicodeblock.Classifier{}
	}
	latin, nonLatin := 0, 0
	for _, c := range codes {
		switch {
		case inLatinRange(c):
			latin++
		case c >= nonLatinFloor && blocks.BlockOf(c) != unicodeblock.LatinExtendedAdditional:
			nonLatin++
		}
	}
	if latin*2 >= nonLatin {
		return codes, false
	}

	kept := codes[:0]
	for _, c := range codes {
		if !inLatinRange(c) {
			kept = append(kept, c)
		}
	}
	return kept, true
}

func inLatinRange(c rune) bool {
	return c >= latinRangeFirst && c <= latinRangeLast
}
