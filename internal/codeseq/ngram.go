package codeseq

import "encoding/binary"

const (
	// MaxNgramWidth is the widest n-gram, in code points.
	MaxNgramWidth = 3
	// CodeUnitSize is the byte width of one code point inside an n-gram token.
	CodeUnitSize = 4
)

// ExtractNgrams returns one token per code point: the unigram, then the
// bigram, then sliding trigrams. Each code point is laid out as four
// little-endian bytes, so token lengths run 4, 8, 12, 12, ...
func ExtractNgrams(codes []rune) []string {
	if len(codes) == 0 {
		return nil
	}
	ngrams := make([]string, 0, len(codes))
	window := make([]byte, 0, (MaxNgramWidth+1)*CodeUnitSize)
	for _, c := range codes {
		window = binary.LittleEndian.AppendUint32(window, uint32(c))
		if len(window) > MaxNgramWidth*CodeUnitSize {
			window = append(window[:0], window[CodeUnitSize:]...)
		}
		ngrams = append(ngrams, string(window))
	}
	return ngrams
}

// NgramCodes unpacks a token produced by ExtractNgrams back into its code
// points. Trailing bytes that do not form a full unit are ignored.
func NgramCodes(token string) []rune {
	codes := make([]rune, 0, len(token)/CodeUnitSize)
	for i := 0; i+CodeUnitSize <= len(token); i += CodeUnitSize {
		codes = append(codes, rune(binary.LittleEndian.Uint32([]byte(token[i:i+CodeUnitSize]))))
	}
	return codes
}
