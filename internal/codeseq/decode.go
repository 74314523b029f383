package codeseq

import (
	"fmt"
	"unicode/utf8"
)

// Decode converts data into code points following UTF-8 lead byte rules.
//
// Continuation bytes contribute their low six bits without further
// validation. A multi-byte sequence truncated by the end of data ends decoding
// successfully and contributes nothing.
func Decode(data []byte) ([]rune, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrDecode)
	}
	codes := make([]rune, 0, len(data))
	cursor := 0
	for cursor < len(data) {
		code, size, err := readCodePoint(data, cursor)
		if err != nil {
			return nil, err
		}
		if size == 0 {
			break
		}
		codes = append(codes, code)
		cursor += size
	}
	return codes, nil
}

// readCodePoint decodes the code point starting at cursor. A zero size with
// a nil error marks a truncated trailing fragment.
func readCodePoint(data []byte, cursor int) (rune, int, error) {
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("%w: empty data", ErrDecode)
	}
	if cursor < 0 || cursor >= len(data) {
		return 0, 0, fmt.Errorf("%w: scan cursor %d outside %d byte buffer", ErrDecode, cursor, len(data))
	}

	lead := data[cursor]
	var (
		size int
		code rune
	)
	switch {
	case lead&0x80 == 0x00:
		size, code = 1, rune(lead)
	case lead&0xE0 == 0xC0:
		size, code = 2, rune(lead&0x1F)
	case lead&0xF0 == 0xE0:
		size, code = 3, rune(lead&0x0F)
	case lead&0xF8 == 0xF0:
		size, code = 4, rune(lead&0x07)
	default:
		return 0, 0, fmt.Errorf("%w: lead byte 0x%02X at offset %d", ErrInvalidEncoding, lead, cursor)
	}

	if cursor+size > len(data) {
		return 0, 0, nil
	}
	for i := 1; i < size; i++ {
		code = code<<6 | rune(data[cursor+i]&0x3F)
	}
	return code, size, nil
}

// Encode appends the UTF-8 form of each code point to dst. Values that are
// not valid scalar values encode as U+FFFD.
func Encode(dst []byte, codes []rune) []byte {
	for _, c := range codes {
		dst = utf8.AppendRune(dst, c)
	}
	return dst
}
