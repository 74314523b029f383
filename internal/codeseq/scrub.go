package codeseq

import "bytes"

const (
	maxURLSpan        = 2076
	maxEmailLocalPart = 64
	maxEmailDomain    = 510
)

var (
	urlSeparator = []byte("://")

	// Longest scheme first so "https" wins over "http" at the same separator.
	urlSchemes = [][]byte{
		[]byte("https"),
		[]byte("http"),
		[]byte("file"),
		[]byte("ftp"),
	}
)

// ScrubOptions selects which scrubbing passes run.
type ScrubOptions struct {
	URLs   bool
	Emails bool
}

// DefaultScrubOptions enables both passes.
func DefaultScrubOptions() ScrubOptions {
	return ScrubOptions{URLs: true, Emails: true}
}

// ScrubStats counts the spans replaced by each pass.
type ScrubStats struct {
	URLs   int
	Emails int
}

// Scrub replaces URL-like and email-like spans in data with a single space.
// The input is never modified; the returned buffer does not alias it.
func Scrub(data []byte, opts ScrubOptions) ([]byte, ScrubStats) {
	var stats ScrubStats
	out := bytes.Clone(data)
	if opts.URLs {
		out, stats.URLs = scrubURLs(out)
	}
	if opts.Emails {
		out, stats.Emails = scrubEmails(out)
	}
	return out, stats
}

// scrubURLs makes one forward pass over data. Bytes before last have already
// been copied to out (or replaced), so scheme lookbehind never crosses it.
func scrubURLs(data []byte) ([]byte, int) {
	var out []byte
	removed, last, cursor := 0, 0, 0
	for cursor < len(data) {
		idx := bytes.Index(data[cursor:], urlSeparator)
		if idx < 0 {
			break
		}
		sep := cursor + idx
		cursor = sep + len(urlSeparator)

		start, ok := schemeStart(data, sep, last)
		if !ok {
			continue
		}
		end := cursor
		for end < len(data) && end-start <= maxURLSpan && isURLByte(data[end]) {
			end++
		}
		if end-start > maxURLSpan {
			continue
		}

		if out == nil {
			out = make([]byte, 0, len(data))
		}
		out = append(out, data[last:start]...)
		out = append(out, ' ')
		last, cursor = end, end
		removed++
	}
	if removed == 0 {
		return data, 0
	}
	return append(out, data[last:]...), removed
}

func schemeStart(data []byte, sep, floor int) (int, bool) {
	for _, scheme := range urlSchemes {
		start := sep - len(scheme)
		if start < floor {
			continue
		}
		if bytes.Equal(data[start:sep], scheme) {
			return start, true
		}
	}
	return 0, false
}

func scrubEmails(data []byte) ([]byte, int) {
	var out []byte
	removed, last, cursor := 0, 0, 0
	for cursor < len(data) {
		idx := bytes.IndexByte(data[cursor:], '@')
		if idx < 0 {
			break
		}
		at := cursor + idx
		cursor = at + 1

		start := at
		for start > last && at-start <= maxEmailLocalPart && isEmailByte(data[start-1]) {
			start--
		}
		if local := at - start; local == 0 || local > maxEmailLocalPart {
			continue
		}
		end := at + 1
		for end < len(data) && end-at-1 <= maxEmailDomain && isEmailByte(data[end]) {
			end++
		}
		if domain := end - at - 1; domain == 0 || domain > maxEmailDomain {
			continue
		}

		if out == nil {
			out = make([]byte, 0, len(data))
		}
		out = append(out, data[last:start]...)
		out = append(out, ' ')
		last, cursor = end, end
		removed++
	}
	if removed == 0 {
		return data, 0
	}
	return append(out, data[last:]...), removed
}

func isAlnum(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isURLByte(b byte) bool {
	if isAlnum(b) {
		return true
	}
	switch b {
	case '-', '_', '.', '?', '&', '~', ';', '+', '=', '/', '#':
		return true
	}
	return false
}

func isEmailByte(b byte) bool {
	return isAlnum(b) || b == '-' || b == '_' || b == '.'
}
