// Package codeseq turns raw text bytes into the cleaned code point sequence
// consumed by n-gram language identification.
//
// Construction runs four steps in a fixed order: URL and email scrubbing on
// the raw bytes, UTF-8 decoding, the script-bias filter, and canonical
// normalization. The resulting Sequence is immutable; Ngrams produces the
// sliding 1..3 code point feature tokens on demand.
//
// Decoding is deliberately lenient about continuation bytes and strict about
// lead bytes: an unknown lead byte aborts construction with
// ErrInvalidEncoding, while a multi-byte sequence cut off by the end of the
// buffer is dropped without error.
package codeseq
