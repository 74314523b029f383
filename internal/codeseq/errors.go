package codeseq

import "errors"

var (
	// ErrDecode reports an empty buffer or a decode cursor outside the buffer.
	ErrDecode = errors.New("decode error")
	// ErrInvalidEncoding reports a lead byte that matches no UTF-8 length prefix.
	ErrInvalidEncoding = errors.New("invalid encoding: input may not be utf-8")
)
