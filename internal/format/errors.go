package format

import "errors"

var (
	// ErrSignatureMismatch indicates the bytes at a header position do not carry BlockSignature.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a header.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadOrder indicates a header declared an order outside [0, MaxOrder].
	ErrBadOrder = errors.New("format: order out of range")
)
