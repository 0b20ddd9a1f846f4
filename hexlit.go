// Package hexlit decodes hex text into byte sequences with strict
// validation, and backs the hexgen code generator that materializes hex
// literals as fixed-size arrays during `go generate`.
package hexlit

import (
	"errors"
	"fmt"
)

var (
	// ErrOddLength reports an input whose length is not a multiple of 2.
	ErrOddLength = errors.New("hex length must be even")

	// ErrLengthMismatch reports an even-length input that does not match
	// the destination size.
	ErrLengthMismatch = errors.New("hex length does not match destination size")
)

// InvalidCharacterError reports a character outside 0-9, a-f, A-F.
type InvalidCharacterError struct {
	// Char is the offending byte.
	Char byte

	// Pos is its byte offset in the input.
	Pos int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("non-hex character %q at position %d", e.Char, e.Pos)
}

// decodeNibble maps one ASCII byte to its 4-bit value.
// Each valid range is contiguous in ASCII, so a single subtraction
// recovers the position within the range.
func decodeNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, &InvalidCharacterError{Char: c}
}

// DecodeInto decodes src into dst, which must be exactly len(src)/2 bytes.
// The destination size is fixed before any byte is written; besides dst,
// only scalar locals are used, so the call performs no allocation.
//
// Validation order: odd length first, then size mismatch, then per-character
// validity discovered during the decode loop. dst is filled left to right
// and is only fully populated on a nil return.
func DecodeInto(dst []byte, src string) error {
	if len(src)%2 != 0 {
		return fmt.Errorf("%w, got %d", ErrOddLength, len(src))
	}
	if len(src) != 2*len(dst) {
		return fmt.Errorf("%w: %d hex chars for %d bytes", ErrLengthMismatch, len(src), len(dst))
	}

	for i := 0; i < len(dst); i++ {
		msb, err := decodeNibble(src[2*i])
		if err != nil {
			return posErr(err, 2*i)
		}
		lsb, err := decodeNibble(src[2*i+1])
		if err != nil {
			return posErr(err, 2*i+1)
		}
		dst[i] = msb<<4 | lsb
	}
	return nil
}

// posErr stamps the input offset onto an InvalidCharacterError.
func posErr(err error, pos int) error {
	var ice *InvalidCharacterError
	if errors.As(err, &ice) {
		ice.Pos = pos
	}
	return err
}

// DecodeString decodes src into a freshly allocated slice of len(src)/2
// bytes. Convenience tier for callers that do not need the fixed-size,
// allocation-free path; shares the validation and decode loop of DecodeInto.
func DecodeString(src string) ([]byte, error) {
	dst := make([]byte, len(src)/2)
	if err := DecodeInto(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// MustDecodeString is DecodeString that panics on invalid input.
func MustDecodeString(src string) []byte {
	b, err := DecodeString(src)
	if err != nil {
		panic(fmt.Sprintf("hexlit: %v", err))
	}
	return b
}

// EncodeToString converts bytes to uppercase hex.
func EncodeToString(b []byte) string {
	const digits = "0123456789ABCDEF"
	out := make([]byte, 2*len(b))
	for i, c := range b {
		out[2*i] = digits[c>>4]
		out[2*i+1] = digits[c&0x0f]
	}
	return string(out)
}
