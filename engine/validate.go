package engine

import (
	"fmt"
	"strings"
)

// KeyLength is the exact length of a key or value in hex characters.
const KeyLength = 32

// Normalize checks that input is a string of KeyLength hex digits and
// returns its lowercase form. It is applied to keys and values alike.
func Normalize(input any) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected a string, got %T", ErrInvalidFormat, input)
	}
	if len(s) != KeyLength {
		return "", fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidFormat, KeyLength, len(s))
	}
	for i := 0; i < len(s); i++ {
		if !isHex(s[i]) {
			return "", fmt.Errorf("%w: non-hex character at position %d", ErrInvalidFormat, i)
		}
	}
	return strings.ToLower(s), nil
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
