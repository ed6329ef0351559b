package domain

// Nibble is a 4-bit value in [0,15], one hex digit.
type Nibble uint8

// NibbleFromASCII converts a single hex digit. Both cases are accepted.
func NibbleFromASCII(c byte) (Nibble, bool) {
	switch {
	case c >= '0' && c <= '9':
		return Nibble(c - '0'), true
	case c >= 'A' && c <= 'F':
		return Nibble(c - 'A' + 10), true
	case c >= 'a' && c <= 'f':
		return Nibble(c - 'a' + 10), true
	default:
		return 0, false
	}
}

// ToNibbles converts digits in order, stopping at the first invalid byte.
// offset is the position of digits[0] in the original input and is only used for error reporting.
func ToNibbles(digits []byte, offset int) ([]Nibble, error) {
	nibbles := make([]Nibble, len(digits))
	for i, c := range digits {
		n, ok := NibbleFromASCII(c)
		if !ok {
			return nil, &InvalidCharacterError{Char: c, Offset: offset + i}
		}
		nibbles[i] = n
	}
	return nibbles, nil
}
