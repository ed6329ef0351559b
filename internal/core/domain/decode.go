package domain

// Decode turns a hex quantity such as "0x7b", "007b" or "7b3" into its minimal
// big-endian byte representation. input is never mutated or retained.
//
// A non-empty digit string that is entirely zero decodes to a single 0x00 byte.
// Empty input, and a bare "0x", decode to an empty slice.
func Decode(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return []byte{}, nil
	}

	digits := StripPrefix(input)
	nibbles, err := ToNibbles(digits, len(input)-len(digits))
	if err != nil {
		return nil, err
	}

	canonical := TrimLeadingZeros(nibbles)
	if len(canonical) == 0 && len(nibbles) > 0 {
		return []byte{0}, nil
	}
	return PackNibbles(canonical), nil
}
