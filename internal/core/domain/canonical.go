package domain

// TrimLeadingZeros drops zero nibbles from the front of n.
// The returned slice shares n's backing array.
func TrimLeadingZeros(n []Nibble) []Nibble {
	i := 0
	for i < len(n) && n[i] == 0 {
		i++
	}
	return n[i:]
}
