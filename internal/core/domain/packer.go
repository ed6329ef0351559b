package domain

// PackNibbles groups nibbles (most significant first) into big-endian bytes.
// Pairs are formed from the least significant end, so an odd count leaves
// the first byte holding a single low nibble.
func PackNibbles(n []Nibble) []byte {
	out := make([]byte, (len(n)+1)/2)
	j := len(n) - 1
	for i := len(out) - 1; i >= 0; i-- {
		b := byte(n[j])
		if j > 0 {
			b |= byte(n[j-1]) << 4
		}
		out[i] = b
		j -= 2
	}
	return out
}
