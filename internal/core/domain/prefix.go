package domain

// PrefixLen is the length of the "0x" marker.
const PrefixLen = 2

// StripPrefix returns data without a leading lowercase "0x" marker.
// "0X" is left untouched and will fail digit conversion.
func StripPrefix(data []byte) []byte {
	if len(data) >= PrefixLen && data[0] == '0' && data[1] == 'x' {
		return data[PrefixLen:]
	}
	return data
}
