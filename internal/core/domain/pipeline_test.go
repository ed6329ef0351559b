package domain_test

import (
	"testing"

	"hexquantity/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripPrefix(t *testing.T) {
	assert.Equal(t, []byte("7b"), domain.StripPrefix([]byte("0x7b")))
	assert.Equal(t, []byte{}, domain.StripPrefix([]byte("0x")))
	assert.Equal(t, []byte("0X7b"), domain.StripPrefix([]byte("0X7b")))
	assert.Equal(t, []byte("0"), domain.StripPrefix([]byte("0")))
	assert.Equal(t, []byte("x0"), domain.StripPrefix([]byte("x0")))
}

func TestNibbleFromASCII(t *testing.T) {
	for c := 0; c < 256; c++ {
		n, ok := domain.NibbleFromASCII(byte(c))
		switch {
		case c >= '0' && c <= '9':
			require.True(t, ok, "byte %q", c)
			assert.Equal(t, domain.Nibble(c-'0'), n)
		case c >= 'a' && c <= 'f':
			require.True(t, ok, "byte %q", c)
			assert.Equal(t, domain.Nibble(c-'a'+10), n)
		case c >= 'A' && c <= 'F':
			require.True(t, ok, "byte %q", c)
			assert.Equal(t, domain.Nibble(c-'A'+10), n)
		default:
			assert.False(t, ok, "byte %q", c)
		}
	}
}

func TestToNibbles(t *testing.T) {
	got, err := domain.ToNibbles([]byte("0aF"), 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.Nibble{0, 10, 15}, got)

	got, err = domain.ToNibbles([]byte("0q"), 5)
	assert.Nil(t, got)
	var charErr *domain.InvalidCharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, 6, charErr.Offset)
	assert.ErrorIs(t, err, domain.ErrInvalidCharacter)
}

func TestTrimLeadingZeros(t *testing.T) {
	assert.Equal(t, []domain.Nibble{7, 0}, domain.TrimLeadingZeros([]domain.Nibble{0, 0, 7, 0}))
	assert.Empty(t, domain.TrimLeadingZeros([]domain.Nibble{0, 0, 0}))
	assert.Empty(t, domain.TrimLeadingZeros(nil))
	assert.Equal(t, []domain.Nibble{1}, domain.TrimLeadingZeros([]domain.Nibble{1}))
}

func TestPackNibbles(t *testing.T) {
	tests := []struct {
		name string
		in   []domain.Nibble
		want []byte
	}{
		{name: "Empty", in: nil, want: []byte{}},
		{name: "One nibble", in: []domain.Nibble{0xa}, want: []byte{0x0a}},
		{name: "Even count", in: []domain.Nibble{0x7, 0xb}, want: []byte{0x7b}},
		{name: "Odd count", in: []domain.Nibble{0x7, 0xb, 0x3}, want: []byte{0x07, 0xb3}},
		{name: "Four nibbles", in: []domain.Nibble{0xd, 0xe, 0xa, 0xd}, want: []byte{0xde, 0xad}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.PackNibbles(tt.in))
		})
	}
}

func TestDecodeStats_Total(t *testing.T) {
	s := domain.DecodeStats{Decoded: 3, InvalidCharacter: 2, Rejected: 1}
	assert.Equal(t, uint64(6), s.Total())
}
