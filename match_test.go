package gdelta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommonPrefixLen(t *testing.T) {
	require.Equal(t, 7, commonPrefixLen([]byte("Hello, World!"), []byte("Hello, Rust!")))
	require.Equal(t, 0, commonPrefixLen([]byte("abc"), []byte("xyz")))
	a := []byte("0123456789ABCDEF")
	require.Equal(t, len(a), commonPrefixLen(a, append([]byte(nil), a...)))
}

func TestCommonSuffixLen(t *testing.T) {
	a := []byte("Hello, World!")
	b := []byte("Howdy, World!")
	require.Equal(t, 8, commonSuffixLen(a, b, 0))
}

func TestCommonSuffixLenRespectsPrefix(t *testing.T) {
	// Identical strings: with prefixLen == len, there's no room left for a
	// suffix scan.
	a := []byte("aaaaaaaa")
	b := []byte("aaaaaaaa")
	require.Equal(t, 0, commonSuffixLen(a, b, len(a)))
}

func TestExtendMatch(t *testing.T) {
	base := []byte("0123456789ABCDEFGHIJ")
	newData := []byte("0123456789ABCDEFXXXX")

	m := extendMatch(newData, base, 0, 0, len(newData), len(base))
	require.Equal(t, 16, m) // matches through 'F', diverges at 'G' vs 'X'
}
