package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode(DefaultCodeLength)
	require.NoError(t, err)
	require.Len(t, code, DefaultCodeLength)

	for _, r := range code {
		require.True(t, strings.ContainsRune(CodeAlphabet, r), "unexpected rune %q", r)
	}
}

func TestGenerateCode_InvalidLength(t *testing.T) {
	_, err := GenerateCode(0)
	require.Error(t, err)
}

func TestGenerateCode_Spread(t *testing.T) {
	seen := make(map[string]struct{}, 200)
	for range 200 {
		code, err := GenerateCode(DefaultCodeLength)
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	require.Len(t, seen, 200)
}

func TestNormalizeCode(t *testing.T) {
	require.Equal(t, "ABCD2345", NormalizeCode("  abcd2345\n"))
	require.Equal(t, "ABCD2345", NormalizeCode("abcd 2345"))
	require.Equal(t, "", NormalizeCode("   "))
}
