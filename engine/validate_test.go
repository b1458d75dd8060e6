package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
	}{
		{"empty", ""},
		{"too short", strings.Repeat("a", 31)},
		{"too long", strings.Repeat("a", 33)},
		{"non hex letter", strings.Repeat("a", 31) + "g"},
		{"space", strings.Repeat("a", 31) + " "},
		{"prefixed", "0x" + strings.Repeat("a", 30)},
		{"multibyte", strings.Repeat("a", 30) + "é"},
		{"number", 1234},
		{"nil", nil},
		{"bool", true},
		{"object", map[string]any{"a": "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.input)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestNormalize_Lowercases(t *testing.T) {
	t.Parallel()

	got, err := Normalize("FEDCBA0987654321FeDcBa0987654321")
	require.NoError(t, err)
	assert.Equal(t, "fedcba0987654321fedcba0987654321", got)
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"1234567890ABCDEF1234567890abcdef",
		"00000000000000000000000000000000",
		"ffffffffffffffffffffffffffffffff",
	} {
		once, err := Normalize(in)
		require.NoError(t, err)
		twice, err := Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
		assert.Len(t, once, KeyLength)
	}
}
