package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "entragraph/pkg/domain-errors"
)

func TestPasswordContainsAllClasses(t *testing.T) {
	for i := 0; i < 50; i++ {
		pw, err := Password(12)
		require.NoError(t, err)
		require.Len(t, pw, 12)

		assert.True(t, strings.ContainsAny(pw, digits), "missing digit: %q", pw)
		assert.True(t, strings.ContainsAny(pw, lowercase), "missing lowercase: %q", pw)
		assert.True(t, strings.ContainsAny(pw, uppercase), "missing uppercase: %q", pw)
		assert.True(t, strings.ContainsAny(pw, symbols), "missing symbol: %q", pw)
	}
}

func TestPasswordExcludesAmbiguousLetters(t *testing.T) {
	for i := 0; i < 50; i++ {
		pw, err := Password(64)
		require.NoError(t, err)
		assert.NotContains(t, pw, "l")
		assert.NotContains(t, pw, "L")
	}
}

func TestPasswordRejectsShortLength(t *testing.T) {
	_, err := Password(4)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestPasswordsAreNotRepeated(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		pw, err := Password(16)
		require.NoError(t, err)
		assert.False(t, seen[pw], "duplicate password generated")
		seen[pw] = true
	}
}
