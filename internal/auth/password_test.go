package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)

	hash, err := h.Hash("s3cr3t!")
	require.NoError(t, err)
	require.NotEqual(t, "s3cr3t!", hash)

	ok, err := h.Verify("s3cr3t!", hash)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)

	hash, err := h.Hash("correct-password")
	require.NoError(t, err)

	ok, err := h.Verify("wrong-password", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHash_NonDeterministic(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	// Different salts mean different outputs, yet both verify.
	require.NotEqual(t, first, second)

	ok, err := h.Verify("same-password", first)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.Verify("same-password", second)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerify_CorruptHash(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)

	ok, err := h.Verify("anything", "not-a-bcrypt-hash")
	require.False(t, ok)
	require.ErrorIs(t, err, ErrCorruptHash)
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(-1)

	hash, err := h.Hash("pw")
	require.NoError(t, err)

	ok, err := h.Verify("pw", hash)
	require.NoError(t, err)
	require.True(t, ok)
}
