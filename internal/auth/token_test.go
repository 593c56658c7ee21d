package auth

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)

	token, meta, err := tm.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "user-123", meta.SubjectID)
	require.WithinDuration(t, time.Now().Add(time.Hour), meta.ExpiresAt, 5*time.Second)

	subject, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", subject)
}

func TestVerify_ZeroTTLExpired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)

	token, _, err := tm.IssueWithTTL("user-123", 0)
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)

	token, _, err := tm.Issue("user-123")
	require.NoError(t, err)

	// Rewrite the subject inside the payload, leaving the signature intact.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	tampered := bytes.Replace(payload, []byte("user-123"), []byte("user-999"), 1)
	require.NotEqual(t, payload, tampered)
	parts[1] = base64.RawURLEncoding.EncodeToString(tampered)

	_, err = tm.Verify(strings.Join(parts, "."))
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager("right-secret", time.Hour)
	verifier := NewTokenManager("wrong-secret", time.Hour)

	token, _, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)

	for _, tokenStr := range []string{"", "garbage", "not.a.jwt"} {
		_, err := tm.Verify(tokenStr)
		require.ErrorIs(t, err, ErrTokenMalformed, "token %q", tokenStr)
	}
}

func TestNewTokenManager_DefaultTTL(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 0)

	token, meta, err := tm.Issue("user-1")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), meta.ExpiresAt, 5*time.Second)

	subject, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", subject)
}
