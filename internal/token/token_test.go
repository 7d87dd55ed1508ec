package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret")

	tok, err := issuer.Issue(42, time.Hour)
	require.NoError(t, err)

	userID, err := issuer.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, int64(42), userID)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret")

	tok, err := issuer.Issue(42, -time.Minute)
	require.NoError(t, err)

	// Expired tokens report invalid even though the signature checks out.
	_, err = issuer.Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer("right-secret").Issue(7, time.Hour)
	require.NoError(t, err)

	_, err = NewIssuer("wrong-secret").Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Missing(t *testing.T) {
	t.Parallel()

	_, err := NewIssuer("k").Verify("")
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("k")

	for _, raw := range []string{"not-a-token", "one.two", "a.b.c.d"} {
		_, err := issuer.Verify(raw)
		require.ErrorIs(t, err, ErrMalformedToken, "input %q", raw)
	}
}

func TestVerify_GarbageSegments(t *testing.T) {
	t.Parallel()

	// Right shape, not a real token.
	_, err := NewIssuer("k").Verify("aaaa.bbbb.cccc")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := "super-secret"

	// Token signed with the right key but no account id claim.
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewIssuer(secret).Verify(raw)
	require.ErrorIs(t, err, ErrMissingSubject)
}

func TestVerify_WrongAlgorithm(t *testing.T) {
	t.Parallel()

	// "none" algorithm must not be accepted.
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: 42,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewIssuer("k").Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}
