package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
)

const (
	testUserSecret  = "user-secret-for-tests"
	testAdminSecret = "admin-secret-for-tests"
	testSubjectID   = "8d3e8c4e-2b1c-4f5a-9f41-0c9e4b1f6a21"
)

func mustCodec(t *testing.T, secret string, ttl time.Duration) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(secret, ttl)
	require.NoError(t, err)
	return codec
}

func verificationKind(t *testing.T, err error) VerificationKind {
	t.Helper()
	var verr *VerificationError
	require.True(t, errors.As(err, &verr), "expected VerificationError, got %v", err)
	return verr.Kind
}

func TestNewTokenCodec_RequiresSecret(t *testing.T) {
	_, err := NewTokenCodec("", 0)
	assert.Error(t, err)
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	cases := []domain.Identity{
		{SubjectID: testSubjectID},
		{SubjectID: testSubjectID, Role: domain.RoleAdmin},
	}
	codec := mustCodec(t, testAdminSecret, 0)

	for _, identity := range cases {
		token, err := codec.Issue(identity)
		require.NoError(t, err)

		got, err := codec.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, identity, got)
	}
}

func TestTokenCodec_NoExpiryWhenTTLZero(t *testing.T) {
	codec := mustCodec(t, testUserSecret, 0)
	codec.now = func() time.Time { return time.Now().Add(-10 * 365 * 24 * time.Hour) }
	token, err := codec.Issue(domain.Identity{SubjectID: testSubjectID})
	require.NoError(t, err)

	codec.now = time.Now
	_, err = codec.Verify(token)
	assert.NoError(t, err)
}

func TestTokenCodec_WrongSecretIsBadSignature(t *testing.T) {
	userCodec := mustCodec(t, testUserSecret, 0)
	adminCodec := mustCodec(t, testAdminSecret, 0)

	token, err := userCodec.Issue(domain.Identity{SubjectID: testSubjectID, Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = adminCodec.Verify(token)
	require.Error(t, err)
	assert.Equal(t, VerificationBadSignature, verificationKind(t, err))
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := mustCodec(t, testUserSecret, time.Minute)
	codec.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := codec.Issue(domain.Identity{SubjectID: testSubjectID})
	require.NoError(t, err)

	codec.now = time.Now
	_, err = codec.Verify(token)
	require.Error(t, err)
	assert.Equal(t, VerificationExpired, verificationKind(t, err))
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := mustCodec(t, testUserSecret, 0)

	_, err := codec.Verify("not.a.token")
	require.Error(t, err)
	assert.Equal(t, VerificationMalformed, verificationKind(t, err))
}

func TestTokenCodec_RejectsOtherAlgorithms(t *testing.T) {
	codec := mustCodec(t, testUserSecret, 0)
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: testSubjectID}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testUserSecret))
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.Error(t, err)
	assert.Equal(t, VerificationBadSignature, verificationKind(t, err))
}

func TestTokenCodec_RejectsMissingSubject(t *testing.T) {
	codec := mustCodec(t, testUserSecret, 0)
	_, err := codec.Issue(domain.Identity{})
	assert.Error(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{}).SignedString([]byte(testUserSecret))
	require.NoError(t, err)
	_, err = codec.Verify(token)
	require.Error(t, err)
	assert.Equal(t, VerificationMalformed, verificationKind(t, err))
}
