package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
)

// VerificationKind classifies why a token was rejected.
type VerificationKind string

const (
	VerificationExpired      VerificationKind = "expired"
	VerificationMalformed    VerificationKind = "malformed"
	VerificationBadSignature VerificationKind = "bad_signature"
)

// VerificationError is returned by Verify when a token cannot be trusted.
type VerificationError struct {
	Kind VerificationKind
	Err  error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("token %s: %v", e.Kind, e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// Claims describes the JWT payload.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies tokens for one identity class. Each class gets its own
// codec and secret.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec builds a codec. A zero ttl issues tokens without an expiry claim; such
// tokens stay valid until the secret is rotated.
func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token carrying the identity.
func (tc *TokenCodec) Issue(identity domain.Identity) (string, error) {
	if identity.SubjectID == "" {
		return "", errors.New("identity subject is required")
	}
	now := tc.now()
	claims := &Claims{
		Role: identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  identity.SubjectID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if tc.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tc.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Verify validates the token and returns the embedded identity. Failures are always a
// *VerificationError.
func (tc *TokenCodec) Verify(tokenStr string) (domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return tc.secret, nil
	}, jwt.WithTimeFunc(tc.now), jwt.WithIssuedAt())
	if err != nil {
		return domain.Identity{}, &VerificationError{Kind: classify(err), Err: err}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return domain.Identity{}, &VerificationError{Kind: VerificationMalformed, Err: errors.New("invalid token claims")}
	}
	return domain.Identity{SubjectID: claims.Subject, Role: claims.Role}, nil
}

func classify(err error) VerificationKind {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return VerificationExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return VerificationBadSignature
	default:
		return VerificationMalformed
	}
}
