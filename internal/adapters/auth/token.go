package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventlisting/internal/domain"
)

// MarkerLifetime bounds how long a visitor's registration cookie stays valid.
const MarkerLifetime = 365 * 24 * time.Hour

var errEventMismatch = errors.New("marker issued for a different event")

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type jwtIssuer struct {
	secret []byte
}

// NewJWTIssuer returns a TokenIssuer that signs editor JWTs with HS256 using the given secret.
func NewJWTIssuer(secret string) domain.TokenIssuer {
	return &jwtIssuer{secret: []byte(secret)}
}

func (i *jwtIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier returns a TokenVerifier for tokens produced by NewJWTIssuer.
func NewJWTVerifier(secret string) domain.TokenVerifier {
	return &jwtVerifier{secret: []byte(secret)}
}

func (v *jwtVerifier) Verify(tokenString string) (string, error) {
	claims := &jwtClaims{}
	if err := parseHS256(tokenString, v.secret, claims); err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

type markerClaims struct {
	jwt.RegisteredClaims
	EventID string `json:"event_id"`
}

type jwtRegistrationMarker struct {
	secret []byte
	now    func() time.Time
}

// NewRegistrationMarker signs the cookie that remembers a visitor registered for an event.
func NewRegistrationMarker(secret string) domain.RegistrationMarker {
	return &jwtRegistrationMarker{secret: []byte(secret), now: time.Now}
}

func (m *jwtRegistrationMarker) Issue(eventID, registrationID string) (string, error) {
	now := m.now()
	claims := markerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   registrationID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(MarkerLifetime)),
		},
		EventID: eventID,
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign registration marker: %w", err)
	}
	return s, nil
}

func (m *jwtRegistrationMarker) Verify(tokenString, eventID string) (string, error) {
	claims := &markerClaims{}
	if err := parseHS256(tokenString, m.secret, claims); err != nil {
		return "", err
	}
	if claims.EventID != eventID {
		return "", errEventMismatch
	}
	return claims.Subject, nil
}

func parseHS256(tokenString string, secret []byte, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}
