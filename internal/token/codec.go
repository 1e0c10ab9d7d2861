package token

import (
	"elite-dashboard/internal/models"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload of both access and refresh tokens.
type Claims struct {
	Role models.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) GetUserID() string {
	return c.Subject
}

func (c *Claims) GetRole() models.Role {
	return c.Role
}

func (c *Claims) HasRole(role models.Role) bool {
	return c.Role == role
}

// Codec signs and verifies HS512 tokens.
type Codec struct {
	now func() time.Time
}

func NewCodec() *Codec {
	return &Codec{now: time.Now}
}

// Generate stamps claims with iat, exp and a fresh jti and signs them with secret.
func (c *Codec) Generate(claims Claims, secret []byte, expiry time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("signing secret must not be empty")
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("token subject must not be empty")
	}

	now := c.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(expiry))
	claims.ID = uuid.NewString()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate verifies the signature of tokenStr. When checkExpiry is false the
// exp claim is ignored but the subject must still be present.
func (c *Codec) Validate(tokenStr string, secret []byte, checkExpiry bool) (*Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
	}
	if checkExpiry {
		options = append(options, jwt.WithExpirationRequired(), jwt.WithTimeFunc(c.now))
	} else {
		options = append(options, jwt.WithoutClaimsValidation())
	}

	parser := jwt.NewParser(options...)
	parsed, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims, nil
}
