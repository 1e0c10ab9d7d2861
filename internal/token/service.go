package token

import (
	"elite-dashboard/internal/config"
	"elite-dashboard/internal/metrics"
	"elite-dashboard/internal/models"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Pair is an access token together with the refresh token that can renew it.
type Pair struct {
	AccessToken  string
	RefreshToken string
}

// Service issues and validates access/refresh tokens with independent secrets.
type Service struct {
	codec *Codec
	cfg   config.JWTConfig
}

func NewService(cfg config.JWTConfig) *Service {
	return &Service{codec: NewCodec(), cfg: cfg}
}

func (s *Service) IssueAccess(userID string, role models.Role) (string, error) {
	signed, err := s.codec.Generate(Claims{Role: role, RegisteredClaims: subject(userID)}, []byte(s.cfg.AccessTokenSecret), s.cfg.AccessTokenExp)
	if err != nil {
		return "", err
	}

	metrics.TokensIssued.WithLabelValues(metrics.TokenKindAccess).Inc()
	return signed, nil
}

func (s *Service) IssueRefresh(userID string, role models.Role) (string, error) {
	signed, err := s.codec.Generate(Claims{Role: role, RegisteredClaims: subject(userID)}, []byte(s.cfg.RefreshTokenSecret), s.cfg.RefreshTokenExp)
	if err != nil {
		return "", err
	}

	metrics.TokensIssued.WithLabelValues(metrics.TokenKindRefresh).Inc()
	return signed, nil
}

func (s *Service) IssuePair(userID string, role models.Role) (*Pair, error) {
	access, err := s.IssueAccess(userID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := s.IssueRefresh(userID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) ValidateAccess(tokenStr string) (*Claims, error) {
	return validRole(s.codec.Validate(tokenStr, []byte(s.cfg.AccessTokenSecret), true))
}

// ValidateRefresh checks the signature and subject. The exp claim is only
// enforced when jwt.enforce_refresh_expiry is set.
func (s *Service) ValidateRefresh(tokenStr string) (*Claims, error) {
	return validRole(s.codec.Validate(tokenStr, []byte(s.cfg.RefreshTokenSecret), s.cfg.EnforceRefreshExpiry))
}

func validRole(claims *Claims, err error) (*Claims, error) {
	if err != nil {
		return nil, err
	}

	if _, err := models.ParseRole(string(claims.Role)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims, nil
}

func subject(userID string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{Subject: userID}
}
