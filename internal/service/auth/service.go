package auth_service

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"portfolio-content-service/internal/config"
	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/auth --outpkg mocks --filename AuthService.go
type Service interface {
	// Login checks the credentials against the configured admin identity and
	// issues a signed bearer token.
	Login(username, password string) (string, error)
	// VerifyToken validates a bearer token and returns its subject.
	VerifyToken(token string) (string, error)
}

// AuthService guards the admin surface with a single configured identity.
// The password hash is computed once at construction so login never touches
// the plaintext comparison path.
type AuthService struct {
	cfg          config.Auth
	passwordHash []byte
	log          *logger.Logger
}

func NewAuthService(cfg config.Auth, log *logger.Logger) (*AuthService, error) {
	s := &AuthService{cfg: cfg, log: log}
	if cfg.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.passwordHash = hash
	}
	return s, nil
}

func (s *AuthService) configured() bool {
	return s.cfg.Secret != "" && s.cfg.AdminUsername != "" && len(s.passwordHash) > 0
}

func (s *AuthService) Login(username, password string) (string, error) {
	if !s.configured() {
		s.log.Error("Login attempted without admin credentials configured")
		return "", custom_errors.ErrAuthNotConfigured
	}
	if username != s.cfg.AdminUsername {
		s.log.Debug("Login rejected, unknown username", slog.String("username", username))
		return "", custom_errors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.log.Debug("Login rejected, wrong password", slog.String("username", username))
		return "", custom_errors.ErrInvalidCredentials
	}

	ttl := time.Duration(s.cfg.TokenTTLHours) * time.Hour
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.log.Error("Failed to sign token", slog.String("error", err.Error()))
		return "", err
	}

	s.log.Debug("Issued admin token", slog.String("username", username))
	return signed, nil
}

func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	if s.cfg.Secret == "" {
		return "", custom_errors.ErrAuthNotConfigured
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, custom_errors.ErrInvalidToken
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		s.log.Debug("Token verification failed")
		return "", custom_errors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", custom_errors.ErrInvalidToken
	}
	return claims.Subject, nil
}
