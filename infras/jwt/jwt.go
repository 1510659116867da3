package jwt

import (
	"errors"
	"fmt"
	"siesta/config"
	"siesta/shared/constant"
	"siesta/shared/timezone"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims identifies the terminal to the remote service. Every remote call
// carries a freshly signed, short-lived device token.
type Claims struct {
	AdminID  string `json:"admin_id"`
	WorkerID string `json:"worker_id"`
	jwt.RegisteredClaims
}

// JWT signs and validates device tokens for remote calls.
type JWT interface {
	DeviceToken(adminID, workerID string) (string, error)
	Parse(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// DeviceToken signs a short-lived HS256 token carrying the operator identity.
func (s *Service) DeviceToken(adminID, workerID string) (string, error) {
	now := timezone.Now()

	expireMin := s.config.Remote.TokenExpireMin
	if expireMin == 0 {
		expireMin = constant.DefaultRemoteTokenExpireMin
	}

	tokenID := uuid.New().String()

	claims := Claims{
		AdminID:  adminID,
		WorkerID: workerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireMin) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.App.Name,
			Subject:   adminID,
			ID:        tokenID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.Remote.SigningKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign device token: %w", err)
	}

	return signedToken, nil
}

// Parse validates a device token and returns its claims.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Remote.SigningKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
