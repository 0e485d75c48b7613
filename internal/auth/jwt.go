package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid token format")
)

// Claims - содержимое токена. RegisteredClaims.ID (jti) - id записи access_tokens.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID разбирает subject токена
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

type TokenConfig struct {
	Secret string
	TTL    time.Duration // 0 - без срока действия
	Issuer string
}

// TokenManager подписывает и проверяет JWT (HS256)
type TokenManager struct {
	config TokenConfig
}

func NewTokenManager(config TokenConfig) *TokenManager {
	return &TokenManager{config: config}
}

// ExpiresAt - срок действия для токена, выданного в момент now (nil - бессрочный)
func (m *TokenManager) ExpiresAt(now time.Time) *time.Time {
	if m.config.TTL <= 0 {
		return nil
	}
	exp := now.Add(m.config.TTL)
	return &exp
}

// Generate подписывает токен для пользователя. tokenID становится claim "jti".
func (m *TokenManager) Generate(userID uint, role, tokenID string, issuedAt time.Time, expiresAt *time.Time) (string, error) {
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    m.config.Issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        tokenID,
		},
	}
	if expiresAt != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*expiresAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse проверяет подпись и срок действия токена
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidFormat
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.config.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractBearerToken достает токен из заголовка Authorization
func ExtractBearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", ErrInvalidFormat
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", ErrInvalidFormat
	}
	return token, nil
}
