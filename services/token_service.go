package services

import (
	"errors"
	"fmt"
	"gin-marketplace/constants"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New(constants.ErrInvalidToken)
	ErrMissingClaim = errors.New("token has no subject claim")
)

type ITokenService interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Validate(tokenString string) (string, error)
}

type TokenService struct {
	secretKey []byte
}

// NewTokenService は起動時に一度だけ読み込んだ秘密鍵を受け取る。
// リクエスト毎に環境変数を参照しない。
func NewTokenService(secretKey string) ITokenService {
	return &TokenService{secretKey: []byte(secretKey)}
}

func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = constants.TokenTTL
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(ttl).Unix(),
	})

	return token.SignedString(s.secretKey)
}

func (s *TokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrMissingClaim
	}

	return subject, nil
}
