package services

import (
	"gin-marketplace/constants"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key"

func TestTokenIssueAndValidate(t *testing.T) {
	service := NewTokenService(testSecret)

	token, err := service.Issue("a@x.com", constants.TokenTTL)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := service.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestTokenDefaultTTL(t *testing.T) {
	service := NewTokenService(testSecret)

	token, err := service.Issue("a@x.com", 0)
	assert.NoError(t, err)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)

	exp, err := parsed.Claims.GetExpirationTime()
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(constants.TokenTTL), exp.Time, 5*time.Second)
}

func TestTokenExpired(t *testing.T) {
	service := NewTokenService(testSecret)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@x.com",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = service.Validate(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	service := NewTokenService(testSecret)
	otherService := NewTokenService("other-secret")

	token, err := otherService.Issue("a@x.com", constants.TokenTTL)
	assert.NoError(t, err)

	_, err = service.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMissingSubject(t *testing.T) {
	service := NewTokenService(testSecret)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	tokenString, err := noSubject.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = service.Validate(tokenString)
	assert.ErrorIs(t, err, ErrMissingClaim)
}

func TestTokenMalformed(t *testing.T) {
	service := NewTokenService(testSecret)

	_, err := service.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
