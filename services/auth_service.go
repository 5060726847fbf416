package services

import (
	"errors"
	"gin-marketplace/constants"
	"gin-marketplace/models"
	"gin-marketplace/repositories"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New(constants.ErrInvalidCredentials)

type IAuthService interface {
	Signup(input models.User) (*models.User, error)
	Login(email string, password string) (string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

type AuthService struct {
	repository   repositories.IAuthRepository
	tokenService ITokenService
}

func NewAuthService(repository repositories.IAuthRepository, tokenService ITokenService) IAuthService {
	return &AuthService{
		repository:   repository,
		tokenService: tokenService,
	}
}

func (s *AuthService) Signup(input models.User) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	input.Password = string(hashedPassword)
	if input.Role == "" {
		input.Role = constants.RoleUser
	}
	return s.repository.CreateUser(input)
}

func (s *AuthService) Login(email string, password string) (string, error) {
	foundUser, err := s.repository.FindUser(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokenService.Issue(foundUser.Email, constants.TokenTTL)
}

// GetUserFromToken はトークンを検証し、subクレーム（メールアドレス）のユーザーを取得する。
// 保護されたルートはすべてここを通る。
func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	subject, err := s.tokenService.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.repository.FindUser(subject)
	if err != nil {
		return nil, err
	}
	return user, nil
}
