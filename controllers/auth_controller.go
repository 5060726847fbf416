package controllers

import (
	"errors"
	"gin-marketplace/constants"
	"gin-marketplace/dto"
	"gin-marketplace/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Login(ctx *gin.Context)
	TokenLogin(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.issueToken(ctx, input.Email, input.Password)
}

// TokenLogin はOAuth2パスワードフロー互換のフォームログイン（usernameフィールドにメールアドレス）
func (c *AuthController) TokenLogin(ctx *gin.Context) {
	var input dto.TokenLoginInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.issueToken(ctx, input.Username, input.Password)
}

func (c *AuthController) issueToken(ctx *gin.Context, email string, password string) {
	token, err := c.service.Login(email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrInvalidCredentials})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
