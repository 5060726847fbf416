package controllers

import (
	"gin-marketplace/constants"
	"gin-marketplace/dto"
	"gin-marketplace/models"
	"gin-marketplace/services"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	Create(ctx *gin.Context)
	Me(ctx *gin.Context)
	List(ctx *gin.Context)
}

type UserController struct {
	service services.IAuthService
}

func NewUserController(service services.IAuthService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) Create(ctx *gin.Context) {
	var input dto.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newUser, err := c.service.Signup(models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		PhotoName: input.PhotoName,
		Role:      input.Role,
	})
	if err != nil {
		log.Printf("Signup error: %v", err)
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint") {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, dto.UserResponse{
		ID:        newUser.ID,
		FirstName: newUser.FirstName,
		LastName:  newUser.LastName,
		Email:     newUser.Email,
		PhotoName: newUser.PhotoName,
		Role:      newUser.Role,
	})
}

func (c *UserController) Me(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"email": user.(*models.User).Email})
}

// List はトークンの提示のみを要求し、ユーザー一覧そのものは返さない。
func (c *UserController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "User listing is restricted"})
}
