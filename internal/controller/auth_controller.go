package controller

import (
	"errors"

	"github.com/Dhanushraagav/ai-interview-platform/internal/model"
	"github.com/Dhanushraagav/ai-interview-platform/internal/service"
	"github.com/Dhanushraagav/ai-interview-platform/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register godoc
// @Summary Register a new user
// @Description Create an account with a unique username and email
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "Registration data"
// @Success 201 {object} util.Response{data=object} "Created"
// @Failure 400 {object} util.Response "Invalid request body"
// @Failure 409 {object} util.Response "Username or email already taken"
// @Failure 500 {object} util.Response "Internal server error"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := c.AuthService.Register(user); err != nil {
		switch {
		case errors.Is(err, util.ErrUsernameTaken), errors.Is(err, util.ErrEmailRegistered):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID, "username": user.Username})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and return a JWT access token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Login credentials"
// @Success 200 {object} util.Response{data=object} "OK"
// @Failure 400 {object} util.Response "Invalid request body"
// @Failure 401 {object} util.Response "Incorrect username or password"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, 401, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user": gin.H{
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// GetProfile godoc
// @Summary Current user profile
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User} "OK"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.GetUser(claims.UserID)
	if err != nil {
		util.NotFound(ctx, "User not found")
		return
	}

	util.Success(ctx, user)
}
