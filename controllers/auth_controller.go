package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joveey/sistem-bk-online/pkg/resp"
	"github.com/joveey/sistem-bk-online/services"
	"github.com/joveey/sistem-bk-online/utils"
)

type StudentLoginRequest struct {
	UniqueCode string `json:"unique_code" binding:"required"`
}
type CounselorLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// POST /student-login
func (a *AuthController) StudentLogin(c *gin.Context) {
	var req StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	token, student, err := a.service.StudentLogin(req.UniqueCode)
	if err != nil {
		resp.Unauthorized(c, "invalid unique code")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       student,
		"token":      token,
		"token_type": "Bearer",
		"user_type":  "student",
	})
}

// POST /guru/login
func (a *AuthController) CounselorLogin(c *gin.Context) {
	var req CounselorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	token, counselor, err := a.service.CounselorLogin(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       counselor,
		"token":      token,
		"token_type": "Bearer",
		"user_type":  "counselor",
	})
}

// GET /user
func (a *AuthController) Me(c *gin.Context) {
	p, ok := utils.PrincipalFrom(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	user, err := a.service.Profile(p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}

// POST /logout
func (a *AuthController) Logout(c *gin.Context) {
	jti := c.GetString("jti")
	if err := a.service.Logout(jti); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "logged out"})
}
