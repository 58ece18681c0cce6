package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/middleware"
	"github.com/dd-blog/braincleaner-backend/internal/service"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignupRequest signup request
type SignupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	Nickname  string `json:"nickname" binding:"required,nickname"`
	DetoxGoal string `json:"detox_goal" binding:"max=500"`
}

// LoginRequest login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup handles POST /api/v1/auth/signup
// @Summary 회원가입
// @Description 이메일/비밀번호로 가입합니다. 디톡스새싹 등급으로 시작합니다.
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} common.Response
// @Failure 409 {object} common.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.service.Signup(service.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		Nickname:  req.Nickname,
		DetoxGoal: req.DetoxGoal,
	})
	if err != nil {
		respondError(c, err, "회원가입에 실패했습니다")
		return
	}
	common.Created(c, user)
}

// Login handles POST /api/v1/auth/login
// refresh_token은 httpOnly Cookie로, access_token은 body로 반환한다
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, tokens, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err, "로그인에 실패했습니다")
		return
	}

	h.setRefreshTokenCookie(c, tokens.RefreshToken)
	common.Success(c, gin.H{
		"access_token": tokens.AccessToken,
		"user":         user,
	})
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil || refreshToken == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "Refresh token not found in cookie", nil)
		return
	}

	tokens, err := h.service.Refresh(refreshToken)
	if err != nil {
		h.clearRefreshTokenCookie(c)
		respondError(c, err, "토큰 갱신에 실패했습니다")
		return
	}

	h.setRefreshTokenCookie(c, tokens.RefreshToken)
	common.Success(c, gin.H{"access_token": tokens.AccessToken})
}

// Logout handles POST /api/v1/auth/logout (requires JWT)
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := h.service.Logout(userID); err != nil {
		respondError(c, err, "로그아웃에 실패했습니다")
		return
	}
	h.clearRefreshTokenCookie(c)
	common.Success(c, nil)
}

// Me handles GET /api/v1/auth/me (requires JWT)
func (h *AuthHandler) Me(c *gin.Context) {
	common.Success(c, gin.H{
		"user_id":  middleware.GetUserID(c),
		"nickname": middleware.GetNickname(c),
		"role":     middleware.GetUserRole(c),
	})
}

func (h *AuthHandler) setRefreshTokenCookie(c *gin.Context, token string) {
	// 14일, httpOnly (XSS 방지)
	c.SetCookie("refresh_token", token, 14*24*3600, "/", "", false, true)
}

func (h *AuthHandler) clearRefreshTokenCookie(c *gin.Context) {
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
}
