package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/middleware"
	"github.com/dd-blog/braincleaner-backend/internal/service"
)

// UserHandler handles user profile requests
type UserHandler struct {
	service     *service.UserService
	postService *service.PostService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service *service.UserService, postService *service.PostService) *UserHandler {
	return &UserHandler{service: service, postService: postService}
}

// UpdateProfileRequest 프로필 수정 요청. 보낸 필드만 수정된다.
type UpdateProfileRequest struct {
	Nickname        *string `json:"nickname" binding:"omitempty,nickname"`
	StatusMessage   *string `json:"status_message" binding:"omitempty,max=200"`
	DetoxGoal       *string `json:"detox_goal" binding:"omitempty,max=500"`
	ProfileImageURL *string `json:"profile_image_url" binding:"omitempty,url,max=500"`
	BirthDate       *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

// GetUser handles GET /api/v1/users/:id
// @Summary 사용자 프로필 조회
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 404 {object} common.Response
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "사용자 조회에 실패했습니다")
		return
	}
	common.Success(c, user)
}

// GetUserPosts handles GET /api/v1/users/:id/posts
func (h *UserHandler) GetUserPosts(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	page, limit := parsePagination(c)

	posts, total, err := h.postService.GetByUser(id, page, limit)
	if err != nil {
		respondError(c, err, "게시글 조회에 실패했습니다")
		return
	}
	common.SuccessWithMeta(c, posts, common.NewMeta(page, limit, total))
}

// GetMe handles GET /api/v1/users/me (requires JWT)
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.service.GetByID(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "사용자 조회에 실패했습니다")
		return
	}
	common.Success(c, user)
}

// UpdateMe handles PATCH /api/v1/users/me (requires JWT)
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	input := service.UpdateProfileInput{
		Nickname:        req.Nickname,
		StatusMessage:   req.StatusMessage,
		DetoxGoal:       req.DetoxGoal,
		ProfileImageURL: req.ProfileImageURL,
	}
	if req.BirthDate != nil {
		birth, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "잘못된 생년월일 형식입니다", err)
			return
		}
		input.BirthDate = &birth
	}

	user, err := h.service.UpdateProfile(middleware.GetUserID(c), input)
	if err != nil {
		respondError(c, err, "프로필 수정에 실패했습니다")
		return
	}
	common.Success(c, user)
}

// DeleteMe handles DELETE /api/v1/users/me (requires JWT)
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.service.Withdraw(middleware.GetUserID(c)); err != nil {
		respondError(c, err, "회원 탈퇴에 실패했습니다")
		return
	}
	common.Success(c, nil)
}
