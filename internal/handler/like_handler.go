package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/middleware"
	"github.com/dd-blog/braincleaner-backend/internal/service"
)

// LikeHandler handles post like requests
type LikeHandler struct {
	service *service.PostLikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(service *service.PostLikeService) *LikeHandler {
	return &LikeHandler{service: service}
}

// Like handles POST /api/v1/posts/:id/like (requires JWT)
func (h *LikeHandler) Like(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	status, err := h.service.Like(middleware.GetUserID(c), postID)
	if err != nil {
		respondError(c, err, "좋아요 등록에 실패했습니다")
		return
	}
	common.Success(c, status)
}

// Unlike handles DELETE /api/v1/posts/:id/like (requires JWT)
func (h *LikeHandler) Unlike(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	status, err := h.service.Unlike(middleware.GetUserID(c), postID)
	if err != nil {
		respondError(c, err, "좋아요 취소에 실패했습니다")
		return
	}
	common.Success(c, status)
}

// Status handles GET /api/v1/posts/:id/like (requires JWT)
func (h *LikeHandler) Status(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	status, err := h.service.Status(middleware.GetUserID(c), postID)
	if err != nil {
		respondError(c, err, "좋아요 조회에 실패했습니다")
		return
	}
	common.Success(c, status)
}
