package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/middleware"
	"github.com/dd-blog/braincleaner-backend/internal/service"
)

// PointHandler handles point balance and history requests
type PointHandler struct {
	pointService *service.PointService
	userService  *service.UserService
}

// NewPointHandler creates a new PointHandler
func NewPointHandler(pointService *service.PointService, userService *service.UserService) *PointHandler {
	return &PointHandler{pointService: pointService, userService: userService}
}

// GetMyPoints handles GET /api/v1/points/me (requires JWT)
// @Summary 내 포인트 조회
// @Description 보유 포인트, 누적 포인트, 현재 등급을 반환합니다.
// @Tags points
// @Produce json
// @Success 200 {object} common.Response
// @Security BearerAuth
// @Router /points/me [get]
func (h *PointHandler) GetMyPoints(c *gin.Context) {
	user, err := h.userService.GetByID(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "포인트 조회에 실패했습니다")
		return
	}
	common.Success(c, gin.H{
		"remaining_point": user.RemainingPoint,
		"total_point":     user.TotalPoint,
		"role":            user.Role,
		"role_label":      user.Role.Label(),
	})
}

// GetMyHistory handles GET /api/v1/points/me/history (requires JWT)
func (h *PointHandler) GetMyHistory(c *gin.Context) {
	page, limit := parsePagination(c)
	histories, total, err := h.pointService.GetHistory(middleware.GetUserID(c), page, limit)
	if err != nil {
		respondError(c, err, "포인트 이력 조회에 실패했습니다")
		return
	}
	common.SuccessWithMeta(c, histories, common.NewMeta(page, limit, total))
}
