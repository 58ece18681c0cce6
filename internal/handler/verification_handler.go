package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/middleware"
	"github.com/dd-blog/braincleaner-backend/internal/service"
)

// VerificationHandler handles detox verification requests
type VerificationHandler struct {
	service *service.VerificationService
}

// NewVerificationHandler creates a new VerificationHandler
func NewVerificationHandler(service *service.VerificationService) *VerificationHandler {
	return &VerificationHandler{service: service}
}

// UpdateDetoxTimeRequest 디톡스 시간 수정 요청
type UpdateDetoxTimeRequest struct {
	DetoxTime int `json:"detox_time" binding:"min=0,max=24"`
}

// List handles GET /api/v1/verifications
func (h *VerificationHandler) List(c *gin.Context) {
	verifications, err := h.service.GetAll()
	if err != nil {
		respondError(c, err, "인증 목록 조회에 실패했습니다")
		return
	}
	common.Success(c, verifications)
}

// Get handles GET /api/v1/verifications/:id
func (h *VerificationHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	verification, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "인증 조회에 실패했습니다")
		return
	}
	common.Success(c, verification)
}

// Weekly handles GET /api/v1/verifications/me/weekly (requires JWT)
// @Summary 주간 인증 현황
// @Description 이번 주 월~일 인증 여부와 연속 인증 일수를 반환합니다.
// @Tags verifications
// @Produce json
// @Success 200 {object} common.Response
// @Security BearerAuth
// @Router /verifications/me/weekly [get]
func (h *VerificationHandler) Weekly(c *gin.Context) {
	status, err := h.service.GetWeeklyStatus(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "주간 인증 현황 조회에 실패했습니다")
		return
	}
	common.Success(c, status)
}

// UpdateDetoxTime handles PATCH /api/v1/verifications/:id (requires JWT)
func (h *VerificationHandler) UpdateDetoxTime(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateDetoxTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	verification, err := h.service.UpdateDetoxTime(id, middleware.GetUserID(c), req.DetoxTime)
	if err != nil {
		respondError(c, err, "인증 수정에 실패했습니다")
		return
	}
	common.Success(c, verification)
}

// Delete handles DELETE /api/v1/verifications/:id (requires JWT)
func (h *VerificationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		respondError(c, err, "인증 삭제에 실패했습니다")
		return
	}
	common.Success(c, nil)
}
