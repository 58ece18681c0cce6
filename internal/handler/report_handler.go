package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/middleware"
	"github.com/dd-blog/braincleaner-backend/internal/service"
)

// ReportHandler handles report requests
type ReportHandler struct {
	service *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// CreateReportRequest 신고 접수 요청
type CreateReportRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

// Create handles POST /api/v1/posts/:id/report (requires JWT)
// @Summary 게시글 신고
// @Description 게시글을 신고합니다. 본인 게시글은 신고할 수 없습니다.
// @Tags reports
// @Accept json
// @Produce json
// @Success 201 {object} common.Response
// @Failure 400 {object} common.Response
// @Security BearerAuth
// @Router /posts/{id}/report [post]
func (h *ReportHandler) Create(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	report, err := h.service.Create(middleware.GetUserID(c), postID, req.Reason)
	if err != nil {
		respondError(c, err, "신고 접수에 실패했습니다")
		return
	}
	common.Created(c, report)
}
