package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/middleware"
	"github.com/dd-blog/braincleaner-backend/internal/service"
)

// AdminHandler handles admin requests
type AdminHandler struct {
	adminService             *service.AdminService
	adminVerificationService *service.AdminVerificationService
	reportService            *service.ReportService
	postService              *service.PostService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	adminService *service.AdminService,
	adminVerificationService *service.AdminVerificationService,
	reportService *service.ReportService,
	postService *service.PostService,
) *AdminHandler {
	return &AdminHandler{
		adminService:             adminService,
		adminVerificationService: adminVerificationService,
		reportService:            reportService,
		postService:              postService,
	}
}

// UpdateRoleRequest 등급 변경 요청
type UpdateRoleRequest struct {
	Role domain.UserRole `json:"role" binding:"required"`
}

// UpdateStatusRequest 계정 상태 변경 요청
type UpdateStatusRequest struct {
	Status domain.UserStatus `json:"status" binding:"required,oneof=ACTIVE SUSPENDED DELETED"`
}

// Dashboard handles GET /api/v1/admin/dashboard
// @Summary 관리자 대시보드
// @Description 전체/오늘 가입자, 대기/오늘 처리 인증, 대기/오늘 처리 신고 집계를 반환합니다.
// @Tags admin
// @Produce json
// @Success 200 {object} common.Response
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminService.GetDashboard()
	if err != nil {
		respondError(c, err, "대시보드 조회에 실패했습니다")
		return
	}
	common.Success(c, stats)
}

// ListUsers handles GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := parsePagination(c)
	users, total, err := h.adminService.GetUsers(page, limit, c.Query("keyword"))
	if err != nil {
		respondError(c, err, "사용자 목록 조회에 실패했습니다")
		return
	}
	common.SuccessWithMeta(c, users, common.NewMeta(page, limit, total))
}

// GetUser handles GET /api/v1/admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.adminService.GetUser(id)
	if err != nil {
		respondError(c, err, "사용자 조회에 실패했습니다")
		return
	}
	common.Success(c, user)
}

// UpdateUserRole handles PATCH /api/v1/admin/users/:id/role
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.adminService.UpdateUserRole(id, req.Role)
	if err != nil {
		respondError(c, err, "등급 변경에 실패했습니다")
		return
	}
	common.Success(c, user)
}

// UpdateUserStatus handles PATCH /api/v1/admin/users/:id/status
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.adminService.UpdateUserStatus(id, req.Status)
	if err != nil {
		respondError(c, err, "계정 상태 변경에 실패했습니다")
		return
	}
	common.Success(c, user)
}

// PendingVerifications handles GET /api/v1/admin/verifications
func (h *AdminHandler) PendingVerifications(c *gin.Context) {
	page, limit := parsePagination(c)
	verifications, total, err := h.adminVerificationService.GetPending(page, limit)
	if err != nil {
		respondError(c, err, "인증 대기 목록 조회에 실패했습니다")
		return
	}
	common.SuccessWithMeta(c, verifications, common.NewMeta(page, limit, total))
}

// ApproveVerification handles POST /api/v1/admin/verifications/:id/approve
// 승인 시 50포인트가 적립되고 등급 승급이 함께 처리된다
func (h *AdminHandler) ApproveVerification(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	verification, err := h.adminVerificationService.Approve(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "인증 승인에 실패했습니다")
		return
	}
	common.Success(c, verification)
}

// RejectVerification handles POST /api/v1/admin/verifications/:id/reject
func (h *AdminHandler) RejectVerification(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	verification, err := h.adminVerificationService.Reject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "인증 거절에 실패했습니다")
		return
	}
	common.Success(c, verification)
}

// ListReports handles GET /api/v1/admin/reports
func (h *AdminHandler) ListReports(c *gin.Context) {
	page, limit := parsePagination(c)
	status := domain.ReportStatus(c.DefaultQuery("status", string(domain.ReportPending)))

	reports, total, err := h.reportService.GetByStatus(status, page, limit)
	if err != nil {
		respondError(c, err, "신고 목록 조회에 실패했습니다")
		return
	}
	common.SuccessWithMeta(c, reports, common.NewMeta(page, limit, total))
}

// ApproveReport handles POST /api/v1/admin/reports/:id/approve
// 승인 시 신고된 게시글이 삭제된다
func (h *AdminHandler) ApproveReport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	report, err := h.reportService.Approve(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "신고 승인에 실패했습니다")
		return
	}
	common.Success(c, report)
}

// RejectReport handles POST /api/v1/admin/reports/:id/reject
func (h *AdminHandler) RejectReport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	report, err := h.reportService.Reject(id)
	if err != nil {
		respondError(c, err, "신고 기각에 실패했습니다")
		return
	}
	common.Success(c, report)
}

// DeletePost handles DELETE /api/v1/admin/posts/:id
func (h *AdminHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	err := h.postService.Delete(c.Request.Context(), id, middleware.GetUserID(c), domain.RoleAdmin)
	if err != nil {
		respondError(c, err, "게시글 삭제에 실패했습니다")
		return
	}
	common.Success(c, nil)
}
