package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/middleware"
	"github.com/dd-blog/braincleaner-backend/internal/service"
)

// CommentHandler handles comment requests
type CommentHandler struct {
	service *service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(service *service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// CreateCommentRequest 댓글 작성 요청. parent_id가 있으면 대댓글로 붙는다.
type CreateCommentRequest struct {
	Content  string  `json:"content" binding:"required,max=1000"`
	ParentID *uint64 `json:"parent_id"`
}

// UpdateCommentRequest 댓글 수정 요청
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// Create handles POST /api/v1/posts/:id/comments (requires JWT)
func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	comment, err := h.service.Create(middleware.GetUserID(c), postID, req.ParentID, req.Content)
	if err != nil {
		respondError(c, err, "댓글 작성에 실패했습니다")
		return
	}
	common.Created(c, comment)
}

// ListByPost handles GET /api/v1/posts/:id/comments
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	comments, err := h.service.GetByPost(postID)
	if err != nil {
		respondError(c, err, "댓글 조회에 실패했습니다")
		return
	}
	common.Success(c, comments)
}

// Update handles PUT /api/v1/comments/:id (requires JWT)
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	comment, err := h.service.Update(id, middleware.GetUserID(c), req.Content)
	if err != nil {
		respondError(c, err, "댓글 수정에 실패했습니다")
		return
	}
	common.Success(c, comment)
}

// Delete handles DELETE /api/v1/comments/:id (requires JWT)
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(id, middleware.GetUserID(c), middleware.GetUserRole(c)); err != nil {
		respondError(c, err, "댓글 삭제에 실패했습니다")
		return
	}
	common.Success(c, nil)
}
