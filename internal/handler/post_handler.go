package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/middleware"
	"github.com/dd-blog/braincleaner-backend/internal/service"
)

// PostHandler handles post requests
type PostHandler struct {
	service     *service.PostService
	likeService *service.PostLikeService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service *service.PostService, likeService *service.PostLikeService) *PostHandler {
	return &PostHandler{service: service, likeService: likeService}
}

// CreatePostRequest 게시글 작성 요청
type CreatePostRequest struct {
	CategoryID           uint64   `json:"category_id" binding:"required"`
	Title                string   `json:"title" binding:"required,max=200"`
	Content              string   `json:"content" binding:"required"`
	ImageURLs            []string `json:"image_urls" binding:"omitempty,dive,url"`
	VerificationImageURL *string  `json:"verification_image_url" binding:"omitempty,url"`
	DetoxTime            *int     `json:"detox_time" binding:"omitempty,min=0,max=24"`
}

// UpdatePostRequest 게시글 수정 요청
type UpdatePostRequest struct {
	Title     string   `json:"title" binding:"required,max=200"`
	Content   string   `json:"content" binding:"required"`
	ImageURLs []string `json:"image_urls" binding:"omitempty,dive,url"`
}

// Create handles POST /api/v1/posts (requires JWT)
// @Summary 게시글 작성
// @Description 공지사항은 관리자만, 인증게시판은 인증 이미지가 필수입니다.
// @Tags posts
// @Accept json
// @Produce json
// @Success 201 {object} common.Response
// @Failure 403 {object} common.Response
// @Failure 429 {object} common.Response
// @Security BearerAuth
// @Router /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	post, err := h.service.Create(c.Request.Context(), middleware.GetUserID(c), middleware.GetUserRole(c), service.CreatePostInput{
		CategoryID:           req.CategoryID,
		Title:                req.Title,
		Content:              req.Content,
		ImageURLs:            req.ImageURLs,
		VerificationImageURL: req.VerificationImageURL,
		DetoxTime:            req.DetoxTime,
	})
	if err != nil {
		respondError(c, err, "게시글 작성에 실패했습니다")
		return
	}
	common.Created(c, post)
}

// PostDetailResponse 게시글 상세. 로그인 사용자에게는 좋아요 여부 포함.
type PostDetailResponse struct {
	*domain.Post
	IsLiked bool `json:"is_liked"`
}

// Get handles GET /api/v1/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	post, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "게시글 조회에 실패했습니다")
		return
	}

	detail := PostDetailResponse{Post: post}
	if userID := middleware.GetUserID(c); userID != 0 {
		liked, err := h.likeService.IsLiked(userID, id)
		if err == nil {
			detail.IsLiked = liked
		}
	}
	common.Success(c, detail)
}

// List handles GET /api/v1/posts
// category_id 쿼리로 카테고리 필터링, sort=likes로 좋아요순 정렬
func (h *PostHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	sortField := "created_at"
	if c.Query("sort") == "likes" {
		sortField = "like_count"
	}
	desc := c.DefaultQuery("order", "desc") != "asc"

	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "잘못된 카테고리 ID입니다", err)
			return
		}
		posts, total, err := h.service.GetByCategory(categoryID, page, limit, sortField, desc)
		if err != nil {
			respondError(c, err, "게시글 목록 조회에 실패했습니다")
			return
		}
		common.SuccessWithMeta(c, posts, common.NewMeta(page, limit, total))
		return
	}

	posts, total, err := h.service.GetAll(page, limit, sortField, desc)
	if err != nil {
		respondError(c, err, "게시글 목록 조회에 실패했습니다")
		return
	}
	common.SuccessWithMeta(c, posts, common.NewMeta(page, limit, total))
}

// Hot handles GET /api/v1/posts/hot
func (h *PostHandler) Hot(c *gin.Context) {
	posts, err := h.service.GetHotPosts(c.Request.Context())
	if err != nil {
		respondError(c, err, "핫게시물 조회에 실패했습니다")
		return
	}
	common.Success(c, posts)
}

// Feed handles GET /api/v1/posts/feed (requires JWT)
// 팔로우한 사용자들의 게시글만 모아 본다
func (h *PostHandler) Feed(c *gin.Context) {
	page, limit := parsePagination(c)
	posts, total, err := h.service.GetFeed(middleware.GetUserID(c), page, limit)
	if err != nil {
		respondError(c, err, "피드 조회에 실패했습니다")
		return
	}
	common.SuccessWithMeta(c, posts, common.NewMeta(page, limit, total))
}

// Update handles PUT /api/v1/posts/:id (requires JWT)
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	post, err := h.service.Update(id, middleware.GetUserID(c), service.UpdatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		respondError(c, err, "게시글 수정에 실패했습니다")
		return
	}
	common.Success(c, post)
}

// Delete handles DELETE /api/v1/posts/:id (requires JWT)
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	err := h.service.Delete(c.Request.Context(), id, middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		respondError(c, err, "게시글 삭제에 실패했습니다")
		return
	}
	common.Success(c, nil)
}
