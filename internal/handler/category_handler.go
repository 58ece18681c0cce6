package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
)

// CategoryHandler handles category requests
type CategoryHandler struct {
	repo repository.CategoryRepository
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(repo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.repo.FindAll()
	if err != nil {
		respondError(c, err, "카테고리 조회에 실패했습니다")
		return
	}
	common.Success(c, categories)
}
