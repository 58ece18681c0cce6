package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/middleware"
	"github.com/dd-blog/braincleaner-backend/internal/service"
)

// PointStoreHandler handles point store requests
type PointStoreHandler struct {
	service *service.PointStoreService
}

// NewPointStoreHandler creates a new PointStoreHandler
func NewPointStoreHandler(service *service.PointStoreService) *PointStoreHandler {
	return &PointStoreHandler{service: service}
}

// ListItems handles GET /api/v1/store/items
func (h *PointStoreHandler) ListItems(c *gin.Context) {
	items, err := h.service.GetItems()
	if err != nil {
		respondError(c, err, "아이템 목록 조회에 실패했습니다")
		return
	}
	common.Success(c, items)
}

// GetItem handles GET /api/v1/store/items/:id
func (h *PointStoreHandler) GetItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.service.GetItem(id)
	if err != nil {
		respondError(c, err, "아이템 조회에 실패했습니다")
		return
	}
	common.Success(c, item)
}

// Purchase handles POST /api/v1/store/items/:id/purchase (requires JWT)
// @Summary 아이템 구매
// @Description 보유 포인트로 아이템을 구매합니다. 이미 보유한 아이템은 다시 살 수 없습니다.
// @Tags store
// @Produce json
// @Success 201 {object} common.Response
// @Failure 409 {object} common.Response
// @Failure 422 {object} common.Response
// @Security BearerAuth
// @Router /store/items/{id}/purchase [post]
func (h *PointStoreHandler) Purchase(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	purchase, err := h.service.Purchase(middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err, "아이템 구매에 실패했습니다")
		return
	}
	common.Created(c, purchase)
}

// Owned handles GET /api/v1/store/items/:id/owned (requires JWT)
// 이모지 렌더링 전에 보유 여부를 확인할 때 쓴다
func (h *PointStoreHandler) Owned(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	owned, err := h.service.Owns(middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err, "보유 여부 조회에 실패했습니다")
		return
	}
	common.Success(c, gin.H{"item_id": id, "owned": owned})
}

// MyPurchases handles GET /api/v1/store/purchases (requires JWT)
func (h *PointStoreHandler) MyPurchases(c *gin.Context) {
	purchases, err := h.service.GetMyPurchases(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "구매 목록 조회에 실패했습니다")
		return
	}
	common.Success(c, purchases)
}
