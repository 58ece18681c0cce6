package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/middleware"
	"github.com/dd-blog/braincleaner-backend/internal/service"
)

// FollowHandler handles follow requests
type FollowHandler struct {
	service *service.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(service *service.FollowService) *FollowHandler {
	return &FollowHandler{service: service}
}

// Follow handles POST /api/v1/users/:id/follow (requires JWT)
func (h *FollowHandler) Follow(c *gin.Context) {
	followingID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Follow(middleware.GetUserID(c), followingID); err != nil {
		respondError(c, err, "팔로우에 실패했습니다")
		return
	}
	common.Success(c, gin.H{"following": true})
}

// Unfollow handles DELETE /api/v1/users/:id/follow (requires JWT)
func (h *FollowHandler) Unfollow(c *gin.Context) {
	followingID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Unfollow(middleware.GetUserID(c), followingID); err != nil {
		respondError(c, err, "팔로우 취소에 실패했습니다")
		return
	}
	common.Success(c, gin.H{"following": false})
}

// Status handles GET /api/v1/users/:id/follow (requires JWT)
// 요청 사용자가 해당 사용자를 팔로우 중인지 확인한다
func (h *FollowHandler) Status(c *gin.Context) {
	followingID, ok := parseID(c, "id")
	if !ok {
		return
	}
	following, err := h.service.IsFollowing(middleware.GetUserID(c), followingID)
	if err != nil {
		respondError(c, err, "팔로우 여부 조회에 실패했습니다")
		return
	}
	common.Success(c, gin.H{"following": following})
}

// Followers handles GET /api/v1/users/:id/followers
func (h *FollowHandler) Followers(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	follows, err := h.service.GetFollowers(userID)
	if err != nil {
		respondError(c, err, "팔로워 조회에 실패했습니다")
		return
	}
	common.Success(c, follows)
}

// Followings handles GET /api/v1/users/:id/followings
func (h *FollowHandler) Followings(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	follows, err := h.service.GetFollowings(userID)
	if err != nil {
		respondError(c, err, "팔로잉 조회에 실패했습니다")
		return
	}
	common.Success(c, follows)
}
