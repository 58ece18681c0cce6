package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dd-blog/braincleaner-backend/internal/common"
)

// parsePagination 쿼리 파라미터에서 page/limit 추출 (기본 1/20, 최대 100)
func parsePagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// parseID path 파라미터에서 숫자 ID 추출
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 ID 형식입니다", err)
		return 0, false
	}
	return id, true
}

var errStatusMap = map[error]int{
	common.ErrNotFound:             http.StatusNotFound,
	common.ErrPostNotFound:         http.StatusNotFound,
	common.ErrCategoryNotFound:     http.StatusNotFound,
	common.ErrCommentNotFound:      http.StatusNotFound,
	common.ErrUserNotFound:         http.StatusNotFound,
	common.ErrVerificationNotFound: http.StatusNotFound,
	common.ErrItemNotFound:         http.StatusNotFound,
	common.ErrReportNotFound:       http.StatusNotFound,
	common.ErrForbidden:            http.StatusForbidden,
	common.ErrUnauthorized:         http.StatusUnauthorized,
	common.ErrInvalidCredentials:   http.StatusUnauthorized,
	common.ErrInvalidToken:         http.StatusUnauthorized,
	common.ErrExpiredToken:         http.StatusUnauthorized,
	common.ErrAccountSuspended:     http.StatusForbidden,
	common.ErrEmailExists:          http.StatusConflict,
	common.ErrNicknameExists:       http.StatusConflict,
	common.ErrAlreadyPurchased:     http.StatusConflict,
	common.ErrAlreadyProcessed:     http.StatusConflict,
	common.ErrAlreadyFollowing:     http.StatusConflict,
	common.ErrNotFollowing:         http.StatusConflict,
	common.ErrNotLiked:             http.StatusConflict,
	common.ErrSelfFollow:           http.StatusBadRequest,
	common.ErrSelfReport:           http.StatusBadRequest,
	common.ErrInvalidInput:         http.StatusBadRequest,
	common.ErrVerificationImage:    http.StatusBadRequest,
	common.ErrInsufficientPoints:   http.StatusUnprocessableEntity,
	common.ErrDailyLimitExceeded:   http.StatusTooManyRequests,
}

// respondError 비즈니스 에러를 HTTP 상태로 변환해 응답한다
func respondError(c *gin.Context, err error, fallbackMessage string) {
	for sentinel, status := range errStatusMap {
		if errors.Is(err, sentinel) {
			common.ErrorResponse(c, status, sentinel.Error(), nil)
			return
		}
	}
	common.ErrorResponse(c, http.StatusInternalServerError, fallbackMessage, err)
}
