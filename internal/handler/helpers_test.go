package handler

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Follow{},
		&domain.PointItem{},
		&domain.PointItemPurchase{},
		&domain.PointHistory{},
	))
	return db
}

func seedTestUser(t *testing.T, db *gorm.DB, seq int) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:    fmt.Sprintf("user%d@test.com", seq),
		Nickname: fmt.Sprintf("테스터%d", seq),
		Role:     domain.RoleSprout,
		Status:   domain.StatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// asUser 인증 미들웨어 대신 컨텍스트에 사용자 ID를 심는다
func asUser(userID uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", strconv.FormatUint(userID, 10))
		c.Next()
	}
}
