package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Post{},
		&domain.PointHistory{},
		&domain.Verification{},
		&domain.Follow{},
		&domain.PostLike{},
		&domain.PointItem{},
		&domain.PointItemPurchase{},
		&domain.Report{},
	))
	return db
}

func newPointService(db *gorm.DB) *PointService {
	return NewPointService(db,
		repository.NewUserRepository(db),
		repository.NewPointHistoryRepository(db),
	)
}

func seedUser(t *testing.T, db *gorm.DB, role domain.UserRole, totalPoint int) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:          fmt.Sprintf("user%d@test.com", totalPoint),
		Nickname:       fmt.Sprintf("테스터%d", totalPoint),
		Role:           role,
		Status:         domain.StatusActive,
		TotalPoint:     totalPoint,
		RemainingPoint: totalPoint,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, user *domain.User, categoryName string) *domain.Post {
	t.Helper()
	category := &domain.Category{Name: categoryName}
	require.NoError(t, db.FirstOrCreate(category, domain.Category{Name: categoryName}).Error)

	post := &domain.Post{
		UserID:     user.ID,
		CategoryID: category.ID,
		Title:      "테스트 게시글",
		Content:    "내용",
	}
	require.NoError(t, db.Create(post).Error)
	post.User = user
	post.Category = category
	return post
}

func reloadUser(t *testing.T, db *gorm.DB, id uint64) *domain.User {
	t.Helper()
	var user domain.User
	require.NoError(t, db.First(&user, id).Error)
	return &user
}

func historyCount(t *testing.T, db *gorm.DB, userID uint64) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&domain.PointHistory{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}

func TestAwardForNewPost_InfoCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newPointService(db)
	user := seedUser(t, db, domain.RoleSprout, 0)
	post := seedPost(t, db, user, domain.CategoryInfo)

	require.NoError(t, svc.AwardForNewPost(post))

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 20, got.TotalPoint)
	assert.Equal(t, 20, got.RemainingPoint)
	assert.Equal(t, domain.RoleSprout, got.Role) // 20 < 100, 등급 유지

	var history domain.PointHistory
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&history).Error)
	assert.Equal(t, 20, history.PointChange)
	assert.Equal(t, domain.PointTypeIncrease, history.Type)
	assert.EqualValues(t, 1, historyCount(t, db, user.ID))
}

func TestAwardForNewPost_FreeCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newPointService(db)
	user := seedUser(t, db, domain.RoleSprout, 0)
	post := seedPost(t, db, user, domain.CategoryFree)

	require.NoError(t, svc.AwardForNewPost(post))

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 10, got.TotalPoint)
	assert.Equal(t, 10, got.RemainingPoint)
	assert.EqualValues(t, 1, historyCount(t, db, user.ID))
}

func TestAwardForNewPost_NonEligibleCategories(t *testing.T) {
	// 인증게시판은 승인 경로에서만 적립, 공지사항은 대상 아님
	for _, categoryName := range []string{domain.CategoryVerification, domain.CategoryNotice} {
		t.Run(categoryName, func(t *testing.T) {
			db := newTestDB(t)
			svc := newPointService(db)
			user := seedUser(t, db, domain.RoleSprout, 0)
			post := seedPost(t, db, user, categoryName)

			require.NoError(t, svc.AwardForNewPost(post))

			got := reloadUser(t, db, user.ID)
			assert.Equal(t, 0, got.TotalPoint)
			assert.Equal(t, 0, got.RemainingPoint)
			assert.EqualValues(t, 0, historyCount(t, db, user.ID))
		})
	}
}

func TestAwardForVerificationApproval(t *testing.T) {
	db := newTestDB(t)
	svc := newPointService(db)
	user := seedUser(t, db, domain.RoleSprout, 0)
	verification := &domain.Verification{UserID: user.ID, PostID: 1, Status: domain.VerificationApproved}

	err := db.Transaction(func(tx *gorm.DB) error {
		return svc.AwardForVerificationApproval(tx, verification)
	})
	require.NoError(t, err)

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 50, got.TotalPoint)
	assert.Equal(t, 50, got.RemainingPoint)
	assert.EqualValues(t, 1, historyCount(t, db, user.ID))
}

func TestAwardForVerificationApproval_RollsBackWithCallerTx(t *testing.T) {
	db := newTestDB(t)
	svc := newPointService(db)
	user := seedUser(t, db, domain.RoleSprout, 0)
	verification := &domain.Verification{UserID: user.ID, PostID: 1, Status: domain.VerificationApproved}

	sentinel := errors.New("approval failed")
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := svc.AwardForVerificationApproval(tx, verification); err != nil {
			return err
		}
		return sentinel // 승인 트랜잭션 실패 시 적립도 함께 롤백
	})
	require.ErrorIs(t, err, sentinel)

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 0, got.TotalPoint)
	assert.Equal(t, 0, got.RemainingPoint)
	assert.EqualValues(t, 0, historyCount(t, db, user.ID))
}

func TestPromotion_CrossesThreshold(t *testing.T) {
	db := newTestDB(t)
	svc := newPointService(db)
	user := seedUser(t, db, domain.RoleSprout, 95)
	post := seedPost(t, db, user, domain.CategoryFree)

	require.NoError(t, svc.AwardForNewPost(post))

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 105, got.TotalPoint)
	assert.Equal(t, domain.RoleTrainee, got.Role) // 105 >= 100
}

func TestPromotion_StaysBelowNextThreshold(t *testing.T) {
	db := newTestDB(t)
	svc := newPointService(db)
	user := seedUser(t, db, domain.RoleExplorer, 600)
	post := seedPost(t, db, user, domain.CategoryFree)

	require.NoError(t, svc.AwardForNewPost(post))

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 610, got.TotalPoint)
	assert.Equal(t, domain.RoleExplorer, got.Role) // 610 < 2000, 등급 유지
}

func TestPromotion_NeverDemotes(t *testing.T) {
	// 포인트보다 높은 등급을 가진 사용자 (운영자 수동 조정 등)
	db := newTestDB(t)
	svc := newPointService(db)
	user := seedUser(t, db, domain.RoleConscious, 0)
	post := seedPost(t, db, user, domain.CategoryFree)

	require.NoError(t, svc.AwardForNewPost(post))

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 10, got.TotalPoint)
	assert.Equal(t, domain.RoleConscious, got.Role)
}

func TestPromotion_AdminExempt(t *testing.T) {
	db := newTestDB(t)
	svc := newPointService(db)
	admin := seedUser(t, db, domain.RoleAdmin, 0)
	post := seedPost(t, db, admin, domain.CategoryInfo)

	require.NoError(t, svc.AwardForNewPost(post))

	got := reloadUser(t, db, admin.ID)
	// 잔액은 올라가지만 역할은 절대 바뀌지 않는다
	assert.Equal(t, 20, got.TotalPoint)
	assert.Equal(t, 20, got.RemainingPoint)
	assert.Equal(t, domain.RoleAdmin, got.Role)
}

func TestAccrual_MonotonicAcrossSequence(t *testing.T) {
	db := newTestDB(t)
	svc := newPointService(db)
	user := seedUser(t, db, domain.RoleSprout, 0)

	prevTotal := 0
	prevRole := user.Role
	for i := 0; i < 12; i++ {
		post := seedPost(t, db, user, domain.CategoryInfo)
		require.NoError(t, svc.AwardForNewPost(post))

		got := reloadUser(t, db, user.ID)
		assert.GreaterOrEqual(t, got.TotalPoint, prevTotal)
		assert.False(t, prevRole.IsHigherThan(got.Role), "role must never decrease")
		prevTotal = got.TotalPoint
		prevRole = got.Role
	}

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 240, got.TotalPoint)
	assert.Equal(t, domain.RoleTrainee, got.Role)
	assert.EqualValues(t, 12, historyCount(t, db, user.ID))
}

func TestAwardForNewPost_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newPointService(db)
	user := seedUser(t, db, domain.RoleSprout, 0)
	post := seedPost(t, db, user, domain.CategoryInfo)
	post.UserID = 9999

	err := svc.AwardForNewPost(post)
	assert.Error(t, err)
	assert.EqualValues(t, 0, historyCount(t, db, user.ID))
}

func TestGetHistory(t *testing.T) {
	db := newTestDB(t)
	svc := newPointService(db)
	user := seedUser(t, db, domain.RoleSprout, 0)

	for i := 0; i < 3; i++ {
		post := seedPost(t, db, user, domain.CategoryFree)
		require.NoError(t, svc.AwardForNewPost(post))
	}

	histories, total, err := svc.GetHistory(user.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, histories, 3)
	for _, h := range histories {
		assert.Equal(t, 10, h.PointChange)
		assert.Equal(t, domain.PointTypeIncrease, h.Type)
	}
}
