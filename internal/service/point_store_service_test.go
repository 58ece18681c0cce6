package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
)

func newStoreService(db *gorm.DB) *PointStoreService {
	return NewPointStoreService(
		db,
		repository.NewPointItemRepository(db),
		repository.NewPointPurchaseRepository(db),
		repository.NewUserRepository(db),
		repository.NewPointHistoryRepository(db),
	)
}

func seedItem(t *testing.T, db *gorm.DB, name string, price int) *domain.PointItem {
	t.Helper()
	item := &domain.PointItem{Name: name, Price: price}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestPurchase_DeductsRemainingOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newStoreService(db)
	user := seedUser(t, db, domain.RoleTrainee, 150)
	item := seedItem(t, db, "zeus", 50)

	purchase, err := svc.Purchase(user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, purchase.ItemID)

	got := reloadUser(t, db, user.ID)
	// 보유 포인트만 차감, 누적 포인트와 등급은 그대로
	assert.Equal(t, 100, got.RemainingPoint)
	assert.Equal(t, 150, got.TotalPoint)
	assert.Equal(t, domain.RoleTrainee, got.Role)

	var history domain.PointHistory
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&history).Error)
	assert.Equal(t, -50, history.PointChange)
	assert.Equal(t, domain.PointTypeDecrease, history.Type)
}

func TestPurchase_DuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newStoreService(db)
	user := seedUser(t, db, domain.RoleSprout, 100)
	item := seedItem(t, db, "catjam", 10)

	_, err := svc.Purchase(user.ID, item.ID)
	require.NoError(t, err)

	_, err = svc.Purchase(user.ID, item.ID)
	assert.ErrorIs(t, err, common.ErrAlreadyPurchased)

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 90, got.RemainingPoint)
}

func TestPurchase_InsufficientPoints(t *testing.T) {
	db := newTestDB(t)
	svc := newStoreService(db)
	user := seedUser(t, db, domain.RoleSprout, 30)
	item := seedItem(t, db, "따봉", 50)

	_, err := svc.Purchase(user.ID, item.ID)
	assert.ErrorIs(t, err, common.ErrInsufficientPoints)

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 30, got.RemainingPoint)
	assert.EqualValues(t, 0, historyCount(t, db, user.ID))
}

func TestPurchase_UnknownItem(t *testing.T) {
	db := newTestDB(t)
	svc := newStoreService(db)
	user := seedUser(t, db, domain.RoleSprout, 100)

	_, err := svc.Purchase(user.ID, 9999)
	assert.ErrorIs(t, err, common.ErrItemNotFound)
}

func TestGetMyPurchases(t *testing.T) {
	db := newTestDB(t)
	svc := newStoreService(db)
	user := seedUser(t, db, domain.RoleSprout, 100)
	first := seedItem(t, db, "brain", 10)
	second := seedItem(t, db, "huhcat", 20)

	_, err := svc.Purchase(user.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Purchase(user.ID, second.ID)
	require.NoError(t, err)

	purchases, err := svc.GetMyPurchases(user.ID)
	require.NoError(t, err)
	assert.Len(t, purchases, 2)

	owns, err := svc.Owns(user.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, owns)
}
