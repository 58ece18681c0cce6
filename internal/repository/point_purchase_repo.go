package repository

import (
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

// PointPurchaseRepository point item purchase history data access
type PointPurchaseRepository interface {
	WithTx(tx *gorm.DB) PointPurchaseRepository
	ExistsByUserAndItem(userID, itemID uint64) (bool, error)
	Create(purchase *domain.PointItemPurchase) error
	FindByUser(userID uint64) ([]*domain.PointItemPurchase, error)
}

type pointPurchaseRepository struct {
	db *gorm.DB
}

// NewPointPurchaseRepository creates a new PointPurchaseRepository
func NewPointPurchaseRepository(db *gorm.DB) PointPurchaseRepository {
	return &pointPurchaseRepository{db: db}
}

func (r *pointPurchaseRepository) WithTx(tx *gorm.DB) PointPurchaseRepository {
	return &pointPurchaseRepository{db: tx}
}

func (r *pointPurchaseRepository) ExistsByUserAndItem(userID, itemID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.PointItemPurchase{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&count).Error
	return count > 0, err
}

func (r *pointPurchaseRepository) Create(purchase *domain.PointItemPurchase) error {
	return r.db.Create(purchase).Error
}

func (r *pointPurchaseRepository) FindByUser(userID uint64) ([]*domain.PointItemPurchase, error) {
	var purchases []*domain.PointItemPurchase
	err := r.db.Preload("Item").
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Find(&purchases).Error
	return purchases, err
}
