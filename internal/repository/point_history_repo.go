package repository

import (
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

// PointHistoryRepository point history data access.
// 이력은 append-only. Update/Delete는 제공하지 않는다.
type PointHistoryRepository interface {
	WithTx(tx *gorm.DB) PointHistoryRepository
	Create(history *domain.PointHistory) error
	FindByUser(userID uint64, page, limit int) ([]*domain.PointHistory, int64, error)
}

type pointHistoryRepository struct {
	db *gorm.DB
}

// NewPointHistoryRepository creates a new PointHistoryRepository
func NewPointHistoryRepository(db *gorm.DB) PointHistoryRepository {
	return &pointHistoryRepository{db: db}
}

func (r *pointHistoryRepository) WithTx(tx *gorm.DB) PointHistoryRepository {
	return &pointHistoryRepository{db: tx}
}

func (r *pointHistoryRepository) Create(history *domain.PointHistory) error {
	return r.db.Create(history).Error
}

func (r *pointHistoryRepository) FindByUser(userID uint64, page, limit int) ([]*domain.PointHistory, int64, error) {
	var histories []*domain.PointHistory
	var total int64

	query := r.db.Model(&domain.PointHistory{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).Find(&histories).Error
	if err != nil {
		return nil, 0, err
	}
	return histories, total, nil
}
