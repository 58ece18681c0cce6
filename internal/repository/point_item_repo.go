package repository

import (
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

// PointItemRepository point store item data access
type PointItemRepository interface {
	FindByID(id uint64) (*domain.PointItem, error)
	FindAll() ([]*domain.PointItem, error)
}

type pointItemRepository struct {
	db *gorm.DB
}

// NewPointItemRepository creates a new PointItemRepository
func NewPointItemRepository(db *gorm.DB) PointItemRepository {
	return &pointItemRepository{db: db}
}

func (r *pointItemRepository) FindByID(id uint64) (*domain.PointItem, error) {
	var item domain.PointItem
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pointItemRepository) FindAll() ([]*domain.PointItem, error) {
	var items []*domain.PointItem
	err := r.db.Order("price ASC, id ASC").Find(&items).Error
	return items, err
}
