package repository

import (
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

// CategoryRepository category data access
type CategoryRepository interface {
	FindByID(id uint64) (*domain.Category, error)
	FindAll() ([]*domain.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindByID(id uint64) (*domain.Category, error) {
	var category domain.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll() ([]*domain.Category, error) {
	var categories []*domain.Category
	err := r.db.Order("id ASC").Find(&categories).Error
	return categories, err
}
