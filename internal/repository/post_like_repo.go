package repository

import (
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

// PostLikeRepository post like data access
type PostLikeRepository interface {
	Exists(userID, postID uint64) (bool, error)
	Create(like *domain.PostLike) error
	Delete(userID, postID uint64) error
}

type postLikeRepository struct {
	db *gorm.DB
}

// NewPostLikeRepository creates a new PostLikeRepository
func NewPostLikeRepository(db *gorm.DB) PostLikeRepository {
	return &postLikeRepository{db: db}
}

func (r *postLikeRepository) Exists(userID, postID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *postLikeRepository) Create(like *domain.PostLike) error {
	return r.db.Create(like).Error
}

func (r *postLikeRepository) Delete(userID, postID uint64) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&domain.PostLike{}).Error
}
