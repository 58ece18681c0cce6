package repository

import (
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

// FollowRepository follow relation data access
type FollowRepository interface {
	Exists(followerID, followingID uint64) (bool, error)
	Create(follow *domain.Follow) error
	Delete(followerID, followingID uint64) error
	FindByFollower(followerID uint64) ([]*domain.Follow, error)
	FindByFollowing(followingID uint64) ([]*domain.Follow, error)
	FindFollowingIDs(followerID uint64) ([]uint64, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new FollowRepository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Exists(followerID, followingID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) Create(follow *domain.Follow) error {
	return r.db.Create(follow).Error
}

func (r *followRepository) Delete(followerID, followingID uint64) error {
	return r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&domain.Follow{}).Error
}

func (r *followRepository) FindByFollower(followerID uint64) ([]*domain.Follow, error) {
	var follows []*domain.Follow
	err := r.db.Preload("Following").
		Where("follower_id = ?", followerID).
		Find(&follows).Error
	return follows, err
}

func (r *followRepository) FindByFollowing(followingID uint64) ([]*domain.Follow, error) {
	var follows []*domain.Follow
	err := r.db.Preload("Follower").
		Where("following_id = ?", followingID).
		Find(&follows).Error
	return follows, err
}

func (r *followRepository) FindFollowingIDs(followerID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&domain.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	return ids, err
}
