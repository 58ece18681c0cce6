package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
)

// FollowService 팔로우 관계 처리
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService creates a follow service
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow 팔로우 등록. 자기 자신은 팔로우할 수 없다.
func (s *FollowService) Follow(followerID, followingID uint64) error {
	if followerID == followingID {
		return common.ErrSelfFollow
	}
	if _, err := s.userRepo.FindByID(followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}

	exists, err := s.followRepo.Exists(followerID, followingID)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrAlreadyFollowing
	}
	return s.followRepo.Create(&domain.Follow{FollowerID: followerID, FollowingID: followingID})
}

// Unfollow 팔로우 취소
func (s *FollowService) Unfollow(followerID, followingID uint64) error {
	exists, err := s.followRepo.Exists(followerID, followingID)
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrNotFollowing
	}
	return s.followRepo.Delete(followerID, followingID)
}

// GetFollowings 내가 팔로우하는 사용자 목록
func (s *FollowService) GetFollowings(userID uint64) ([]*domain.Follow, error) {
	return s.followRepo.FindByFollower(userID)
}

// GetFollowers 나를 팔로우하는 사용자 목록
func (s *FollowService) GetFollowers(userID uint64) ([]*domain.Follow, error) {
	return s.followRepo.FindByFollowing(userID)
}

// IsFollowing 팔로우 여부 조회
func (s *FollowService) IsFollowing(followerID, followingID uint64) (bool, error) {
	return s.followRepo.Exists(followerID, followingID)
}
