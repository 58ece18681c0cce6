package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
)

// UpdateProfileInput 프로필 수정 요청. nil 필드는 변경하지 않는다.
type UpdateProfileInput struct {
	Nickname        *string
	StatusMessage   *string
	DetoxGoal       *string
	ProfileImageURL *string
	BirthDate       *time.Time
}

// UserService 사용자 프로필 조회/수정 처리
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID 사용자 조회
func (s *UserService) GetByID(id uint64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile 프로필 수정. 닉네임 변경 시 중복 검사를 거친다.
func (s *UserService) UpdateProfile(id uint64, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Nickname != nil && *input.Nickname != user.Nickname {
		if _, err := s.userRepo.FindByNickname(*input.Nickname); err == nil {
			return nil, common.ErrNicknameExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Nickname = *input.Nickname
	}
	if input.StatusMessage != nil {
		user.StatusMessage = input.StatusMessage
	}
	if input.DetoxGoal != nil {
		user.DetoxGoal = input.DetoxGoal
	}
	if input.ProfileImageURL != nil {
		user.ProfileImageURL = input.ProfileImageURL
	}
	if input.BirthDate != nil {
		user.BirthDate = input.BirthDate
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Withdraw 회원 탈퇴. 레코드는 남기고 상태만 DELETED로 바꾼다.
func (s *UserService) Withdraw(id uint64) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	user.Status = domain.StatusDeleted
	user.RefreshToken = nil
	return s.userRepo.Update(user)
}
