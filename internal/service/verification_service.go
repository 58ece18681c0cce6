package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
	"github.com/dd-blog/braincleaner-backend/pkg/cache"
	"github.com/dd-blog/braincleaner-backend/pkg/logger"
)

// WeeklyStatus 주간 인증 현황 (월~일)
type WeeklyStatus struct {
	WeekStart  time.Time `json:"week_start"`
	WeekEnd    time.Time `json:"week_end"`
	Days       [7]bool   `json:"days"` // index 0 = 월요일
	StreakDays int       `json:"streak_days"`
}

// VerificationService 디톡스 인증 요청 처리
type VerificationService struct {
	verificationRepo repository.VerificationRepository
	userRepo         repository.UserRepository
	cacheService     cache.Service
}

// NewVerificationService creates a verification service
func NewVerificationService(
	verificationRepo repository.VerificationRepository,
	userRepo repository.UserRepository,
	cacheService cache.Service,
) *VerificationService {
	return &VerificationService{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		cacheService:     cacheService,
	}
}

// CreateForPost 인증게시판 게시글에 대한 PENDING 인증 요청을 생성하고
// 연속 인증 일수를 갱신한다. 게시글 생성 트랜잭션 안에서 호출된다.
func (s *VerificationService) CreateForPost(tx *gorm.DB, post *domain.Post) (*domain.Verification, error) {
	verification := &domain.Verification{
		UserID: post.UserID,
		PostID: post.ID,
		Status: domain.VerificationPending,
	}
	if post.DetoxTime != nil {
		verification.DetoxTime = *post.DetoxTime
	}
	if err := s.verificationRepo.WithTx(tx).Create(verification); err != nil {
		return nil, err
	}

	userRepo := s.userRepo.WithTx(tx)
	user, err := userRepo.FindByIDForUpdate(post.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	updateStreak(user, time.Now())
	if err := userRepo.Update(user); err != nil {
		return nil, err
	}
	return verification, nil
}

// updateStreak 연속 인증 일수 계산.
// 오늘 이미 인증했으면 유지, 어제 인증했으면 +1, 그 외에는 1로 초기화.
func updateStreak(user *domain.User, now time.Time) {
	today := dateOnly(now)
	switch {
	case user.LastVerificationDate == nil:
		user.StreakDays = 1
	case dateOnly(*user.LastVerificationDate).Equal(today):
		return
	case dateOnly(*user.LastVerificationDate).Equal(today.AddDate(0, 0, -1)):
		user.StreakDays++
	default:
		user.StreakDays = 1
	}
	user.LastVerificationDate = &today
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GetByID 인증 요청 단건 조회
func (s *VerificationService) GetByID(id uint64) (*domain.Verification, error) {
	verification, err := s.verificationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrVerificationNotFound
		}
		return nil, err
	}
	return verification, nil
}

// GetAll 전체 인증 요청 목록
func (s *VerificationService) GetAll() ([]*domain.Verification, error) {
	return s.verificationRepo.FindAll()
}

// UpdateDetoxTime 본인 인증 요청의 디톡스 시간 수정. PENDING 상태에서만 가능.
func (s *VerificationService) UpdateDetoxTime(id, userID uint64, detoxTime int) (*domain.Verification, error) {
	verification, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if verification.UserID != userID {
		return nil, common.ErrForbidden
	}
	if verification.Status != domain.VerificationPending {
		return nil, common.ErrAlreadyProcessed
	}

	verification.DetoxTime = detoxTime
	if err := s.verificationRepo.Update(verification); err != nil {
		return nil, err
	}
	return verification, nil
}

// Delete 본인 인증 요청 삭제. 승인/거절 처리된 건은 삭제할 수 없다.
func (s *VerificationService) Delete(ctx context.Context, id, userID uint64) error {
	verification, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if verification.UserID != userID {
		return common.ErrForbidden
	}
	if verification.Status != domain.VerificationPending {
		return common.ErrAlreadyProcessed
	}

	if err := s.verificationRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateWeekly(ctx, userID)
	return nil
}

// GetWeeklyStatus 이번 주(월~일) 인증 현황. PENDING/APPROVED 건을 인증한 날로 본다.
func (s *VerificationService) GetWeeklyStatus(ctx context.Context, userID uint64) (*WeeklyStatus, error) {
	if s.cacheService != nil {
		var cached WeeklyStatus
		if err := s.cacheService.GetWeeklyVerification(ctx, userID, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	weekStart := startOfWeek(time.Now())
	weekEnd := weekStart.AddDate(0, 0, 7)
	verifications, err := s.verificationRepo.FindByUserBetween(userID, weekStart, weekEnd,
		[]domain.VerificationStatus{domain.VerificationPending, domain.VerificationApproved})
	if err != nil {
		return nil, err
	}

	status := &WeeklyStatus{
		WeekStart:  weekStart,
		WeekEnd:    weekEnd.AddDate(0, 0, -1),
		StreakDays: user.StreakDays,
	}
	for _, v := range verifications {
		dayIndex := int(dateOnly(v.CreatedAt).Sub(weekStart).Hours() / 24)
		if dayIndex >= 0 && dayIndex < 7 {
			status.Days[dayIndex] = true
		}
	}

	if s.cacheService != nil {
		if err := s.cacheService.SetWeeklyVerification(ctx, userID, status); err != nil {
			logger.GetLogger().Warn().Err(err).Uint64("user_id", userID).Msg("주간 인증 현황 캐시 저장 실패")
		}
	}
	return status, nil
}

func (s *VerificationService) invalidateWeekly(ctx context.Context, userID uint64) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.InvalidateWeeklyVerification(ctx, userID); err != nil {
		logger.GetLogger().Warn().Err(err).Uint64("user_id", userID).Msg("주간 인증 현황 캐시 무효화 실패")
	}
}

// startOfWeek 해당 주 월요일 자정
func startOfWeek(t time.Time) time.Time {
	day := dateOnly(t)
	weekday := int(day.Weekday())
	if weekday == 0 { // 일요일
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}
