package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
	"github.com/dd-blog/braincleaner-backend/pkg/cache"
	"github.com/dd-blog/braincleaner-backend/pkg/logger"
)

// AdminVerificationService 관리자 인증 심사 처리
type AdminVerificationService struct {
	db               *gorm.DB
	verificationRepo repository.VerificationRepository
	pointService     *PointService
	cacheService     cache.Service
}

// NewAdminVerificationService creates an admin verification service
func NewAdminVerificationService(
	db *gorm.DB,
	verificationRepo repository.VerificationRepository,
	pointService *PointService,
	cacheService cache.Service,
) *AdminVerificationService {
	return &AdminVerificationService{
		db:               db,
		verificationRepo: verificationRepo,
		pointService:     pointService,
		cacheService:     cacheService,
	}
}

// GetPending 심사 대기 목록 (오래된 순)
func (s *AdminVerificationService) GetPending(page, limit int) ([]*domain.Verification, int64, error) {
	return s.verificationRepo.FindByStatus(domain.VerificationPending, page, limit)
}

// Approve 인증 승인. 상태 변경과 포인트 적립이 한 트랜잭션으로 처리되어
// 둘 중 하나라도 실패하면 함께 롤백된다.
func (s *AdminVerificationService) Approve(ctx context.Context, id uint64) (*domain.Verification, error) {
	verification, err := s.findPending(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		verification.Status = domain.VerificationApproved
		if err := s.verificationRepo.WithTx(tx).Update(verification); err != nil {
			return err
		}
		return s.pointService.AwardForVerificationApproval(tx, verification)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateWeekly(ctx, verification.UserID)
	logger.GetLogger().Info().
		Uint64("verification_id", verification.ID).
		Uint64("user_id", verification.UserID).
		Msg("인증 승인 완료")
	return verification, nil
}

// Reject 인증 거절. 포인트는 적립되지 않는다.
func (s *AdminVerificationService) Reject(ctx context.Context, id uint64) (*domain.Verification, error) {
	verification, err := s.findPending(id)
	if err != nil {
		return nil, err
	}

	verification.Status = domain.VerificationRejected
	if err := s.verificationRepo.Update(verification); err != nil {
		return nil, err
	}

	s.invalidateWeekly(ctx, verification.UserID)
	logger.GetLogger().Info().
		Uint64("verification_id", verification.ID).
		Uint64("user_id", verification.UserID).
		Msg("인증 거절 완료")
	return verification, nil
}

func (s *AdminVerificationService) findPending(id uint64) (*domain.Verification, error) {
	verification, err := s.verificationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrVerificationNotFound
		}
		return nil, err
	}
	if verification.Status != domain.VerificationPending {
		return nil, common.ErrAlreadyProcessed
	}
	return verification, nil
}

func (s *AdminVerificationService) invalidateWeekly(ctx context.Context, userID uint64) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.InvalidateWeeklyVerification(ctx, userID); err != nil {
		logger.GetLogger().Warn().Err(err).Uint64("user_id", userID).Msg("주간 인증 현황 캐시 무효화 실패")
	}
}
