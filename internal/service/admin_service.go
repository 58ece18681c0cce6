package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
	"github.com/dd-blog/braincleaner-backend/pkg/logger"
)

// DashboardStats 관리자 대시보드 집계
type DashboardStats struct {
	TotalUsers                  int64 `json:"total_users"`
	TodayNewUsers               int64 `json:"today_new_users"`
	PendingVerifications        int64 `json:"pending_verifications"`
	TodayProcessedVerifications int64 `json:"today_processed_verifications"`
	PendingReports              int64 `json:"pending_reports"`
	TodayProcessedReports       int64 `json:"today_processed_reports"`
}

// AdminService 관리자 사용자 관리와 대시보드
type AdminService struct {
	userRepo         repository.UserRepository
	verificationRepo repository.VerificationRepository
	reportRepo       repository.ReportRepository
}

// NewAdminService creates an admin service
func NewAdminService(
	userRepo repository.UserRepository,
	verificationRepo repository.VerificationRepository,
	reportRepo repository.ReportRepository,
) *AdminService {
	return &AdminService{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		reportRepo:       reportRepo,
	}
}

// GetDashboard 대시보드 집계 조회. 오늘 기준은 서버 로컬 자정.
func (s *AdminService) GetDashboard() (*DashboardStats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)
	processed := []domain.VerificationStatus{domain.VerificationApproved, domain.VerificationRejected}
	processedReports := []domain.ReportStatus{domain.ReportApproved, domain.ReportRejected}

	stats := &DashboardStats{}
	var err error
	if stats.TotalUsers, err = s.userRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TodayNewUsers, err = s.userRepo.CountCreatedBetween(startOfDay, endOfDay); err != nil {
		return nil, err
	}
	if stats.PendingVerifications, err = s.verificationRepo.CountByStatus(domain.VerificationPending); err != nil {
		return nil, err
	}
	if stats.TodayProcessedVerifications, err = s.verificationRepo.CountByStatusInUpdatedBetween(processed, startOfDay, endOfDay); err != nil {
		return nil, err
	}
	if stats.PendingReports, err = s.reportRepo.CountByStatus(domain.ReportPending); err != nil {
		return nil, err
	}
	if stats.TodayProcessedReports, err = s.reportRepo.CountByStatusInUpdatedBetween(processedReports, startOfDay, endOfDay); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetUsers 사용자 목록 조회. keyword는 이메일/닉네임 부분 일치.
func (s *AdminService) GetUsers(page, limit int, keyword string) ([]*domain.User, int64, error) {
	return s.userRepo.FindAll(page, limit, keyword)
}

// GetUser 사용자 상세 조회
func (s *AdminService) GetUser(userID uint64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateUserRole 사용자 등급 수동 변경. 관리자 계정의 등급은 바꿀 수 없고,
// 일반 사용자를 관리자로 올릴 수도 없다.
func (s *AdminService) UpdateUserRole(userID uint64, role domain.UserRole) (*domain.User, error) {
	if role == domain.RoleAdmin {
		return nil, common.ErrInvalidInput
	}
	user, err := s.findTarget(userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	logger.GetLogger().Info().
		Uint64("user_id", userID).
		Str("role", string(role)).
		Msg("사용자 등급 변경")
	return user, nil
}

// UpdateUserStatus 계정 상태 변경 (활성/정지/삭제). 관리자 계정은 대상이 될 수 없다.
func (s *AdminService) UpdateUserStatus(userID uint64, status domain.UserStatus) (*domain.User, error) {
	user, err := s.findTarget(userID)
	if err != nil {
		return nil, err
	}

	user.Status = status
	if status != domain.StatusActive {
		user.RefreshToken = nil // 정지/삭제 시 세션 종료
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	logger.GetLogger().Info().
		Uint64("user_id", userID).
		Str("status", string(status)).
		Msg("계정 상태 변경")
	return user, nil
}

func (s *AdminService) findTarget(userID uint64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, common.ErrUserNotFound
	}
	if user.Role == domain.RoleAdmin {
		return nil, common.ErrForbidden
	}
	return user, nil
}
