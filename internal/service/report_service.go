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

// ReportService 게시글 신고 접수와 관리자 심사 처리
type ReportService struct {
	db           *gorm.DB
	reportRepo   repository.ReportRepository
	postRepo     repository.PostRepository
	cacheService cache.Service
}

// NewReportService creates a report service
func NewReportService(db *gorm.DB, reportRepo repository.ReportRepository, postRepo repository.PostRepository, cacheService cache.Service) *ReportService {
	return &ReportService{db: db, reportRepo: reportRepo, postRepo: postRepo, cacheService: cacheService}
}

// Create 신고 접수. 본인 게시글은 신고할 수 없다.
func (s *ReportService) Create(reporterID, postID uint64, reason string) (*domain.Report, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}
	if post.UserID == reporterID {
		return nil, common.ErrSelfReport
	}

	report := &domain.Report{
		PostID:     &post.ID,
		AuthorID:   &post.UserID,
		ReporterID: reporterID,
		Reason:     reason,
		Status:     domain.ReportPending,
	}
	if err := s.reportRepo.Create(report); err != nil {
		return nil, err
	}

	logger.GetLogger().Info().
		Uint64("report_id", report.ID).
		Uint64("post_id", postID).
		Uint64("reporter_id", reporterID).
		Msg("게시글 신고 접수")
	return report, nil
}

// GetByStatus 상태별 신고 목록 (접수 오래된 순)
func (s *ReportService) GetByStatus(status domain.ReportStatus, page, limit int) ([]*domain.Report, int64, error) {
	return s.reportRepo.FindByStatus(status, page, limit)
}

// Approve 신고 승인. 게시글 삭제와 상태 변경을 한 트랜잭션으로 처리한다.
func (s *ReportService) Approve(ctx context.Context, id uint64, adminID uint64) (*domain.Report, error) {
	report, err := s.findPending(id)
	if err != nil {
		return nil, err
	}

	deletedPost := report.PostID != nil
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if report.PostID != nil {
			// 이미 지워진 게시글이어도 삭제는 no-op으로 통과한다
			if err := s.postRepo.WithTx(tx).Delete(*report.PostID); err != nil {
				return err
			}
			// 게시글은 지워도 신고 이력은 남긴다
			report.PostID = nil
		}
		report.Status = domain.ReportApproved
		return s.reportRepo.WithTx(tx).Update(report)
	})
	if err != nil {
		return nil, err
	}

	if deletedPost && s.cacheService != nil {
		if err := s.cacheService.InvalidateHotPosts(ctx); err != nil {
			logger.GetLogger().Warn().Err(err).Msg("핫게시물 캐시 무효화 실패")
		}
	}
	logger.GetLogger().Info().
		Uint64("report_id", report.ID).
		Uint64("admin_id", adminID).
		Msg("신고 승인 처리")
	return report, nil
}

// Reject 신고 기각
func (s *ReportService) Reject(id uint64) (*domain.Report, error) {
	report, err := s.findPending(id)
	if err != nil {
		return nil, err
	}
	report.Status = domain.ReportRejected
	if err := s.reportRepo.Update(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) findPending(id uint64) (*domain.Report, error) {
	report, err := s.reportRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrReportNotFound
		}
		return nil, err
	}
	if report.Status != domain.ReportPending {
		return nil, common.ErrAlreadyProcessed
	}
	return report, nil
}
