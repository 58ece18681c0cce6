package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

// ReportRepository post report data access
type ReportRepository interface {
	WithTx(tx *gorm.DB) ReportRepository
	Create(report *domain.Report) error
	FindByID(id uint64) (*domain.Report, error)
	FindByStatus(status domain.ReportStatus, page, limit int) ([]*domain.Report, int64, error)
	Update(report *domain.Report) error
	CountByStatus(status domain.ReportStatus) (int64, error)
	CountByStatusInUpdatedBetween(statuses []domain.ReportStatus, start, end time.Time) (int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) WithTx(tx *gorm.DB) ReportRepository {
	return &reportRepository{db: tx}
}

func (r *reportRepository) Create(report *domain.Report) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) FindByID(id uint64) (*domain.Report, error) {
	var report domain.Report
	err := r.db.Preload("Post").Preload("Author").Preload("Reporter").
		Where("id = ?", id).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) FindByStatus(status domain.ReportStatus, page, limit int) ([]*domain.Report, int64, error) {
	var reports []*domain.Report
	var total int64

	query := r.db.Model(&domain.Report{}).Where("status = ?", status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	// 오래된 신고부터 처리
	err := query.Preload("Post").Preload("Author").Preload("Reporter").
		Order("created_at ASC").Offset(offset).Limit(limit).Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func (r *reportRepository) Update(report *domain.Report) error {
	return r.db.Save(report).Error
}

func (r *reportRepository) CountByStatus(status domain.ReportStatus) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Report{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *reportRepository) CountByStatusInUpdatedBetween(statuses []domain.ReportStatus, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Report{}).
		Where("status IN ? AND updated_at BETWEEN ? AND ?", statuses, start, end).
		Count(&count).Error
	return count, err
}
