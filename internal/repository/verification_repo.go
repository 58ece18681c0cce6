package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

// VerificationRepository verification request data access
type VerificationRepository interface {
	WithTx(tx *gorm.DB) VerificationRepository
	Create(v *domain.Verification) error
	FindByID(id uint64) (*domain.Verification, error)
	FindAll() ([]*domain.Verification, error)
	Update(v *domain.Verification) error
	Delete(id uint64) error
	FindByUserBetween(userID uint64, start, end time.Time, statuses []domain.VerificationStatus) ([]*domain.Verification, error)
	FindByStatus(status domain.VerificationStatus, page, limit int) ([]*domain.Verification, int64, error)
	CountByStatus(status domain.VerificationStatus) (int64, error)
	CountByStatusInUpdatedBetween(statuses []domain.VerificationStatus, start, end time.Time) (int64, error)
}

type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new VerificationRepository
func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) WithTx(tx *gorm.DB) VerificationRepository {
	return &verificationRepository{db: tx}
}

func (r *verificationRepository) Create(v *domain.Verification) error {
	return r.db.Create(v).Error
}

func (r *verificationRepository) FindByID(id uint64) (*domain.Verification, error) {
	var v domain.Verification
	err := r.db.Preload("User").Preload("Post").Where("id = ?", id).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *verificationRepository) FindAll() ([]*domain.Verification, error) {
	var vs []*domain.Verification
	err := r.db.Preload("User").Preload("Post").Order("id DESC").Find(&vs).Error
	return vs, err
}

func (r *verificationRepository) Update(v *domain.Verification) error {
	return r.db.Save(v).Error
}

func (r *verificationRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.Verification{}, id).Error
}

func (r *verificationRepository) FindByUserBetween(userID uint64, start, end time.Time, statuses []domain.VerificationStatus) ([]*domain.Verification, error) {
	var vs []*domain.Verification
	err := r.db.
		Where("user_id = ? AND created_at BETWEEN ? AND ? AND status IN ?", userID, start, end, statuses).
		Order("created_at ASC").
		Find(&vs).Error
	return vs, err
}

func (r *verificationRepository) FindByStatus(status domain.VerificationStatus, page, limit int) ([]*domain.Verification, int64, error) {
	var vs []*domain.Verification
	var total int64

	query := r.db.Model(&domain.Verification{}).Where("status = ?", status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("User").Preload("Post").
		Order("id ASC").Offset(offset).Limit(limit).Find(&vs).Error
	if err != nil {
		return nil, 0, err
	}
	return vs, total, nil
}

func (r *verificationRepository) CountByStatus(status domain.VerificationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Verification{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *verificationRepository) CountByStatusInUpdatedBetween(statuses []domain.VerificationStatus, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Verification{}).
		Where("status IN ? AND updated_at BETWEEN ? AND ?", statuses, start, end).
		Count(&count).Error
	return count, err
}
