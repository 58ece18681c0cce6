package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

// UserRepository user data access
type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	FindByID(id uint64) (*domain.User, error)
	// FindByIDForUpdate locks the user row for the duration of the
	// surrounding transaction (SELECT ... FOR UPDATE on MySQL).
	FindByIDForUpdate(id uint64) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	FindByNickname(nickname string) (*domain.User, error)
	FindByRefreshToken(token string) (*domain.User, error)
	Create(user *domain.User) error
	Update(user *domain.User) error
	FindAll(page, limit int, keyword string) ([]*domain.User, int64, error)
	Count() (int64, error)
	CountCreatedBetween(start, end time.Time) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

func (r *userRepository) FindByID(id uint64) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDForUpdate(id uint64) (*domain.User, error) {
	var user domain.User
	q := r.db
	// sqlite(테스트)는 FOR UPDATE 미지원
	if q.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByNickname(nickname string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("nickname = ?", nickname).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByRefreshToken(token string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("refresh_token = ?", token).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) Update(user *domain.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) FindAll(page, limit int, keyword string) ([]*domain.User, int64, error) {
	var users []*domain.User
	var total int64

	query := r.db.Model(&domain.User{})
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("email LIKE ? OR nickname LIKE ?", like, like)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) CountCreatedBetween(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.User{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Count(&count).Error
	return count, err
}
