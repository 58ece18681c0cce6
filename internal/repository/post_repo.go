package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

// PostRepository post data access
type PostRepository interface {
	WithTx(tx *gorm.DB) PostRepository
	Create(post *domain.Post) error
	FindByID(id uint64) (*domain.Post, error)
	Update(post *domain.Post) error
	Delete(id uint64) error
	FindAll(page, limit int, sortField string, desc bool) ([]*domain.Post, int64, error)
	FindByCategory(categoryID uint64, page, limit int, sortField string, desc bool) ([]*domain.Post, int64, error)
	FindByUser(userID uint64, page, limit int) ([]*domain.Post, int64, error)
	FindByUsers(userIDs []uint64, page, limit int) ([]*domain.Post, int64, error)
	CountByUserAndCategoryBetween(userID, categoryID uint64, start, end time.Time) (int64, error)
	IncrementViewCount(id uint64) error
	IncrementLikeCount(id uint64) error
	DecrementLikeCount(id uint64) error
	FindHot(limit int) ([]*domain.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) WithTx(tx *gorm.DB) PostRepository {
	return &postRepository{db: tx}
}

func (r *postRepository) preloaded() *gorm.DB {
	return r.db.Preload("User").Preload("Category")
}

func (r *postRepository) Create(post *domain.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) FindByID(id uint64) (*domain.Post, error) {
	var post domain.Post
	err := r.preloaded().Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(post *domain.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.Post{}, id).Error
}

// orderClause 정렬 기준. like_count 정렬은 id 2차 정렬로 순서를 고정한다.
func orderClause(sortField string, desc bool) string {
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	if sortField == "like_count" {
		return "like_count " + dir + ", id ASC"
	}
	return "created_at " + dir
}

func (r *postRepository) findPaged(query *gorm.DB, page, limit int, order string) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("User").Preload("Category").
		Order(order).Offset(offset).Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) FindAll(page, limit int, sortField string, desc bool) ([]*domain.Post, int64, error) {
	query := r.db.Model(&domain.Post{})
	return r.findPaged(query, page, limit, orderClause(sortField, desc))
}

func (r *postRepository) FindByCategory(categoryID uint64, page, limit int, sortField string, desc bool) ([]*domain.Post, int64, error) {
	query := r.db.Model(&domain.Post{}).Where("category_id = ?", categoryID)
	return r.findPaged(query, page, limit, orderClause(sortField, desc))
}

func (r *postRepository) FindByUser(userID uint64, page, limit int) ([]*domain.Post, int64, error) {
	query := r.db.Model(&domain.Post{}).Where("user_id = ?", userID)
	return r.findPaged(query, page, limit, "created_at DESC")
}

func (r *postRepository) FindByUsers(userIDs []uint64, page, limit int) ([]*domain.Post, int64, error) {
	if len(userIDs) == 0 {
		return []*domain.Post{}, 0, nil
	}
	query := r.db.Model(&domain.Post{}).Where("user_id IN ?", userIDs)
	return r.findPaged(query, page, limit, "created_at DESC")
}

func (r *postRepository) CountByUserAndCategoryBetween(userID, categoryID uint64, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Post{}).
		Where("user_id = ? AND category_id = ? AND created_at BETWEEN ? AND ?", userID, categoryID, start, end).
		Count(&count).Error
	return count, err
}

func (r *postRepository) IncrementViewCount(id uint64) error {
	return r.db.Model(&domain.Post{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *postRepository) IncrementLikeCount(id uint64) error {
	return r.db.Model(&domain.Post{}).Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
}

func (r *postRepository) DecrementLikeCount(id uint64) error {
	return r.db.Model(&domain.Post{}).Where("id = ? AND like_count > 0", id).
		UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
}

func (r *postRepository) FindHot(limit int) ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.preloaded().Order("view_count DESC, id ASC").Limit(limit).Find(&posts).Error
	return posts, err
}
