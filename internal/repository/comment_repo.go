package repository

import (
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

// CommentRepository comment data access
type CommentRepository interface {
	FindByID(id uint64) (*domain.Comment, error)
	FindByPost(postID uint64) ([]*domain.Comment, error)
	Create(comment *domain.Comment) error
	Update(comment *domain.Comment) error
	Delete(id uint64) error
	// DetachReplies clears parent_id on replies so they survive parent deletion
	DetachReplies(parentID uint64) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) FindByID(id uint64) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.Preload("User").Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) FindByPost(postID uint64) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Create(comment *domain.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) Update(comment *domain.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.Comment{}, id).Error
}

func (r *commentRepository) DetachReplies(parentID uint64) error {
	return r.db.Model(&domain.Comment{}).
		Where("parent_id = ?", parentID).
		Update("parent_id", nil).Error
}
