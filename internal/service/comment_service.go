package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
)

// CommentService 댓글과 1단계 대댓글 처리
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a comment service
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// Create 댓글 작성. 대댓글은 1단계까지만 허용된다.
// 대댓글에 다시 답글을 달면 같은 부모의 대댓글로 붙는다.
func (s *CommentService) Create(userID, postID uint64, parentID *uint64, content string) (*domain.Comment, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}

	if parentID != nil {
		parent, err := s.commentRepo.FindByID(*parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.ErrCommentNotFound
			}
			return nil, err
		}
		if parent.PostID != postID {
			return nil, common.ErrInvalidInput
		}
		if parent.ParentID != nil {
			parentID = parent.ParentID
		}
	}

	comment := &domain.Comment{
		UserID:   userID,
		PostID:   postID,
		ParentID: parentID,
		Content:  content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetByPost 게시글의 댓글 목록
func (s *CommentService) GetByPost(postID uint64) ([]*domain.Comment, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}
	return s.commentRepo.FindByPost(postID)
}

// Update 댓글 수정. 작성자 본인만 가능.
func (s *CommentService) Update(id, userID uint64, content string) (*domain.Comment, error) {
	comment, err := s.findOwned(id, userID, false)
	if err != nil {
		return nil, err
	}
	comment.Content = content
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete 댓글 삭제. 작성자 본인 또는 관리자만 가능.
// 부모 댓글이 삭제되면 대댓글은 최상위 댓글로 올라간다.
func (s *CommentService) Delete(id, userID uint64, role domain.UserRole) error {
	comment, err := s.findOwned(id, userID, role == domain.RoleAdmin)
	if err != nil {
		return err
	}
	if comment.ParentID == nil {
		if err := s.commentRepo.DetachReplies(comment.ID); err != nil {
			return err
		}
	}
	return s.commentRepo.Delete(id)
}

func (s *CommentService) findOwned(id, userID uint64, adminOverride bool) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrCommentNotFound
		}
		return nil, err
	}
	if comment.UserID != userID && !adminOverride {
		return nil, common.ErrForbidden
	}
	return comment, nil
}
