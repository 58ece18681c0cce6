package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
)

// LikeStatus 게시글의 좋아요 수와 요청 사용자의 좋아요 여부
type LikeStatus struct {
	PostID    uint64 `json:"post_id"`
	LikeCount int    `json:"like_count"`
	Liked     bool   `json:"liked"`
}

// PostLikeService 게시글 좋아요 처리. 사용자당 게시글 1회만 가능하다.
type PostLikeService struct {
	likeRepo repository.PostLikeRepository
	postRepo repository.PostRepository
}

// NewPostLikeService creates a post like service
func NewPostLikeService(likeRepo repository.PostLikeRepository, postRepo repository.PostRepository) *PostLikeService {
	return &PostLikeService{likeRepo: likeRepo, postRepo: postRepo}
}

// Like 좋아요 등록. 이미 눌렀으면 현재 상태를 그대로 반환한다.
func (s *PostLikeService) Like(userID, postID uint64) (*LikeStatus, error) {
	post, err := s.findPost(postID)
	if err != nil {
		return nil, err
	}

	exists, err := s.likeRepo.Exists(userID, postID)
	if err != nil {
		return nil, err
	}
	if exists {
		return &LikeStatus{PostID: postID, LikeCount: post.LikeCount, Liked: true}, nil
	}

	if err := s.likeRepo.Create(&domain.PostLike{UserID: userID, PostID: postID}); err != nil {
		return nil, err
	}
	if err := s.postRepo.IncrementLikeCount(postID); err != nil {
		return nil, err
	}
	// 증가 이후의 값을 다시 읽어 돌려준다
	post, err = s.findPost(postID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{PostID: postID, LikeCount: post.LikeCount, Liked: true}, nil
}

// Unlike 좋아요 취소. 이력이 없으면 ErrNotLiked.
func (s *PostLikeService) Unlike(userID, postID uint64) (*LikeStatus, error) {
	if _, err := s.findPost(postID); err != nil {
		return nil, err
	}

	exists, err := s.likeRepo.Exists(userID, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrNotLiked
	}

	if err := s.likeRepo.Delete(userID, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.DecrementLikeCount(postID); err != nil {
		return nil, err
	}
	post, err := s.findPost(postID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{PostID: postID, LikeCount: post.LikeCount, Liked: false}, nil
}

// Status 좋아요 수와 여부 조회
func (s *PostLikeService) Status(userID, postID uint64) (*LikeStatus, error) {
	post, err := s.findPost(postID)
	if err != nil {
		return nil, err
	}
	liked, err := s.likeRepo.Exists(userID, postID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{PostID: postID, LikeCount: post.LikeCount, Liked: liked}, nil
}

// IsLiked 좋아요 여부만 조회
func (s *PostLikeService) IsLiked(userID, postID uint64) (bool, error) {
	return s.likeRepo.Exists(userID, postID)
}

func (s *PostLikeService) findPost(postID uint64) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}
