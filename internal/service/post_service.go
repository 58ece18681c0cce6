package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/event"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
	"github.com/dd-blog/braincleaner-backend/pkg/cache"
	"github.com/dd-blog/braincleaner-backend/pkg/logger"
)

// 카테고리별 1일 작성 한도
const (
	DailyLimitVerification = 1
	DailyLimitDefault      = 10
	HotPostCount           = 5
)

// CreatePostInput 게시글 생성 요청
type CreatePostInput struct {
	CategoryID           uint64
	Title                string
	Content              string
	ImageURLs            []string
	VerificationImageURL *string
	DetoxTime            *int
}

// UpdatePostInput 게시글 수정 요청
type UpdatePostInput struct {
	Title     string
	Content   string
	ImageURLs []string
}

// PostService 게시글 CRUD와 카테고리별 작성 규칙 처리
type PostService struct {
	db                  *gorm.DB
	postRepo            repository.PostRepository
	categoryRepo        repository.CategoryRepository
	followRepo          repository.FollowRepository
	verificationService *VerificationService
	eventBus            *event.Bus
	cacheService        cache.Service
}

// NewPostService creates a post service
func NewPostService(
	db *gorm.DB,
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	followRepo repository.FollowRepository,
	verificationService *VerificationService,
	eventBus *event.Bus,
	cacheService cache.Service,
) *PostService {
	return &PostService{
		db:                  db,
		postRepo:            postRepo,
		categoryRepo:        categoryRepo,
		followRepo:          followRepo,
		verificationService: verificationService,
		eventBus:            eventBus,
		cacheService:        cacheService,
	}
}

// Create 게시글 작성. 공지사항은 관리자만, 인증게시판은 인증 이미지 필수이며
// PENDING 인증 요청이 함께 생성된다. 포인트 적립은 커밋 후 이벤트로 처리된다.
func (s *PostService) Create(ctx context.Context, userID uint64, role domain.UserRole, input CreatePostInput) (*domain.Post, error) {
	category, err := s.categoryRepo.FindByID(input.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrCategoryNotFound
		}
		return nil, err
	}

	if category.Name == domain.CategoryNotice && role != domain.RoleAdmin {
		return nil, common.ErrForbidden
	}
	if category.Name == domain.CategoryVerification {
		if input.VerificationImageURL == nil || *input.VerificationImageURL == "" {
			return nil, common.ErrVerificationImage
		}
	}

	if err := s.checkDailyLimit(userID, category); err != nil {
		return nil, err
	}

	post := &domain.Post{
		UserID:     userID,
		CategoryID: category.ID,
		Title:      input.Title,
		Content:    input.Content,
		ImageURLs:  input.ImageURLs,
	}
	if category.Name == domain.CategoryVerification {
		post.VerificationImageURL = input.VerificationImageURL
		post.DetoxTime = input.DetoxTime
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.postRepo.WithTx(tx).Create(post); err != nil {
			return err
		}
		if category.Name == domain.CategoryVerification {
			if _, err := s.verificationService.CreateForPost(tx, post); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	post.Category = category
	// 커밋 이후에만 발행한다. 적립 실패가 게시글 작성을 막지 않는다.
	if s.eventBus != nil {
		s.eventBus.PublishPostCreated(event.PostCreated{Post: post})
	}
	if category.Name == domain.CategoryVerification {
		s.invalidateWeekly(ctx, userID)
	}
	return post, nil
}

// checkDailyLimit 오늘 자정 기준 카테고리별 작성 횟수 제한.
// 인증게시판 1건, 정보공유/자유게시판 10건. 공지사항은 제한 없음.
func (s *PostService) checkDailyLimit(userID uint64, category *domain.Category) error {
	var limit int64
	switch category.Name {
	case domain.CategoryVerification:
		limit = DailyLimitVerification
	case domain.CategoryInfo, domain.CategoryFree:
		limit = DailyLimitDefault
	default:
		return nil
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := s.postRepo.CountByUserAndCategoryBetween(userID, category.ID, startOfDay, startOfDay.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	if count >= limit {
		return common.ErrDailyLimitExceeded
	}
	return nil
}

// GetByID 게시글 조회. 조회수가 1 증가한다.
func (s *PostService) GetByID(id uint64) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}

	if err := s.postRepo.IncrementViewCount(id); err != nil {
		logger.GetLogger().Warn().Err(err).Uint64("post_id", id).Msg("조회수 증가 실패")
	} else {
		post.ViewCount++
	}
	return post, nil
}

// GetAll 전체 게시글 목록
func (s *PostService) GetAll(page, limit int, sortField string, desc bool) ([]*domain.Post, int64, error) {
	return s.postRepo.FindAll(page, limit, sortField, desc)
}

// GetByCategory 카테고리별 게시글 목록
func (s *PostService) GetByCategory(categoryID uint64, page, limit int, sortField string, desc bool) ([]*domain.Post, int64, error) {
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, common.ErrCategoryNotFound
		}
		return nil, 0, err
	}
	return s.postRepo.FindByCategory(categoryID, page, limit, sortField, desc)
}

// GetByUser 특정 사용자의 게시글 목록
func (s *PostService) GetByUser(userID uint64, page, limit int) ([]*domain.Post, int64, error) {
	return s.postRepo.FindByUser(userID, page, limit)
}

// GetFeed 팔로우한 사용자들의 게시글 피드
func (s *PostService) GetFeed(userID uint64, page, limit int) ([]*domain.Post, int64, error) {
	followingIDs, err := s.followRepo.FindFollowingIDs(userID)
	if err != nil {
		return nil, 0, err
	}
	if len(followingIDs) == 0 {
		return []*domain.Post{}, 0, nil
	}
	return s.postRepo.FindByUsers(followingIDs, page, limit)
}

// GetHotPosts 조회수 상위 게시글. 캐시 우선 조회.
func (s *PostService) GetHotPosts(ctx context.Context) ([]*domain.Post, error) {
	if s.cacheService != nil {
		var cached []*domain.Post
		if err := s.cacheService.GetHotPosts(ctx, &cached); err == nil {
			return cached, nil
		}
	}

	posts, err := s.postRepo.FindHot(HotPostCount)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		if err := s.cacheService.SetHotPosts(ctx, posts); err != nil {
			logger.GetLogger().Warn().Err(err).Msg("핫게시물 캐시 저장 실패")
		}
	}
	return posts, nil
}

// Update 게시글 수정. 작성자 본인만 가능.
func (s *PostService) Update(id, userID uint64, input UpdatePostInput) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}
	if post.UserID != userID {
		return nil, common.ErrForbidden
	}

	post.Title = input.Title
	post.Content = input.Content
	post.ImageURLs = input.ImageURLs
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete 게시글 삭제. 작성자 본인 또는 관리자만 가능.
func (s *PostService) Delete(ctx context.Context, id, userID uint64, role domain.UserRole) error {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrPostNotFound
		}
		return err
	}
	if post.UserID != userID && role != domain.RoleAdmin {
		return common.ErrForbidden
	}

	if err := s.postRepo.Delete(id); err != nil {
		return err
	}

	if s.cacheService != nil {
		if err := s.cacheService.InvalidateHotPosts(ctx); err != nil {
			logger.GetLogger().Warn().Err(err).Msg("핫게시물 캐시 무효화 실패")
		}
	}
	return nil
}

func (s *PostService) invalidateWeekly(ctx context.Context, userID uint64) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.InvalidateWeeklyVerification(ctx, userID); err != nil {
		logger.GetLogger().Warn().Err(err).Uint64("user_id", userID).Msg("주간 인증 현황 캐시 무효화 실패")
	}
}
