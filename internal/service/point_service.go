package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
	pkglogger "github.com/dd-blog/braincleaner-backend/pkg/logger"
)

// 포인트 적립 상수. 카테고리명 → 적립량 매핑은 기존 데이터와 호환.
const (
	InfoPostPoints      = 20 // 정보공유게시판 글 작성
	FreePostPoints      = 10 // 자유게시판 글 작성
	CertificationPoints = 50 // 인증 승인
)

// postRewardForCategory 카테고리별 적립량.
// 인증게시판은 승인 경로에서 따로 적립하므로 0 (이중 적립 방지).
func postRewardForCategory(categoryName string) int {
	switch categoryName {
	case domain.CategoryInfo:
		return InfoPostPoints
	case domain.CategoryFree:
		return FreePostPoints
	default:
		return 0
	}
}

// PointService is the point ledger: it applies accrual deltas to a user's
// balances, appends the history record, and evaluates automatic tier
// promotion. It owns no persistent state of its own.
type PointService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	histRepo  repository.PointHistoryRepository
}

// NewPointService creates a new PointService
func NewPointService(db *gorm.DB, userRepo repository.UserRepository, histRepo repository.PointHistoryRepository) *PointService {
	return &PointService{
		db:       db,
		userRepo: userRepo,
		histRepo: histRepo,
	}
}

// AwardForNewPost accrues points for a newly created post based on its
// category. Non-eligible categories (인증게시판 포함) are a no-op: no
// history entry, no balance change, no promotion check.
//
// Called from the after-commit event handler; the caller logs and
// swallows any error so the already-committed post creation is never
// affected.
func (s *PointService) AwardForNewPost(post *domain.Post) error {
	if post == nil || post.Category == nil {
		return common.ErrPostNotFound
	}

	pointsToAdd := postRewardForCategory(post.Category.Name)
	if pointsToAdd == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.awardTx(tx, post.UserID, pointsToAdd)
	})
}

// AwardForVerificationApproval accrues the fixed certification reward.
// Runs inside the caller's transaction: a failure here rolls back the
// approval status change as well.
func (s *PointService) AwardForVerificationApproval(tx *gorm.DB, verification *domain.Verification) error {
	if verification == nil {
		return common.ErrNotFound
	}
	return s.awardTx(tx, verification.UserID, CertificationPoints)
}

// awardTx applies one accrual inside tx: lock user row, bump both
// balances, append exactly one history row, evaluate promotion, save.
func (s *PointService) awardTx(tx *gorm.DB, userID uint64, pointsToAdd int) error {
	users := s.userRepo.WithTx(tx)

	user, err := users.FindByIDForUpdate(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrUserNotFound
		}
		return fmt.Errorf("find user for accrual: %w", err)
	}

	user.TotalPoint += pointsToAdd
	user.RemainingPoint += pointsToAdd

	history := &domain.PointHistory{
		UserID:      user.ID,
		PointChange: pointsToAdd,
		Type:        domain.PointTypeIncrease,
	}
	if err := s.histRepo.WithTx(tx).Create(history); err != nil {
		return fmt.Errorf("append point history: %w", err)
	}

	s.maybePromote(user)

	if err := users.Update(user); err != nil {
		return fmt.Errorf("update user balances: %w", err)
	}

	pkglogger.GetLogger().Info().
		Uint64("user_id", user.ID).
		Int("point_change", pointsToAdd).
		Int("total_point", user.TotalPoint).
		Str("role", string(user.Role)).
		Msg("points accrued")

	return nil
}

// maybePromote 자동등업. 관리자 제외, 강등 없음 — 엄격히 상위 등급일 때만 변경.
// 영속화는 호출자 책임.
func (s *PointService) maybePromote(user *domain.User) {
	if user == nil || user.Role == domain.RoleAdmin {
		return
	}

	targetRole := domain.RoleForPoints(user.TotalPoint)
	if targetRole.IsHigherThan(user.Role) {
		user.Role = targetRole
	}
}

// GetHistory returns the user's point history, newest first
func (s *PointService) GetHistory(userID uint64, page, limit int) ([]*domain.PointHistory, int64, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, common.ErrUserNotFound
		}
		return nil, 0, err
	}
	return s.histRepo.FindByUser(userID, page, limit)
}
