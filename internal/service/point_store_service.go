package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
	"github.com/dd-blog/braincleaner-backend/pkg/logger"
)

// PointStoreService 포인트 상점. 아이템 구매 시 보유 포인트(remaining_point)만
// 차감되며 누적 포인트(total_point)와 등급은 영향을 받지 않는다.
type PointStoreService struct {
	db           *gorm.DB
	itemRepo     repository.PointItemRepository
	purchaseRepo repository.PointPurchaseRepository
	userRepo     repository.UserRepository
	histRepo     repository.PointHistoryRepository
}

// NewPointStoreService creates a point store service
func NewPointStoreService(
	db *gorm.DB,
	itemRepo repository.PointItemRepository,
	purchaseRepo repository.PointPurchaseRepository,
	userRepo repository.UserRepository,
	histRepo repository.PointHistoryRepository,
) *PointStoreService {
	return &PointStoreService{
		db:           db,
		itemRepo:     itemRepo,
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		histRepo:     histRepo,
	}
}

// GetItems 상점 아이템 목록 (가격 오름차순)
func (s *PointStoreService) GetItems() ([]*domain.PointItem, error) {
	return s.itemRepo.FindAll()
}

// GetItem 아이템 단건 조회
func (s *PointStoreService) GetItem(id uint64) (*domain.PointItem, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// Purchase 아이템 구매. 중복 구매 불가, 잔액 부족 시 실패.
// 차감과 이력 기록은 한 트랜잭션으로 처리된다.
func (s *PointStoreService) Purchase(userID, itemID uint64) (*domain.PointItemPurchase, error) {
	item, err := s.GetItem(itemID)
	if err != nil {
		return nil, err
	}

	exists, err := s.purchaseRepo.ExistsByUserAndItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrAlreadyPurchased
	}

	purchase := &domain.PointItemPurchase{UserID: userID, ItemID: itemID}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)
		user, err := userRepo.FindByIDForUpdate(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrUserNotFound
			}
			return err
		}
		if user.RemainingPoint < item.Price {
			return common.ErrInsufficientPoints
		}

		user.RemainingPoint -= item.Price
		if err := userRepo.Update(user); err != nil {
			return err
		}
		if err := s.histRepo.WithTx(tx).Create(&domain.PointHistory{
			UserID:      userID,
			PointChange: -item.Price,
			Type:        domain.PointTypeDecrease,
		}); err != nil {
			return err
		}
		return s.purchaseRepo.WithTx(tx).Create(purchase)
	})
	if err != nil {
		return nil, err
	}

	logger.GetLogger().Info().
		Uint64("user_id", userID).
		Uint64("item_id", itemID).
		Int("price", item.Price).
		Msg("포인트 아이템 구매 완료")

	purchase.Item = item
	return purchase, nil
}

// GetMyPurchases 내 구매 목록 (최근 구매 순)
func (s *PointStoreService) GetMyPurchases(userID uint64) ([]*domain.PointItemPurchase, error) {
	return s.purchaseRepo.FindByUser(userID)
}

// Owns 특정 아이템 보유 여부
func (s *PointStoreService) Owns(userID, itemID uint64) (bool, error) {
	return s.purchaseRepo.ExistsByUserAndItem(userID, itemID)
}
