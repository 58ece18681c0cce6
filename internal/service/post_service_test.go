package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/event"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
)

func newPostService(db *gorm.DB, bus *event.Bus) *PostService {
	verificationSvc := NewVerificationService(
		repository.NewVerificationRepository(db),
		repository.NewUserRepository(db),
		nil,
	)
	return NewPostService(
		db,
		repository.NewPostRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewFollowRepository(db),
		verificationSvc,
		bus,
		nil,
	)
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *domain.Category {
	t.Helper()
	category := &domain.Category{Name: name}
	require.NoError(t, db.FirstOrCreate(category, domain.Category{Name: name}).Error)
	return category
}

func TestPostService_Create_FreeCategory(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus()
	svc := newPostService(db, bus)
	user := seedUser(t, db, domain.RoleSprout, 0)
	category := seedCategory(t, db, domain.CategoryFree)

	var published []event.PostCreated
	bus.SubscribePostCreated(func(e event.PostCreated) error {
		published = append(published, e)
		return nil
	})

	post, err := svc.Create(context.Background(), user.ID, user.Role, CreatePostInput{
		CategoryID: category.ID,
		Title:      "오늘의 디톡스",
		Content:    "폰 안 본 지 3시간",
	})
	require.NoError(t, err)
	assert.NotZero(t, post.ID)

	// 커밋 후 이벤트가 발행된다
	require.Len(t, published, 1)
	assert.Equal(t, post.ID, published[0].Post.ID)
}

func TestPostService_Create_NoticeAdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db, event.NewBus())
	user := seedUser(t, db, domain.RoleSprout, 0)
	admin := seedUser(t, db, domain.RoleAdmin, 1)
	category := seedCategory(t, db, domain.CategoryNotice)

	_, err := svc.Create(context.Background(), user.ID, user.Role, CreatePostInput{
		CategoryID: category.ID,
		Title:      "공지",
		Content:    "내용",
	})
	assert.ErrorIs(t, err, common.ErrForbidden)

	_, err = svc.Create(context.Background(), admin.ID, admin.Role, CreatePostInput{
		CategoryID: category.ID,
		Title:      "공지",
		Content:    "내용",
	})
	assert.NoError(t, err)
}

func TestPostService_Create_VerificationRequiresImage(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db, event.NewBus())
	user := seedUser(t, db, domain.RoleSprout, 0)
	category := seedCategory(t, db, domain.CategoryVerification)

	_, err := svc.Create(context.Background(), user.ID, user.Role, CreatePostInput{
		CategoryID: category.ID,
		Title:      "인증합니다",
		Content:    "내용",
	})
	assert.ErrorIs(t, err, common.ErrVerificationImage)
}

func TestPostService_Create_VerificationCreatesPending(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db, event.NewBus())
	user := seedUser(t, db, domain.RoleSprout, 0)
	category := seedCategory(t, db, domain.CategoryVerification)

	imageURL := "https://cdn.example.com/proof.jpg"
	detox := 6
	post, err := svc.Create(context.Background(), user.ID, user.Role, CreatePostInput{
		CategoryID:           category.ID,
		Title:                "6시간 디톡스 인증",
		Content:              "내용",
		VerificationImageURL: &imageURL,
		DetoxTime:            &detox,
	})
	require.NoError(t, err)

	var verification domain.Verification
	require.NoError(t, db.Where("post_id = ?", post.ID).First(&verification).Error)
	assert.Equal(t, domain.VerificationPending, verification.Status)
	assert.Equal(t, 6, verification.DetoxTime)

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 1, got.StreakDays)
}

func TestPostService_Create_VerificationDailyLimit(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db, event.NewBus())
	user := seedUser(t, db, domain.RoleSprout, 0)
	category := seedCategory(t, db, domain.CategoryVerification)

	imageURL := "https://cdn.example.com/proof.jpg"
	input := CreatePostInput{
		CategoryID:           category.ID,
		Title:                "인증",
		Content:              "내용",
		VerificationImageURL: &imageURL,
	}
	_, err := svc.Create(context.Background(), user.ID, user.Role, input)
	require.NoError(t, err)

	// 인증게시판은 하루 1건
	_, err = svc.Create(context.Background(), user.ID, user.Role, input)
	assert.ErrorIs(t, err, common.ErrDailyLimitExceeded)
}

func TestPostService_Create_FreeDailyLimit(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db, event.NewBus())
	user := seedUser(t, db, domain.RoleSprout, 0)
	category := seedCategory(t, db, domain.CategoryFree)

	for i := 0; i < DailyLimitDefault; i++ {
		_, err := svc.Create(context.Background(), user.ID, user.Role, CreatePostInput{
			CategoryID: category.ID,
			Title:      fmt.Sprintf("게시글 %d", i),
			Content:    "내용",
		})
		require.NoError(t, err)
	}

	_, err := svc.Create(context.Background(), user.ID, user.Role, CreatePostInput{
		CategoryID: category.ID,
		Title:      "한도 초과",
		Content:    "내용",
	})
	assert.ErrorIs(t, err, common.ErrDailyLimitExceeded)
}

func TestPostService_UpdateAndDelete_Ownership(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db, event.NewBus())
	owner := seedUser(t, db, domain.RoleSprout, 0)
	other := seedUser(t, db, domain.RoleSprout, 1)
	post := seedPost(t, db, owner, domain.CategoryFree)

	_, err := svc.Update(post.ID, other.ID, UpdatePostInput{Title: "변조", Content: "내용"})
	assert.ErrorIs(t, err, common.ErrForbidden)

	err = svc.Delete(context.Background(), post.ID, other.ID, other.Role)
	assert.ErrorIs(t, err, common.ErrForbidden)

	// 관리자는 타인 게시글 삭제 가능
	err = svc.Delete(context.Background(), post.ID, other.ID, domain.RoleAdmin)
	assert.NoError(t, err)
}

func TestPostService_GetFeed(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db, event.NewBus())
	me := seedUser(t, db, domain.RoleSprout, 0)
	followed := seedUser(t, db, domain.RoleSprout, 1)
	stranger := seedUser(t, db, domain.RoleSprout, 2)

	seedPost(t, db, followed, domain.CategoryFree)
	seedPost(t, db, stranger, domain.CategoryFree)
	require.NoError(t, db.Create(&domain.Follow{FollowerID: me.ID, FollowingID: followed.ID}).Error)

	posts, total, err := svc.GetFeed(me.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, posts, 1)
	assert.Equal(t, followed.ID, posts[0].UserID)
}
