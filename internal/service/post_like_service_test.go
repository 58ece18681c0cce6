package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
)

func newLikeService(db *gorm.DB) *PostLikeService {
	return NewPostLikeService(
		repository.NewPostLikeRepository(db),
		repository.NewPostRepository(db),
	)
}

func postLikeCount(t *testing.T, db *gorm.DB, postID uint64) int {
	t.Helper()
	var post domain.Post
	require.NoError(t, db.First(&post, postID).Error)
	return post.LikeCount
}

func TestLike_IncrementsCount(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	author := seedUser(t, db, domain.RoleSprout, 0)
	viewer := seedUser(t, db, domain.RoleSprout, 1)
	post := seedPost(t, db, author, domain.CategoryFree)

	status, err := svc.Like(viewer.ID, post.ID)
	require.NoError(t, err)

	assert.True(t, status.Liked)
	assert.Equal(t, 1, status.LikeCount)
	assert.Equal(t, 1, postLikeCount(t, db, post.ID))
}

func TestLike_DuplicateIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	author := seedUser(t, db, domain.RoleSprout, 0)
	viewer := seedUser(t, db, domain.RoleSprout, 1)
	post := seedPost(t, db, author, domain.CategoryFree)

	_, err := svc.Like(viewer.ID, post.ID)
	require.NoError(t, err)

	// 두 번째 좋아요는 현재 상태를 그대로 돌려준다
	status, err := svc.Like(viewer.ID, post.ID)
	require.NoError(t, err)

	assert.True(t, status.Liked)
	assert.Equal(t, 1, status.LikeCount)
	assert.Equal(t, 1, postLikeCount(t, db, post.ID))
}

func TestLike_CountMatchesStoredValue(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	author := seedUser(t, db, domain.RoleSprout, 0)
	post := seedPost(t, db, author, domain.CategoryFree)

	// 다른 사용자의 좋아요가 끼어들어도 응답 수치는 저장된 값을 따른다
	for i := 1; i <= 3; i++ {
		viewer := seedUser(t, db, domain.RoleSprout, i)
		status, err := svc.Like(viewer.ID, post.ID)
		require.NoError(t, err)
		assert.Equal(t, postLikeCount(t, db, post.ID), status.LikeCount)
		assert.Equal(t, i, status.LikeCount)
	}
}

func TestUnlike_DecrementsCount(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	author := seedUser(t, db, domain.RoleSprout, 0)
	viewer := seedUser(t, db, domain.RoleSprout, 1)
	post := seedPost(t, db, author, domain.CategoryFree)

	_, err := svc.Like(viewer.ID, post.ID)
	require.NoError(t, err)

	status, err := svc.Unlike(viewer.ID, post.ID)
	require.NoError(t, err)

	assert.False(t, status.Liked)
	assert.Equal(t, 0, status.LikeCount)
	assert.Equal(t, 0, postLikeCount(t, db, post.ID))
}

func TestUnlike_WithoutLike(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	author := seedUser(t, db, domain.RoleSprout, 0)
	viewer := seedUser(t, db, domain.RoleSprout, 1)
	post := seedPost(t, db, author, domain.CategoryFree)

	_, err := svc.Unlike(viewer.ID, post.ID)
	assert.ErrorIs(t, err, common.ErrNotLiked)
	assert.Equal(t, 0, postLikeCount(t, db, post.ID))
}

func TestLike_PostNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	viewer := seedUser(t, db, domain.RoleSprout, 0)

	_, err := svc.Like(viewer.ID, 9999)
	assert.ErrorIs(t, err, common.ErrPostNotFound)
}

func TestStatus_ReflectsViewer(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	author := seedUser(t, db, domain.RoleSprout, 0)
	liker := seedUser(t, db, domain.RoleSprout, 1)
	other := seedUser(t, db, domain.RoleSprout, 2)
	post := seedPost(t, db, author, domain.CategoryFree)

	_, err := svc.Like(liker.ID, post.ID)
	require.NoError(t, err)

	status, err := svc.Status(liker.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.Equal(t, 1, status.LikeCount)

	status, err = svc.Status(other.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.Equal(t, 1, status.LikeCount)
}
