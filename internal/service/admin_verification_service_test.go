package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
)

func newAdminVerificationService(db *gorm.DB) *AdminVerificationService {
	return NewAdminVerificationService(
		db,
		repository.NewVerificationRepository(db),
		newPointService(db),
		nil,
	)
}

func seedVerification(t *testing.T, db *gorm.DB, userID, postID uint64) *domain.Verification {
	t.Helper()
	verification := &domain.Verification{UserID: userID, PostID: postID, Status: domain.VerificationPending}
	require.NoError(t, db.Create(verification).Error)
	return verification
}

func TestApprove_AwardsCertificationPoints(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminVerificationService(db)
	user := seedUser(t, db, domain.RoleSprout, 0)
	verification := seedVerification(t, db, user.ID, 1)

	approved, err := svc.Approve(context.Background(), verification.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationApproved, approved.Status)

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 50, got.TotalPoint)
	assert.Equal(t, 50, got.RemainingPoint)
	assert.EqualValues(t, 1, historyCount(t, db, user.ID))
}

func TestApprove_PromotesAtThreshold(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminVerificationService(db)
	user := seedUser(t, db, domain.RoleSprout, 60)
	verification := seedVerification(t, db, user.ID, 1)

	_, err := svc.Approve(context.Background(), verification.ID)
	require.NoError(t, err)

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 110, got.TotalPoint)
	assert.Equal(t, domain.RoleTrainee, got.Role)
}

func TestReject_NoPoints(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminVerificationService(db)
	user := seedUser(t, db, domain.RoleSprout, 0)
	verification := seedVerification(t, db, user.ID, 1)

	rejected, err := svc.Reject(context.Background(), verification.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationRejected, rejected.Status)

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 0, got.TotalPoint)
	assert.EqualValues(t, 0, historyCount(t, db, user.ID))
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminVerificationService(db)
	user := seedUser(t, db, domain.RoleSprout, 0)
	verification := seedVerification(t, db, user.ID, 1)

	_, err := svc.Approve(context.Background(), verification.ID)
	require.NoError(t, err)

	// 같은 건을 다시 승인하거나 거절할 수 없다
	_, err = svc.Approve(context.Background(), verification.ID)
	assert.ErrorIs(t, err, common.ErrAlreadyProcessed)
	_, err = svc.Reject(context.Background(), verification.ID)
	assert.ErrorIs(t, err, common.ErrAlreadyProcessed)

	// 포인트는 한 번만 적립
	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 50, got.TotalPoint)
	assert.EqualValues(t, 1, historyCount(t, db, user.ID))
}
