package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
)

func TestUpdateStreak(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)
	threeDaysAgo := now.AddDate(0, 0, -3)

	tests := []struct {
		name       string
		last       *time.Time
		streak     int
		wantStreak int
	}{
		{"첫 인증", nil, 0, 1},
		{"어제 인증 후 연속", &yesterday, 5, 6},
		{"오늘 이미 인증", &now, 5, 5},
		{"연속 끊김", &threeDaysAgo, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &domain.User{StreakDays: tt.streak, LastVerificationDate: tt.last}
			updateStreak(user, now)
			assert.Equal(t, tt.wantStreak, user.StreakDays)
			require.NotNil(t, user.LastVerificationDate)
			assert.Equal(t, dateOnly(now), dateOnly(*user.LastVerificationDate))
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2025-06-15은 일요일, 주 시작은 06-09 월요일
	sunday := time.Date(2025, 6, 15, 23, 0, 0, 0, time.Local)
	monday := time.Date(2025, 6, 9, 10, 0, 0, 0, time.Local)

	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local), startOfWeek(sunday))
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local), startOfWeek(monday))
}

func TestVerificationService_CreateForPost(t *testing.T) {
	db := newTestDB(t)
	svc := NewVerificationService(
		repository.NewVerificationRepository(db),
		repository.NewUserRepository(db),
		nil,
	)
	user := seedUser(t, db, domain.RoleSprout, 0)
	post := seedPost(t, db, user, domain.CategoryVerification)
	detox := 8
	post.DetoxTime = &detox

	var created *domain.Verification
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = svc.CreateForPost(tx, post)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, domain.VerificationPending, created.Status)
	assert.Equal(t, post.ID, created.PostID)
	assert.Equal(t, 8, created.DetoxTime)

	got := reloadUser(t, db, user.ID)
	assert.Equal(t, 1, got.StreakDays)
	require.NotNil(t, got.LastVerificationDate)
}

func TestVerificationService_UpdateDetoxTime_Guards(t *testing.T) {
	db := newTestDB(t)
	svc := NewVerificationService(
		repository.NewVerificationRepository(db),
		repository.NewUserRepository(db),
		nil,
	)
	user := seedUser(t, db, domain.RoleSprout, 0)
	other := seedUser(t, db, domain.RoleSprout, 1)
	verification := &domain.Verification{UserID: user.ID, PostID: 1, Status: domain.VerificationApproved}
	require.NoError(t, db.Create(verification).Error)

	_, err := svc.UpdateDetoxTime(verification.ID, other.ID, 4)
	assert.ErrorIs(t, err, common.ErrForbidden)

	// 처리 완료된 건은 수정 불가
	_, err = svc.UpdateDetoxTime(verification.ID, user.ID, 4)
	assert.ErrorIs(t, err, common.ErrAlreadyProcessed)
}

func TestVerificationService_WeeklyStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewVerificationService(
		repository.NewVerificationRepository(db),
		repository.NewUserRepository(db),
		nil,
	)
	user := seedUser(t, db, domain.RoleSprout, 0)
	user.StreakDays = 3
	require.NoError(t, db.Save(user).Error)

	// 이번 주 PENDING 1건, 거절 1건 (거절 건은 현황에 포함되지 않는다)
	require.NoError(t, db.Create(&domain.Verification{
		UserID: user.ID, PostID: 1, Status: domain.VerificationPending,
	}).Error)
	require.NoError(t, db.Create(&domain.Verification{
		UserID: user.ID, PostID: 2, Status: domain.VerificationRejected,
	}).Error)

	status, err := svc.GetWeeklyStatus(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, status.StreakDays)

	verified := 0
	for _, done := range status.Days {
		if done {
			verified++
		}
	}
	assert.Equal(t, 1, verified)
}
