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

func newReportService(db *gorm.DB) *ReportService {
	return NewReportService(
		db,
		repository.NewReportRepository(db),
		repository.NewPostRepository(db),
		nil,
	)
}

func TestReportCreate_SelfReport(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	author := seedUser(t, db, domain.RoleSprout, 0)
	post := seedPost(t, db, author, domain.CategoryFree)

	_, err := svc.Create(author.ID, post.ID, "신고 사유")
	assert.ErrorIs(t, err, common.ErrSelfReport)
}

func TestReportApprove_DeletesPostAndApprovesTogether(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	author := seedUser(t, db, domain.RoleSprout, 0)
	reporter := seedUser(t, db, domain.RoleSprout, 1)
	admin := seedUser(t, db, domain.RoleAdmin, 2)
	post := seedPost(t, db, author, domain.CategoryFree)

	report, err := svc.Create(reporter.ID, post.ID, "부적절한 내용")
	require.NoError(t, err)

	approved, err := svc.Approve(context.Background(), report.ID, admin.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.ReportApproved, approved.Status)
	assert.Nil(t, approved.PostID)

	// 게시글은 함께 삭제되고 신고 이력은 남는다
	err = db.First(&domain.Post{}, post.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	var stored domain.Report
	require.NoError(t, db.First(&stored, report.ID).Error)
	assert.Equal(t, domain.ReportApproved, stored.Status)
	assert.Nil(t, stored.PostID)
}

func TestReportApprove_PostAlreadyDeleted(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	author := seedUser(t, db, domain.RoleSprout, 0)
	reporter := seedUser(t, db, domain.RoleSprout, 1)
	admin := seedUser(t, db, domain.RoleAdmin, 2)
	post := seedPost(t, db, author, domain.CategoryFree)

	report, err := svc.Create(reporter.ID, post.ID, "부적절한 내용")
	require.NoError(t, err)
	require.NoError(t, db.Delete(&domain.Post{}, post.ID).Error)

	approved, err := svc.Approve(context.Background(), report.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportApproved, approved.Status)
}

func TestReportApprove_AlreadyProcessed(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	author := seedUser(t, db, domain.RoleSprout, 0)
	reporter := seedUser(t, db, domain.RoleSprout, 1)
	admin := seedUser(t, db, domain.RoleAdmin, 2)
	post := seedPost(t, db, author, domain.CategoryFree)

	report, err := svc.Create(reporter.ID, post.ID, "부적절한 내용")
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), report.ID, admin.ID)
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), report.ID, admin.ID)
	assert.ErrorIs(t, err, common.ErrAlreadyProcessed)
	_, err = svc.Reject(report.ID)
	assert.ErrorIs(t, err, common.ErrAlreadyProcessed)
}

func TestReportReject_KeepsPost(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	author := seedUser(t, db, domain.RoleSprout, 0)
	reporter := seedUser(t, db, domain.RoleSprout, 1)
	post := seedPost(t, db, author, domain.CategoryFree)

	report, err := svc.Create(reporter.ID, post.ID, "부적절한 내용")
	require.NoError(t, err)

	rejected, err := svc.Reject(report.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.ReportRejected, rejected.Status)
	require.NoError(t, db.First(&domain.Post{}, post.ID).Error)
}
