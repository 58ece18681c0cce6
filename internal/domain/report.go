package domain

import "time"

// ReportStatus 신고 처리 상태
type ReportStatus string

const (
	ReportPending  ReportStatus = "PENDING"
	ReportApproved ReportStatus = "APPROVED"
	ReportRejected ReportStatus = "REJECTED"
)

// Report 게시글 신고. 게시글이 삭제되어도 신고 이력은 남는다 (PostID nullable).
type Report struct {
	ID         uint64       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID     *uint64      `gorm:"column:post_id;index" json:"post_id,omitempty"`
	Post       *Post        `gorm:"foreignKey:PostID" json:"post,omitempty"`
	AuthorID   *uint64      `gorm:"column:author_id" json:"author_id,omitempty"` // 신고된 게시글 작성자
	Author     *User        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	ReporterID uint64       `gorm:"column:reporter_id;index;not null" json:"reporter_id"`
	Reporter   *User        `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
	Reason     string       `gorm:"column:reason;type:text;not null" json:"reason"`
	Status     ReportStatus `gorm:"column:status;type:varchar(20);index;not null" json:"status"`
	CreatedAt  time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName gorm 테이블명
func (Report) TableName() string { return "reports" }
