package domain

import "time"

// VerificationStatus 인증 요청 상태
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationApproved VerificationStatus = "APPROVED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// Verification 디톡스 인증 요청. 인증게시판 게시글과 1:1로 생성된다.
type Verification struct {
	ID        uint64             `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64             `gorm:"column:user_id;index;not null" json:"user_id"`
	User      *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PostID    uint64             `gorm:"column:post_id;uniqueIndex;not null" json:"post_id"`
	Post      *Post              `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Status    VerificationStatus `gorm:"column:status;type:varchar(20);index;not null" json:"status"`
	DetoxTime int                `gorm:"column:detox_time;default:0" json:"detox_time"` // 인증한 디톡스 시간(시간 단위)
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName gorm 테이블명
func (Verification) TableName() string { return "verifications" }
