package domain

import "time"

// 시드되는 게시판 카테고리 이름. 포인트 적립 대상 판정에 그대로 쓰인다.
const (
	CategoryVerification = "인증게시판"
	CategoryInfo         = "정보공유게시판"
	CategoryFree         = "자유게시판"
	CategoryNotice       = "공지사항"
)

// Category 게시판 카테고리
type Category struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(50);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName gorm 테이블명
func (Category) TableName() string { return "categories" }
