package domain

import "time"

// 포인트 히스토리 type 라벨. 기존 데이터와 호환되는 한글 라벨을 유지한다.
const (
	PointTypeIncrease = "증가"
	PointTypeDecrease = "감소"
)

// PointHistory 포인트 변동 이력. append-only — 수정/삭제하지 않는다.
type PointHistory struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"-"`
	PointChange int       `gorm:"column:point_change;not null" json:"point_change"` // 적립 양수, 사용 음수
	Type        string    `gorm:"column:type;type:varchar(30);not null" json:"type"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName gorm 테이블명
func (PointHistory) TableName() string { return "point_history" }
