package domain

import "time"

// Comment 댓글. ParentID로 1단계 대댓글을 표현한다 (계층 구조는 프론트에서 조립).
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    uint64    `gorm:"column:post_id;index;not null" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ParentID  *uint64   `gorm:"column:parent_id;index" json:"parent_id,omitempty"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName gorm 테이블명
func (Comment) TableName() string { return "comments" }
