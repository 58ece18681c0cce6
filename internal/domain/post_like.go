package domain

import "time"

// PostLike 게시글 좋아요. (user_id, post_id) 유니크로 중복 좋아요를 막는다.
type PostLike struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;uniqueIndex:uniq_user_post;not null" json:"user_id"`
	PostID    uint64    `gorm:"column:post_id;uniqueIndex:uniq_user_post;index;not null" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName gorm 테이블명
func (PostLike) TableName() string { return "post_likes" }
