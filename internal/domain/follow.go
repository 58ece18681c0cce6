package domain

import "time"

// Follow 팔로우 관계. follower가 following을 구독한다.
type Follow struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID  uint64    `gorm:"column:follower_id;uniqueIndex:uniq_follow;index;not null" json:"follower_id"`
	Follower    *User     `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	FollowingID uint64    `gorm:"column:following_id;uniqueIndex:uniq_follow;index;not null" json:"following_id"`
	Following   *User     `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName gorm 테이블명
func (Follow) TableName() string { return "follows" }
