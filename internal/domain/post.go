package domain

import "time"

// Post 게시글. 이미지 URL 배열은 JSON 직렬화로 저장한다.
type Post struct {
	ID                   uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID               uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	User                 *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CategoryID           uint64    `gorm:"column:category_id;index;not null" json:"category_id"`
	Category             *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Title                string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content              string    `gorm:"column:content;type:text" json:"content"`
	ImageURLs            []string  `gorm:"column:image_urls;serializer:json" json:"image_urls"`
	VerificationImageURL *string   `gorm:"column:verification_image_url;type:varchar(500)" json:"verification_image_url,omitempty"`
	DetoxTime            *int      `gorm:"column:detox_time" json:"detox_time,omitempty"` // 디톡스 시간(시간 단위), 인증게시판 전용
	ViewCount            int       `gorm:"column:view_count;default:0" json:"view_count"`
	LikeCount            int       `gorm:"column:like_count;default:0" json:"like_count"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName gorm 테이블명
func (Post) TableName() string { return "posts" }
