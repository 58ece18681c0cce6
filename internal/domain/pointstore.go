package domain

import "time"

// PointItem 포인트 상점 아이템 (이모티콘)
type PointItem struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"column:description;type:varchar(200)" json:"description"`
	Price       int       `gorm:"column:price;not null" json:"price"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(500)" json:"image_url"`
	Code        string    `gorm:"column:code;type:varchar(50)" json:"code"` // 이모지 치환용 코드 (예: ":zeus:")
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName gorm 테이블명
func (PointItem) TableName() string { return "point_items" }

// PointItemPurchase 아이템 구매 이력. 중복 구매 방지에 사용된다.
type PointItemPurchase struct {
	ID          uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      uint64     `gorm:"column:user_id;uniqueIndex:uniq_user_item;not null" json:"user_id"`
	ItemID      uint64     `gorm:"column:item_id;uniqueIndex:uniq_user_item;not null" json:"item_id"`
	Item        *PointItem `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	PurchasedAt time.Time  `gorm:"column:purchased_at;autoCreateTime" json:"purchased_at"`
}

// TableName gorm 테이블명
func (PointItemPurchase) TableName() string { return "point_item_purchases" }
