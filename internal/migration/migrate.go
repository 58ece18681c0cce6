package migration

import (
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/config"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

// Run executes AutoMigrate for all tables and seeds default data if empty.
func Run(db *gorm.DB, cfg *config.Config) error {
	// 1. AutoMigrate - 테이블 없으면 생성, 있으면 skip
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Post{},
		&domain.Comment{},
		&domain.PostLike{},
		&domain.Follow{},
		&domain.PointHistory{},
		&domain.PointItem{},
		&domain.PointItemPurchase{},
		&domain.Verification{},
		&domain.Report{},
	); err != nil {
		return err
	}

	// 2. Seed - 각 테이블이 비어있을 때만 삽입
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedPointItems(db); err != nil {
		return err
	}
	return seedAdmin(db, cfg)
}

func seedCategories(db *gorm.DB) error {
	var count int64
	db.Model(&domain.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []domain.Category{
		{Name: domain.CategoryVerification},
		{Name: domain.CategoryInfo},
		{Name: domain.CategoryFree},
		{Name: domain.CategoryNotice},
	}
	return db.Create(&categories).Error
}
