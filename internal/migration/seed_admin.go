package migration

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/config"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/pkg/logger"
)

// seedAdmin 설정된 관리자 계정이 없으면 생성한다
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.GetLogger().Warn().Msg("관리자 계정 설정이 없어 시드를 건너뜁니다")
		return nil
	}

	var existing domain.User
	err := db.Where("email = ?", cfg.Admin.Email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	nickname := cfg.Admin.Nickname
	if nickname == "" {
		nickname = "관리자"
	}
	admin := &domain.User{
		Email:    cfg.Admin.Email,
		Password: string(hashed),
		Nickname: nickname,
		Role:     domain.RoleAdmin,
		Status:   domain.StatusActive,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.GetLogger().Info().Str("email", cfg.Admin.Email).Msg("관리자 계정 시드 완료")
	return nil
}
