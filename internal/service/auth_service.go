package service

import (
	"errors"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/common"
	"github.com/dd-blog/braincleaner-backend/internal/domain"
	"github.com/dd-blog/braincleaner-backend/internal/repository"
	"github.com/dd-blog/braincleaner-backend/pkg/jwt"
	"github.com/dd-blog/braincleaner-backend/pkg/logger"
)

// SignupInput 회원가입 요청
type SignupInput struct {
	Email     string
	Password  string
	Nickname  string
	DetoxGoal string
}

// TokenPair 액세스/리프레시 토큰 쌍
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService 회원가입, 로그인, 토큰 갱신 처리
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates an auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{userRepo: userRepo, jwtManager: jwtManager}
}

// Signup 회원가입. 이메일/닉네임 중복 검사 후 새싹 등급으로 시작한다.
func (s *AuthService) Signup(input SignupInput) (*domain.User, error) {
	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, common.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.FindByNickname(input.Nickname); err == nil {
		return nil, common.ErrNicknameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:    input.Email,
		Password: string(hashed),
		Nickname: input.Nickname,
		Role:     domain.RoleSprout,
		Status:   domain.StatusActive,
	}
	if input.DetoxGoal != "" {
		user.DetoxGoal = &input.DetoxGoal
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.GetLogger().Info().Uint64("user_id", user.ID).Msg("회원가입 완료")
	return user, nil
}

// Login 이메일/비밀번호 인증 후 토큰 발급. 리프레시 토큰은 사용자 레코드에 저장된다.
func (s *AuthService) Login(email, password string) (*domain.User, *TokenPair, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, common.ErrInvalidCredentials
	}
	if user.Status == domain.StatusSuspended {
		return nil, nil, common.ErrAccountSuspended
	}
	if user.Status == domain.StatusDeleted {
		return nil, nil, common.ErrUserNotFound
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Refresh 리프레시 토큰 검증 후 토큰 쌍을 재발급한다 (회전 방식).
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	if _, err := s.jwtManager.VerifyToken(refreshToken); err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.userRepo.FindByRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, err
	}
	return s.issueTokens(user)
}

// Logout 저장된 리프레시 토큰을 폐기한다.
func (s *AuthService) Logout(userID uint64) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}
	user.RefreshToken = nil
	return s.userRepo.Update(user)
}

func (s *AuthService) issueTokens(user *domain.User) (*TokenPair, error) {
	userID := strconv.FormatUint(user.ID, 10)
	accessToken, err := s.jwtManager.GenerateAccessToken(userID, user.Nickname, string(user.Role))
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	user.RefreshToken = &refreshToken
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
