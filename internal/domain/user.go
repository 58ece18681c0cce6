package domain

import (
	"time"
)

// UserRole 사용자 등급 (누적 포인트 기반 자동등업)
type UserRole string

// 등급 정의. ADMIN은 포인트 서열 밖의 센티널이다.
const (
	RoleSprout    UserRole = "ROLE_USER_SPROUT"    // 디톡스새싹
	RoleTrainee   UserRole = "ROLE_USER_TRAINEE"   // 절제수련생
	RoleExplorer  UserRole = "ROLE_USER_EXPLORER"  // 집중탐험가
	RoleConscious UserRole = "ROLE_USER_CONSCIOUS" // 선명한의식
	RoleDestroyer UserRole = "ROLE_USER_DESTROYER" // 도파민파괴자
	RoleCleaner   UserRole = "ROLE_USER_CLEANER"   // 브레인클리너
	RoleAdmin     UserRole = "ROLE_ADMIN"          // 관리자
)

type roleTier struct {
	Role      UserRole
	Label     string
	MinPoints int
}

// roleTiers 등급표, 최소 포인트 오름차순. 0포인트 바닥 등급이 있어
// RoleForPoints는 항상 매칭된다. ADMIN은 포함하지 않는다.
var roleTiers = []roleTier{
	{RoleSprout, "디톡스새싹", 0},
	{RoleTrainee, "절제수련생", 100},
	{RoleExplorer, "집중탐험가", 600},
	{RoleConscious, "선명한의식", 2000},
	{RoleDestroyer, "도파민파괴자", 4500},
	{RoleCleaner, "브레인클리너", 7500},
}

// RoleForPoints returns the highest tier whose minimum is <= totalPoints.
// 누적 포인트가 주어지면 해당하는 최고 등급 반환
func RoleForPoints(totalPoints int) UserRole {
	for i := len(roleTiers) - 1; i >= 0; i-- {
		if totalPoints >= roleTiers[i].MinPoints {
			return roleTiers[i].Role
		}
	}
	return RoleSprout
}

// minPoints returns the tier minimum, or -1 for roles outside the tier table
func (r UserRole) minPoints() int {
	for _, t := range roleTiers {
		if t.Role == r {
			return t.MinPoints
		}
	}
	return -1
}

// IsHigherThan reports whether r outranks other in the tier ordering.
// ADMIN은 서열 비교에서 제외: 어느 쪽이든 ADMIN이면 false
func (r UserRole) IsHigherThan(other UserRole) bool {
	if r == RoleAdmin || other == RoleAdmin {
		return false
	}
	return r.minPoints() > other.minPoints()
}

// Label returns the Korean display name for the role
func (r UserRole) Label() string {
	if r == RoleAdmin {
		return "관리자"
	}
	for _, t := range roleTiers {
		if t.Role == r {
			return t.Label
		}
	}
	return string(r)
}

// UserStatus 계정 상태
type UserStatus string

const (
	StatusActive    UserStatus = "ACTIVE"    // 계정활성
	StatusSuspended UserStatus = "SUSPENDED" // 계정정지
	StatusDeleted   UserStatus = "DELETED"   // 계정삭제
)

// User represents a member account.
// TotalPoint는 누적(감소 없음), RemainingPoint는 사용 가능 잔액.
type User struct {
	ID                   uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email                string     `gorm:"column:email;type:varchar(100);uniqueIndex;not null" json:"email"`
	Password             string     `gorm:"column:password;type:varchar(255)" json:"-"`
	Nickname             string     `gorm:"column:nickname;type:varchar(50);uniqueIndex;not null" json:"nickname"`
	RemainingPoint       int        `gorm:"column:remaining_point;default:0" json:"remaining_point"`
	TotalPoint           int        `gorm:"column:total_point;default:0" json:"total_point"`
	Role                 UserRole   `gorm:"column:role;type:varchar(30)" json:"role"`
	Status               UserStatus `gorm:"column:status;type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	RefreshToken         *string    `gorm:"column:refresh_token;type:varchar(500)" json:"-"`
	SSOProvider          *string    `gorm:"column:sso_provider;type:varchar(50)" json:"sso_provider,omitempty"`
	SocialID             *string    `gorm:"column:social_id;type:varchar(255)" json:"-"`
	ProfileImageURL      *string    `gorm:"column:profile_image_url;type:varchar(500)" json:"profile_image_url,omitempty"`
	StatusMessage        *string    `gorm:"column:status_message;type:varchar(200)" json:"status_message,omitempty"`
	DetoxGoal            *string    `gorm:"column:detox_goal;type:varchar(500)" json:"detox_goal,omitempty"`
	BirthDate            *time.Time `gorm:"column:birth_date;type:date" json:"birth_date,omitempty"`
	LastVerificationDate *time.Time `gorm:"column:last_verification_date;type:date" json:"last_verification_date,omitempty"`
	StreakDays           int        `gorm:"column:streak_days;default:0" json:"streak_days"`
	CreatedAt            time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName gorm 테이블명
func (User) TableName() string { return "users" }

// IsAdmin reports whether the user holds the admin sentinel role
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
