package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleForPoints(t *testing.T) {
	cases := []struct {
		points int
		want   UserRole
	}{
		{0, RoleSprout},
		{20, RoleSprout},
		{99, RoleSprout},
		{100, RoleTrainee},
		{105, RoleTrainee},
		{599, RoleTrainee},
		{600, RoleExplorer},
		{610, RoleExplorer},
		{1999, RoleExplorer},
		{2000, RoleConscious},
		{4500, RoleDestroyer},
		{7499, RoleDestroyer},
		{7500, RoleCleaner},
		{999999, RoleCleaner},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, RoleForPoints(tc.points), "points=%d", tc.points)
	}
}

func TestRoleForPoints_NeverReturnsAdmin(t *testing.T) {
	for _, points := range []int{0, 100, 7500, 1 << 30} {
		assert.NotEqual(t, RoleAdmin, RoleForPoints(points))
	}
}

func TestIsHigherThan(t *testing.T) {
	assert.True(t, RoleTrainee.IsHigherThan(RoleSprout))
	assert.True(t, RoleCleaner.IsHigherThan(RoleDestroyer))
	assert.False(t, RoleSprout.IsHigherThan(RoleTrainee))
	assert.False(t, RoleSprout.IsHigherThan(RoleSprout))
}

func TestIsHigherThan_AdminExcludedBothSides(t *testing.T) {
	// 관리자는 서열 비교 양방향 모두 false
	assert.False(t, RoleAdmin.IsHigherThan(RoleSprout))
	assert.False(t, RoleAdmin.IsHigherThan(RoleCleaner))
	assert.False(t, RoleSprout.IsHigherThan(RoleAdmin))
	assert.False(t, RoleCleaner.IsHigherThan(RoleAdmin))
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "디톡스새싹", RoleSprout.Label())
	assert.Equal(t, "브레인클리너", RoleCleaner.Label())
	assert.Equal(t, "관리자", RoleAdmin.Label())
}
