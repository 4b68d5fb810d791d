package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/swiftticket/swiftticket/internal/domain/permission"
	vo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

func TestDefaultPolicies(t *testing.T) {
	e, err := NewDefaultMemoryEnforcer(logger.NewNopLogger())
	require.NoError(t, err)

	tests := []struct {
		role     permission.Role
		resource vo.Resource
		action   vo.Action
		want     bool
	}{
		{permission.RoleStaff, vo.ResourceTicket, vo.ActionClaim, true},
		{permission.RoleCreator, vo.ResourceTicket, vo.ActionClaim, false},
		{permission.RoleAdmin, vo.ResourceTicket, vo.ActionClaim, false},
		{permission.RoleOwner, vo.ResourceTicket, vo.ActionClaim, true},
		{permission.RoleClaimant, vo.ResourceTicket, vo.ActionClose, true},
		{permission.RoleCreator, vo.ResourceTicket, vo.ActionClose, false},
		{permission.RoleCreator, vo.ResourceTicket, vo.ActionReopen, true},
		{permission.RoleAnyone, vo.ResourceTicket, vo.ActionLink, true},
		{permission.RoleAnyone, vo.ResourceSettings, vo.ActionManage, false},
		{permission.RoleOwner, vo.ResourceSettings, vo.ActionManage, true},
		{permission.RoleOwner, vo.ResourceModeration, vo.ActionLog, true},
		{permission.RoleStaff, vo.ResourceModeration, vo.ActionLog, false},
	}

	for _, tt := range tests {
		name := tt.role.String() + " " + tt.action.String() + " " + tt.resource.String()
		t.Run(name, func(t *testing.T) {
			allowed, err := e.Enforce(tt.role.String(), tt.resource.String(), tt.action.String())
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestPolicy_WithCasbin(t *testing.T) {
	e, err := NewDefaultMemoryEnforcer(logger.NewNopLogger())
	require.NoError(t, err)
	policy := permission.NewPolicy(e)

	subject := permission.Subject{StaffRoleID: "staff", CreatorID: "creator", ClaimantID: "claimer"}

	ok, err := policy.Authorize(permission.Actor{UserID: "claimer"}, subject, vo.ResourceTicket, vo.ActionClose)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = policy.Authorize(permission.Actor{UserID: "someone"}, subject, vo.ResourceTicket, vo.ActionClose)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = policy.Authorize(permission.Actor{UserID: "mod", RoleIDs: []string{"staff"}}, subject, vo.ResourceTicket, vo.ActionClose)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewEnforcer_PersistsPolicies(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:casbin?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	e, err := NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, InitTicketPermissions(e, logger.NewNopLogger()))

	reloaded, err := NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)

	allowed, err := reloaded.Enforce("owner", "settings", "manage")
	require.NoError(t, err)
	assert.True(t, allowed)
}
