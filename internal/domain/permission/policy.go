package permission

import (
	"fmt"
	"slices"

	vo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"
)

// Actor is the member performing an interaction.
type Actor struct {
	UserID  string
	RoleIDs []string
	IsOwner bool
	// IsAdmin is set when the member holds manage-guild or administrator.
	IsAdmin bool
}

// Subject is what an actor's relationship to a ticket is measured against.
// Empty fields never match.
type Subject struct {
	StaffRoleID string
	CreatorID   string
	ClaimantID  string
}

// HasRole reports whether the actor holds the guild role roleID.
func (a Actor) HasRole(roleID string) bool {
	return roleID != "" && slices.Contains(a.RoleIDs, roleID)
}

// IsStaff is true for the guild owner and holders of the staff role.
func (a Actor) IsStaff(staffRoleID string) bool {
	return a.IsOwner || a.HasRole(staffRoleID)
}

// Roles lists the policy roles the actor holds against s.
func (a Actor) Roles(s Subject) []Role {
	roles := []Role{RoleAnyone}
	if a.IsOwner {
		roles = append(roles, RoleOwner)
	}
	if a.IsAdmin {
		roles = append(roles, RoleAdmin)
	}
	if a.HasRole(s.StaffRoleID) {
		roles = append(roles, RoleStaff)
	}
	if a.UserID != "" && a.UserID == s.CreatorID {
		roles = append(roles, RoleCreator)
	}
	if a.UserID != "" && a.UserID == s.ClaimantID {
		roles = append(roles, RoleClaimant)
	}
	return roles
}

// Policy answers whether an actor may perform an action on a resource.
type Policy struct {
	enforcer PermissionEnforcer
}

func NewPolicy(enforcer PermissionEnforcer) *Policy {
	return &Policy{enforcer: enforcer}
}

// Authorize allows the action when any of the actor's roles is permitted.
func (p *Policy) Authorize(actor Actor, s Subject, resource vo.Resource, action vo.Action) (bool, error) {
	for _, role := range actor.Roles(s) {
		allowed, err := p.enforcer.Enforce(role.String(), resource.String(), action.String())
		if err != nil {
			return false, fmt.Errorf("failed to authorize %s on %s: %w", action, resource, err)
		}
		if allowed {
			return true, nil
		}
	}
	return false, nil
}
