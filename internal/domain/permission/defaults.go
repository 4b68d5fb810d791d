package permission

import vo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"

// Rule grants one action on one resource to a role.
type Rule struct {
	Role     Role
	Resource vo.Resource
	Action   vo.Action
}

// Inheritance is a grouping rule: Member holds every permission of Parent.
type Inheritance struct {
	Member Role
	Parent Role
}

// DefaultRules is the bot's authorization table.
func DefaultRules() []Rule {
	return []Rule{
		{RoleStaff, vo.ResourceTicket, vo.ActionClaim},
		{RoleStaff, vo.ResourceTicket, vo.ActionClose},
		{RoleClaimant, vo.ResourceTicket, vo.ActionClose},
		{RoleStaff, vo.ResourceTicket, vo.ActionReopen},
		{RoleCreator, vo.ResourceTicket, vo.ActionReopen},
		{RoleAnyone, vo.ResourceTicket, vo.ActionCreate},
		{RoleAnyone, vo.ResourceTicket, vo.ActionTranscript},
		{RoleAnyone, vo.ResourceTicket, vo.ActionLink},
		{RoleAnyone, vo.ResourceStats, vo.ActionRead},
		{RoleAdmin, vo.ResourceSettings, vo.ActionManage},
		{RoleAdmin, vo.ResourceModeration, vo.ActionLog},
	}
}

// DefaultInheritance makes the guild owner both admin and staff.
func DefaultInheritance() []Inheritance {
	return []Inheritance{
		{Member: RoleOwner, Parent: RoleAdmin},
		{Member: RoleOwner, Parent: RoleStaff},
	}
}
