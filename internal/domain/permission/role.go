package permission

// Role is a casbin subject. An actor holds every role that applies to it
// for the ticket at hand.
type Role string

const (
	// RoleOwner inherits admin and staff through grouping policies.
	RoleOwner Role = "owner"
	// RoleAdmin holds manage-guild or administrator. It does not imply staff.
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCreator  Role = "creator"
	RoleClaimant Role = "claimant"
	RoleAnyone   Role = "anyone"
)

func (r Role) String() string {
	return string(r)
}
