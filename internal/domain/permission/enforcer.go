package permission

type PermissionEnforcer interface {
	Enforce(subject string, resource string, action string) (bool, error)
	AddPolicy(role string, resource string, action string) error
}
