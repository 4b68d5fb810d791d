package permission

import (
	"fmt"

	"github.com/swiftticket/swiftticket/internal/domain/permission"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// InitTicketPermissions seeds the default rules and role inheritance.
// Existing rules are left untouched, so it is safe on every start.
func InitTicketPermissions(e *Enforcer, log logger.Interface) error {
	for _, rule := range permission.DefaultRules() {
		err := e.AddPolicy(rule.Role.String(), rule.Resource.String(), rule.Action.String())
		if err != nil {
			log.Errorw("failed to add ticket permission policy",
				"error", err,
				"role", rule.Role,
				"resource", rule.Resource,
				"action", rule.Action)
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				rule.Role, rule.Resource, rule.Action, err)
		}
	}

	for _, inh := range permission.DefaultInheritance() {
		if err := e.AddInheritance(inh.Member.String(), inh.Parent.String()); err != nil {
			return fmt.Errorf("failed to add inheritance [%s, %s]: %w", inh.Member, inh.Parent, err)
		}
	}

	log.Info("ticket permissions initialized successfully")
	return nil
}

// NewDefaultMemoryEnforcer returns an in-memory enforcer seeded with the
// default rules.
func NewDefaultMemoryEnforcer(log logger.Interface) (*Enforcer, error) {
	e, err := NewMemoryEnforcer(log)
	if err != nil {
		return nil, err
	}
	if err := InitTicketPermissions(e, log); err != nil {
		return nil, err
	}
	return e, nil
}
