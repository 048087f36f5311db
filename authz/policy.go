// Package authz centralizes the capability-to-role policy so that role
// checks are not scattered across every mutating operation.
package authz

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pizzastore/models"
)

// Capability is a named permission checked before a mutating operation.
type Capability string

const (
	CapEditMenu          Capability = "editMenu"
	CapManageUsers       Capability = "manageUsers"
	CapSetOrderDelivered Capability = "setOrderDelivered"
)

var (
	// ErrDenied is returned when the caller's role lacks the capability.
	// It carries no detail beyond "not permitted".
	ErrDenied = errors.New("not permitted")

	// ErrUnknownLogin is returned when the login has no directory record.
	ErrUnknownLogin = errors.New("login not found")
)

// Config tunes the policy. DriverCanDeliver additionally grants
// setOrderDelivered to drivers; the default keeps the manager-only
// behavior the original system enforced.
type Config struct {
	DriverCanDeliver bool
}

type Policy struct {
	db      *gorm.DB
	allowed map[Capability][]models.Role
}

// NewPolicy builds the capability table. All capabilities require
// manager; the delivery capability may extend to drivers via cfg.
func NewPolicy(db *gorm.DB, cfg Config) *Policy {
	allowed := map[Capability][]models.Role{
		CapEditMenu:          {models.RoleManager},
		CapManageUsers:       {models.RoleManager},
		CapSetOrderDelivered: {models.RoleManager},
	}
	if cfg.DriverCanDeliver {
		allowed[CapSetOrderDelivered] = append(allowed[CapSetOrderDelivered], models.RoleDriver)
	}
	return &Policy{db: db, allowed: allowed}
}

// RoleOf resolves a login's current role from the user directory.
// The lookup is live rather than token-derived so that role changes
// take effect immediately.
func (p *Policy) RoleOf(login string) (models.Role, error) {
	var user models.User
	err := p.db.Select("role").Where("login = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUnknownLogin
	}
	if err != nil {
		return "", fmt.Errorf("resolve role: %w", err)
	}
	return user.Role, nil
}

// Require returns nil when login's role holds the capability, ErrDenied
// otherwise. An unknown login is denied, never a crash.
func (p *Policy) Require(login string, cap Capability) error {
	role, err := p.RoleOf(login)
	if errors.Is(err, ErrUnknownLogin) {
		return ErrDenied
	}
	if err != nil {
		return err
	}
	for _, r := range p.allowed[cap] {
		if role == r {
			return nil
		}
	}
	return ErrDenied
}

// Allowed reports the roles holding a capability, for documentation.
func (p *Policy) Allowed(cap Capability) []models.Role {
	return p.allowed[cap]
}
