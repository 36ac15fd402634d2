// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"

	"bazaar/internal/errors"
)

// Role represents the application-wide role a user holds on the backend.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleGlobalAdmin indicates a global application administrator.
	RoleGlobalAdmin Role = "globalApplicationAdmin"
	// RoleDefaultGlobalAdmin indicates the built-in default administrator.
	RoleDefaultGlobalAdmin Role = "defaultGlobalApplicationAdmin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleGlobalAdmin, RoleDefaultGlobalAdmin:
		return true
	default:
		return false
	}
}

// RoleType tells whether the session acts as the user or as one of their businesses.
type RoleType string

const (
	RoleTypeUser     RoleType = "user"
	RoleTypeBusiness RoleType = "business"
)

// IsValid checks if the RoleType is a valid value.
func (t RoleType) IsValid() bool {
	return t == RoleTypeUser || t == RoleTypeBusiness
}

// ActiveRole is the identity the session currently acts as.
// Its JSON form is persisted verbatim in the role cookie, e.g. {"type":"user","id":100}.
type ActiveRole struct {
	Type RoleType `json:"type"`
	ID   int64    `json:"id"`
}

// ActingAsUser returns the role of a user acting for themselves.
func ActingAsUser(userID int64) ActiveRole {
	return ActiveRole{Type: RoleTypeUser, ID: userID}
}

// ActingAsBusiness returns the role of a user acting for a business they administer.
func ActingAsBusiness(businessID int64) ActiveRole {
	return ActiveRole{Type: RoleTypeBusiness, ID: businessID}
}

// IsBusiness reports whether the role acts for a business.
func (r ActiveRole) IsBusiness() bool {
	return r.Type == RoleTypeBusiness
}

// Encode returns the cookie representation of the role.
func (r ActiveRole) Encode() (string, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode active role")
	}

	return string(raw), nil
}

// DecodeActiveRole parses a role cookie value. Unknown role types are rejected.
func DecodeActiveRole(value string) (ActiveRole, error) {
	var role ActiveRole
	if err := json.Unmarshal([]byte(value), &role); err != nil {
		return ActiveRole{}, errors.Wrap(err, "failed to decode active role")
	}

	if !role.Type.IsValid() {
		return ActiveRole{}, errors.Errorf("unknown role type %q", role.Type)
	}

	return role, nil
}
