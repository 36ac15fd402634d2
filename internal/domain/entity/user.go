// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the marketplace.
package entity

import "strings"

// User is a registered marketplace account as returned by the backend.
// ID, names, Email and HomeAddress.Country are always present on a valid user.
type User struct {
	ID                     int64      `json:"id"`                               // Backend identifier.
	FirstName              string     `json:"firstName"`                        // Given name.
	LastName               string     `json:"lastName"`                         // Family name.
	MiddleName             string     `json:"middleName,omitempty"`             // Optional middle name.
	Nickname               string     `json:"nickname,omitempty"`               // Optional display nickname.
	Bio                    string     `json:"bio,omitempty"`                    // Optional free text biography.
	Email                  string     `json:"email"`                            // Login identifier.
	DateOfBirth            string     `json:"dateOfBirth,omitempty"`            // ISO date, YYYY-MM-DD.
	PhoneNumber            string     `json:"phoneNumber,omitempty"`            // Optional contact number.
	HomeAddress            Location   `json:"homeAddress"`                      // Home address, country is required.
	Created                string     `json:"created,omitempty"`                // Registration timestamp.
	Role                   Role       `json:"role,omitempty"`                   // Application role, empty means RoleUser.
	BusinessesAdministered []Business `json:"businessesAdministered,omitempty"` // Businesses this user may act for.
}

// ApplicationRole returns the user's role, treating an absent role as an ordinary user.
func (u *User) ApplicationRole() Role {
	if u == nil || u.Role == "" {
		return RoleUser
	}

	return u.Role
}

// IsAdmin reports whether the user holds either global admin role.
func (u *User) IsAdmin() bool {
	role := u.ApplicationRole()

	return role == RoleGlobalAdmin || role == RoleDefaultGlobalAdmin
}

// AdministersBusiness reports whether businessID is among the businesses the user administers.
func (u *User) AdministersBusiness(businessID int64) bool {
	if u == nil {
		return false
	}

	for i := range u.BusinessesAdministered {
		if u.BusinessesAdministered[i].ID == businessID {
			return true
		}
	}

	return false
}

// DisplayName returns the nickname when set, otherwise "first last".
func (u *User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}

	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
