// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the access level assigned to a user account.
//
// The set of roles is closed: only [RoleStudent] and [RoleManager] exist.
// Every other value is rejected by [Role.Valid].
type Role string

const (
	// RoleStudent is the default role assigned on sign-up.
	RoleStudent Role = "student"
	// RoleManager may create courses and list users.
	RoleManager Role = "manager"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleManager:
		return true
	default:
		return false
	}
}

// Allows reports whether a caller holding actual satisfies the required role r.
// Roles are not hierarchical: a manager does not implicitly satisfy student.
func (r Role) Allows(actual Role) bool {
	return r.Valid() && r == actual
}

func (r Role) String() string {
	return string(r)
}
