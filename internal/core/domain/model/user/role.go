package user

import (
	"fmt"

	"faithcafe/internal/pkg/errs"
)

// Role determines which part of the storefront a user can reach:
// customers browse and order, staff run the order board, admins manage the
// menu and the user list.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is the default role assigned at registration.
	RoleCustomer

	// RoleStaff can view the order board, update statuses and assign riders.
	RoleStaff

	// RoleAdmin can additionally manage the menu and delete users.
	RoleAdmin
)

func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer: "customer",
		RoleStaff:    "staff",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses the persisted role name. An empty string maps to
// RoleCustomer, matching the seed data where the field is optional.
func RoleFromString(s string) (Role, error) {
	if s == "" {
		return RoleCustomer, nil
	}
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted name of the role, or "unknown".
func (r Role) String() string {
	if s, ok := getValidRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
