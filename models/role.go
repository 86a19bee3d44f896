package models

import "slices"

type Role int

const (
	NO_ROLE Role = iota
	VIEWER
	OFFICER
	REGULATIONS_ADMIN
)

func (r Role) String() string {
	switch r {
	case NO_ROLE:
		return "NO_ROLE"
	case VIEWER:
		return "VIEWER"
	case OFFICER:
		return "OFFICER"
	case REGULATIONS_ADMIN:
		return "REGULATIONS_ADMIN"
	default:
		return "UNKNOWN_ROLE"
	}
}

func (r Role) Permissions() []Permission {
	permissions := ROLES_PERMISSIONS[r]
	if permissions == nil {
		return []Permission{}
	}
	return permissions
}

func (r Role) HasPermission(permission Permission) bool {
	return slices.Contains(r.Permissions(), permission)
}

func RoleFromString(s string) Role {
	switch s {
	case "VIEWER":
		return VIEWER
	case "OFFICER":
		return OFFICER
	case "REGULATIONS_ADMIN":
		return REGULATIONS_ADMIN
	}
	return NO_ROLE
}
