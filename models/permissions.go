package models

type Permission int

const (
	CASE_READ Permission = iota
	CASE_CREATE
	CASE_APPROVE
	REFERENCE_DATA_READ
	REFERENCE_DATA_WRITE
)

func (p Permission) String() string {
	switch p {
	case CASE_READ:
		return "CASE_READ"
	case CASE_CREATE:
		return "CASE_CREATE"
	case CASE_APPROVE:
		return "CASE_APPROVE"
	case REFERENCE_DATA_READ:
		return "REFERENCE_DATA_READ"
	case REFERENCE_DATA_WRITE:
		return "REFERENCE_DATA_WRITE"
	default:
		return "UNKNOWN_PERMISSION"
	}
}

var ROLES_PERMISSIONS = map[Role][]Permission{
	VIEWER: {
		CASE_READ,
		REFERENCE_DATA_READ,
	},
	OFFICER: {
		CASE_READ,
		CASE_CREATE,
		REFERENCE_DATA_READ,
	},
	REGULATIONS_ADMIN: {
		CASE_READ,
		CASE_CREATE,
		CASE_APPROVE,
		REFERENCE_DATA_READ,
		REFERENCE_DATA_WRITE,
	},
}
