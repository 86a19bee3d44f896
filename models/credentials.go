package models

// Identity of the acting user, as asserted by the fronting identity
// provider. Only the user id is required; the email is kept for audit logs.
type Identity struct {
	UserId string
	Email  string
}

type Credentials struct {
	ActorIdentity Identity
	Role          Role
}
