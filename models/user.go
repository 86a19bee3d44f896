package models

import "time"

// User mirrors the identity provider's directory. Rows are read-only here:
// they resolve creator/assignee references and feed the assignee dropdown.
type User struct {
	Id         string
	Email      string
	FirstName  string
	LastName   string
	Department string
	Position   string
	CreatedAt  time.Time
}

func (u User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	return u.FirstName + " " + u.LastName
}
