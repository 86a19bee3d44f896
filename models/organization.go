package models

import "time"

type Organization struct {
	Id           string
	Name         string
	Code         string
	ContactName  string
	ContactEmail string
	ContactPhone string
	CreatedAt    time.Time
}

type CreateOrganizationInput struct {
	Name         string
	Code         string
	ContactName  string
	ContactEmail string
	ContactPhone string
}

type UpdateOrganizationInput struct {
	Id           string
	Name         *string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
}
