package dto

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"

	"github.com/guregu/null/v5"
)

type APIOrganization struct {
	Id           string    `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	CreatedAt    time.Time `json:"created_at"`
}

func AdaptOrganizationDto(organization models.Organization) APIOrganization {
	return APIOrganization{
		Id:           organization.Id,
		Name:         organization.Name,
		Code:         organization.Code,
		ContactName:  organization.ContactName,
		ContactEmail: organization.ContactEmail,
		ContactPhone: organization.ContactPhone,
		CreatedAt:    organization.CreatedAt,
	}
}

type CreateOrganizationBody struct {
	Name         string `json:"name" binding:"required"`
	Code         string `json:"code" binding:"required"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
}

func AdaptCreateOrganizationInput(body CreateOrganizationBody) models.CreateOrganizationInput {
	return models.CreateOrganizationInput{
		Name:         body.Name,
		Code:         body.Code,
		ContactName:  body.ContactName,
		ContactEmail: body.ContactEmail,
		ContactPhone: body.ContactPhone,
	}
}

type UpdateOrganizationBody struct {
	Name         null.String `json:"name"`
	ContactName  null.String `json:"contact_name"`
	ContactEmail null.String `json:"contact_email"`
	ContactPhone null.String `json:"contact_phone"`
}

func AdaptUpdateOrganizationInput(organizationId string, body UpdateOrganizationBody) models.UpdateOrganizationInput {
	return models.UpdateOrganizationInput{
		Id:           organizationId,
		Name:         body.Name.Ptr(),
		ContactName:  body.ContactName.Ptr(),
		ContactEmail: body.ContactEmail.Ptr(),
		ContactPhone: body.ContactPhone.Ptr(),
	}
}
