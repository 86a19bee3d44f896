package dto

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"

	"github.com/guregu/null/v5"
)

type APILegislation struct {
	Id            string    `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Description   string    `json:"description"`
	Year          int       `json:"year"`
	Status        string    `json:"status"`
	EffectiveDate time.Time `json:"effective_date"`
	ExpiryDate    null.Time `json:"expiry_date"`
	CreatedAt     time.Time `json:"created_at"`
}

func AdaptLegislationDto(legislation models.Legislation) APILegislation {
	return APILegislation{
		Id:            legislation.Id,
		Name:          legislation.Name,
		Code:          legislation.Code,
		Description:   legislation.Description,
		Year:          legislation.Year,
		Status:        string(legislation.Status),
		EffectiveDate: legislation.EffectiveDate,
		ExpiryDate:    null.TimeFromPtr(legislation.ExpiryDate),
		CreatedAt:     legislation.CreatedAt,
	}
}

type CreateLegislationBody struct {
	Name          string    `json:"name" binding:"required"`
	Code          string    `json:"code" binding:"required"`
	Description   string    `json:"description"`
	Year          int       `json:"year" binding:"required"`
	Status        string    `json:"status" binding:"required"`
	EffectiveDate time.Time `json:"effective_date" binding:"required"`
	ExpiryDate    null.Time `json:"expiry_date"`
}

func AdaptCreateLegislationInput(body CreateLegislationBody) (models.CreateLegislationInput, error) {
	status, err := models.ValidateLegislationStatus(body.Status)
	if err != nil {
		return models.CreateLegislationInput{}, err
	}

	return models.CreateLegislationInput{
		Name:          body.Name,
		Code:          body.Code,
		Description:   body.Description,
		Year:          body.Year,
		Status:        status,
		EffectiveDate: body.EffectiveDate,
		ExpiryDate:    body.ExpiryDate.Ptr(),
	}, nil
}

type UpdateLegislationBody struct {
	Name          null.String `json:"name"`
	Description   null.String `json:"description"`
	Year          null.Int    `json:"year"`
	Status        null.String `json:"status"`
	EffectiveDate null.Time   `json:"effective_date"`
	ExpiryDate    null.Time   `json:"expiry_date"`
}

func AdaptUpdateLegislationInput(legislationId string, body UpdateLegislationBody) (models.UpdateLegislationInput, error) {
	input := models.UpdateLegislationInput{
		Id:            legislationId,
		Name:          body.Name.Ptr(),
		Description:   body.Description.Ptr(),
		EffectiveDate: body.EffectiveDate.Ptr(),
		ExpiryDate:    body.ExpiryDate.Ptr(),
	}

	if body.Year.Valid {
		year := int(body.Year.Int64)
		input.Year = &year
	}
	if body.Status.Valid {
		status, err := models.ValidateLegislationStatus(body.Status.String)
		if err != nil {
			return models.UpdateLegislationInput{}, err
		}
		input.Status = &status
	}
	return input, nil
}
