package dto

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"
)

type APICaseUpdate struct {
	Id          string    `json:"id"`
	CaseId      string    `json:"case_id"`
	UpdateType  string    `json:"update_type"`
	OldValue    string    `json:"old_value"`
	NewValue    string    `json:"new_value"`
	Details     string    `json:"details"`
	UpdatedById string    `json:"updated_by_id"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func AdaptCaseUpdateDto(update models.CaseUpdate) APICaseUpdate {
	return APICaseUpdate{
		Id:          update.Id,
		CaseId:      update.CaseId,
		UpdateType:  string(update.UpdateType),
		OldValue:    update.OldValue,
		NewValue:    update.NewValue,
		Details:     update.Details,
		UpdatedById: update.UpdatedById,
		UpdatedAt:   update.UpdatedAt,
	}
}

type CreateCaseUpdateBody struct {
	UpdateType string `json:"update_type" binding:"required"`
	OldValue   string `json:"old_value"`
	NewValue   string `json:"new_value"`
	Details    string `json:"details"`
}

func AdaptCreateCaseUpdateAttributes(caseId string, body CreateCaseUpdateBody) (models.CreateCaseUpdateAttributes, error) {
	updateType, err := models.ValidateUpdateType(body.UpdateType)
	if err != nil {
		return models.CreateCaseUpdateAttributes{}, err
	}

	return models.CreateCaseUpdateAttributes{
		CaseId:     caseId,
		UpdateType: updateType,
		OldValue:   body.OldValue,
		NewValue:   body.NewValue,
		Details:    body.Details,
	}, nil
}
