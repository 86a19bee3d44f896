package dto

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"

	"github.com/guregu/null/v5"
)

type APIComplianceControl struct {
	Id            string    `json:"id"`
	LegislationId string    `json:"legislation_id"`
	ControlNumber string    `json:"control_number"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	RiskLevel     string    `json:"risk_level"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func AdaptComplianceControlDto(control models.ComplianceControl) APIComplianceControl {
	return APIComplianceControl{
		Id:            control.Id,
		LegislationId: control.LegislationId,
		ControlNumber: control.ControlNumber,
		Title:         control.Title,
		Description:   control.Description,
		Category:      control.Category,
		RiskLevel:     string(control.RiskLevel),
		Status:        string(control.Status),
		CreatedAt:     control.CreatedAt,
	}
}

type CreateComplianceControlBody struct {
	LegislationId string `json:"legislation_id" binding:"required,uuid"`
	ControlNumber string `json:"control_number" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	RiskLevel     string `json:"risk_level" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

func AdaptCreateComplianceControlInput(body CreateComplianceControlBody) (models.CreateComplianceControlInput, error) {
	riskLevel, err := models.ValidateRiskLevel(body.RiskLevel)
	if err != nil {
		return models.CreateComplianceControlInput{}, err
	}
	status, err := models.ValidateControlStatus(body.Status)
	if err != nil {
		return models.CreateComplianceControlInput{}, err
	}

	return models.CreateComplianceControlInput{
		LegislationId: body.LegislationId,
		ControlNumber: body.ControlNumber,
		Title:         body.Title,
		Description:   body.Description,
		Category:      body.Category,
		RiskLevel:     riskLevel,
		Status:        status,
	}, nil
}

type UpdateComplianceControlBody struct {
	Title       null.String `json:"title"`
	Description null.String `json:"description"`
	Category    null.String `json:"category"`
	RiskLevel   null.String `json:"risk_level"`
	Status      null.String `json:"status"`
}

func AdaptUpdateComplianceControlInput(controlId string, body UpdateComplianceControlBody) (models.UpdateComplianceControlInput, error) {
	input := models.UpdateComplianceControlInput{
		Id:          controlId,
		Title:       body.Title.Ptr(),
		Description: body.Description.Ptr(),
		Category:    body.Category.Ptr(),
	}

	if body.RiskLevel.Valid {
		riskLevel, err := models.ValidateRiskLevel(body.RiskLevel.String)
		if err != nil {
			return models.UpdateComplianceControlInput{}, err
		}
		input.RiskLevel = &riskLevel
	}
	if body.Status.Valid {
		status, err := models.ValidateControlStatus(body.Status.String)
		if err != nil {
			return models.UpdateComplianceControlInput{}, err
		}
		input.Status = &status
	}
	return input, nil
}
