package dto

import (
	"mime/multipart"
	"time"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/pure_utils"

	"github.com/guregu/null/v5"
)

type APIRemedialPlan struct {
	Id                  string                      `json:"id"`
	CaseId              string                      `json:"case_id"`
	Description         string                      `json:"description"`
	ChangeRequestNumber string                      `json:"change_request_number"`
	ClosureDate         null.Time                   `json:"closure_date"`
	Status              string                      `json:"status"`
	CreatedById         string                      `json:"created_by_id"`
	CreatedAt           time.Time                   `json:"created_at"`
	UpdatedAt           null.Time                   `json:"updated_at"`
	Attachments         []APIRemedialPlanAttachment `json:"attachments"`
}

func AdaptRemedialPlanDto(plan models.RemedialPlan) APIRemedialPlan {
	return APIRemedialPlan{
		Id:                  plan.Id,
		CaseId:              plan.CaseId,
		Description:         plan.Description,
		ChangeRequestNumber: plan.ChangeRequestNumber,
		ClosureDate:         null.TimeFromPtr(plan.ClosureDate),
		Status:              string(plan.Status),
		CreatedById:         plan.CreatedById,
		CreatedAt:           plan.CreatedAt,
		UpdatedAt:           null.TimeFromPtr(plan.UpdatedAt),
		Attachments:         pure_utils.Map(plan.Attachments, AdaptRemedialPlanAttachmentDto),
	}
}

type CreateRemedialPlanForm struct {
	Description         string                  `form:"description" binding:"required"`
	ChangeRequestNumber string                  `form:"change_request_number"`
	ClosureDate         null.Time               `form:"closure_date"`
	Status              string                  `form:"status" binding:"required"`
	Files               []*multipart.FileHeader `form:"files[]"`
}

func AdaptCreateRemedialPlanAttributes(caseId string, form CreateRemedialPlanForm) (models.CreateRemedialPlanAttributes, error) {
	status, err := models.ValidateRemedialPlanStatus(form.Status)
	if err != nil {
		return models.CreateRemedialPlanAttributes{}, err
	}

	return models.CreateRemedialPlanAttributes{
		CaseId:              caseId,
		Description:         form.Description,
		ChangeRequestNumber: form.ChangeRequestNumber,
		ClosureDate:         form.ClosureDate.Ptr(),
		Status:              status,
		Attachments:         form.Files,
	}, nil
}
