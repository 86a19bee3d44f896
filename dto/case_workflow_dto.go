package dto

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"

	"github.com/guregu/null/v5"
)

type APICaseWorkflow struct {
	Id            string      `json:"id"`
	CaseId        string      `json:"case_id"`
	WorkflowType  string      `json:"workflow_type"`
	Status        string      `json:"status"`
	RequestedById string      `json:"requested_by_id"`
	ApprovedById  null.String `json:"approved_by_id"`
	RequestedAt   time.Time   `json:"requested_at"`
	ApprovedAt    null.Time   `json:"approved_at"`
	Comments      null.String `json:"comments"`
}

func AdaptCaseWorkflowDto(workflow models.CaseWorkflow) APICaseWorkflow {
	out := APICaseWorkflow{
		Id:            workflow.Id,
		CaseId:        workflow.CaseId,
		WorkflowType:  string(workflow.WorkflowType),
		Status:        string(workflow.Status),
		RequestedById: workflow.RequestedById,
		RequestedAt:   workflow.RequestedAt,
	}
	// Resolution fields are only meaningful once the workflow has been
	// approved or rejected.
	if workflow.Status.IsResolved() {
		out.ApprovedById = null.StringFromPtr(workflow.ApprovedById)
		out.ApprovedAt = null.TimeFromPtr(workflow.ApprovedAt)
		out.Comments = null.StringFromPtr(workflow.Comments)
	}
	return out
}

type APIPendingWorkflow struct {
	APICaseWorkflow
	CaseNumber       string `json:"case_number"`
	CaseStatus       string `json:"case_status"`
	OrganizationName string `json:"organization_name"`
	LegislationName  string `json:"legislation_name"`
}

func AdaptPendingWorkflowDto(workflow models.PendingWorkflow) APIPendingWorkflow {
	return APIPendingWorkflow{
		APICaseWorkflow:  AdaptCaseWorkflowDto(workflow.CaseWorkflow),
		CaseNumber:       workflow.CaseNumber,
		CaseStatus:       string(workflow.CaseStatus),
		OrganizationName: workflow.OrganizationName,
		LegislationName:  workflow.LegislationName,
	}
}
