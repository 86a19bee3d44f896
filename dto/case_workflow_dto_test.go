package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/casetrack/casetrack-backend/models"
)

func TestAdaptCaseWorkflowDto(t *testing.T) {
	approvedById := "0b8fbd7b-2f10-4326-89ee-2cfd68a3a0a2"
	approvedAt := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	comments := "looks good"
	workflow := models.CaseWorkflow{
		Id:            "workflow-1",
		CaseId:        "case-1",
		WorkflowType:  models.WorkflowAddCase,
		Status:        models.WorkflowPending,
		RequestedById: "f9de25c1-0ee1-41b4-a3ec-5d13a0a65d5e",
		ApprovedById:  &approvedById,
		ApprovedAt:    &approvedAt,
		Comments:      &comments,
	}

	pending := AdaptCaseWorkflowDto(workflow)
	assert.Equal(t, "Pending", pending.Status)
	assert.False(t, pending.ApprovedById.Valid)
	assert.False(t, pending.ApprovedAt.Valid)
	assert.False(t, pending.Comments.Valid)

	workflow.Status = models.WorkflowApproved
	approved := AdaptCaseWorkflowDto(workflow)
	assert.Equal(t, "Approved", approved.Status)
	assert.Equal(t, approvedById, approved.ApprovedById.String)
	assert.Equal(t, approvedAt, approved.ApprovedAt.Time)
	assert.Equal(t, comments, approved.Comments.String)
}
