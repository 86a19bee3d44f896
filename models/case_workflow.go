package models

import "time"

// CaseWorkflow gates a case-affecting action behind an approval. At most one
// pending workflow exists per case (enforced by a partial unique index), so
// resolving "the" pending row is unambiguous.
type CaseWorkflow struct {
	Id            string
	CaseId        string
	WorkflowType  WorkflowType
	Status        WorkflowStatus
	RequestedById string
	ApprovedById  *string
	RequestedAt   time.Time
	ApprovedAt    *time.Time
	Comments      *string
}

type WorkflowStatus string

const (
	WorkflowPending  WorkflowStatus = "Pending"
	WorkflowApproved WorkflowStatus = "Approved"
	WorkflowRejected WorkflowStatus = "Rejected"
)

func (s WorkflowStatus) IsResolved() bool {
	return s == WorkflowApproved || s == WorkflowRejected
}

type WorkflowType string

const (
	WorkflowAddCase WorkflowType = "Add Case"
)

// PendingWorkflow is a workflow row joined with the case it gates, as shown
// on the approval queue.
type PendingWorkflow struct {
	CaseWorkflow
	CaseNumber       string
	CaseStatus       CaseStatus
	OrganizationName string
	LegislationName  string
}
