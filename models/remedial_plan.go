package models

import (
	"fmt"
	"mime/multipart"
	"time"
)

type RemedialPlan struct {
	Id                  string
	CaseId              string
	Description         string
	ChangeRequestNumber string
	ClosureDate         *time.Time
	Status              RemedialPlanStatus
	CreatedById         string
	CreatedAt           time.Time
	UpdatedAt           *time.Time

	Attachments []RemedialPlanAttachment
}

type RemedialPlanStatus string

const (
	RemedialPlanPending    RemedialPlanStatus = "Pending"
	RemedialPlanInProgress RemedialPlanStatus = "In Progress"
	RemedialPlanCompleted  RemedialPlanStatus = "Completed"
	RemedialPlanCancelled  RemedialPlanStatus = "Cancelled"
)

var validRemedialPlanStatuses = []RemedialPlanStatus{
	RemedialPlanPending, RemedialPlanInProgress, RemedialPlanCompleted, RemedialPlanCancelled,
}

func ValidateRemedialPlanStatus(s string) (RemedialPlanStatus, error) {
	for _, status := range validRemedialPlanStatuses {
		if s == string(status) {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid remedial plan status: %s %w", s, BadParameterError)
}

type CreateRemedialPlanAttributes struct {
	CaseId              string
	Description         string
	ChangeRequestNumber string
	ClosureDate         *time.Time
	Status              RemedialPlanStatus
	Attachments         []*multipart.FileHeader
}
