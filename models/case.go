package models

import (
	"fmt"
	"mime/multipart"
	"time"
)

type Case struct {
	Id                   string
	CaseNumber           string
	OrganizationId       string
	LegislationId        string
	ComplianceControlId  *string
	ArticleNumber        string
	ComplianceClause     string
	NonComplianceStatus  string
	Channels             string
	IsRelatedToJoi       bool
	Source               string
	OwningUnitSector     string
	MonitoringTeam       string
	SectorNotifiedAt     time.Time
	Status               CaseStatus
	Priority             CasePriority
	ExpectedFine         *string
	ClosureDate          *time.Time
	ClosureType          *ClosureType
	ClosureJustification *string
	CreatedById          string
	AssignedToId         *string
	CreatedAt            time.Time
	UpdatedAt            *time.Time

	Organization      Organization
	Legislation       Legislation
	ComplianceControl *ComplianceControl
	CreatedBy         *User
	AssignedTo        *User
	Attachments       []CaseAttachment
	Updates           []CaseUpdate
	RemedialPlans     []RemedialPlan
	Workflows         []CaseWorkflow
}

type CaseStatus string

const (
	CaseOpen          CaseStatus = "Open"
	CaseUnderReview   CaseStatus = "Under Review"
	CaseApproved      CaseStatus = "Approved"
	CaseRejected      CaseStatus = "Rejected"
	CaseClosed        CaseStatus = "Closed"
	CaseUnknownStatus CaseStatus = "unknown"
)

var validCaseStatuses = []CaseStatus{CaseOpen, CaseUnderReview, CaseApproved, CaseRejected, CaseClosed}

func CaseStatusFrom(s string) CaseStatus {
	for _, status := range validCaseStatuses {
		if s == string(status) {
			return status
		}
	}
	return CaseUnknownStatus
}

func ValidateCaseStatus(s string) (CaseStatus, error) {
	status := CaseStatusFrom(s)
	if status == CaseUnknownStatus {
		return status, fmt.Errorf("invalid case status: %s %w", s, BadParameterError)
	}
	return status, nil
}

type CasePriority string

const (
	PriorityLow             CasePriority = "Low"
	PriorityMedium          CasePriority = "Medium"
	PriorityHigh            CasePriority = "High"
	PriorityCritical        CasePriority = "Critical"
	PriorityUnknownPriority CasePriority = "unknown"
)

var validCasePriorities = []CasePriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

func ValidateCasePriority(s string) (CasePriority, error) {
	for _, priority := range validCasePriorities {
		if s == string(priority) {
			return priority, nil
		}
	}
	return PriorityUnknownPriority, fmt.Errorf("invalid case priority: %s %w", s, BadParameterError)
}

type ClosureType string

const (
	ClosureCompliance   ClosureType = "Compliance"
	ClosureCancellation ClosureType = "Cancellation"
)

func ValidateClosureType(s string) (ClosureType, error) {
	switch ClosureType(s) {
	case ClosureCompliance, ClosureCancellation:
		return ClosureType(s), nil
	}
	return "", fmt.Errorf("invalid closure type: %s %w", s, BadParameterError)
}

type CreateCaseAttributes struct {
	CaseNumber          string
	OrganizationId      string
	LegislationId       string
	ComplianceControlId *string
	ArticleNumber       string
	ComplianceClause    string
	NonComplianceStatus string
	Channels            string
	IsRelatedToJoi      bool
	Source              string
	OwningUnitSector    string
	MonitoringTeam      string
	SectorNotifiedAt    time.Time
	Priority            CasePriority
	ExpectedFine        *string
	AssignedToId        *string
	Attachments         []*multipart.FileHeader
}

type UpdateCaseAttributes struct {
	Id                  string
	OrganizationId      string
	LegislationId       string
	ComplianceControlId *string
	ArticleNumber       string
	ComplianceClause    string
	NonComplianceStatus string
	Channels            string
	IsRelatedToJoi      bool
	Source              string
	OwningUnitSector    string
	MonitoringTeam      string
	SectorNotifiedAt    time.Time
	Status              CaseStatus
	Priority            CasePriority
	ExpectedFine        *string
	AssignedToId        *string
}

type CloseCaseAttributes struct {
	CaseId               string
	ClosureDate          time.Time
	ClosureType          ClosureType
	ClosureJustification string
}

type CaseFilters struct {
	Status           CaseStatus
	OrganizationName string
	LegislationName  string
}

type CaseStats struct {
	TotalCases  int
	OpenCases   int
	ClosedCases int
}
