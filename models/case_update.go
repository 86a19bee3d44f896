package models

import (
	"fmt"
	"time"
)

// CaseUpdate is an append-only audit row. The service emits one per tracked
// field change; users can also record one explicitly, in which case the
// old/new values are taken verbatim from the submitter.
type CaseUpdate struct {
	Id          string
	CaseId      string
	UpdateType  UpdateType
	OldValue    string
	NewValue    string
	Details     string
	UpdatedById string
	UpdatedAt   time.Time
}

type UpdateType string

const (
	UpdateTypeStatus       UpdateType = "Status"
	UpdateTypePriority     UpdateType = "Priority"
	UpdateTypeExpectedFine UpdateType = "Expected Fine"
	UpdateTypeClosureDate  UpdateType = "Closure Date"
	UpdateTypeLikelihood   UpdateType = "Likelihood"
	UpdateTypeImpact       UpdateType = "Impact"
)

var validUpdateTypes = []UpdateType{
	UpdateTypeStatus, UpdateTypePriority, UpdateTypeExpectedFine,
	UpdateTypeClosureDate, UpdateTypeLikelihood, UpdateTypeImpact,
}

func ValidateUpdateType(s string) (UpdateType, error) {
	for _, updateType := range validUpdateTypes {
		if s == string(updateType) {
			return updateType, nil
		}
	}
	return "", fmt.Errorf("invalid update type: %s %w", s, BadParameterError)
}

type CreateCaseUpdateAttributes struct {
	CaseId     string
	UpdateType UpdateType
	OldValue   string
	NewValue   string
	Details    string
}
