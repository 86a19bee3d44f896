package models

import (
	"fmt"
	"time"
)

type Legislation struct {
	Id            string
	Name          string
	Code          string
	Description   string
	Year          int
	Status        LegislationStatus
	EffectiveDate time.Time
	ExpiryDate    *time.Time
	CreatedAt     time.Time
}

type LegislationStatus string

const (
	LegislationActive   LegislationStatus = "Active"
	LegislationInactive LegislationStatus = "Inactive"
	LegislationPending  LegislationStatus = "Pending"
)

func ValidateLegislationStatus(s string) (LegislationStatus, error) {
	switch LegislationStatus(s) {
	case LegislationActive, LegislationInactive, LegislationPending:
		return LegislationStatus(s), nil
	}
	return "", fmt.Errorf("invalid legislation status: %s %w", s, BadParameterError)
}

type CreateLegislationInput struct {
	Name          string
	Code          string
	Description   string
	Year          int
	Status        LegislationStatus
	EffectiveDate time.Time
	ExpiryDate    *time.Time
}

type UpdateLegislationInput struct {
	Id            string
	Name          *string
	Description   *string
	Year          *int
	Status        *LegislationStatus
	EffectiveDate *time.Time
	ExpiryDate    *time.Time
}
