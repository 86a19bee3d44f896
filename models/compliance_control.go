package models

import (
	"fmt"
	"time"
)

// ComplianceControl is a single control of a legislation, unique per
// (legislation, control number).
type ComplianceControl struct {
	Id            string
	LegislationId string
	ControlNumber string
	Title         string
	Description   string
	Category      string
	RiskLevel     RiskLevel
	Status        ControlStatus
	CreatedAt     time.Time
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

func ValidateRiskLevel(s string) (RiskLevel, error) {
	switch RiskLevel(s) {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return RiskLevel(s), nil
	}
	return "", fmt.Errorf("invalid risk level: %s %w", s, BadParameterError)
}

type ControlStatus string

const (
	ControlActive     ControlStatus = "Active"
	ControlInactive   ControlStatus = "Inactive"
	ControlDeprecated ControlStatus = "Deprecated"
)

func ValidateControlStatus(s string) (ControlStatus, error) {
	switch ControlStatus(s) {
	case ControlActive, ControlInactive, ControlDeprecated:
		return ControlStatus(s), nil
	}
	return "", fmt.Errorf("invalid control status: %s %w", s, BadParameterError)
}

type CreateComplianceControlInput struct {
	LegislationId string
	ControlNumber string
	Title         string
	Description   string
	Category      string
	RiskLevel     RiskLevel
	Status        ControlStatus
}

type UpdateComplianceControlInput struct {
	Id          string
	Title       *string
	Description *string
	Category    *string
	RiskLevel   *RiskLevel
	Status      *ControlStatus
}
