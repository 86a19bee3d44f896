package dto

import (
	"testing"
	"time"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"

	"github.com/casetrack/casetrack-backend/models"
)

func TestAdaptCreateCaseAttributes(t *testing.T) {
	form := CreateCaseForm{
		CaseNumber:       "NC-2025-001",
		OrganizationId:   "f9de25c1-0ee1-41b4-a3ec-5d13a0a65d5e",
		LegislationId:    "0b8fbd7b-2f10-4326-89ee-2cfd68a3a0a2",
		SectorNotifiedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Priority:         "High",
		ExpectedFine:     null.StringFrom("15000.00"),
	}

	attrs, err := AdaptCreateCaseAttributes(form)

	assert.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, attrs.Priority)
	assert.Equal(t, "15000.00", *attrs.ExpectedFine)
	assert.Nil(t, attrs.ComplianceControlId)
	assert.Nil(t, attrs.AssignedToId)

	form.Priority = "Urgent"
	_, err = AdaptCreateCaseAttributes(form)
	assert.ErrorIs(t, err, models.BadParameterError)
}

func TestAdaptUpdateCaseAttributes(t *testing.T) {
	body := UpdateCaseBody{
		OrganizationId: "f9de25c1-0ee1-41b4-a3ec-5d13a0a65d5e",
		LegislationId:  "0b8fbd7b-2f10-4326-89ee-2cfd68a3a0a2",
		Status:         "Under Review",
		Priority:       "Medium",
	}

	attrs, err := AdaptUpdateCaseAttributes("case-id", body)

	assert.NoError(t, err)
	assert.Equal(t, "case-id", attrs.Id)
	assert.Equal(t, models.CaseUnderReview, attrs.Status)
	assert.Equal(t, models.PriorityMedium, attrs.Priority)

	body.Status = "Reopened"
	_, err = AdaptUpdateCaseAttributes("case-id", body)
	assert.ErrorIs(t, err, models.BadParameterError)
}

func TestAdaptCloseCaseAttributes(t *testing.T) {
	body := CloseCaseBody{
		ClosureDate:          time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		ClosureType:          "Cancellation",
		ClosureJustification: "duplicate of NC-2025-002",
	}

	attrs, err := AdaptCloseCaseAttributes("case-id", body)

	assert.NoError(t, err)
	assert.Equal(t, models.ClosureCancellation, attrs.ClosureType)

	body.ClosureType = "Dismissed"
	_, err = AdaptCloseCaseAttributes("case-id", body)
	assert.ErrorIs(t, err, models.BadParameterError)
}

func TestAdaptCaseFilters(t *testing.T) {
	t.Run("empty status is not validated", func(t *testing.T) {
		filters, err := AdaptCaseFilters(CaseFilters{OrganizationName: "ACME"})
		assert.NoError(t, err)
		assert.Equal(t, models.CaseStatus(""), filters.Status)
		assert.Equal(t, "ACME", filters.OrganizationName)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := AdaptCaseFilters(CaseFilters{Status: "Escalated"})
		assert.ErrorIs(t, err, models.BadParameterError)
	})
}
