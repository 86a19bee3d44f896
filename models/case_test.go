package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCaseStatus(t *testing.T) {
	t.Run("accepts every known status", func(t *testing.T) {
		for _, s := range []string{"Open", "Under Review", "Approved", "Rejected", "Closed"} {
			status, err := ValidateCaseStatus(s)
			assert.NoError(t, err)
			assert.Equal(t, CaseStatus(s), status)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := ValidateCaseStatus("Escalated")
		assert.ErrorIs(t, err, BadParameterError)
	})

	t.Run("is case sensitive", func(t *testing.T) {
		_, err := ValidateCaseStatus("open")
		assert.ErrorIs(t, err, BadParameterError)
	})
}

func TestValidateCasePriority(t *testing.T) {
	for _, s := range []string{"Low", "Medium", "High", "Critical"} {
		priority, err := ValidateCasePriority(s)
		assert.NoError(t, err)
		assert.Equal(t, CasePriority(s), priority)
	}

	_, err := ValidateCasePriority("Urgent")
	assert.ErrorIs(t, err, BadParameterError)
}

func TestValidateClosureType(t *testing.T) {
	for _, s := range []string{"Compliance", "Cancellation"} {
		closureType, err := ValidateClosureType(s)
		assert.NoError(t, err)
		assert.Equal(t, ClosureType(s), closureType)
	}

	_, err := ValidateClosureType("Abandoned")
	assert.ErrorIs(t, err, BadParameterError)
}
