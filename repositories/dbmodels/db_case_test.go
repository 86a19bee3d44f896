package dbmodels

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"

	"github.com/casetrack/casetrack-backend/models"
)

func TestAdaptCase(t *testing.T) {
	now := time.Now()
	closureType := "Compliance"

	t.Run("maps enums and nullable columns", func(t *testing.T) {
		db := DBCase{
			Id:          "case-id",
			CaseNumber:  "NC-2025-001",
			Status:      "Under Review",
			Priority:    "High",
			ClosureDate: &now,
			ClosureType: &closureType,
			ExpectedFine: pgtype.Numeric{
				Int:   big.NewInt(1500000),
				Exp:   -2,
				Valid: true,
			},
		}

		c, err := AdaptCase(db)

		assert.NoError(t, err)
		assert.Equal(t, models.CaseUnderReview, c.Status)
		assert.Equal(t, models.PriorityHigh, c.Priority)
		assert.Equal(t, models.ClosureCompliance, *c.ClosureType)
		assert.NotNil(t, c.ExpectedFine)
		assert.Equal(t, "15000.00", *c.ExpectedFine)
	})

	t.Run("keeps absent optionals nil", func(t *testing.T) {
		c, err := AdaptCase(DBCase{Id: "case-id", Status: "Open", Priority: "Low"})

		assert.NoError(t, err)
		assert.Nil(t, c.ExpectedFine)
		assert.Nil(t, c.ClosureDate)
		assert.Nil(t, c.ClosureType)
		assert.Nil(t, c.AssignedToId)
	})
}
