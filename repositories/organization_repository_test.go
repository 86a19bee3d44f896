package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/casetrack/casetrack-backend/models"
)

func TestCreateOrganizationConflict(t *testing.T) {
	pool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer pool.Close()

	pool.ExpectExec("INSERT INTO organizations").
		WithArgs("org-1", "ACME Utilities", "ACME", "Jane", "jane@acme.example", "+33100000000").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	repo := CaseTrackDbRepository{}
	err = repo.CreateOrganization(context.Background(), pool, "org-1", models.CreateOrganizationInput{
		Name:         "ACME Utilities",
		Code:         "ACME",
		ContactName:  "Jane",
		ContactEmail: "jane@acme.example",
		ContactPhone: "+33100000000",
	})

	assert.ErrorIs(t, err, models.ConflictError)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestUpdateOrganizationConflict(t *testing.T) {
	pool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer pool.Close()

	name := "ACME Utilities"
	pool.ExpectExec("UPDATE organizations").
		WithArgs(name, "org-1", true).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	repo := CaseTrackDbRepository{}
	err = repo.UpdateOrganization(context.Background(), pool, models.UpdateOrganizationInput{
		Id:   "org-1",
		Name: &name,
	})

	assert.ErrorIs(t, err, models.ConflictError)
	assert.NoError(t, pool.ExpectationsWereMet())
}
