package repositories

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/casetrack/casetrack-backend/models"
)

func TestCreateCaseWorkflow(t *testing.T) {
	pool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer pool.Close()

	pool.ExpectExec("INSERT INTO case_workflows").
		WithArgs("workflow-1", "case-1", models.WorkflowAddCase, models.WorkflowPending, "user-1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := CaseTrackDbRepository{}
	err = repo.CreateCaseWorkflow(context.Background(), pool,
		"workflow-1", "case-1", models.WorkflowAddCase, "user-1")

	assert.NoError(t, err)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestResolvePendingWorkflow(t *testing.T) {
	t.Run("resolves the pending row", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		assert.NoError(t, err)
		defer pool.Close()

		pool.ExpectExec("UPDATE case_workflows").
			WithArgs(models.WorkflowApproved, "user-1", pgxmock.AnyArg(), "looks good",
				"case-1", models.WorkflowPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := CaseTrackDbRepository{}
		resolved, err := repo.ResolvePendingWorkflow(context.Background(), pool,
			"case-1", models.WorkflowApproved, "user-1", "looks good")

		assert.NoError(t, err)
		assert.True(t, resolved)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("no pending row matches", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		assert.NoError(t, err)
		defer pool.Close()

		pool.ExpectExec("UPDATE case_workflows").
			WithArgs(models.WorkflowRejected, "user-1", pgxmock.AnyArg(), "",
				"case-1", models.WorkflowPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := CaseTrackDbRepository{}
		resolved, err := repo.ResolvePendingWorkflow(context.Background(), pool,
			"case-1", models.WorkflowRejected, "user-1", "")

		assert.NoError(t, err)
		assert.False(t, resolved)
	})
}
