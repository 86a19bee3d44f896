package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories/dbmodels"
)

func (repo *CaseTrackDbRepository) CreateCaseWorkflow(
	ctx context.Context,
	exec Executor,
	newWorkflowId string,
	caseId string,
	workflowType models.WorkflowType,
	requestedById string,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASE_WORKFLOWS).
			Columns(
				"id",
				"case_id",
				"workflow_type",
				"status",
				"requested_by_id",
			).
			Values(
				newWorkflowId,
				caseId,
				workflowType,
				models.WorkflowPending,
				requestedById,
			),
	)
	return err
}

func (repo *CaseTrackDbRepository) ListCaseWorkflows(ctx context.Context, exec Executor, caseId string) ([]models.CaseWorkflow, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseWorkflowColumn...).
		From(dbmodels.TABLE_CASE_WORKFLOWS).
		Where(squirrel.Eq{"case_id": caseId}).
		OrderBy("requested_at DESC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCaseWorkflow)
}

func (repo *CaseTrackDbRepository) ListPendingWorkflows(ctx context.Context, exec Executor) ([]models.PendingWorkflow, error) {
	columns := dbmodels.SelectCaseWorkflowColumnWithAlias("w")
	columns = append(columns,
		"c.case_number AS case_number",
		"c.status AS case_status",
		"o.name AS organization_name",
		"l.name AS legislation_name",
	)

	query := NewQueryBuilder().
		Select(columns...).
		From(dbmodels.TABLE_CASE_WORKFLOWS + " AS w").
		Join(dbmodels.TABLE_CASES + " AS c ON c.id = w.case_id").
		Join(dbmodels.TABLE_ORGANIZATIONS + " AS o ON o.id = c.organization_id").
		Join(dbmodels.TABLE_LEGISLATIONS + " AS l ON l.id = c.legislation_id").
		Where(squirrel.Eq{"w.status": models.WorkflowPending}).
		Where(activeRowsOf("w")).
		OrderBy("w.requested_at ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptPendingWorkflow)
}

// ResolvePendingWorkflow resolves the case's single pending workflow row by
// predicate, so two concurrent resolutions cannot both succeed: the second
// update matches zero rows.
func (repo *CaseTrackDbRepository) ResolvePendingWorkflow(
	ctx context.Context,
	exec Executor,
	caseId string,
	status models.WorkflowStatus,
	approvedById string,
	comments string,
) (bool, error) {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASE_WORKFLOWS).
			Set("status", status).
			Set("approved_by_id", approvedById).
			Set("approved_at", time.Now().UTC()).
			Set("comments", comments).
			Where(squirrel.Eq{
				"case_id": caseId,
				"status":  models.WorkflowPending,
			}),
	)
	return rowsAffected > 0, err
}
