package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories/dbmodels"
)

func (repo *CaseTrackDbRepository) CreateRemedialPlan(
	ctx context.Context,
	exec Executor,
	newPlanId string,
	attrs models.CreateRemedialPlanAttributes,
	createdById string,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_REMEDIAL_PLANS).
			Columns(
				"id",
				"case_id",
				"description",
				"change_request_number",
				"closure_date",
				"status",
				"created_by_id",
			).
			Values(
				newPlanId,
				attrs.CaseId,
				attrs.Description,
				attrs.ChangeRequestNumber,
				attrs.ClosureDate,
				attrs.Status,
				createdById,
			),
	)
	return err
}

func (repo *CaseTrackDbRepository) GetRemedialPlanById(ctx context.Context, exec Executor, planId string) (models.RemedialPlan, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectRemedialPlanColumn...).
		From(dbmodels.TABLE_REMEDIAL_PLANS).
		Where(squirrel.Eq{"id": planId}).
		Where(activeRows)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptRemedialPlan)
}

func (repo *CaseTrackDbRepository) ListRemedialPlans(ctx context.Context, exec Executor, caseId string) ([]models.RemedialPlan, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectRemedialPlanColumn...).
		From(dbmodels.TABLE_REMEDIAL_PLANS).
		Where(squirrel.Eq{"case_id": caseId}).
		Where(activeRows).
		OrderBy("created_at DESC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptRemedialPlan)
}
