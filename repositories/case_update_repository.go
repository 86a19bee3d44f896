package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories/dbmodels"
)

func (repo *CaseTrackDbRepository) CreateCaseUpdate(
	ctx context.Context,
	exec Executor,
	newUpdateId string,
	attrs models.CreateCaseUpdateAttributes,
	updatedById string,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASE_UPDATES).
			Columns(
				"id",
				"case_id",
				"update_type",
				"old_value",
				"new_value",
				"details",
				"updated_by_id",
			).
			Values(
				newUpdateId,
				attrs.CaseId,
				attrs.UpdateType,
				attrs.OldValue,
				attrs.NewValue,
				attrs.Details,
				updatedById,
			),
	)
	return err
}

func (repo *CaseTrackDbRepository) ListCaseUpdates(ctx context.Context, exec Executor, caseId string) ([]models.CaseUpdate, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseUpdateColumn...).
		From(dbmodels.TABLE_CASE_UPDATES).
		Where(squirrel.Eq{"case_id": caseId}).
		OrderBy("updated_at DESC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCaseUpdate)
}
