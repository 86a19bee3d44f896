package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories/dbmodels"
)

func (repo *CaseTrackDbRepository) ListLegislations(ctx context.Context, exec Executor) ([]models.Legislation, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectLegislationColumn...).
		From(dbmodels.TABLE_LEGISLATIONS).
		Where(activeRows).
		OrderBy("name ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptLegislation)
}

func (repo *CaseTrackDbRepository) GetLegislationById(ctx context.Context, exec Executor, legislationId string) (models.Legislation, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectLegislationColumn...).
		From(dbmodels.TABLE_LEGISLATIONS).
		Where(squirrel.Eq{"id": legislationId}).
		Where(activeRows)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptLegislation)
}

func (repo *CaseTrackDbRepository) GetLegislationsByIds(ctx context.Context, exec Executor, legislationIds []string) ([]models.Legislation, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectLegislationColumn...).
		From(dbmodels.TABLE_LEGISLATIONS).
		Where(squirrel.Eq{"id": legislationIds})

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptLegislation)
}

func (repo *CaseTrackDbRepository) CreateLegislation(
	ctx context.Context,
	exec Executor,
	newLegislationId string,
	input models.CreateLegislationInput,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_LEGISLATIONS).
			Columns("id", "name", "code", "description", "year", "status", "effective_date", "expiry_date").
			Values(newLegislationId, input.Name, input.Code, input.Description, input.Year,
				input.Status, input.EffectiveDate, input.ExpiryDate),
	)
	if IsUniqueViolationError(err) {
		return models.ConflictError
	}
	return err
}

func (repo *CaseTrackDbRepository) UpdateLegislation(ctx context.Context, exec Executor, input models.UpdateLegislationInput) error {
	query := NewQueryBuilder().Update(dbmodels.TABLE_LEGISLATIONS).
		Where(squirrel.Eq{"id": input.Id}).
		Where(activeRows)

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.Description != nil {
		query = query.Set("description", *input.Description)
	}
	if input.Year != nil {
		query = query.Set("year", *input.Year)
	}
	if input.Status != nil {
		query = query.Set("status", *input.Status)
	}
	if input.EffectiveDate != nil {
		query = query.Set("effective_date", *input.EffectiveDate)
	}
	if input.ExpiryDate != nil {
		query = query.Set("expiry_date", *input.ExpiryDate)
	}

	_, err := ExecBuilder(ctx, exec, query)
	if IsUniqueViolationError(err) {
		return models.ConflictError
	}
	return err
}

func (repo *CaseTrackDbRepository) SoftDeleteLegislation(ctx context.Context, exec Executor, legislationId string) (bool, error) {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_LEGISLATIONS).
			Set("is_active", false).
			Where(squirrel.Eq{"id": legislationId}).
			Where(activeRows),
	)
	return rowsAffected > 0, err
}
