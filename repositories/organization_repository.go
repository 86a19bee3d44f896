package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories/dbmodels"
)

func (repo *CaseTrackDbRepository) ListOrganizations(ctx context.Context, exec Executor) ([]models.Organization, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectOrganizationColumn...).
		From(dbmodels.TABLE_ORGANIZATIONS).
		Where(activeRows).
		OrderBy("name ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptOrganization)
}

func (repo *CaseTrackDbRepository) GetOrganizationById(ctx context.Context, exec Executor, organizationId string) (models.Organization, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectOrganizationColumn...).
		From(dbmodels.TABLE_ORGANIZATIONS).
		Where(squirrel.Eq{"id": organizationId}).
		Where(activeRows)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptOrganization)
}

func (repo *CaseTrackDbRepository) GetOrganizationsByIds(ctx context.Context, exec Executor, organizationIds []string) ([]models.Organization, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectOrganizationColumn...).
		From(dbmodels.TABLE_ORGANIZATIONS).
		Where(squirrel.Eq{"id": organizationIds})

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptOrganization)
}

func (repo *CaseTrackDbRepository) CreateOrganization(
	ctx context.Context,
	exec Executor,
	newOrganizationId string,
	input models.CreateOrganizationInput,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_ORGANIZATIONS).
			Columns("id", "name", "code", "contact_name", "contact_email", "contact_phone").
			Values(newOrganizationId, input.Name, input.Code, input.ContactName, input.ContactEmail, input.ContactPhone),
	)
	if IsUniqueViolationError(err) {
		return models.ConflictError
	}
	return err
}

func (repo *CaseTrackDbRepository) UpdateOrganization(ctx context.Context, exec Executor, input models.UpdateOrganizationInput) error {
	query := NewQueryBuilder().Update(dbmodels.TABLE_ORGANIZATIONS).
		Where(squirrel.Eq{"id": input.Id}).
		Where(activeRows)

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.ContactName != nil {
		query = query.Set("contact_name", *input.ContactName)
	}
	if input.ContactEmail != nil {
		query = query.Set("contact_email", *input.ContactEmail)
	}
	if input.ContactPhone != nil {
		query = query.Set("contact_phone", *input.ContactPhone)
	}

	_, err := ExecBuilder(ctx, exec, query)
	if IsUniqueViolationError(err) {
		return models.ConflictError
	}
	return err
}

func (repo *CaseTrackDbRepository) SoftDeleteOrganization(ctx context.Context, exec Executor, organizationId string) (bool, error) {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_ORGANIZATIONS).
			Set("is_active", false).
			Where(squirrel.Eq{"id": organizationId}).
			Where(activeRows),
	)
	return rowsAffected > 0, err
}
