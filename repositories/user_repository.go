package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories/dbmodels"
)

func (repo *CaseTrackDbRepository) ListUsers(ctx context.Context, exec Executor) ([]models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumn...).
		From(dbmodels.TABLE_USERS).
		Where(activeRows).
		OrderBy("last_name ASC, first_name ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptUser)
}

func (repo *CaseTrackDbRepository) GetUserById(ctx context.Context, exec Executor, userId string) (models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumn...).
		From(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{"id": userId}).
		Where(activeRows)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptUser)
}

func (repo *CaseTrackDbRepository) GetUsersByIds(ctx context.Context, exec Executor, userIds []string) ([]models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumn...).
		From(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{"id": userIds})

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptUser)
}
