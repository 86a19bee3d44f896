package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories/dbmodels"
)

func (repo *CaseTrackDbRepository) ListComplianceControls(
	ctx context.Context,
	exec Executor,
	legislationId *string,
) ([]models.ComplianceControl, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectComplianceControlColumn...).
		From(dbmodels.TABLE_COMPLIANCE_CONTROLS).
		Where(activeRows).
		OrderBy("control_number ASC")

	if legislationId != nil {
		query = query.Where(squirrel.Eq{"legislation_id": *legislationId})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptComplianceControl)
}

func (repo *CaseTrackDbRepository) GetComplianceControlById(ctx context.Context, exec Executor, controlId string) (models.ComplianceControl, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectComplianceControlColumn...).
		From(dbmodels.TABLE_COMPLIANCE_CONTROLS).
		Where(squirrel.Eq{"id": controlId}).
		Where(activeRows)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptComplianceControl)
}

func (repo *CaseTrackDbRepository) GetComplianceControlsByIds(
	ctx context.Context,
	exec Executor,
	controlIds []string,
) ([]models.ComplianceControl, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectComplianceControlColumn...).
		From(dbmodels.TABLE_COMPLIANCE_CONTROLS).
		Where(squirrel.Eq{"id": controlIds})

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptComplianceControl)
}

func (repo *CaseTrackDbRepository) CreateComplianceControl(
	ctx context.Context,
	exec Executor,
	newControlId string,
	input models.CreateComplianceControlInput,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_COMPLIANCE_CONTROLS).
			Columns("id", "legislation_id", "control_number", "title", "description",
				"category", "risk_level", "status").
			Values(newControlId, input.LegislationId, input.ControlNumber, input.Title,
				input.Description, input.Category, input.RiskLevel, input.Status),
	)
	if IsUniqueViolationError(err) {
		return models.ConflictError
	}
	return err
}

func (repo *CaseTrackDbRepository) UpdateComplianceControl(
	ctx context.Context,
	exec Executor,
	input models.UpdateComplianceControlInput,
) error {
	query := NewQueryBuilder().Update(dbmodels.TABLE_COMPLIANCE_CONTROLS).
		Where(squirrel.Eq{"id": input.Id}).
		Where(activeRows)

	if input.Title != nil {
		query = query.Set("title", *input.Title)
	}
	if input.Description != nil {
		query = query.Set("description", *input.Description)
	}
	if input.Category != nil {
		query = query.Set("category", *input.Category)
	}
	if input.RiskLevel != nil {
		query = query.Set("risk_level", *input.RiskLevel)
	}
	if input.Status != nil {
		query = query.Set("status", *input.Status)
	}

	_, err := ExecBuilder(ctx, exec, query)
	if IsUniqueViolationError(err) {
		return models.ConflictError
	}
	return err
}

func (repo *CaseTrackDbRepository) SoftDeleteComplianceControl(ctx context.Context, exec Executor, controlId string) (bool, error) {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_COMPLIANCE_CONTROLS).
			Set("is_active", false).
			Where(squirrel.Eq{"id": controlId}).
			Where(activeRows),
	)
	return rowsAffected > 0, err
}
