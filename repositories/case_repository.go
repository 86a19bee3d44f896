package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories/dbmodels"
)

func (repo *CaseTrackDbRepository) ListCases(
	ctx context.Context,
	exec Executor,
	filters models.CaseFilters,
) ([]models.Case, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseColumnWithAlias("c")...).
		From(dbmodels.TABLE_CASES + " AS c").
		Join(dbmodels.TABLE_ORGANIZATIONS + " AS o ON o.id = c.organization_id").
		Join(dbmodels.TABLE_LEGISLATIONS + " AS l ON l.id = c.legislation_id").
		Where(activeRowsOf("c")).
		OrderBy("c.created_at DESC")

	if filters.Status != "" {
		query = query.Where(squirrel.Eq{"c.status": filters.Status})
	}
	if filters.OrganizationName != "" {
		query = query.Where(squirrel.ILike{"o.name": "%" + filters.OrganizationName + "%"})
	}
	if filters.LegislationName != "" {
		query = query.Where(squirrel.ILike{"l.name": "%" + filters.LegislationName + "%"})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCase)
}

func (repo *CaseTrackDbRepository) GetCaseById(ctx context.Context, exec Executor, caseId string) (models.Case, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseColumn...).
		From(dbmodels.TABLE_CASES).
		Where(squirrel.Eq{"id": caseId}).
		Where(activeRows)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptCase)
}

func (repo *CaseTrackDbRepository) GetCaseByNumber(ctx context.Context, exec Executor, caseNumber string) (models.Case, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseColumn...).
		From(dbmodels.TABLE_CASES).
		Where(squirrel.Eq{"case_number": caseNumber}).
		Where(activeRows)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptCase)
}

func (repo *CaseTrackDbRepository) CreateCase(
	ctx context.Context,
	exec Executor,
	attrs models.CreateCaseAttributes,
	createdById string,
	newCaseId string,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASES).
			Columns(
				"id",
				"case_number",
				"organization_id",
				"legislation_id",
				"compliance_control_id",
				"article_number",
				"compliance_clause",
				"non_compliance_status",
				"channels",
				"is_related_to_joi",
				"source",
				"owning_unit_sector",
				"monitoring_team",
				"sector_notified_at",
				"status",
				"priority",
				"expected_fine",
				"created_by_id",
				"assigned_to_id",
			).
			Values(
				newCaseId,
				attrs.CaseNumber,
				attrs.OrganizationId,
				attrs.LegislationId,
				attrs.ComplianceControlId,
				attrs.ArticleNumber,
				attrs.ComplianceClause,
				attrs.NonComplianceStatus,
				attrs.Channels,
				attrs.IsRelatedToJoi,
				attrs.Source,
				attrs.OwningUnitSector,
				attrs.MonitoringTeam,
				attrs.SectorNotifiedAt,
				models.CaseOpen,
				attrs.Priority,
				attrs.ExpectedFine,
				createdById,
				attrs.AssignedToId,
			),
	)
	if IsUniqueViolationError(err) {
		return models.ErrCaseNumberAlreadyExists
	}
	return err
}

func (repo *CaseTrackDbRepository) UpdateCase(ctx context.Context, exec Executor, attrs models.UpdateCaseAttributes) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASES).
			Set("organization_id", attrs.OrganizationId).
			Set("legislation_id", attrs.LegislationId).
			Set("compliance_control_id", attrs.ComplianceControlId).
			Set("article_number", attrs.ArticleNumber).
			Set("compliance_clause", attrs.ComplianceClause).
			Set("non_compliance_status", attrs.NonComplianceStatus).
			Set("channels", attrs.Channels).
			Set("is_related_to_joi", attrs.IsRelatedToJoi).
			Set("source", attrs.Source).
			Set("owning_unit_sector", attrs.OwningUnitSector).
			Set("monitoring_team", attrs.MonitoringTeam).
			Set("sector_notified_at", attrs.SectorNotifiedAt).
			Set("status", attrs.Status).
			Set("priority", attrs.Priority).
			Set("expected_fine", attrs.ExpectedFine).
			Set("assigned_to_id", attrs.AssignedToId).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": attrs.Id}),
	)
	return err
}

func (repo *CaseTrackDbRepository) CloseCase(ctx context.Context, exec Executor, attrs models.CloseCaseAttributes) (bool, error) {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASES).
			Set("status", models.CaseClosed).
			Set("closure_date", attrs.ClosureDate).
			Set("closure_type", attrs.ClosureType).
			Set("closure_justification", attrs.ClosureJustification).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": attrs.CaseId}).
			Where(activeRows),
	)
	return rowsAffected > 0, err
}

func (repo *CaseTrackDbRepository) UpdateCaseStatus(ctx context.Context, exec Executor, caseId string, status models.CaseStatus) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASES).
			Set("status", status).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": caseId}),
	)
	return err
}

func (repo *CaseTrackDbRepository) SoftDeleteCase(ctx context.Context, exec Executor, caseId string) (bool, error) {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASES).
			Set("is_active", false).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": caseId}).
			Where(activeRows),
	)
	return rowsAffected > 0, err
}

func (repo *CaseTrackDbRepository) CountCases(ctx context.Context, exec Executor) (models.CaseStats, error) {
	query := NewQueryBuilder().
		Select(
			"COUNT(*) AS total_cases",
			fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s') AS open_cases", models.CaseOpen),
			fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s') AS closed_cases", models.CaseClosed),
		).
		From(dbmodels.TABLE_CASES).
		Where(activeRows)

	type dbCaseStats struct {
		TotalCases  int `db:"total_cases"`
		OpenCases   int `db:"open_cases"`
		ClosedCases int `db:"closed_cases"`
	}

	return SqlToModel(ctx, exec, query, func(db dbCaseStats) (models.CaseStats, error) {
		return models.CaseStats{
			TotalCases:  db.TotalCases,
			OpenCases:   db.OpenCases,
			ClosedCases: db.ClosedCases,
		}, nil
	})
}
