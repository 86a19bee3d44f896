package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories/dbmodels"
)

type CreateAttachmentMetadata struct {
	Id               string
	FileReference    string
	OriginalFileName string
	ContentType      string
	FileSize         int64
	Description      string
	UploadedById     string
}

func (repo *CaseTrackDbRepository) CreateCaseAttachment(
	ctx context.Context,
	exec Executor,
	caseId string,
	metadata CreateAttachmentMetadata,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASE_ATTACHMENTS).
			Columns(
				"id",
				"case_id",
				"file_reference",
				"original_file_name",
				"content_type",
				"file_size",
				"description",
				"uploaded_by_id",
			).
			Values(
				metadata.Id,
				caseId,
				metadata.FileReference,
				metadata.OriginalFileName,
				metadata.ContentType,
				metadata.FileSize,
				metadata.Description,
				metadata.UploadedById,
			),
	)
	return err
}

func (repo *CaseTrackDbRepository) GetCaseAttachmentById(ctx context.Context, exec Executor, attachmentId string) (models.CaseAttachment, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseAttachmentColumn...).
		From(dbmodels.TABLE_CASE_ATTACHMENTS).
		Where(squirrel.Eq{"id": attachmentId}).
		Where(activeRows)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptCaseAttachment)
}

func (repo *CaseTrackDbRepository) ListCaseAttachments(ctx context.Context, exec Executor, caseIds []string) ([]models.CaseAttachment, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseAttachmentColumn...).
		From(dbmodels.TABLE_CASE_ATTACHMENTS).
		Where(squirrel.Eq{"case_id": caseIds}).
		Where(activeRows).
		OrderBy("uploaded_at ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCaseAttachment)
}

func (repo *CaseTrackDbRepository) CreateRemedialPlanAttachment(
	ctx context.Context,
	exec Executor,
	remedialPlanId string,
	metadata CreateAttachmentMetadata,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_REMEDIAL_PLAN_ATTACHMENTS).
			Columns(
				"id",
				"remedial_plan_id",
				"file_reference",
				"original_file_name",
				"content_type",
				"file_size",
				"description",
				"uploaded_by_id",
			).
			Values(
				metadata.Id,
				remedialPlanId,
				metadata.FileReference,
				metadata.OriginalFileName,
				metadata.ContentType,
				metadata.FileSize,
				metadata.Description,
				metadata.UploadedById,
			),
	)
	return err
}

func (repo *CaseTrackDbRepository) ListRemedialPlanAttachments(
	ctx context.Context,
	exec Executor,
	remedialPlanIds []string,
) ([]models.RemedialPlanAttachment, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectRemedialPlanAttachmentColumn...).
		From(dbmodels.TABLE_REMEDIAL_PLAN_ATTACHMENTS).
		Where(squirrel.Eq{"remedial_plan_id": remedialPlanIds}).
		Where(activeRows).
		OrderBy("uploaded_at ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptRemedialPlanAttachment)
}
