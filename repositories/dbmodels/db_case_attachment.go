package dbmodels

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/utils"
)

type DBCaseAttachment struct {
	Id               string    `db:"id"`
	CaseId           string    `db:"case_id"`
	FileReference    string    `db:"file_reference"`
	OriginalFileName string    `db:"original_file_name"`
	ContentType      string    `db:"content_type"`
	FileSize         int64     `db:"file_size"`
	Description      string    `db:"description"`
	UploadedById     string    `db:"uploaded_by_id"`
	UploadedAt       time.Time `db:"uploaded_at"`
	IsActive         bool      `db:"is_active"`
}

const TABLE_CASE_ATTACHMENTS = "case_attachments"

var SelectCaseAttachmentColumn = utils.ColumnList[DBCaseAttachment]()

func AdaptCaseAttachment(db DBCaseAttachment) (models.CaseAttachment, error) {
	return models.CaseAttachment{
		Id:               db.Id,
		CaseId:           db.CaseId,
		FileReference:    db.FileReference,
		OriginalFileName: db.OriginalFileName,
		ContentType:      db.ContentType,
		FileSize:         db.FileSize,
		Description:      db.Description,
		UploadedById:     db.UploadedById,
		UploadedAt:       db.UploadedAt,
	}, nil
}

type DBRemedialPlanAttachment struct {
	Id               string    `db:"id"`
	RemedialPlanId   string    `db:"remedial_plan_id"`
	FileReference    string    `db:"file_reference"`
	OriginalFileName string    `db:"original_file_name"`
	ContentType      string    `db:"content_type"`
	FileSize         int64     `db:"file_size"`
	Description      string    `db:"description"`
	UploadedById     string    `db:"uploaded_by_id"`
	UploadedAt       time.Time `db:"uploaded_at"`
	IsActive         bool      `db:"is_active"`
}

const TABLE_REMEDIAL_PLAN_ATTACHMENTS = "remedial_plan_attachments"

var SelectRemedialPlanAttachmentColumn = utils.ColumnList[DBRemedialPlanAttachment]()

func AdaptRemedialPlanAttachment(db DBRemedialPlanAttachment) (models.RemedialPlanAttachment, error) {
	return models.RemedialPlanAttachment{
		Id:               db.Id,
		RemedialPlanId:   db.RemedialPlanId,
		FileReference:    db.FileReference,
		OriginalFileName: db.OriginalFileName,
		ContentType:      db.ContentType,
		FileSize:         db.FileSize,
		Description:      db.Description,
		UploadedById:     db.UploadedById,
		UploadedAt:       db.UploadedAt,
	}, nil
}
