package dto

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"
)

type APICaseAttachment struct {
	Id               string    `json:"id"`
	CaseId           string    `json:"case_id"`
	OriginalFileName string    `json:"original_file_name"`
	ContentType      string    `json:"content_type"`
	FileSize         int64     `json:"file_size"`
	Description      string    `json:"description"`
	UploadedById     string    `json:"uploaded_by_id"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

func AdaptCaseAttachmentDto(attachment models.CaseAttachment) APICaseAttachment {
	return APICaseAttachment{
		Id:               attachment.Id,
		CaseId:           attachment.CaseId,
		OriginalFileName: attachment.OriginalFileName,
		ContentType:      attachment.ContentType,
		FileSize:         attachment.FileSize,
		Description:      attachment.Description,
		UploadedById:     attachment.UploadedById,
		UploadedAt:       attachment.UploadedAt,
	}
}

type APIRemedialPlanAttachment struct {
	Id               string    `json:"id"`
	RemedialPlanId   string    `json:"remedial_plan_id"`
	OriginalFileName string    `json:"original_file_name"`
	ContentType      string    `json:"content_type"`
	FileSize         int64     `json:"file_size"`
	Description      string    `json:"description"`
	UploadedById     string    `json:"uploaded_by_id"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

func AdaptRemedialPlanAttachmentDto(attachment models.RemedialPlanAttachment) APIRemedialPlanAttachment {
	return APIRemedialPlanAttachment{
		Id:               attachment.Id,
		RemedialPlanId:   attachment.RemedialPlanId,
		OriginalFileName: attachment.OriginalFileName,
		ContentType:      attachment.ContentType,
		FileSize:         attachment.FileSize,
		Description:      attachment.Description,
		UploadedById:     attachment.UploadedById,
		UploadedAt:       attachment.UploadedAt,
	}
}
