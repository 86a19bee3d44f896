package models

import (
	"mime/multipart"
	"time"
)

type CaseAttachment struct {
	Id               string
	CaseId           string
	FileReference    string
	OriginalFileName string
	ContentType      string
	FileSize         int64
	Description      string
	UploadedById     string
	UploadedAt       time.Time
}

type RemedialPlanAttachment struct {
	Id               string
	RemedialPlanId   string
	FileReference    string
	OriginalFileName string
	ContentType      string
	FileSize         int64
	Description      string
	UploadedById     string
	UploadedAt       time.Time
}

type CreateCaseFilesInput struct {
	CaseId string
	Files  []*multipart.FileHeader
}
