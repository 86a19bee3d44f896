package dto

import (
	"mime/multipart"
	"time"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/pure_utils"

	"github.com/guregu/null/v5"
)

type APICase struct {
	Id                   string                `json:"id"`
	CaseNumber           string                `json:"case_number"`
	OrganizationId       string                `json:"organization_id"`
	OrganizationName     string                `json:"organization_name"`
	LegislationId        string                `json:"legislation_id"`
	LegislationName      string                `json:"legislation_name"`
	ComplianceControlId  *string               `json:"compliance_control_id,omitempty"`
	ComplianceControl    *APIComplianceControl `json:"compliance_control,omitempty"`
	ArticleNumber        string                `json:"article_number"`
	ComplianceClause     string                `json:"compliance_clause"`
	NonComplianceStatus  string                `json:"non_compliance_status"`
	Channels             string                `json:"channels"`
	IsRelatedToJoi       bool                  `json:"is_related_to_joi"`
	Source               string                `json:"source"`
	OwningUnitSector     string                `json:"owning_unit_sector"`
	MonitoringTeam       string                `json:"monitoring_team"`
	SectorNotifiedAt     time.Time             `json:"sector_notified_at"`
	Status               string                `json:"status"`
	Priority             string                `json:"priority"`
	ExpectedFine         null.String           `json:"expected_fine"`
	ClosureDate          null.Time             `json:"closure_date"`
	ClosureType          null.String           `json:"closure_type"`
	ClosureJustification null.String           `json:"closure_justification"`
	CreatedById          string                `json:"created_by_id"`
	CreatedByName        string                `json:"created_by_name,omitempty"`
	AssignedToId         null.String           `json:"assigned_to_id"`
	AssignedToName       string                `json:"assigned_to_name,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            null.Time             `json:"updated_at"`
	Attachments          []APICaseAttachment   `json:"attachments"`
}

type APICaseWithDetails struct {
	APICase
	Updates       []APICaseUpdate   `json:"updates"`
	RemedialPlans []APIRemedialPlan `json:"remedial_plans"`
	Workflows     []APICaseWorkflow `json:"workflows"`
}

func AdaptCaseDto(c models.Case) APICase {
	dto := APICase{
		Id:                   c.Id,
		CaseNumber:           c.CaseNumber,
		OrganizationId:       c.OrganizationId,
		OrganizationName:     c.Organization.Name,
		LegislationId:        c.LegislationId,
		LegislationName:      c.Legislation.Name,
		ComplianceControlId:  c.ComplianceControlId,
		ArticleNumber:        c.ArticleNumber,
		ComplianceClause:     c.ComplianceClause,
		NonComplianceStatus:  c.NonComplianceStatus,
		Channels:             c.Channels,
		IsRelatedToJoi:       c.IsRelatedToJoi,
		Source:               c.Source,
		OwningUnitSector:     c.OwningUnitSector,
		MonitoringTeam:       c.MonitoringTeam,
		SectorNotifiedAt:     c.SectorNotifiedAt,
		Status:               string(c.Status),
		Priority:             string(c.Priority),
		ExpectedFine:         null.StringFromPtr(c.ExpectedFine),
		ClosureDate:          null.TimeFromPtr(c.ClosureDate),
		ClosureType:          null.StringFromPtr((*string)(c.ClosureType)),
		ClosureJustification: null.StringFromPtr(c.ClosureJustification),
		CreatedById:          c.CreatedById,
		AssignedToId:         null.StringFromPtr(c.AssignedToId),
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            null.TimeFromPtr(c.UpdatedAt),
		Attachments:          pure_utils.Map(c.Attachments, AdaptCaseAttachmentDto),
	}

	if c.ComplianceControl != nil {
		control := AdaptComplianceControlDto(*c.ComplianceControl)
		dto.ComplianceControl = &control
	}
	if c.CreatedBy != nil {
		dto.CreatedByName = c.CreatedBy.FullName()
	}
	if c.AssignedTo != nil {
		dto.AssignedToName = c.AssignedTo.FullName()
	}

	return dto
}

func AdaptCaseWithDetailsDto(c models.Case) APICaseWithDetails {
	return APICaseWithDetails{
		APICase:       AdaptCaseDto(c),
		Updates:       pure_utils.Map(c.Updates, AdaptCaseUpdateDto),
		RemedialPlans: pure_utils.Map(c.RemedialPlans, AdaptRemedialPlanDto),
		Workflows:     pure_utils.Map(c.Workflows, AdaptCaseWorkflowDto),
	}
}

// CreateCaseForm is bound from a multipart form so attachments can ride
// along with the case fields.
type CreateCaseForm struct {
	CaseNumber          string                  `form:"case_number" binding:"required"`
	OrganizationId      string                  `form:"organization_id" binding:"required,uuid"`
	LegislationId       string                  `form:"legislation_id" binding:"required,uuid"`
	ComplianceControlId null.String             `form:"compliance_control_id"`
	ArticleNumber       string                  `form:"article_number" binding:"required"`
	ComplianceClause    string                  `form:"compliance_clause" binding:"required"`
	NonComplianceStatus string                  `form:"non_compliance_status" binding:"required"`
	Channels            string                  `form:"channels" binding:"required"`
	IsRelatedToJoi      bool                    `form:"is_related_to_joi"`
	Source              string                  `form:"source" binding:"required"`
	OwningUnitSector    string                  `form:"owning_unit_sector" binding:"required"`
	MonitoringTeam      string                  `form:"monitoring_team" binding:"required"`
	SectorNotifiedAt    time.Time               `form:"sector_notified_at" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	Priority            string                  `form:"priority" binding:"required"`
	ExpectedFine        null.String             `form:"expected_fine"`
	AssignedToId        null.String             `form:"assigned_to_id"`
	Files               []*multipart.FileHeader `form:"files[]"`
}

func AdaptCreateCaseAttributes(form CreateCaseForm) (models.CreateCaseAttributes, error) {
	priority, err := models.ValidateCasePriority(form.Priority)
	if err != nil {
		return models.CreateCaseAttributes{}, err
	}

	return models.CreateCaseAttributes{
		CaseNumber:          form.CaseNumber,
		OrganizationId:      form.OrganizationId,
		LegislationId:       form.LegislationId,
		ComplianceControlId: form.ComplianceControlId.Ptr(),
		ArticleNumber:       form.ArticleNumber,
		ComplianceClause:    form.ComplianceClause,
		NonComplianceStatus: form.NonComplianceStatus,
		Channels:            form.Channels,
		IsRelatedToJoi:      form.IsRelatedToJoi,
		Source:              form.Source,
		OwningUnitSector:    form.OwningUnitSector,
		MonitoringTeam:      form.MonitoringTeam,
		SectorNotifiedAt:    form.SectorNotifiedAt,
		Priority:            priority,
		ExpectedFine:        form.ExpectedFine.Ptr(),
		AssignedToId:        form.AssignedToId.Ptr(),
		Attachments:         form.Files,
	}, nil
}

type UpdateCaseBody struct {
	OrganizationId      string      `json:"organization_id" binding:"required,uuid"`
	LegislationId       string      `json:"legislation_id" binding:"required,uuid"`
	ComplianceControlId null.String `json:"compliance_control_id"`
	ArticleNumber       string      `json:"article_number" binding:"required"`
	ComplianceClause    string      `json:"compliance_clause" binding:"required"`
	NonComplianceStatus string      `json:"non_compliance_status" binding:"required"`
	Channels            string      `json:"channels" binding:"required"`
	IsRelatedToJoi      bool        `json:"is_related_to_joi"`
	Source              string      `json:"source" binding:"required"`
	OwningUnitSector    string      `json:"owning_unit_sector" binding:"required"`
	MonitoringTeam      string      `json:"monitoring_team" binding:"required"`
	SectorNotifiedAt    time.Time   `json:"sector_notified_at" binding:"required"`
	Status              string      `json:"status" binding:"required"`
	Priority            string      `json:"priority" binding:"required"`
	ExpectedFine        null.String `json:"expected_fine"`
	AssignedToId        null.String `json:"assigned_to_id"`
}

func AdaptUpdateCaseAttributes(caseId string, body UpdateCaseBody) (models.UpdateCaseAttributes, error) {
	status, err := models.ValidateCaseStatus(body.Status)
	if err != nil {
		return models.UpdateCaseAttributes{}, err
	}
	priority, err := models.ValidateCasePriority(body.Priority)
	if err != nil {
		return models.UpdateCaseAttributes{}, err
	}

	return models.UpdateCaseAttributes{
		Id:                  caseId,
		OrganizationId:      body.OrganizationId,
		LegislationId:       body.LegislationId,
		ComplianceControlId: body.ComplianceControlId.Ptr(),
		ArticleNumber:       body.ArticleNumber,
		ComplianceClause:    body.ComplianceClause,
		NonComplianceStatus: body.NonComplianceStatus,
		Channels:            body.Channels,
		IsRelatedToJoi:      body.IsRelatedToJoi,
		Source:              body.Source,
		OwningUnitSector:    body.OwningUnitSector,
		MonitoringTeam:      body.MonitoringTeam,
		SectorNotifiedAt:    body.SectorNotifiedAt,
		Status:              status,
		Priority:            priority,
		ExpectedFine:        body.ExpectedFine.Ptr(),
		AssignedToId:        body.AssignedToId.Ptr(),
	}, nil
}

type CloseCaseBody struct {
	ClosureDate          time.Time `json:"closure_date" binding:"required"`
	ClosureType          string    `json:"closure_type" binding:"required"`
	ClosureJustification string    `json:"closure_justification" binding:"required"`
}

func AdaptCloseCaseAttributes(caseId string, body CloseCaseBody) (models.CloseCaseAttributes, error) {
	closureType, err := models.ValidateClosureType(body.ClosureType)
	if err != nil {
		return models.CloseCaseAttributes{}, err
	}

	return models.CloseCaseAttributes{
		CaseId:               caseId,
		ClosureDate:          body.ClosureDate,
		ClosureType:          closureType,
		ClosureJustification: body.ClosureJustification,
	}, nil
}

type ResolveCaseBody struct {
	Comments string `json:"comments"`
}

type CaseFilters struct {
	Status           string `form:"status"`
	OrganizationName string `form:"organization"`
	LegislationName  string `form:"legislation"`
}

func AdaptCaseFilters(filters CaseFilters) (models.CaseFilters, error) {
	parsed := models.CaseFilters{
		OrganizationName: filters.OrganizationName,
		LegislationName:  filters.LegislationName,
	}
	if filters.Status != "" {
		status, err := models.ValidateCaseStatus(filters.Status)
		if err != nil {
			return models.CaseFilters{}, err
		}
		parsed.Status = status
	}
	return parsed, nil
}

type APICaseStats struct {
	TotalCases  int `json:"total_cases"`
	OpenCases   int `json:"open_cases"`
	ClosedCases int `json:"closed_cases"`
}

func AdaptCaseStatsDto(stats models.CaseStats) APICaseStats {
	return APICaseStats{
		TotalCases:  stats.TotalCases,
		OpenCases:   stats.OpenCases,
		ClosedCases: stats.ClosedCases,
	}
}
