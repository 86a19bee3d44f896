package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/utils"
)

type DBCase struct {
	Id                   string         `db:"id"`
	CaseNumber           string         `db:"case_number"`
	OrganizationId       string         `db:"organization_id"`
	LegislationId        string         `db:"legislation_id"`
	ComplianceControlId  *string        `db:"compliance_control_id"`
	ArticleNumber        string         `db:"article_number"`
	ComplianceClause     string         `db:"compliance_clause"`
	NonComplianceStatus  string         `db:"non_compliance_status"`
	Channels             string         `db:"channels"`
	IsRelatedToJoi       bool           `db:"is_related_to_joi"`
	Source               string         `db:"source"`
	OwningUnitSector     string         `db:"owning_unit_sector"`
	MonitoringTeam       string         `db:"monitoring_team"`
	SectorNotifiedAt     time.Time      `db:"sector_notified_at"`
	Status               string         `db:"status"`
	Priority             string         `db:"priority"`
	ExpectedFine         pgtype.Numeric `db:"expected_fine"`
	ClosureDate          *time.Time     `db:"closure_date"`
	ClosureType          *string        `db:"closure_type"`
	ClosureJustification *string        `db:"closure_justification"`
	CreatedById          string         `db:"created_by_id"`
	AssignedToId         *string        `db:"assigned_to_id"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            *time.Time     `db:"updated_at"`
	IsActive             bool           `db:"is_active"`
}

const TABLE_CASES = "cases"

var SelectCaseColumn = utils.ColumnList[DBCase]()

func SelectCaseColumnWithAlias(alias string) []string {
	return utils.ColumnList[DBCase](alias)
}

func AdaptCase(db DBCase) (models.Case, error) {
	expectedFine, err := adaptNumericString(db.ExpectedFine)
	if err != nil {
		return models.Case{}, err
	}

	var closureType *models.ClosureType
	if db.ClosureType != nil {
		closureType = utils.Ptr(models.ClosureType(*db.ClosureType))
	}

	return models.Case{
		Id:                   db.Id,
		CaseNumber:           db.CaseNumber,
		OrganizationId:       db.OrganizationId,
		LegislationId:        db.LegislationId,
		ComplianceControlId:  db.ComplianceControlId,
		ArticleNumber:        db.ArticleNumber,
		ComplianceClause:     db.ComplianceClause,
		NonComplianceStatus:  db.NonComplianceStatus,
		Channels:             db.Channels,
		IsRelatedToJoi:       db.IsRelatedToJoi,
		Source:               db.Source,
		OwningUnitSector:     db.OwningUnitSector,
		MonitoringTeam:       db.MonitoringTeam,
		SectorNotifiedAt:     db.SectorNotifiedAt,
		Status:               models.CaseStatus(db.Status),
		Priority:             models.CasePriority(db.Priority),
		ExpectedFine:         expectedFine,
		ClosureDate:          db.ClosureDate,
		ClosureType:          closureType,
		ClosureJustification: db.ClosureJustification,
		CreatedById:          db.CreatedById,
		AssignedToId:         db.AssignedToId,
		CreatedAt:            db.CreatedAt,
		UpdatedAt:            db.UpdatedAt,
	}, nil
}

func adaptNumericString(n pgtype.Numeric) (*string, error) {
	if !n.Valid {
		return nil, nil
	}
	value, err := n.Value()
	if err != nil {
		return nil, err
	}
	s, ok := value.(string)
	if !ok {
		return nil, nil
	}
	return &s, nil
}
