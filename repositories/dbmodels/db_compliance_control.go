package dbmodels

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/utils"
)

type DBComplianceControl struct {
	Id            string    `db:"id"`
	LegislationId string    `db:"legislation_id"`
	ControlNumber string    `db:"control_number"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	Category      string    `db:"category"`
	RiskLevel     string    `db:"risk_level"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	IsActive      bool      `db:"is_active"`
}

const TABLE_COMPLIANCE_CONTROLS = "compliance_controls"

var SelectComplianceControlColumn = utils.ColumnList[DBComplianceControl]()

func AdaptComplianceControl(db DBComplianceControl) (models.ComplianceControl, error) {
	return models.ComplianceControl{
		Id:            db.Id,
		LegislationId: db.LegislationId,
		ControlNumber: db.ControlNumber,
		Title:         db.Title,
		Description:   db.Description,
		Category:      db.Category,
		RiskLevel:     models.RiskLevel(db.RiskLevel),
		Status:        models.ControlStatus(db.Status),
		CreatedAt:     db.CreatedAt,
	}, nil
}
