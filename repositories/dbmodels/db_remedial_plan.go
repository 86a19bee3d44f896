package dbmodels

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/utils"
)

type DBRemedialPlan struct {
	Id                  string     `db:"id"`
	CaseId              string     `db:"case_id"`
	Description         string     `db:"description"`
	ChangeRequestNumber string     `db:"change_request_number"`
	ClosureDate         *time.Time `db:"closure_date"`
	Status              string     `db:"status"`
	CreatedById         string     `db:"created_by_id"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           *time.Time `db:"updated_at"`
	IsActive            bool       `db:"is_active"`
}

const TABLE_REMEDIAL_PLANS = "remedial_plans"

var SelectRemedialPlanColumn = utils.ColumnList[DBRemedialPlan]()

func AdaptRemedialPlan(db DBRemedialPlan) (models.RemedialPlan, error) {
	return models.RemedialPlan{
		Id:                  db.Id,
		CaseId:              db.CaseId,
		Description:         db.Description,
		ChangeRequestNumber: db.ChangeRequestNumber,
		ClosureDate:         db.ClosureDate,
		Status:              models.RemedialPlanStatus(db.Status),
		CreatedById:         db.CreatedById,
		CreatedAt:           db.CreatedAt,
		UpdatedAt:           db.UpdatedAt,
	}, nil
}
