package dbmodels

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/utils"
)

type DBCaseUpdate struct {
	Id          string    `db:"id"`
	CaseId      string    `db:"case_id"`
	UpdateType  string    `db:"update_type"`
	OldValue    string    `db:"old_value"`
	NewValue    string    `db:"new_value"`
	Details     string    `db:"details"`
	UpdatedById string    `db:"updated_by_id"`
	UpdatedAt   time.Time `db:"updated_at"`
	IsActive    bool      `db:"is_active"`
}

const TABLE_CASE_UPDATES = "case_updates"

var SelectCaseUpdateColumn = utils.ColumnList[DBCaseUpdate]()

func AdaptCaseUpdate(db DBCaseUpdate) (models.CaseUpdate, error) {
	return models.CaseUpdate{
		Id:          db.Id,
		CaseId:      db.CaseId,
		UpdateType:  models.UpdateType(db.UpdateType),
		OldValue:    db.OldValue,
		NewValue:    db.NewValue,
		Details:     db.Details,
		UpdatedById: db.UpdatedById,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}
