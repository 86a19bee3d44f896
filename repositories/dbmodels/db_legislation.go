package dbmodels

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/utils"
)

type DBLegislation struct {
	Id            string     `db:"id"`
	Name          string     `db:"name"`
	Code          string     `db:"code"`
	Description   string     `db:"description"`
	Year          int        `db:"year"`
	Status        string     `db:"status"`
	EffectiveDate time.Time  `db:"effective_date"`
	ExpiryDate    *time.Time `db:"expiry_date"`
	CreatedAt     time.Time  `db:"created_at"`
	IsActive      bool       `db:"is_active"`
}

const TABLE_LEGISLATIONS = "legislations"

var SelectLegislationColumn = utils.ColumnList[DBLegislation]()

func AdaptLegislation(db DBLegislation) (models.Legislation, error) {
	return models.Legislation{
		Id:            db.Id,
		Name:          db.Name,
		Code:          db.Code,
		Description:   db.Description,
		Year:          db.Year,
		Status:        models.LegislationStatus(db.Status),
		EffectiveDate: db.EffectiveDate,
		ExpiryDate:    db.ExpiryDate,
		CreatedAt:     db.CreatedAt,
	}, nil
}
