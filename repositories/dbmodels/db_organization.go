package dbmodels

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/utils"
)

type DBOrganization struct {
	Id           string    `db:"id"`
	Name         string    `db:"name"`
	Code         string    `db:"code"`
	ContactName  string    `db:"contact_name"`
	ContactEmail string    `db:"contact_email"`
	ContactPhone string    `db:"contact_phone"`
	CreatedAt    time.Time `db:"created_at"`
	IsActive     bool      `db:"is_active"`
}

const TABLE_ORGANIZATIONS = "organizations"

var SelectOrganizationColumn = utils.ColumnList[DBOrganization]()

func AdaptOrganization(db DBOrganization) (models.Organization, error) {
	return models.Organization{
		Id:           db.Id,
		Name:         db.Name,
		Code:         db.Code,
		ContactName:  db.ContactName,
		ContactEmail: db.ContactEmail,
		ContactPhone: db.ContactPhone,
		CreatedAt:    db.CreatedAt,
	}, nil
}
