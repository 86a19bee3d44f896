package dbmodels

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/utils"
)

type DBUser struct {
	Id         string    `db:"id"`
	Email      string    `db:"email"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Department string    `db:"department"`
	Position   string    `db:"position"`
	CreatedAt  time.Time `db:"created_at"`
	IsActive   bool      `db:"is_active"`
}

const TABLE_USERS = "users"

var SelectUserColumn = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	return models.User{
		Id:         db.Id,
		Email:      db.Email,
		FirstName:  db.FirstName,
		LastName:   db.LastName,
		Department: db.Department,
		Position:   db.Position,
		CreatedAt:  db.CreatedAt,
	}, nil
}
