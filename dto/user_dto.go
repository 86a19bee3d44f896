package dto

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"
)

type APIUser struct {
	Id         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

func AdaptUserDto(user models.User) APIUser {
	return APIUser{
		Id:         user.Id,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		FullName:   user.FullName(),
		Department: user.Department,
		Position:   user.Position,
		CreatedAt:  user.CreatedAt,
	}
}
