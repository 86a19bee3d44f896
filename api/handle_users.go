package api

import (
	"net/http"

	"github.com/casetrack/casetrack-backend/dto"
	"github.com/casetrack/casetrack-backend/pure_utils"
	"github.com/casetrack/casetrack-backend/usecases"

	"github.com/gin-gonic/gin"
)

type UserInput struct {
	Id string `uri:"user_id" binding:"required,uuid"`
}

func handleListUsers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewUserUseCase()
		users, err := usecase.ListUsers(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"users": pure_utils.Map(users, dto.AdaptUserDto)})
	}
}

func handleGetUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input UserInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUseCase()
		user, err := usecase.GetUser(ctx, input.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": dto.AdaptUserDto(user)})
	}
}
