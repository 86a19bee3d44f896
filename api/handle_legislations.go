package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/casetrack/casetrack-backend/dto"
	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/pure_utils"
	"github.com/casetrack/casetrack-backend/usecases"
)

type LegislationInput struct {
	Id string `uri:"legislation_id" binding:"required,uuid"`
}

func handleListLegislations(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewLegislationUseCase()
		legislations, err := usecase.ListLegislations(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"legislations": pure_utils.Map(legislations, dto.AdaptLegislationDto),
		})
	}
}

func handleGetLegislation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input LegislationInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewLegislationUseCase()
		legislation, err := usecase.GetLegislation(ctx, input.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"legislation": dto.AdaptLegislationDto(legislation)})
	}
}

func handlePostLegislation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateLegislationBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		input, err := dto.AdaptCreateLegislationInput(body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewLegislationUseCase()
		legislation, err := usecase.CreateLegislation(ctx, input)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"legislation": dto.AdaptLegislationDto(legislation)})
	}
}

func handlePatchLegislation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input LegislationInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body dto.UpdateLegislationBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		updateInput, err := dto.AdaptUpdateLegislationInput(input.Id, body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewLegislationUseCase()
		legislation, err := usecase.UpdateLegislation(ctx, updateInput)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"legislation": dto.AdaptLegislationDto(legislation)})
	}
}

func handleDeleteLegislation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input LegislationInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewLegislationUseCase()
		if err := usecase.DeleteLegislation(ctx, input.Id); presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
