package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/casetrack/casetrack-backend/dto"
	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/pure_utils"
	"github.com/casetrack/casetrack-backend/usecases"
	"github.com/casetrack/casetrack-backend/utils"
)

type ComplianceControlInput struct {
	Id string `uri:"control_id" binding:"required,uuid"`
}

func handleListComplianceControls(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var legislationId *string
		if param := c.Query("legislation_id"); param != "" {
			if err := utils.ValidateUuid(param); presentError(ctx, c, err) {
				return
			}
			legislationId = &param
		}

		usecase := usecasesWithCreds(ctx, uc).NewComplianceControlUseCase()
		controls, err := usecase.ListComplianceControls(ctx, legislationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"compliance_controls": pure_utils.Map(controls, dto.AdaptComplianceControlDto),
		})
	}
}

func handleGetComplianceControl(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input ComplianceControlInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewComplianceControlUseCase()
		control, err := usecase.GetComplianceControl(ctx, input.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"compliance_control": dto.AdaptComplianceControlDto(control)})
	}
}

func handlePostComplianceControl(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateComplianceControlBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		input, err := dto.AdaptCreateComplianceControlInput(body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewComplianceControlUseCase()
		control, err := usecase.CreateComplianceControl(ctx, input)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"compliance_control": dto.AdaptComplianceControlDto(control)})
	}
}

func handlePatchComplianceControl(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input ComplianceControlInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body dto.UpdateComplianceControlBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		updateInput, err := dto.AdaptUpdateComplianceControlInput(input.Id, body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewComplianceControlUseCase()
		control, err := usecase.UpdateComplianceControl(ctx, updateInput)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"compliance_control": dto.AdaptComplianceControlDto(control)})
	}
}

func handleDeleteComplianceControl(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input ComplianceControlInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewComplianceControlUseCase()
		if err := usecase.DeleteComplianceControl(ctx, input.Id); presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
