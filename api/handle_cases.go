package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/casetrack/casetrack-backend/dto"
	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/pure_utils"
	"github.com/casetrack/casetrack-backend/usecases"
	"github.com/casetrack/casetrack-backend/utils"
)

type CaseInput struct {
	Id string `uri:"case_id" binding:"required,uuid"`
}

func handleListCases(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var filtersDto dto.CaseFilters
		if err := c.ShouldBind(&filtersDto); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filters, err := dto.AdaptCaseFilters(filtersDto)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		cases, err := usecase.ListCases(ctx, filters)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"cases": pure_utils.Map(cases, dto.AdaptCaseDto),
		})
	}
}

func handleGetCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		foundCase, err := usecase.GetCase(ctx, caseInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseWithDetailsDto(foundCase)})
	}
}

func handleGetCaseByNumber(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseNumber := c.Param("case_number")
		if caseNumber == "" {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		foundCase, err := usecase.GetCaseByNumber(ctx, caseNumber)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseWithDetailsDto(foundCase)})
	}
}

func handlePostCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			presentError(ctx, c, fmt.Errorf("no credentials in context"))
			return
		}
		userId := creds.ActorIdentity.UserId

		var form dto.CreateCaseForm
		if err := c.ShouldBind(&form); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		attrs, err := dto.AdaptCreateCaseAttributes(form)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		createdCase, err := usecase.CreateCase(ctx, userId, attrs)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"case": dto.AdaptCaseWithDetailsDto(createdCase)})
	}
}

func handlePatchCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			presentError(ctx, c, fmt.Errorf("no credentials in context"))
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body dto.UpdateCaseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		attrs, err := dto.AdaptUpdateCaseAttributes(caseInput.Id, body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		updatedCase, err := usecase.UpdateCase(ctx, creds.ActorIdentity.UserId, attrs)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseWithDetailsDto(updatedCase)})
	}
}

func handleDeleteCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		if err := usecase.DeleteCase(ctx, caseInput.Id); presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func handlePostCaseUpdate(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			presentError(ctx, c, fmt.Errorf("no credentials in context"))
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body dto.CreateCaseUpdateBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		attrs, err := dto.AdaptCreateCaseUpdateAttributes(caseInput.Id, body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		updatedCase, err := usecase.AddCaseUpdate(ctx, creds.ActorIdentity.UserId, attrs)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"case": dto.AdaptCaseWithDetailsDto(updatedCase)})
	}
}

func handlePostRemedialPlan(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			presentError(ctx, c, fmt.Errorf("no credentials in context"))
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var form dto.CreateRemedialPlanForm
		if err := c.ShouldBind(&form); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		attrs, err := dto.AdaptCreateRemedialPlanAttributes(caseInput.Id, form)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		updatedCase, err := usecase.AddRemedialPlan(ctx, creds.ActorIdentity.UserId, attrs)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"case": dto.AdaptCaseWithDetailsDto(updatedCase)})
	}
}

func handleCloseCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			presentError(ctx, c, fmt.Errorf("no credentials in context"))
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body dto.CloseCaseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		attrs, err := dto.AdaptCloseCaseAttributes(caseInput.Id, body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		closedCase, err := usecase.CloseCase(ctx, creds.ActorIdentity.UserId, attrs)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseWithDetailsDto(closedCase)})
	}
}

func handleApproveCase(uc usecases.Usecases) func(c *gin.Context) {
	return resolveCaseHandler(uc, func(usecase usecases.CaseUseCase) resolveFunc {
		return usecase.ApproveCase
	})
}

func handleRejectCase(uc usecases.Usecases) func(c *gin.Context) {
	return resolveCaseHandler(uc, func(usecase usecases.CaseUseCase) resolveFunc {
		return usecase.RejectCase
	})
}

type resolveFunc func(ctx context.Context, userId, caseId, comments string) (models.Case, error)

func resolveCaseHandler(
	uc usecases.Usecases,
	pick func(usecase usecases.CaseUseCase) resolveFunc,
) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			presentError(ctx, c, fmt.Errorf("no credentials in context"))
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body dto.ResolveCaseBody
		// an empty body means no comments
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		resolvedCase, err := pick(usecase)(ctx, creds.ActorIdentity.UserId, caseInput.Id, body.Comments)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseWithDetailsDto(resolvedCase)})
	}
}

func handleCaseStats(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		stats, err := usecase.GetCaseStats(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"stats": dto.AdaptCaseStatsDto(stats)})
	}
}

type CaseFileInput struct {
	CaseId string `uri:"case_id" binding:"required,uuid"`
	FileId string `uri:"file_id" binding:"required,uuid"`
}

func handleDownloadCaseFile(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var fileInput CaseFileInput
		if err := c.ShouldBindUri(&fileInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		blob, err := usecase.DownloadCaseFile(ctx, fileInput.CaseId, fileInput.FileId)
		if presentError(ctx, c, err) {
			return
		}
		defer blob.ReadCloser.Close()

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", blob.FileName))
		c.DataFromReader(http.StatusOK, -1, "application/octet-stream", blob.ReadCloser, nil)
	}
}
