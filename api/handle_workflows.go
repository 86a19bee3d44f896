package api

import (
	"net/http"

	"github.com/casetrack/casetrack-backend/dto"
	"github.com/casetrack/casetrack-backend/pure_utils"
	"github.com/casetrack/casetrack-backend/usecases"

	"github.com/gin-gonic/gin"
)

func handleListPendingWorkflows(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		workflows, err := usecase.ListPendingWorkflows(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"workflows": pure_utils.Map(workflows, dto.AdaptPendingWorkflowDto),
		})
	}
}
