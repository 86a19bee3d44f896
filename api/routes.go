package api

import (
	"github.com/casetrack/casetrack-backend/usecases"

	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
)

const maxUploadSize = 30 * 1024 * 1024 // 30MB

func addRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))

	router := r.Use(identityMiddleware)

	router.GET("/cases", handleListCases(uc))
	router.POST("/cases", limits.RequestSizeLimiter(maxUploadSize), handlePostCase(uc))
	router.GET("/cases/stats", handleCaseStats(uc))
	router.GET("/cases/by-number/:case_number", handleGetCaseByNumber(uc))
	router.GET("/cases/:case_id", handleGetCase(uc))
	router.PATCH("/cases/:case_id", handlePatchCase(uc))
	router.DELETE("/cases/:case_id", handleDeleteCase(uc))
	router.POST("/cases/:case_id/updates", handlePostCaseUpdate(uc))
	router.POST("/cases/:case_id/remedial-plans",
		limits.RequestSizeLimiter(maxUploadSize), handlePostRemedialPlan(uc))
	router.POST("/cases/:case_id/close", handleCloseCase(uc))
	router.POST("/cases/:case_id/approve", handleApproveCase(uc))
	router.POST("/cases/:case_id/reject", handleRejectCase(uc))
	router.GET("/cases/:case_id/files/:file_id", handleDownloadCaseFile(uc))

	router.GET("/workflows/pending", handleListPendingWorkflows(uc))

	router.GET("/organizations", handleListOrganizations(uc))
	router.POST("/organizations", handlePostOrganization(uc))
	router.GET("/organizations/:organization_id", handleGetOrganization(uc))
	router.PATCH("/organizations/:organization_id", handlePatchOrganization(uc))
	router.DELETE("/organizations/:organization_id", handleDeleteOrganization(uc))

	router.GET("/legislations", handleListLegislations(uc))
	router.POST("/legislations", handlePostLegislation(uc))
	router.GET("/legislations/:legislation_id", handleGetLegislation(uc))
	router.PATCH("/legislations/:legislation_id", handlePatchLegislation(uc))
	router.DELETE("/legislations/:legislation_id", handleDeleteLegislation(uc))

	router.GET("/compliance-controls", handleListComplianceControls(uc))
	router.POST("/compliance-controls", handlePostComplianceControl(uc))
	router.GET("/compliance-controls/:control_id", handleGetComplianceControl(uc))
	router.PATCH("/compliance-controls/:control_id", handlePatchComplianceControl(uc))
	router.DELETE("/compliance-controls/:control_id", handleDeleteComplianceControl(uc))

	router.GET("/users", handleListUsers(uc))
	router.GET("/users/:user_id", handleGetUser(uc))
}
