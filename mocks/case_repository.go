package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories"
)

type CaseRepository struct {
	mock.Mock
}

func (r *CaseRepository) ListCases(ctx context.Context, exec repositories.Executor,
	filters models.CaseFilters,
) ([]models.Case, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseRepository) GetCaseById(ctx context.Context, exec repositories.Executor,
	caseId string,
) (models.Case, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseRepository) GetCaseByNumber(ctx context.Context, exec repositories.Executor,
	caseNumber string,
) (models.Case, error) {
	args := r.Called(ctx, exec, caseNumber)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseRepository) CreateCase(ctx context.Context, exec repositories.Executor,
	attrs models.CreateCaseAttributes, createdById string, newCaseId string,
) error {
	args := r.Called(ctx, exec, attrs, createdById, newCaseId)
	return args.Error(0)
}

func (r *CaseRepository) UpdateCase(ctx context.Context, exec repositories.Executor,
	attrs models.UpdateCaseAttributes,
) error {
	args := r.Called(ctx, exec, attrs)
	return args.Error(0)
}

func (r *CaseRepository) CloseCase(ctx context.Context, exec repositories.Executor,
	attrs models.CloseCaseAttributes,
) (bool, error) {
	args := r.Called(ctx, exec, attrs)
	return args.Bool(0), args.Error(1)
}

func (r *CaseRepository) UpdateCaseStatus(ctx context.Context, exec repositories.Executor,
	caseId string, status models.CaseStatus,
) error {
	args := r.Called(ctx, exec, caseId, status)
	return args.Error(0)
}

func (r *CaseRepository) SoftDeleteCase(ctx context.Context, exec repositories.Executor,
	caseId string,
) (bool, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Bool(0), args.Error(1)
}

func (r *CaseRepository) CountCases(ctx context.Context, exec repositories.Executor) (models.CaseStats, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).(models.CaseStats), args.Error(1)
}

func (r *CaseRepository) CreateCaseWorkflow(ctx context.Context, exec repositories.Executor,
	newWorkflowId string, caseId string, workflowType models.WorkflowType, requestedById string,
) error {
	args := r.Called(ctx, exec, newWorkflowId, caseId, workflowType, requestedById)
	return args.Error(0)
}

func (r *CaseRepository) ListCaseWorkflows(ctx context.Context, exec repositories.Executor,
	caseId string,
) ([]models.CaseWorkflow, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.CaseWorkflow), args.Error(1)
}

func (r *CaseRepository) ListPendingWorkflows(ctx context.Context, exec repositories.Executor) ([]models.PendingWorkflow, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.PendingWorkflow), args.Error(1)
}

func (r *CaseRepository) ResolvePendingWorkflow(ctx context.Context, exec repositories.Executor,
	caseId string, status models.WorkflowStatus, approvedById string, comments string,
) (bool, error) {
	args := r.Called(ctx, exec, caseId, status, approvedById, comments)
	return args.Bool(0), args.Error(1)
}

func (r *CaseRepository) CreateCaseUpdate(ctx context.Context, exec repositories.Executor,
	newUpdateId string, attrs models.CreateCaseUpdateAttributes, updatedById string,
) error {
	args := r.Called(ctx, exec, newUpdateId, attrs, updatedById)
	return args.Error(0)
}

func (r *CaseRepository) ListCaseUpdates(ctx context.Context, exec repositories.Executor,
	caseId string,
) ([]models.CaseUpdate, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.CaseUpdate), args.Error(1)
}

func (r *CaseRepository) CreateCaseAttachment(ctx context.Context, exec repositories.Executor,
	caseId string, metadata repositories.CreateAttachmentMetadata,
) error {
	args := r.Called(ctx, exec, caseId, metadata)
	return args.Error(0)
}

func (r *CaseRepository) GetCaseAttachmentById(ctx context.Context, exec repositories.Executor,
	attachmentId string,
) (models.CaseAttachment, error) {
	args := r.Called(ctx, exec, attachmentId)
	return args.Get(0).(models.CaseAttachment), args.Error(1)
}

func (r *CaseRepository) ListCaseAttachments(ctx context.Context, exec repositories.Executor,
	caseIds []string,
) ([]models.CaseAttachment, error) {
	args := r.Called(ctx, exec, caseIds)
	return args.Get(0).([]models.CaseAttachment), args.Error(1)
}

func (r *CaseRepository) CreateRemedialPlan(ctx context.Context, exec repositories.Executor,
	newPlanId string, attrs models.CreateRemedialPlanAttributes, createdById string,
) error {
	args := r.Called(ctx, exec, newPlanId, attrs, createdById)
	return args.Error(0)
}

func (r *CaseRepository) ListRemedialPlans(ctx context.Context, exec repositories.Executor,
	caseId string,
) ([]models.RemedialPlan, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.RemedialPlan), args.Error(1)
}

func (r *CaseRepository) CreateRemedialPlanAttachment(ctx context.Context, exec repositories.Executor,
	remedialPlanId string, metadata repositories.CreateAttachmentMetadata,
) error {
	args := r.Called(ctx, exec, remedialPlanId, metadata)
	return args.Error(0)
}

func (r *CaseRepository) ListRemedialPlanAttachments(ctx context.Context, exec repositories.Executor,
	remedialPlanIds []string,
) ([]models.RemedialPlanAttachment, error) {
	args := r.Called(ctx, exec, remedialPlanIds)
	return args.Get(0).([]models.RemedialPlanAttachment), args.Error(1)
}

func (r *CaseRepository) GetOrganizationById(ctx context.Context, exec repositories.Executor,
	organizationId string,
) (models.Organization, error) {
	args := r.Called(ctx, exec, organizationId)
	return args.Get(0).(models.Organization), args.Error(1)
}

func (r *CaseRepository) GetOrganizationsByIds(ctx context.Context, exec repositories.Executor,
	organizationIds []string,
) ([]models.Organization, error) {
	args := r.Called(ctx, exec, organizationIds)
	return args.Get(0).([]models.Organization), args.Error(1)
}

func (r *CaseRepository) GetLegislationById(ctx context.Context, exec repositories.Executor,
	legislationId string,
) (models.Legislation, error) {
	args := r.Called(ctx, exec, legislationId)
	return args.Get(0).(models.Legislation), args.Error(1)
}

func (r *CaseRepository) GetLegislationsByIds(ctx context.Context, exec repositories.Executor,
	legislationIds []string,
) ([]models.Legislation, error) {
	args := r.Called(ctx, exec, legislationIds)
	return args.Get(0).([]models.Legislation), args.Error(1)
}

func (r *CaseRepository) GetComplianceControlById(ctx context.Context, exec repositories.Executor,
	controlId string,
) (models.ComplianceControl, error) {
	args := r.Called(ctx, exec, controlId)
	return args.Get(0).(models.ComplianceControl), args.Error(1)
}

func (r *CaseRepository) GetComplianceControlsByIds(ctx context.Context, exec repositories.Executor,
	controlIds []string,
) ([]models.ComplianceControl, error) {
	args := r.Called(ctx, exec, controlIds)
	return args.Get(0).([]models.ComplianceControl), args.Error(1)
}

func (r *CaseRepository) GetUsersByIds(ctx context.Context, exec repositories.Executor,
	userIds []string,
) ([]models.User, error) {
	args := r.Called(ctx, exec, userIds)
	return args.Get(0).([]models.User), args.Error(1)
}
