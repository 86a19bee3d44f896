package usecases

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"mime/multipart"
	"path/filepath"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories"
	"github.com/casetrack/casetrack-backend/usecases/executor_factory"
	"github.com/casetrack/casetrack-backend/usecases/security"
	"github.com/casetrack/casetrack-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type CaseUseCaseRepository interface {
	ListCases(ctx context.Context, exec repositories.Executor, filters models.CaseFilters) ([]models.Case, error)
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error)
	GetCaseByNumber(ctx context.Context, exec repositories.Executor, caseNumber string) (models.Case, error)
	CreateCase(ctx context.Context, exec repositories.Executor,
		attrs models.CreateCaseAttributes, createdById string, newCaseId string) error
	UpdateCase(ctx context.Context, exec repositories.Executor, attrs models.UpdateCaseAttributes) error
	CloseCase(ctx context.Context, exec repositories.Executor, attrs models.CloseCaseAttributes) (bool, error)
	UpdateCaseStatus(ctx context.Context, exec repositories.Executor, caseId string, status models.CaseStatus) error
	SoftDeleteCase(ctx context.Context, exec repositories.Executor, caseId string) (bool, error)
	CountCases(ctx context.Context, exec repositories.Executor) (models.CaseStats, error)

	CreateCaseWorkflow(ctx context.Context, exec repositories.Executor,
		newWorkflowId string, caseId string, workflowType models.WorkflowType, requestedById string) error
	ListCaseWorkflows(ctx context.Context, exec repositories.Executor, caseId string) ([]models.CaseWorkflow, error)
	ListPendingWorkflows(ctx context.Context, exec repositories.Executor) ([]models.PendingWorkflow, error)
	ResolvePendingWorkflow(ctx context.Context, exec repositories.Executor,
		caseId string, status models.WorkflowStatus, approvedById string, comments string) (bool, error)

	CreateCaseUpdate(ctx context.Context, exec repositories.Executor,
		newUpdateId string, attrs models.CreateCaseUpdateAttributes, updatedById string) error
	ListCaseUpdates(ctx context.Context, exec repositories.Executor, caseId string) ([]models.CaseUpdate, error)

	CreateCaseAttachment(ctx context.Context, exec repositories.Executor,
		caseId string, metadata repositories.CreateAttachmentMetadata) error
	GetCaseAttachmentById(ctx context.Context, exec repositories.Executor, attachmentId string) (models.CaseAttachment, error)
	ListCaseAttachments(ctx context.Context, exec repositories.Executor, caseIds []string) ([]models.CaseAttachment, error)

	CreateRemedialPlan(ctx context.Context, exec repositories.Executor,
		newPlanId string, attrs models.CreateRemedialPlanAttributes, createdById string) error
	ListRemedialPlans(ctx context.Context, exec repositories.Executor, caseId string) ([]models.RemedialPlan, error)
	CreateRemedialPlanAttachment(ctx context.Context, exec repositories.Executor,
		remedialPlanId string, metadata repositories.CreateAttachmentMetadata) error
	ListRemedialPlanAttachments(ctx context.Context, exec repositories.Executor,
		remedialPlanIds []string) ([]models.RemedialPlanAttachment, error)

	GetOrganizationById(ctx context.Context, exec repositories.Executor, organizationId string) (models.Organization, error)
	GetOrganizationsByIds(ctx context.Context, exec repositories.Executor, organizationIds []string) ([]models.Organization, error)
	GetLegislationById(ctx context.Context, exec repositories.Executor, legislationId string) (models.Legislation, error)
	GetLegislationsByIds(ctx context.Context, exec repositories.Executor, legislationIds []string) ([]models.Legislation, error)
	GetComplianceControlById(ctx context.Context, exec repositories.Executor, controlId string) (models.ComplianceControl, error)
	GetComplianceControlsByIds(ctx context.Context, exec repositories.Executor, controlIds []string) ([]models.ComplianceControl, error)
	GetUsersByIds(ctx context.Context, exec repositories.Executor, userIds []string) ([]models.User, error)
}

type CaseUseCase struct {
	enforceSecurity    security.EnforceSecurityCase
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         CaseUseCaseRepository
	blobRepository     repositories.BlobRepository
	bucketUrl          string
}

func (usecase *CaseUseCase) ListCases(ctx context.Context, filters models.CaseFilters) ([]models.Case, error) {
	exec := usecase.executorFactory.NewExecutor()
	cases, err := usecase.repository.ListCases(ctx, exec, filters)
	if err != nil {
		return nil, err
	}
	for _, c := range cases {
		if err := usecase.enforceSecurity.ReadCase(c); err != nil {
			return nil, err
		}
	}
	return usecase.enrichCases(ctx, exec, cases)
}

func (usecase *CaseUseCase) GetCase(ctx context.Context, caseId string) (models.Case, error) {
	exec := usecase.executorFactory.NewExecutor()
	c, err := usecase.getCaseWithDetails(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}
	if err := usecase.enforceSecurity.ReadCase(c); err != nil {
		return models.Case{}, err
	}
	return c, nil
}

func (usecase *CaseUseCase) GetCaseByNumber(ctx context.Context, caseNumber string) (models.Case, error) {
	exec := usecase.executorFactory.NewExecutor()
	c, err := usecase.repository.GetCaseByNumber(ctx, exec, caseNumber)
	if err != nil {
		return models.Case{}, err
	}
	if err := usecase.enforceSecurity.ReadCase(c); err != nil {
		return models.Case{}, err
	}
	return usecase.getCaseWithDetails(ctx, exec, c.Id)
}

// CreateCase inserts the case together with its initial pending approval
// workflow. Attachments are first staged in the blob store under a temporary
// key and only promoted to their final key once the transaction has
// committed, so a rollback leaves no orphan metadata rows.
func (usecase *CaseUseCase) CreateCase(
	ctx context.Context,
	userId string,
	attrs models.CreateCaseAttributes,
) (models.Case, error) {
	if err := usecase.enforceSecurity.CreateCase(); err != nil {
		return models.Case{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.repository.GetOrganizationById(ctx, exec, attrs.OrganizationId); err != nil {
		return models.Case{}, err
	}
	if _, err := usecase.repository.GetLegislationById(ctx, exec, attrs.LegislationId); err != nil {
		return models.Case{}, err
	}
	if attrs.ComplianceControlId != nil {
		if _, err := usecase.repository.GetComplianceControlById(ctx, exec, *attrs.ComplianceControlId); err != nil {
			return models.Case{}, err
		}
	}

	newCaseId := uuid.NewString()
	staged, err := usecase.stageFiles(ctx, attrs.Attachments, userId,
		fmt.Sprintf("cases/%s", newCaseId))
	if err != nil {
		return models.Case{}, err
	}

	err = usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if err := usecase.repository.CreateCase(ctx, tx, attrs, userId, newCaseId); err != nil {
			return err
		}
		if err := usecase.repository.CreateCaseWorkflow(ctx, tx,
			uuid.NewString(), newCaseId, models.WorkflowAddCase, userId); err != nil {
			return err
		}
		for _, file := range staged {
			if err := usecase.repository.CreateCaseAttachment(ctx, tx, newCaseId, file.metadata); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		usecase.discardStagedFiles(ctx, staged)
		return models.Case{}, err
	}

	if err := usecase.commitStagedFiles(ctx, staged); err != nil {
		return models.Case{}, err
	}

	return usecase.getCaseWithDetails(ctx, exec, newCaseId)
}

func (usecase *CaseUseCase) UpdateCase(
	ctx context.Context,
	userId string,
	attrs models.UpdateCaseAttributes,
) (models.Case, error) {
	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		previous, err := usecase.repository.GetCaseById(ctx, tx, attrs.Id)
		if err != nil {
			return err
		}
		if err := usecase.enforceSecurity.UpdateCase(previous); err != nil {
			return err
		}

		if err := usecase.repository.UpdateCase(ctx, tx, attrs); err != nil {
			return err
		}

		return usecase.trackFieldChanges(ctx, tx, userId, previous, attrs)
	})
	if err != nil {
		return models.Case{}, err
	}

	return usecase.getCaseWithDetails(ctx, usecase.executorFactory.NewExecutor(), attrs.Id)
}

// trackFieldChanges appends one audit row per tracked field whose value
// actually changed.
func (usecase *CaseUseCase) trackFieldChanges(
	ctx context.Context,
	tx repositories.Transaction,
	userId string,
	previous models.Case,
	attrs models.UpdateCaseAttributes,
) error {
	if attrs.Status != previous.Status {
		err := usecase.repository.CreateCaseUpdate(ctx, tx, uuid.NewString(),
			models.CreateCaseUpdateAttributes{
				CaseId:     previous.Id,
				UpdateType: models.UpdateTypeStatus,
				OldValue:   string(previous.Status),
				NewValue:   string(attrs.Status),
			}, userId)
		if err != nil {
			return err
		}
	}
	if attrs.Priority != previous.Priority {
		err := usecase.repository.CreateCaseUpdate(ctx, tx, uuid.NewString(),
			models.CreateCaseUpdateAttributes{
				CaseId:     previous.Id,
				UpdateType: models.UpdateTypePriority,
				OldValue:   string(previous.Priority),
				NewValue:   string(attrs.Priority),
			}, userId)
		if err != nil {
			return err
		}
	}
	if !equalFine(attrs.ExpectedFine, previous.ExpectedFine) {
		err := usecase.repository.CreateCaseUpdate(ctx, tx, uuid.NewString(),
			models.CreateCaseUpdateAttributes{
				CaseId:     previous.Id,
				UpdateType: models.UpdateTypeExpectedFine,
				OldValue:   fineValue(previous.ExpectedFine),
				NewValue:   fineValue(attrs.ExpectedFine),
			}, userId)
		if err != nil {
			return err
		}
	}
	return nil
}

func fineValue(fine *string) string {
	if fine == nil {
		return ""
	}
	return *fine
}

// equalFine compares fines by numeric value, so "15000" and "15000.00" do
// not count as a change.
func equalFine(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, okA := new(big.Rat).SetString(*a)
	rb, okB := new(big.Rat).SetString(*b)
	if !okA || !okB {
		return *a == *b
	}
	return ra.Cmp(rb) == 0
}

func (usecase *CaseUseCase) DeleteCase(ctx context.Context, caseId string) error {
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		c, err := usecase.repository.GetCaseById(ctx, tx, caseId)
		if err != nil {
			return err
		}
		if err := usecase.enforceSecurity.UpdateCase(c); err != nil {
			return err
		}

		found, err := usecase.repository.SoftDeleteCase(ctx, tx, caseId)
		if err != nil {
			return err
		}
		if !found {
			return errors.Wrapf(models.NotFoundError, "case %s not found", caseId)
		}
		return nil
	})
}

func (usecase *CaseUseCase) AddCaseUpdate(
	ctx context.Context,
	userId string,
	attrs models.CreateCaseUpdateAttributes,
) (models.Case, error) {
	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		c, err := usecase.repository.GetCaseById(ctx, tx, attrs.CaseId)
		if err != nil {
			return err
		}
		if err := usecase.enforceSecurity.UpdateCase(c); err != nil {
			return err
		}
		return usecase.repository.CreateCaseUpdate(ctx, tx, uuid.NewString(), attrs, userId)
	})
	if err != nil {
		return models.Case{}, err
	}

	return usecase.getCaseWithDetails(ctx, usecase.executorFactory.NewExecutor(), attrs.CaseId)
}

func (usecase *CaseUseCase) AddRemedialPlan(
	ctx context.Context,
	userId string,
	attrs models.CreateRemedialPlanAttributes,
) (models.Case, error) {
	newPlanId := uuid.NewString()
	staged, err := usecase.stageFiles(ctx, attrs.Attachments, userId,
		fmt.Sprintf("remedial-plans/%s", newPlanId))
	if err != nil {
		return models.Case{}, err
	}

	err = usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		c, err := usecase.repository.GetCaseById(ctx, tx, attrs.CaseId)
		if err != nil {
			return err
		}
		if err := usecase.enforceSecurity.UpdateCase(c); err != nil {
			return err
		}

		if err := usecase.repository.CreateRemedialPlan(ctx, tx, newPlanId, attrs, userId); err != nil {
			return err
		}
		for _, file := range staged {
			if err := usecase.repository.CreateRemedialPlanAttachment(ctx, tx, newPlanId, file.metadata); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		usecase.discardStagedFiles(ctx, staged)
		return models.Case{}, err
	}

	if err := usecase.commitStagedFiles(ctx, staged); err != nil {
		return models.Case{}, err
	}

	return usecase.getCaseWithDetails(ctx, usecase.executorFactory.NewExecutor(), attrs.CaseId)
}

func (usecase *CaseUseCase) CloseCase(
	ctx context.Context,
	userId string,
	attrs models.CloseCaseAttributes,
) (models.Case, error) {
	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		previous, err := usecase.repository.GetCaseById(ctx, tx, attrs.CaseId)
		if err != nil {
			return err
		}
		if err := usecase.enforceSecurity.UpdateCase(previous); err != nil {
			return err
		}

		found, err := usecase.repository.CloseCase(ctx, tx, attrs)
		if err != nil {
			return err
		}
		if !found {
			return errors.Wrapf(models.NotFoundError, "case %s not found", attrs.CaseId)
		}
		return nil
	})
	if err != nil {
		return models.Case{}, err
	}

	return usecase.getCaseWithDetails(ctx, usecase.executorFactory.NewExecutor(), attrs.CaseId)
}

func (usecase *CaseUseCase) ApproveCase(ctx context.Context, userId, caseId, comments string) (models.Case, error) {
	return usecase.resolveCase(ctx, userId, caseId, comments, models.WorkflowApproved, models.CaseApproved)
}

func (usecase *CaseUseCase) RejectCase(ctx context.Context, userId, caseId, comments string) (models.Case, error) {
	return usecase.resolveCase(ctx, userId, caseId, comments, models.WorkflowRejected, models.CaseRejected)
}

// resolveCase settles the single pending workflow of a case and mirrors the
// outcome onto the case row in the same transaction. The workflow update is
// predicated on status='Pending', so of two concurrent resolutions exactly
// one wins.
func (usecase *CaseUseCase) resolveCase(
	ctx context.Context,
	userId string,
	caseId string,
	comments string,
	workflowStatus models.WorkflowStatus,
	caseStatus models.CaseStatus,
) (models.Case, error) {
	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		previous, err := usecase.repository.GetCaseById(ctx, tx, caseId)
		if err != nil {
			return err
		}
		if err := usecase.enforceSecurity.ApproveCase(previous); err != nil {
			return err
		}

		resolved, err := usecase.repository.ResolvePendingWorkflow(ctx, tx,
			caseId, workflowStatus, userId, comments)
		if err != nil {
			return err
		}
		if !resolved {
			return errors.Wrapf(models.ErrNoPendingWorkflow, "case %s", caseId)
		}

		return usecase.repository.UpdateCaseStatus(ctx, tx, caseId, caseStatus)
	})
	if err != nil {
		return models.Case{}, err
	}

	return usecase.getCaseWithDetails(ctx, usecase.executorFactory.NewExecutor(), caseId)
}

func (usecase *CaseUseCase) ListPendingWorkflows(ctx context.Context) ([]models.PendingWorkflow, error) {
	if err := usecase.enforceSecurity.Permission(models.CASE_APPROVE); err != nil {
		return nil, err
	}
	exec := usecase.executorFactory.NewExecutor()
	return usecase.repository.ListPendingWorkflows(ctx, exec)
}

func (usecase *CaseUseCase) GetCaseStats(ctx context.Context) (models.CaseStats, error) {
	if err := usecase.enforceSecurity.Permission(models.CASE_READ); err != nil {
		return models.CaseStats{}, err
	}
	exec := usecase.executorFactory.NewExecutor()
	return usecase.repository.CountCases(ctx, exec)
}

func (usecase *CaseUseCase) DownloadCaseFile(ctx context.Context, caseId, fileId string) (models.Blob, error) {
	exec := usecase.executorFactory.NewExecutor()
	c, err := usecase.repository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return models.Blob{}, err
	}
	if err := usecase.enforceSecurity.ReadCase(c); err != nil {
		return models.Blob{}, err
	}

	attachment, err := usecase.repository.GetCaseAttachmentById(ctx, exec, fileId)
	if err != nil {
		return models.Blob{}, err
	}
	if attachment.CaseId != caseId {
		return models.Blob{}, errors.Wrapf(models.NotFoundError,
			"attachment %s does not belong to case %s", fileId, caseId)
	}

	blob, err := usecase.blobRepository.GetBlob(ctx, usecase.bucketUrl, attachment.FileReference)
	if err != nil {
		return models.Blob{}, err
	}
	blob.FileName = attachment.OriginalFileName
	return blob, nil
}

func (usecase *CaseUseCase) getCaseWithDetails(
	ctx context.Context,
	exec repositories.Executor,
	caseId string,
) (models.Case, error) {
	c, err := usecase.repository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}

	cases, err := usecase.enrichCases(ctx, exec, []models.Case{c})
	if err != nil {
		return models.Case{}, err
	}
	c = cases[0]

	c.Updates, err = usecase.repository.ListCaseUpdates(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}
	c.Workflows, err = usecase.repository.ListCaseWorkflows(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}

	plans, err := usecase.repository.ListRemedialPlans(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}
	if len(plans) > 0 {
		planIds := make([]string, len(plans))
		for i, plan := range plans {
			planIds[i] = plan.Id
		}
		planAttachments, err := usecase.repository.ListRemedialPlanAttachments(ctx, exec, planIds)
		if err != nil {
			return models.Case{}, err
		}
		byPlanId := make(map[string][]models.RemedialPlanAttachment)
		for _, attachment := range planAttachments {
			byPlanId[attachment.RemedialPlanId] = append(byPlanId[attachment.RemedialPlanId], attachment)
		}
		for i := range plans {
			plans[i].Attachments = byPlanId[plans[i].Id]
		}
	}
	c.RemedialPlans = plans

	return c, nil
}

// enrichCases resolves the reference-data relations of a batch of cases with
// one query per related table.
func (usecase *CaseUseCase) enrichCases(
	ctx context.Context,
	exec repositories.Executor,
	cases []models.Case,
) ([]models.Case, error) {
	if len(cases) == 0 {
		return cases, nil
	}

	organizationIds := make(map[string]struct{})
	legislationIds := make(map[string]struct{})
	controlIds := make(map[string]struct{})
	userIds := make(map[string]struct{})
	caseIds := make([]string, len(cases))
	for i, c := range cases {
		caseIds[i] = c.Id
		organizationIds[c.OrganizationId] = struct{}{}
		legislationIds[c.LegislationId] = struct{}{}
		if c.ComplianceControlId != nil {
			controlIds[*c.ComplianceControlId] = struct{}{}
		}
		userIds[c.CreatedById] = struct{}{}
		if c.AssignedToId != nil {
			userIds[*c.AssignedToId] = struct{}{}
		}
	}

	organizations, err := usecase.repository.GetOrganizationsByIds(ctx, exec, mapKeys(organizationIds))
	if err != nil {
		return nil, err
	}
	organizationById := make(map[string]models.Organization, len(organizations))
	for _, organization := range organizations {
		organizationById[organization.Id] = organization
	}

	legislations, err := usecase.repository.GetLegislationsByIds(ctx, exec, mapKeys(legislationIds))
	if err != nil {
		return nil, err
	}
	legislationById := make(map[string]models.Legislation, len(legislations))
	for _, legislation := range legislations {
		legislationById[legislation.Id] = legislation
	}

	controlById := make(map[string]models.ComplianceControl)
	if len(controlIds) > 0 {
		controls, err := usecase.repository.GetComplianceControlsByIds(ctx, exec, mapKeys(controlIds))
		if err != nil {
			return nil, err
		}
		for _, control := range controls {
			controlById[control.Id] = control
		}
	}

	users, err := usecase.repository.GetUsersByIds(ctx, exec, mapKeys(userIds))
	if err != nil {
		return nil, err
	}
	userById := make(map[string]models.User, len(users))
	for _, user := range users {
		userById[user.Id] = user
	}

	attachments, err := usecase.repository.ListCaseAttachments(ctx, exec, caseIds)
	if err != nil {
		return nil, err
	}
	attachmentsByCaseId := make(map[string][]models.CaseAttachment)
	for _, attachment := range attachments {
		attachmentsByCaseId[attachment.CaseId] = append(attachmentsByCaseId[attachment.CaseId], attachment)
	}

	for i := range cases {
		c := &cases[i]
		c.Organization = organizationById[c.OrganizationId]
		c.Legislation = legislationById[c.LegislationId]
		if c.ComplianceControlId != nil {
			if control, ok := controlById[*c.ComplianceControlId]; ok {
				c.ComplianceControl = &control
			}
		}
		if createdBy, ok := userById[c.CreatedById]; ok {
			c.CreatedBy = &createdBy
		}
		if c.AssignedToId != nil {
			if assignedTo, ok := userById[*c.AssignedToId]; ok {
				c.AssignedTo = &assignedTo
			}
		}
		c.Attachments = attachmentsByCaseId[c.Id]
	}
	return cases, nil
}

func mapKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	return keys
}

type stagedFile struct {
	metadata repositories.CreateAttachmentMetadata
	tmpKey   string
	finalKey string
}

// stageFiles writes each upload to a temporary blob key and returns the
// metadata rows pointing at the final keys. commitStagedFiles promotes the
// blobs once the metadata transaction has committed; discardStagedFiles
// drops them if it rolled back.
func (usecase *CaseUseCase) stageFiles(
	ctx context.Context,
	files []*multipart.FileHeader,
	uploadedById string,
	keyPrefix string,
) ([]stagedFile, error) {
	staged := make([]stagedFile, 0, len(files))
	for _, fileHeader := range files {
		fileName := filepath.Base(fileHeader.Filename)
		if fileName == "" || fileName == "." {
			return nil, errors.Wrap(models.BadParameterError, "attachment has no file name")
		}

		attachmentId := uuid.NewString()
		file := stagedFile{
			tmpKey:   fmt.Sprintf("tmp/%s", attachmentId),
			finalKey: fmt.Sprintf("%s/%s_%s", keyPrefix, attachmentId, fileName),
			metadata: repositories.CreateAttachmentMetadata{
				Id:               attachmentId,
				FileReference:    fmt.Sprintf("%s/%s_%s", keyPrefix, attachmentId, fileName),
				OriginalFileName: fileName,
				ContentType:      fileHeader.Header.Get("Content-Type"),
				FileSize:         fileHeader.Size,
				UploadedById:     uploadedById,
			},
		}

		if err := usecase.writeToBlobStorage(ctx, fileHeader, file.tmpKey); err != nil {
			usecase.discardStagedFiles(ctx, staged)
			return nil, err
		}
		staged = append(staged, file)
	}
	return staged, nil
}

func (usecase *CaseUseCase) writeToBlobStorage(
	ctx context.Context,
	fileHeader *multipart.FileHeader,
	key string,
) error {
	writer, err := usecase.blobRepository.OpenStream(ctx, usecase.bucketUrl, key)
	if err != nil {
		return err
	}

	reader, err := fileHeader.Open()
	if err != nil {
		writer.Close()
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer reader.Close()

	if _, err := io.Copy(writer, reader); err != nil {
		writer.Close()
		return errors.Wrap(err, "failed to write uploaded file to blob storage")
	}
	// the blob is only readable once the writer is closed without error
	return writer.Close()
}

func (usecase *CaseUseCase) commitStagedFiles(ctx context.Context, staged []stagedFile) error {
	for _, file := range staged {
		if err := usecase.blobRepository.CopyFile(ctx, usecase.bucketUrl, file.tmpKey, file.finalKey); err != nil {
			return err
		}
		if err := usecase.blobRepository.DeleteFile(ctx, usecase.bucketUrl, file.tmpKey); err != nil {
			return err
		}
	}
	return nil
}

func (usecase *CaseUseCase) discardStagedFiles(ctx context.Context, staged []stagedFile) {
	logger := utils.LoggerFromContext(ctx)
	for _, file := range staged {
		if err := usecase.blobRepository.DeleteFile(ctx, usecase.bucketUrl, file.tmpKey); err != nil {
			logger.WarnContext(ctx, "failed to delete staged blob",
				"key", file.tmpKey, "error", err.Error())
		}
	}
}
