package usecases

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/casetrack/casetrack-backend/mocks"
	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

type CaseUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.CaseRepository
	blobRepository     *mocks.BlobRepository
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	executor           *mocks.Executor
	transaction        *mocks.Transaction
	enforceSecurity    *mocks.EnforceSecurity

	organizationId string
	legislationId  string
	caseId         string
	userId         string
}

func (suite *CaseUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.CaseRepository)
	suite.blobRepository = new(mocks.BlobRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.enforceSecurity = new(mocks.EnforceSecurity)

	suite.organizationId = "00000000-0000-0000-0000-000000000001"
	suite.legislationId = "00000000-0000-0000-0000-000000000002"
	suite.caseId = "00000000-0000-0000-0000-000000000011"
	suite.userId = "00000000-0000-0000-0000-000000000099"
}

func (suite *CaseUsecaseTestSuite) makeUsecase() *CaseUseCase {
	return &CaseUseCase{
		enforceSecurity:    suite.enforceSecurity,
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		blobRepository:     suite.blobRepository,
		bucketUrl:          "mem://cases",
	}
}

func (suite *CaseUsecaseTestSuite) sampleCase() models.Case {
	return models.Case{
		Id:             suite.caseId,
		CaseNumber:     "NC-2025-001",
		OrganizationId: suite.organizationId,
		LegislationId:  suite.legislationId,
		Status:         models.CaseUnderReview,
		Priority:       models.PriorityHigh,
		CreatedById:    suite.userId,
	}
}

// makeFileHeader builds a real multipart file header the way gin hands one
// to the handler.
func (suite *CaseUsecaseTestSuite) makeFileHeader(fileName, content string) *multipart.FileHeader {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("files[]", fileName)
	suite.Require().NoError(err)
	_, err = part.Write([]byte(content))
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	suite.Require().NoError(err)
	return form.File["files[]"][0]
}

// expectCaseDetails wires the read path that re-fetches a case with its
// relations after a write.
func (suite *CaseUsecaseTestSuite) expectCaseDetails(ctx context.Context, c models.Case) {
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetCaseById", ctx, suite.executor, c.Id).Return(c, nil)
	suite.repository.On("GetOrganizationsByIds", ctx, suite.executor, []string{c.OrganizationId}).
		Return([]models.Organization{{Id: c.OrganizationId, Name: "ACME Utilities"}}, nil)
	suite.repository.On("GetLegislationsByIds", ctx, suite.executor, []string{c.LegislationId}).
		Return([]models.Legislation{{Id: c.LegislationId, Name: "Water Act"}}, nil)
	suite.repository.On("GetUsersByIds", ctx, suite.executor, []string{c.CreatedById}).
		Return([]models.User{{Id: c.CreatedById, FirstName: "Jane", LastName: "Officer"}}, nil)
	suite.repository.On("ListCaseAttachments", ctx, suite.executor, []string{c.Id}).
		Return([]models.CaseAttachment{}, nil)
	suite.repository.On("ListCaseUpdates", ctx, suite.executor, c.Id).
		Return([]models.CaseUpdate{}, nil)
	suite.repository.On("ListCaseWorkflows", ctx, suite.executor, c.Id).
		Return([]models.CaseWorkflow{}, nil)
	suite.repository.On("ListRemedialPlans", ctx, suite.executor, c.Id).
		Return([]models.RemedialPlan{}, nil)
}

func (suite *CaseUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.blobRepository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.executor.AssertExpectations(t)
	suite.transaction.AssertExpectations(t)
	suite.enforceSecurity.AssertExpectations(t)
}

func (suite *CaseUsecaseTestSuite) Test_ApproveCase_ResolvesWorkflowAndMirrorsStatus() {
	ctx := context.Background()
	c := suite.sampleCase()
	resolved := c
	resolved.Status = models.CaseApproved

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", ctx, suite.transaction, suite.caseId).Return(c, nil)
	suite.enforceSecurity.On("ApproveCase", c).Return(nil)
	suite.repository.On("ResolvePendingWorkflow", ctx, suite.transaction,
		suite.caseId, models.WorkflowApproved, suite.userId, "looks good").Return(true, nil)
	suite.repository.On("UpdateCaseStatus", ctx, suite.transaction, suite.caseId, models.CaseApproved).
		Return(nil)
	suite.expectCaseDetails(ctx, resolved)

	result, err := suite.makeUsecase().ApproveCase(ctx, suite.userId, suite.caseId, "looks good")

	suite.NoError(err)
	suite.Equal(models.CaseApproved, result.Status)
	suite.Equal("ACME Utilities", result.Organization.Name)
	// the resolution is carried by the workflow row and the case status,
	// not by a synthesized case update
	suite.repository.AssertNumberOfCalls(suite.T(), "CreateCaseUpdate", 0)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_RejectCase_WithoutPendingWorkflow() {
	ctx := context.Background()
	c := suite.sampleCase()

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", ctx, suite.transaction, suite.caseId).Return(c, nil)
	suite.enforceSecurity.On("ApproveCase", c).Return(nil)
	suite.repository.On("ResolvePendingWorkflow", ctx, suite.transaction,
		suite.caseId, models.WorkflowRejected, suite.userId, "").Return(false, nil)

	_, err := suite.makeUsecase().RejectCase(ctx, suite.userId, suite.caseId, "")

	suite.ErrorIs(err, models.ErrNoPendingWorkflow)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_ApproveCase_Forbidden() {
	ctx := context.Background()
	c := suite.sampleCase()

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", ctx, suite.transaction, suite.caseId).Return(c, nil)
	suite.enforceSecurity.On("ApproveCase", c).Return(models.ForbiddenError)

	_, err := suite.makeUsecase().ApproveCase(ctx, suite.userId, suite.caseId, "")

	suite.ErrorIs(err, models.ForbiddenError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_UpdateCase_TracksOnlyChangedFields() {
	ctx := context.Background()
	previous := suite.sampleCase()
	fine := "15000.00"
	attrs := models.UpdateCaseAttributes{
		Id:             suite.caseId,
		OrganizationId: suite.organizationId,
		LegislationId:  suite.legislationId,
		Status:         models.CaseUnderReview,
		Priority:       models.PriorityCritical,
		ExpectedFine:   &fine,
	}

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", ctx, suite.transaction, suite.caseId).Return(previous, nil)
	suite.enforceSecurity.On("UpdateCase", previous).Return(nil)
	suite.repository.On("UpdateCase", ctx, suite.transaction, attrs).Return(nil)
	// status is unchanged, so only priority and expected fine get audit rows
	suite.repository.On("CreateCaseUpdate", ctx, suite.transaction, mock.AnythingOfType("string"),
		models.CreateCaseUpdateAttributes{
			CaseId:     suite.caseId,
			UpdateType: models.UpdateTypePriority,
			OldValue:   string(models.PriorityHigh),
			NewValue:   string(models.PriorityCritical),
		}, suite.userId).Return(nil)
	suite.repository.On("CreateCaseUpdate", ctx, suite.transaction, mock.AnythingOfType("string"),
		models.CreateCaseUpdateAttributes{
			CaseId:     suite.caseId,
			UpdateType: models.UpdateTypeExpectedFine,
			OldValue:   "",
			NewValue:   fine,
		}, suite.userId).Return(nil)

	updated := previous
	updated.Priority = models.PriorityCritical
	updated.ExpectedFine = &fine
	suite.expectCaseDetails(ctx, updated)

	result, err := suite.makeUsecase().UpdateCase(ctx, suite.userId, attrs)

	suite.NoError(err)
	suite.Equal(models.PriorityCritical, result.Priority)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_DeleteCase_NotFound() {
	ctx := context.Background()
	c := suite.sampleCase()

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", ctx, suite.transaction, suite.caseId).Return(c, nil)
	suite.enforceSecurity.On("UpdateCase", c).Return(nil)
	suite.repository.On("SoftDeleteCase", ctx, suite.transaction, suite.caseId).Return(false, nil)

	err := suite.makeUsecase().DeleteCase(ctx, suite.caseId)

	suite.ErrorIs(err, models.NotFoundError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_DeleteCase_Nominal() {
	ctx := context.Background()
	c := suite.sampleCase()

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", ctx, suite.transaction, suite.caseId).Return(c, nil)
	suite.enforceSecurity.On("UpdateCase", c).Return(nil)
	suite.repository.On("SoftDeleteCase", ctx, suite.transaction, suite.caseId).Return(true, nil)

	err := suite.makeUsecase().DeleteCase(ctx, suite.caseId)

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_CreateCase_Forbidden() {
	ctx := context.Background()

	suite.enforceSecurity.On("CreateCase").Return(models.ForbiddenError)

	_, err := suite.makeUsecase().CreateCase(ctx, suite.userId, models.CreateCaseAttributes{
		CaseNumber:     "NC-2025-001",
		OrganizationId: suite.organizationId,
		LegislationId:  suite.legislationId,
	})

	suite.ErrorIs(err, models.ForbiddenError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_CreateCase_UnknownOrganization() {
	ctx := context.Background()

	suite.enforceSecurity.On("CreateCase").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetOrganizationById", ctx, suite.executor, suite.organizationId).
		Return(models.Organization{}, errors.Wrap(models.NotFoundError, "organization"))

	_, err := suite.makeUsecase().CreateCase(ctx, suite.userId, models.CreateCaseAttributes{
		CaseNumber:     "NC-2025-001",
		OrganizationId: suite.organizationId,
		LegislationId:  suite.legislationId,
	})

	suite.ErrorIs(err, models.NotFoundError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_CreateCase_Nominal() {
	ctx := context.Background()
	c := suite.sampleCase()
	attrs := models.CreateCaseAttributes{
		CaseNumber:     "NC-2025-001",
		OrganizationId: suite.organizationId,
		LegislationId:  suite.legislationId,
		Priority:       models.PriorityHigh,
		Attachments:    []*multipart.FileHeader{suite.makeFileHeader("report.pdf", "inspection findings")},
	}
	isTmpKey := func(key string) bool { return strings.HasPrefix(key, "tmp/") }

	suite.enforceSecurity.On("CreateCase").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetOrganizationById", ctx, suite.executor, suite.organizationId).
		Return(models.Organization{Id: suite.organizationId}, nil)
	suite.repository.On("GetLegislationById", ctx, suite.executor, suite.legislationId).
		Return(models.Legislation{Id: suite.legislationId}, nil)

	// the upload is staged under a temporary key, then promoted once the
	// transaction commits
	suite.blobRepository.On("OpenStream", ctx, "mem://cases", mock.MatchedBy(isTmpKey)).
		Return(nopWriteCloser{io.Discard}, nil)
	suite.blobRepository.On("CopyFile", ctx, "mem://cases", mock.MatchedBy(isTmpKey),
		mock.MatchedBy(func(key string) bool { return strings.HasSuffix(key, "_report.pdf") })).
		Return(nil)
	suite.blobRepository.On("DeleteFile", ctx, "mem://cases", mock.MatchedBy(isTmpKey)).Return(nil)

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("CreateCase", ctx, suite.transaction, attrs, suite.userId,
		mock.AnythingOfType("string")).Return(nil)
	suite.repository.On("CreateCaseWorkflow", ctx, suite.transaction, mock.AnythingOfType("string"),
		mock.AnythingOfType("string"), models.WorkflowAddCase, suite.userId).Return(nil)
	suite.repository.On("CreateCaseAttachment", ctx, suite.transaction, mock.AnythingOfType("string"),
		mock.MatchedBy(func(metadata repositories.CreateAttachmentMetadata) bool {
			return metadata.OriginalFileName == "report.pdf" &&
				metadata.UploadedById == suite.userId &&
				strings.HasSuffix(metadata.FileReference, "_report.pdf")
		})).Return(nil)

	suite.repository.On("GetCaseById", ctx, suite.executor, mock.AnythingOfType("string")).Return(c, nil)
	suite.repository.On("GetOrganizationsByIds", ctx, suite.executor, []string{suite.organizationId}).
		Return([]models.Organization{{Id: suite.organizationId, Name: "ACME Utilities"}}, nil)
	suite.repository.On("GetLegislationsByIds", ctx, suite.executor, []string{suite.legislationId}).
		Return([]models.Legislation{{Id: suite.legislationId, Name: "Water Act"}}, nil)
	suite.repository.On("GetUsersByIds", ctx, suite.executor, []string{suite.userId}).
		Return([]models.User{{Id: suite.userId, FirstName: "Jane", LastName: "Officer"}}, nil)
	suite.repository.On("ListCaseAttachments", ctx, suite.executor, []string{c.Id}).
		Return([]models.CaseAttachment{}, nil)
	suite.repository.On("ListCaseUpdates", ctx, suite.executor, mock.AnythingOfType("string")).
		Return([]models.CaseUpdate{}, nil)
	suite.repository.On("ListCaseWorkflows", ctx, suite.executor, mock.AnythingOfType("string")).
		Return([]models.CaseWorkflow{}, nil)
	suite.repository.On("ListRemedialPlans", ctx, suite.executor, mock.AnythingOfType("string")).
		Return([]models.RemedialPlan{}, nil)

	result, err := suite.makeUsecase().CreateCase(ctx, suite.userId, attrs)

	suite.NoError(err)
	suite.Equal("NC-2025-001", result.CaseNumber)
	// creation opens exactly one pending approval workflow
	suite.repository.AssertNumberOfCalls(suite.T(), "CreateCaseWorkflow", 1)
	suite.repository.AssertNumberOfCalls(suite.T(), "CreateCaseAttachment", 1)
	suite.blobRepository.AssertNumberOfCalls(suite.T(), "CopyFile", 1)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_CreateCase_DuplicateCaseNumber() {
	ctx := context.Background()
	attrs := models.CreateCaseAttributes{
		CaseNumber:     "NC-2025-001",
		OrganizationId: suite.organizationId,
		LegislationId:  suite.legislationId,
		Attachments:    []*multipart.FileHeader{suite.makeFileHeader("report.pdf", "inspection findings")},
	}
	isTmpKey := func(key string) bool { return strings.HasPrefix(key, "tmp/") }

	suite.enforceSecurity.On("CreateCase").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetOrganizationById", ctx, suite.executor, suite.organizationId).
		Return(models.Organization{Id: suite.organizationId}, nil)
	suite.repository.On("GetLegislationById", ctx, suite.executor, suite.legislationId).
		Return(models.Legislation{Id: suite.legislationId}, nil)
	suite.blobRepository.On("OpenStream", ctx, "mem://cases", mock.MatchedBy(isTmpKey)).
		Return(nopWriteCloser{io.Discard}, nil)

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("CreateCase", ctx, suite.transaction, attrs, suite.userId,
		mock.AnythingOfType("string")).Return(models.ErrCaseNumberAlreadyExists)
	// the rolled back transaction leaves the staged blob behind, so it gets
	// deleted
	suite.blobRepository.On("DeleteFile", ctx, "mem://cases", mock.MatchedBy(isTmpKey)).Return(nil)

	_, err := suite.makeUsecase().CreateCase(ctx, suite.userId, attrs)

	suite.ErrorIs(err, models.ConflictError)
	suite.blobRepository.AssertNumberOfCalls(suite.T(), "DeleteFile", 1)
	suite.blobRepository.AssertNumberOfCalls(suite.T(), "CopyFile", 0)
	suite.repository.AssertNumberOfCalls(suite.T(), "CreateCaseWorkflow", 0)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_UpdateCase_FineRescaleIsNotAChange() {
	ctx := context.Background()
	previousFine := "15000.00"
	newFine := "15000"
	previous := suite.sampleCase()
	previous.ExpectedFine = &previousFine
	attrs := models.UpdateCaseAttributes{
		Id:             suite.caseId,
		OrganizationId: suite.organizationId,
		LegislationId:  suite.legislationId,
		Status:         models.CaseUnderReview,
		Priority:       models.PriorityHigh,
		ExpectedFine:   &newFine,
	}

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", ctx, suite.transaction, suite.caseId).Return(previous, nil)
	suite.enforceSecurity.On("UpdateCase", previous).Return(nil)
	suite.repository.On("UpdateCase", ctx, suite.transaction, attrs).Return(nil)
	suite.expectCaseDetails(ctx, previous)

	_, err := suite.makeUsecase().UpdateCase(ctx, suite.userId, attrs)

	suite.NoError(err)
	// "15000" and "15000.00" are the same amount
	suite.repository.AssertNumberOfCalls(suite.T(), "CreateCaseUpdate", 0)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_CloseCase_WritesNoAuditRows() {
	ctx := context.Background()
	c := suite.sampleCase()
	attrs := models.CloseCaseAttributes{
		CaseId:               suite.caseId,
		ClosureDate:          c.CreatedAt,
		ClosureType:          models.ClosureCompliance,
		ClosureJustification: "remediated",
	}
	closed := c
	closed.Status = models.CaseClosed

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", ctx, suite.transaction, suite.caseId).Return(c, nil)
	suite.enforceSecurity.On("UpdateCase", c).Return(nil)
	suite.repository.On("CloseCase", ctx, suite.transaction, attrs).Return(true, nil)
	suite.expectCaseDetails(ctx, closed)

	result, err := suite.makeUsecase().CloseCase(ctx, suite.userId, attrs)

	suite.NoError(err)
	suite.Equal(models.CaseClosed, result.Status)
	// the closure itself lives on the case row; only explicit field changes
	// through UpdateCase produce case updates
	suite.repository.AssertNumberOfCalls(suite.T(), "CreateCaseUpdate", 0)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_GetCaseStats_Forbidden() {
	ctx := context.Background()

	suite.enforceSecurity.On("Permission", models.CASE_READ).Return(models.ForbiddenError)

	_, err := suite.makeUsecase().GetCaseStats(ctx)

	suite.ErrorIs(err, models.ForbiddenError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_GetCaseStats_Nominal() {
	ctx := context.Background()
	stats := models.CaseStats{TotalCases: 12, OpenCases: 5, ClosedCases: 7}

	suite.enforceSecurity.On("Permission", models.CASE_READ).Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("CountCases", ctx, suite.executor).Return(stats, nil)

	result, err := suite.makeUsecase().GetCaseStats(ctx)

	suite.NoError(err)
	suite.Equal(stats, result)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_DownloadCaseFile_WrongCase() {
	ctx := context.Background()
	c := suite.sampleCase()
	fileId := "00000000-0000-0000-0000-000000000042"

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetCaseById", ctx, suite.executor, suite.caseId).Return(c, nil)
	suite.enforceSecurity.On("ReadCase", c).Return(nil)
	suite.repository.On("GetCaseAttachmentById", ctx, suite.executor, fileId).
		Return(models.CaseAttachment{Id: fileId, CaseId: "some-other-case"}, nil)

	_, err := suite.makeUsecase().DownloadCaseFile(ctx, suite.caseId, fileId)

	suite.ErrorIs(err, models.NotFoundError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_DownloadCaseFile_Nominal() {
	ctx := context.Background()
	c := suite.sampleCase()
	fileId := "00000000-0000-0000-0000-000000000042"
	attachment := models.CaseAttachment{
		Id:               fileId,
		CaseId:           suite.caseId,
		FileReference:    "cases/" + suite.caseId + "/" + fileId + "_report.pdf",
		OriginalFileName: "report.pdf",
	}

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetCaseById", ctx, suite.executor, suite.caseId).Return(c, nil)
	suite.enforceSecurity.On("ReadCase", c).Return(nil)
	suite.repository.On("GetCaseAttachmentById", ctx, suite.executor, fileId).Return(attachment, nil)
	suite.blobRepository.On("GetBlob", ctx, "mem://cases", attachment.FileReference).
		Return(models.Blob{FileName: attachment.FileReference}, nil)

	blob, err := suite.makeUsecase().DownloadCaseFile(ctx, suite.caseId, fileId)

	suite.NoError(err)
	suite.Equal("report.pdf", blob.FileName)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_ListPendingWorkflows_Forbidden() {
	ctx := context.Background()

	suite.enforceSecurity.On("Permission", models.CASE_APPROVE).Return(models.ForbiddenError)

	_, err := suite.makeUsecase().ListPendingWorkflows(ctx)

	suite.ErrorIs(err, models.ForbiddenError)
	suite.AssertExpectations()
}

func TestCaseUsecase(t *testing.T) {
	suite.Run(t, new(CaseUsecaseTestSuite))
}
