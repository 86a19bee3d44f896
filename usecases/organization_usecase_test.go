package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/casetrack/casetrack-backend/mocks"
	"github.com/casetrack/casetrack-backend/models"
)

type OrganizationUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.OrganizationRepository
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	executor           *mocks.Executor
	transaction        *mocks.Transaction
	enforceSecurity    *mocks.EnforceSecurity
}

func (suite *OrganizationUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.OrganizationRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.enforceSecurity = new(mocks.EnforceSecurity)
}

func (suite *OrganizationUsecaseTestSuite) makeUsecase() *OrganizationUseCase {
	return &OrganizationUseCase{
		enforceSecurity:    suite.enforceSecurity,
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
	}
}

func (suite *OrganizationUsecaseTestSuite) Test_ListOrganizations_Nominal() {
	ctx := context.Background()
	organizations := []models.Organization{{Id: "org-1", Name: "ACME Utilities"}}

	suite.enforceSecurity.On("ReadReferenceData").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("ListOrganizations", ctx, suite.executor).Return(organizations, nil)

	result, err := suite.makeUsecase().ListOrganizations(ctx)

	suite.NoError(err)
	suite.Equal(organizations, result)
}

func (suite *OrganizationUsecaseTestSuite) Test_CreateOrganization_Forbidden() {
	ctx := context.Background()

	suite.enforceSecurity.On("WriteReferenceData").Return(models.ForbiddenError)

	_, err := suite.makeUsecase().CreateOrganization(ctx, models.CreateOrganizationInput{
		Name: "ACME Utilities",
		Code: "ACME",
	})

	suite.ErrorIs(err, models.ForbiddenError)
	suite.repository.AssertNotCalled(suite.T(), "CreateOrganization")
}

func (suite *OrganizationUsecaseTestSuite) Test_CreateOrganization_ReturnsCreatedRow() {
	ctx := context.Background()
	input := models.CreateOrganizationInput{Name: "ACME Utilities", Code: "ACME"}
	created := models.Organization{Id: "org-1", Name: "ACME Utilities", Code: "ACME"}

	suite.enforceSecurity.On("WriteReferenceData").Return(nil)
	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("CreateOrganization", ctx, suite.transaction,
		mock.AnythingOfType("string"), input).Return(nil)
	suite.repository.On("GetOrganizationById", ctx, suite.transaction,
		mock.AnythingOfType("string")).Return(created, nil)

	result, err := suite.makeUsecase().CreateOrganization(ctx, input)

	suite.NoError(err)
	suite.Equal(created, result)
}

func (suite *OrganizationUsecaseTestSuite) Test_DeleteOrganization_NotFound() {
	ctx := context.Background()

	suite.enforceSecurity.On("WriteReferenceData").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("SoftDeleteOrganization", ctx, suite.executor, "org-1").Return(false, nil)

	err := suite.makeUsecase().DeleteOrganization(ctx, "org-1")

	suite.ErrorIs(err, models.NotFoundError)
}

func TestOrganizationUsecase(t *testing.T) {
	suite.Run(t, new(OrganizationUsecaseTestSuite))
}
