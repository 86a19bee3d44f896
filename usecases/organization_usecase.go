package usecases

import (
	"context"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories"
	"github.com/casetrack/casetrack-backend/usecases/executor_factory"
	"github.com/casetrack/casetrack-backend/usecases/security"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type OrganizationUseCaseRepository interface {
	ListOrganizations(ctx context.Context, exec repositories.Executor) ([]models.Organization, error)
	GetOrganizationById(ctx context.Context, exec repositories.Executor, organizationId string) (models.Organization, error)
	CreateOrganization(ctx context.Context, exec repositories.Executor,
		newOrganizationId string, input models.CreateOrganizationInput) error
	UpdateOrganization(ctx context.Context, exec repositories.Executor, input models.UpdateOrganizationInput) error
	SoftDeleteOrganization(ctx context.Context, exec repositories.Executor, organizationId string) (bool, error)
}

type OrganizationUseCase struct {
	enforceSecurity    security.EnforceSecurityReferenceData
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         OrganizationUseCaseRepository
}

func (usecase *OrganizationUseCase) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	if err := usecase.enforceSecurity.ReadReferenceData(); err != nil {
		return nil, err
	}
	return usecase.repository.ListOrganizations(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *OrganizationUseCase) GetOrganization(ctx context.Context, organizationId string) (models.Organization, error) {
	if err := usecase.enforceSecurity.ReadReferenceData(); err != nil {
		return models.Organization{}, err
	}
	return usecase.repository.GetOrganizationById(ctx, usecase.executorFactory.NewExecutor(), organizationId)
}

func (usecase *OrganizationUseCase) CreateOrganization(
	ctx context.Context,
	input models.CreateOrganizationInput,
) (models.Organization, error) {
	if err := usecase.enforceSecurity.WriteReferenceData(); err != nil {
		return models.Organization{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Organization, error) {
			newOrganizationId := uuid.NewString()
			if err := usecase.repository.CreateOrganization(ctx, tx, newOrganizationId, input); err != nil {
				return models.Organization{}, err
			}
			return usecase.repository.GetOrganizationById(ctx, tx, newOrganizationId)
		})
}

func (usecase *OrganizationUseCase) UpdateOrganization(
	ctx context.Context,
	input models.UpdateOrganizationInput,
) (models.Organization, error) {
	if err := usecase.enforceSecurity.WriteReferenceData(); err != nil {
		return models.Organization{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Organization, error) {
			if _, err := usecase.repository.GetOrganizationById(ctx, tx, input.Id); err != nil {
				return models.Organization{}, err
			}
			if err := usecase.repository.UpdateOrganization(ctx, tx, input); err != nil {
				return models.Organization{}, err
			}
			return usecase.repository.GetOrganizationById(ctx, tx, input.Id)
		})
}

func (usecase *OrganizationUseCase) DeleteOrganization(ctx context.Context, organizationId string) error {
	if err := usecase.enforceSecurity.WriteReferenceData(); err != nil {
		return err
	}

	found, err := usecase.repository.SoftDeleteOrganization(ctx,
		usecase.executorFactory.NewExecutor(), organizationId)
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(models.NotFoundError, "organization %s not found", organizationId)
	}
	return nil
}
