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

type LegislationUseCaseRepository interface {
	ListLegislations(ctx context.Context, exec repositories.Executor) ([]models.Legislation, error)
	GetLegislationById(ctx context.Context, exec repositories.Executor, legislationId string) (models.Legislation, error)
	CreateLegislation(ctx context.Context, exec repositories.Executor,
		newLegislationId string, input models.CreateLegislationInput) error
	UpdateLegislation(ctx context.Context, exec repositories.Executor, input models.UpdateLegislationInput) error
	SoftDeleteLegislation(ctx context.Context, exec repositories.Executor, legislationId string) (bool, error)
}

type LegislationUseCase struct {
	enforceSecurity    security.EnforceSecurityReferenceData
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         LegislationUseCaseRepository
}

func (usecase *LegislationUseCase) ListLegislations(ctx context.Context) ([]models.Legislation, error) {
	if err := usecase.enforceSecurity.ReadReferenceData(); err != nil {
		return nil, err
	}
	return usecase.repository.ListLegislations(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *LegislationUseCase) GetLegislation(ctx context.Context, legislationId string) (models.Legislation, error) {
	if err := usecase.enforceSecurity.ReadReferenceData(); err != nil {
		return models.Legislation{}, err
	}
	return usecase.repository.GetLegislationById(ctx, usecase.executorFactory.NewExecutor(), legislationId)
}

func (usecase *LegislationUseCase) CreateLegislation(
	ctx context.Context,
	input models.CreateLegislationInput,
) (models.Legislation, error) {
	if err := usecase.enforceSecurity.WriteReferenceData(); err != nil {
		return models.Legislation{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Legislation, error) {
			newLegislationId := uuid.NewString()
			if err := usecase.repository.CreateLegislation(ctx, tx, newLegislationId, input); err != nil {
				return models.Legislation{}, err
			}
			return usecase.repository.GetLegislationById(ctx, tx, newLegislationId)
		})
}

func (usecase *LegislationUseCase) UpdateLegislation(
	ctx context.Context,
	input models.UpdateLegislationInput,
) (models.Legislation, error) {
	if err := usecase.enforceSecurity.WriteReferenceData(); err != nil {
		return models.Legislation{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Legislation, error) {
			if _, err := usecase.repository.GetLegislationById(ctx, tx, input.Id); err != nil {
				return models.Legislation{}, err
			}
			if err := usecase.repository.UpdateLegislation(ctx, tx, input); err != nil {
				return models.Legislation{}, err
			}
			return usecase.repository.GetLegislationById(ctx, tx, input.Id)
		})
}

func (usecase *LegislationUseCase) DeleteLegislation(ctx context.Context, legislationId string) error {
	if err := usecase.enforceSecurity.WriteReferenceData(); err != nil {
		return err
	}

	found, err := usecase.repository.SoftDeleteLegislation(ctx,
		usecase.executorFactory.NewExecutor(), legislationId)
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(models.NotFoundError, "legislation %s not found", legislationId)
	}
	return nil
}
