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

type ComplianceControlUseCaseRepository interface {
	ListComplianceControls(ctx context.Context, exec repositories.Executor,
		legislationId *string) ([]models.ComplianceControl, error)
	GetComplianceControlById(ctx context.Context, exec repositories.Executor,
		controlId string) (models.ComplianceControl, error)
	GetLegislationById(ctx context.Context, exec repositories.Executor,
		legislationId string) (models.Legislation, error)
	CreateComplianceControl(ctx context.Context, exec repositories.Executor,
		newControlId string, input models.CreateComplianceControlInput) error
	UpdateComplianceControl(ctx context.Context, exec repositories.Executor,
		input models.UpdateComplianceControlInput) error
	SoftDeleteComplianceControl(ctx context.Context, exec repositories.Executor, controlId string) (bool, error)
}

type ComplianceControlUseCase struct {
	enforceSecurity    security.EnforceSecurityReferenceData
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         ComplianceControlUseCaseRepository
}

func (usecase *ComplianceControlUseCase) ListComplianceControls(
	ctx context.Context,
	legislationId *string,
) ([]models.ComplianceControl, error) {
	if err := usecase.enforceSecurity.ReadReferenceData(); err != nil {
		return nil, err
	}
	return usecase.repository.ListComplianceControls(ctx,
		usecase.executorFactory.NewExecutor(), legislationId)
}

func (usecase *ComplianceControlUseCase) GetComplianceControl(
	ctx context.Context,
	controlId string,
) (models.ComplianceControl, error) {
	if err := usecase.enforceSecurity.ReadReferenceData(); err != nil {
		return models.ComplianceControl{}, err
	}
	return usecase.repository.GetComplianceControlById(ctx,
		usecase.executorFactory.NewExecutor(), controlId)
}

func (usecase *ComplianceControlUseCase) CreateComplianceControl(
	ctx context.Context,
	input models.CreateComplianceControlInput,
) (models.ComplianceControl, error) {
	if err := usecase.enforceSecurity.WriteReferenceData(); err != nil {
		return models.ComplianceControl{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ComplianceControl, error) {
			// the control must hang off an existing legislation
			if _, err := usecase.repository.GetLegislationById(ctx, tx, input.LegislationId); err != nil {
				return models.ComplianceControl{}, err
			}

			newControlId := uuid.NewString()
			if err := usecase.repository.CreateComplianceControl(ctx, tx, newControlId, input); err != nil {
				return models.ComplianceControl{}, err
			}
			return usecase.repository.GetComplianceControlById(ctx, tx, newControlId)
		})
}

func (usecase *ComplianceControlUseCase) UpdateComplianceControl(
	ctx context.Context,
	input models.UpdateComplianceControlInput,
) (models.ComplianceControl, error) {
	if err := usecase.enforceSecurity.WriteReferenceData(); err != nil {
		return models.ComplianceControl{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ComplianceControl, error) {
			if _, err := usecase.repository.GetComplianceControlById(ctx, tx, input.Id); err != nil {
				return models.ComplianceControl{}, err
			}
			if err := usecase.repository.UpdateComplianceControl(ctx, tx, input); err != nil {
				return models.ComplianceControl{}, err
			}
			return usecase.repository.GetComplianceControlById(ctx, tx, input.Id)
		})
}

func (usecase *ComplianceControlUseCase) DeleteComplianceControl(ctx context.Context, controlId string) error {
	if err := usecase.enforceSecurity.WriteReferenceData(); err != nil {
		return err
	}

	found, err := usecase.repository.SoftDeleteComplianceControl(ctx,
		usecase.executorFactory.NewExecutor(), controlId)
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(models.NotFoundError, "compliance control %s not found", controlId)
	}
	return nil
}
