package usecases

import (
	"context"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories"
	"github.com/casetrack/casetrack-backend/usecases/executor_factory"
	"github.com/casetrack/casetrack-backend/usecases/security"
)

type UserUseCaseRepository interface {
	ListUsers(ctx context.Context, exec repositories.Executor) ([]models.User, error)
	GetUserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error)
}

type UserUseCase struct {
	enforceSecurity security.EnforceSecurityReferenceData
	executorFactory executor_factory.ExecutorFactory
	repository      UserUseCaseRepository
}

func (usecase *UserUseCase) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := usecase.enforceSecurity.ReadReferenceData(); err != nil {
		return nil, err
	}
	return usecase.repository.ListUsers(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *UserUseCase) GetUser(ctx context.Context, userId string) (models.User, error) {
	if err := usecase.enforceSecurity.ReadReferenceData(); err != nil {
		return models.User{}, err
	}
	return usecase.repository.GetUserById(ctx, usecase.executorFactory.NewExecutor(), userId)
}
