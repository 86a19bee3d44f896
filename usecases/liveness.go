package usecases

import (
	"context"

	"github.com/casetrack/casetrack-backend/repositories"
	"github.com/casetrack/casetrack-backend/usecases/executor_factory"
)

type livenessRepository interface {
	Liveness(ctx context.Context, exec repositories.Executor) error
}

type LivenessUseCase struct {
	executorFactory    executor_factory.ExecutorFactory
	livenessRepository livenessRepository
}

func (usecase *LivenessUseCase) Liveness(ctx context.Context) error {
	return usecase.livenessRepository.Liveness(ctx, usecase.executorFactory.NewExecutor())
}
