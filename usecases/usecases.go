package usecases

import (
	"github.com/casetrack/casetrack-backend/repositories"
	"github.com/casetrack/casetrack-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories         repositories.Repositories
	caseStorageBucketUrl string
}

type Option func(*Usecases)

func WithCaseStorageBucketUrl(bucketUrl string) Option {
	return func(u *Usecases) {
		u.caseStorageBucketUrl = bucketUrl
	}
}

func NewUsecases(repos repositories.Repositories, opts ...Option) Usecases {
	usecases := Usecases{
		Repositories: repos,
	}
	for _, opt := range opts {
		opt(&usecases)
	}
	return usecases
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUseCase {
	return LivenessUseCase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.CaseTrackDbRepository,
	}
}
