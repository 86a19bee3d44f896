package usecases

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/casetrack/casetrack-backend/repositories"
	"github.com/casetrack/casetrack-backend/usecases/executor_factory"
)

func TestLiveness(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		stub := executor_factory.NewExecutorFactoryStub()
		stub.Mock.ExpectQuery("SELECT 1").
			WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

		usecase := LivenessUseCase{
			executorFactory:    stub,
			livenessRepository: &repositories.CaseTrackDbRepository{},
		}

		assert.NoError(t, usecase.Liveness(context.Background()))
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})

	t.Run("database is unreachable", func(t *testing.T) {
		stub := executor_factory.NewExecutorFactoryStub()
		stub.Mock.ExpectQuery("SELECT 1").WillReturnError(assert.AnError)

		usecase := LivenessUseCase{
			executorFactory:    stub,
			livenessRepository: &repositories.CaseTrackDbRepository{},
		}

		assert.Error(t, usecase.Liveness(context.Background()))
	})
}
