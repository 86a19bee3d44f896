package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter        ExecutorGetter
	CaseTrackDbRepository *CaseTrackDbRepository
	BlobRepository        BlobRepository
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter:        NewExecutorGetter(pool),
		CaseTrackDbRepository: &CaseTrackDbRepository{},
		BlobRepository:        NewBlobRepository(),
	}
}
