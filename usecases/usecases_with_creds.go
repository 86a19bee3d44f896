package usecases

import (
	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/usecases/security"
)

type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceCaseSecurity() security.EnforceSecurityCase {
	return &security.EnforceSecurityCaseImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceReferenceDataSecurity() security.EnforceSecurityReferenceData {
	return &security.EnforceSecurityReferenceDataImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewCaseUseCase() CaseUseCase {
	return CaseUseCase{
		enforceSecurity:    usecases.NewEnforceCaseSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.CaseTrackDbRepository,
		blobRepository:     usecases.Repositories.BlobRepository,
		bucketUrl:          usecases.caseStorageBucketUrl,
	}
}

func (usecases *UsecasesWithCreds) NewOrganizationUseCase() OrganizationUseCase {
	return OrganizationUseCase{
		enforceSecurity:    usecases.NewEnforceReferenceDataSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.CaseTrackDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewLegislationUseCase() LegislationUseCase {
	return LegislationUseCase{
		enforceSecurity:    usecases.NewEnforceReferenceDataSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.CaseTrackDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewComplianceControlUseCase() ComplianceControlUseCase {
	return ComplianceControlUseCase{
		enforceSecurity:    usecases.NewEnforceReferenceDataSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.CaseTrackDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewUserUseCase() UserUseCase {
	return UserUseCase{
		enforceSecurity: usecases.NewEnforceReferenceDataSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.CaseTrackDbRepository,
	}
}
