package security

import (
	"errors"

	"github.com/casetrack/casetrack-backend/models"
)

type EnforceSecurityCase interface {
	EnforceSecurity
	ReadCase(c models.Case) error
	CreateCase() error
	UpdateCase(c models.Case) error
	ApproveCase(c models.Case) error
}

type EnforceSecurityCaseImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityCaseImpl) ReadCase(c models.Case) error {
	return errors.Join(e.Permission(models.CASE_READ))
}

func (e *EnforceSecurityCaseImpl) CreateCase() error {
	return errors.Join(e.Permission(models.CASE_CREATE))
}

func (e *EnforceSecurityCaseImpl) UpdateCase(c models.Case) error {
	return errors.Join(e.Permission(models.CASE_CREATE))
}

func (e *EnforceSecurityCaseImpl) ApproveCase(c models.Case) error {
	return errors.Join(e.Permission(models.CASE_APPROVE))
}
