package security

import (
	"errors"

	"github.com/casetrack/casetrack-backend/models"
)

type EnforceSecurityReferenceData interface {
	EnforceSecurity
	ReadReferenceData() error
	WriteReferenceData() error
}

type EnforceSecurityReferenceDataImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityReferenceDataImpl) ReadReferenceData() error {
	return errors.Join(e.Permission(models.REFERENCE_DATA_READ))
}

func (e *EnforceSecurityReferenceDataImpl) WriteReferenceData() error {
	return errors.Join(e.Permission(models.REFERENCE_DATA_WRITE))
}
