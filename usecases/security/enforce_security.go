package security

import (
	"github.com/casetrack/casetrack-backend/models"

	"github.com/cockroachdb/errors"
)

type EnforceSecurity interface {
	Permission(permission models.Permission) error
	UserId() string
}

type EnforceSecurityImpl struct {
	Credentials models.Credentials
}

func NewEnforceSecurity(credentials models.Credentials) *EnforceSecurityImpl {
	return &EnforceSecurityImpl{
		Credentials: credentials,
	}
}

func (e *EnforceSecurityImpl) Permission(permission models.Permission) error {
	if !e.Credentials.Role.HasPermission(permission) {
		return errors.Wrapf(models.ForbiddenError,
			"missing permission %s", permission.String())
	}
	return nil
}

func (e *EnforceSecurityImpl) UserId() string {
	return e.Credentials.ActorIdentity.UserId
}
