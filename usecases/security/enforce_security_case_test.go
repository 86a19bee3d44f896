package security

import (
	"testing"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/stretchr/testify/assert"
)

func caseSecurityFor(role models.Role) *EnforceSecurityCaseImpl {
	creds := models.Credentials{
		ActorIdentity: models.Identity{UserId: "principal"},
		Role:          role,
	}
	return &EnforceSecurityCaseImpl{
		EnforceSecurity: NewEnforceSecurity(creds),
		Credentials:     creds,
	}
}

func TestEnforceSecurityCase(t *testing.T) {
	tts := []struct {
		name    string
		role    models.Role
		action  func(e *EnforceSecurityCaseImpl) error
		allowed bool
	}{
		{"viewer can read", models.VIEWER, func(e *EnforceSecurityCaseImpl) error {
			return e.ReadCase(models.Case{})
		}, true},
		{"viewer cannot create", models.VIEWER, func(e *EnforceSecurityCaseImpl) error {
			return e.CreateCase()
		}, false},
		{"viewer cannot update", models.VIEWER, func(e *EnforceSecurityCaseImpl) error {
			return e.UpdateCase(models.Case{})
		}, false},
		{"officer can create", models.OFFICER, func(e *EnforceSecurityCaseImpl) error {
			return e.CreateCase()
		}, true},
		{"officer cannot approve", models.OFFICER, func(e *EnforceSecurityCaseImpl) error {
			return e.ApproveCase(models.Case{})
		}, false},
		{"regulations admin can approve", models.REGULATIONS_ADMIN, func(e *EnforceSecurityCaseImpl) error {
			return e.ApproveCase(models.Case{})
		}, true},
		{"no role cannot read", models.NO_ROLE, func(e *EnforceSecurityCaseImpl) error {
			return e.ReadCase(models.Case{})
		}, false},
	}

	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			outcome := tt.action(caseSecurityFor(tt.role))

			if tt.allowed {
				assert.NoError(t, outcome)
			} else {
				assert.ErrorIs(t, outcome, models.ForbiddenError)
			}
		})
	}
}

func TestEnforceSecurityReferenceData(t *testing.T) {
	adminCreds := models.Credentials{Role: models.REGULATIONS_ADMIN}
	admin := &EnforceSecurityReferenceDataImpl{
		EnforceSecurity: NewEnforceSecurity(adminCreds),
		Credentials:     adminCreds,
	}
	assert.NoError(t, admin.ReadReferenceData())
	assert.NoError(t, admin.WriteReferenceData())

	officerCreds := models.Credentials{Role: models.OFFICER}
	officer := &EnforceSecurityReferenceDataImpl{
		EnforceSecurity: NewEnforceSecurity(officerCreds),
		Credentials:     officerCreds,
	}
	assert.NoError(t, officer.ReadReferenceData())
	assert.ErrorIs(t, officer.WriteReferenceData(), models.ForbiddenError)
}
