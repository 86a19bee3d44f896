package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/casetrack/casetrack-backend/models"
)

type EnforceSecurity struct {
	mock.Mock
}

func (e *EnforceSecurity) Permission(permission models.Permission) error {
	args := e.Called(permission)
	return args.Error(0)
}

func (e *EnforceSecurity) UserId() string {
	args := e.Called()
	return args.String(0)
}

func (e *EnforceSecurity) ReadCase(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) CreateCase() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) UpdateCase(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) ApproveCase(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadReferenceData() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) WriteReferenceData() error {
	args := e.Called()
	return args.Error(0)
}
