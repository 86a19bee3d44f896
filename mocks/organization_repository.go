package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/repositories"
)

type OrganizationRepository struct {
	mock.Mock
}

func (r *OrganizationRepository) ListOrganizations(ctx context.Context, exec repositories.Executor) ([]models.Organization, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.Organization), args.Error(1)
}

func (r *OrganizationRepository) GetOrganizationById(ctx context.Context, exec repositories.Executor,
	organizationId string,
) (models.Organization, error) {
	args := r.Called(ctx, exec, organizationId)
	return args.Get(0).(models.Organization), args.Error(1)
}

func (r *OrganizationRepository) CreateOrganization(ctx context.Context, exec repositories.Executor,
	newOrganizationId string, input models.CreateOrganizationInput,
) error {
	args := r.Called(ctx, exec, newOrganizationId, input)
	return args.Error(0)
}

func (r *OrganizationRepository) UpdateOrganization(ctx context.Context, exec repositories.Executor,
	input models.UpdateOrganizationInput,
) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *OrganizationRepository) SoftDeleteOrganization(ctx context.Context, exec repositories.Executor,
	organizationId string,
) (bool, error) {
	args := r.Called(ctx, exec, organizationId)
	return args.Bool(0), args.Error(1)
}
