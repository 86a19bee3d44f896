package utils

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/casetrack/casetrack-backend/models"
)

type ContextKey int

const (
	ContextKeyCredentials ContextKey = iota
	ContextKeyLogger
)

func CredentialsFromCtx(ctx context.Context) (models.Credentials, bool) {
	creds, found := ctx.Value(ContextKeyCredentials).(models.Credentials)
	return creds, found
}

func StoreCredentialsInContext(ctx context.Context, creds models.Credentials) context.Context {
	return context.WithValue(ctx, ContextKeyCredentials, creds)
}

func ValidateUuid(uuidParam string) error {
	if _, err := uuid.Parse(uuidParam); err != nil {
		return fmt.Errorf("'%s' is not a valid UUID: %w", uuidParam, models.BadParameterError)
	}
	return nil
}

func Ptr[T any](v T) *T {
	return &v
}
