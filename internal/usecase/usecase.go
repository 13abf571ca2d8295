// Package usecase holds the application services. Every operation reads the
// authenticated owner from the request context and scopes all data access to
// that owner.
package usecase

import (
	"context"
	"errors"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ownerID extracts the authenticated user id from the context.
func ownerID(ctx context.Context) (string, error) {
	id, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || id == "" {
		return "", apperror.Unauthorized("Authentification requise")
	}
	return id, nil
}

// validationError wraps validator output into a 400 AppError carrying the
// per-field French messages, so forms can highlight each input.
func validationError(err error) *apperror.AppError {
	appErr := apperror.BadRequest("Formulaire invalide")
	appErr.Fields = validation.FieldErrors(err)
	return appErr
}

// translateNotFound maps the repository's ErrNotFound onto a 404 with a
// domain-specific message, passing every other error through.
func translateNotFound(err error, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(message)
	}
	return err
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}
