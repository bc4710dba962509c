package repository

import (
	"context"

	"github.com/bnema/formbridge/internal/domain/entity"
)

// FormRepository persists the registry of forms found in the storage layout.
type FormRepository interface {
	// Save inserts or updates a form keyed by its reference.
	Save(ctx context.Context, form *entity.Form) error

	// FindByReference returns the form or nil when it is not registered.
	FindByReference(ctx context.Context, ref entity.FormReference) (*entity.Form, error)

	// List returns all forms of an app ordered by table, form and version.
	List(ctx context.Context, appName string) ([]*entity.Form, error)

	// Delete removes a form registration.
	Delete(ctx context.Context, ref entity.FormReference) error
}
