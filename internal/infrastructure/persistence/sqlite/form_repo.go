package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/domain/repository"
	"github.com/bnema/formbridge/internal/logging"
)

const (
	upsertFormSQL = `
INSERT INTO forms (app_name, table_id, form_id, version, title, definition_path, last_modified, registered_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (app_name, table_id, form_id, version) DO UPDATE SET
    title = excluded.title,
    definition_path = excluded.definition_path,
    last_modified = excluded.last_modified`

	selectFormSQL = `
SELECT app_name, table_id, form_id, version, title, definition_path, last_modified, registered_at
FROM forms
WHERE app_name = ? AND table_id = ? AND form_id = ? AND version = ?`

	listFormsSQL = `
SELECT app_name, table_id, form_id, version, title, definition_path, last_modified, registered_at
FROM forms
WHERE app_name = ?
ORDER BY table_id, form_id, version`

	deleteFormSQL = `
DELETE FROM forms
WHERE app_name = ? AND table_id = ? AND form_id = ? AND version = ?`
)

type formRepo struct {
	db *sql.DB
}

// NewFormRepository creates a new form registry repository.
func NewFormRepository(db *sql.DB) repository.FormRepository {
	return &formRepo{db: db}
}

func (r *formRepo) Save(ctx context.Context, form *entity.Form) error {
	if form == nil {
		return errors.New("form cannot be nil")
	}
	ref := form.Reference

	logging.FromContext(ctx).Debug().
		Str("form", ref.String()).
		Msg("saving form registration")

	_, err := r.db.ExecContext(ctx, upsertFormSQL,
		ref.AppName, ref.TableID, ref.FormID, ref.Version,
		form.Title, form.DefinitionPath,
		millis(form.LastModified), millis(form.RegisteredAt),
	)
	if err != nil {
		return fmt.Errorf("upsert form %s: %w", ref, err)
	}
	return nil
}

func (r *formRepo) FindByReference(ctx context.Context, ref entity.FormReference) (*entity.Form, error) {
	row := r.db.QueryRowContext(ctx, selectFormSQL, ref.AppName, ref.TableID, ref.FormID, ref.Version)
	form, err := scanForm(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return form, nil
}

func (r *formRepo) List(ctx context.Context, appName string) ([]*entity.Form, error) {
	rows, err := r.db.QueryContext(ctx, listFormsSQL, appName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var forms []*entity.Form
	for rows.Next() {
		form, err := scanForm(rows)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, rows.Err()
}

func (r *formRepo) Delete(ctx context.Context, ref entity.FormReference) error {
	logging.FromContext(ctx).Debug().Str("form", ref.String()).Msg("deleting form registration")
	_, err := r.db.ExecContext(ctx, deleteFormSQL, ref.AppName, ref.TableID, ref.FormID, ref.Version)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanForm(s rowScanner) (*entity.Form, error) {
	var (
		f          entity.Form
		modified   int64
		registered int64
	)
	if err := s.Scan(
		&f.Reference.AppName, &f.Reference.TableID, &f.Reference.FormID, &f.Reference.Version,
		&f.Title, &f.DefinitionPath, &modified, &registered,
	); err != nil {
		return nil, err
	}
	f.LastModified = fromMillis(modified)
	f.RegisteredAt = fromMillis(registered)
	return &f, nil
}
