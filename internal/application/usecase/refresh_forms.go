package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/domain/repository"
	"github.com/bnema/formbridge/internal/logging"
)

// formDefinition is the part of formDef.json the registry reads.
type formDefinition struct {
	Specification struct {
		Settings map[string]formSetting `json:"settings"`
	} `json:"specification"`
}

type formSetting struct {
	Value   json.RawMessage `json:"value"`
	Display struct {
		Title json.RawMessage `json:"title"`
	} `json:"display"`
}

// settingString returns a setting value as a string. Numeric values are
// accepted since form versions are often written as numbers.
func (d *formDefinition) settingString(name string) string {
	s, ok := d.Specification.Settings[name]
	if !ok || len(s.Value) == 0 {
		return ""
	}
	var str string
	if err := json.Unmarshal(s.Value, &str); err == nil {
		return str
	}
	var num json.Number
	if err := json.Unmarshal(s.Value, &num); err == nil {
		return num.String()
	}
	return ""
}

// title reads settings.survey.display.title, which is either a string or a
// map of locale to string.
func (d *formDefinition) title() string {
	s, ok := d.Specification.Settings["survey"]
	if !ok || len(s.Display.Title) == 0 {
		return ""
	}
	var str string
	if err := json.Unmarshal(s.Display.Title, &str); err == nil {
		return str
	}
	var localized map[string]string
	if err := json.Unmarshal(s.Display.Title, &localized); err == nil {
		if v, ok := localized["default"]; ok {
			return v
		}
		for _, v := range localized {
			return v
		}
	}
	return ""
}

// RefreshFormsResult summarizes a registry refresh.
type RefreshFormsResult struct {
	AppName string
	Added   int
	Updated int
	Removed int
	Skipped int
	Forms   []*entity.Form
}

// RefreshFormsUseCase keeps the form registry in sync with the storage layout.
type RefreshFormsUseCase struct {
	fs       port.FileSystem
	forms    repository.FormRepository
	resolver *ResolveFormUseCase
	now      func() time.Time
}

// NewRefreshFormsUseCase creates the use case.
func NewRefreshFormsUseCase(fs port.FileSystem, forms repository.FormRepository, resolver *ResolveFormUseCase) *RefreshFormsUseCase {
	return &RefreshFormsUseCase{fs: fs, forms: forms, resolver: resolver, now: time.Now}
}

// Execute scans <root>/<app>/tables/*/forms/* and the version directories
// below them, upserts every form with a readable definition and removes
// registrations whose definition vanished.
func (uc *RefreshFormsUseCase) Execute(ctx context.Context, appName string) (*RefreshFormsResult, error) {
	if appName == "" {
		appName = uc.resolver.cfg.AppName
	}
	log := logging.FromContext(ctx).With().Str("app", appName).Logger()

	refs, err := uc.scan(ctx, appName)
	if err != nil {
		return nil, err
	}

	result := &RefreshFormsResult{AppName: appName}
	seen := make(map[string]struct{}, len(refs))

	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		form, err := uc.load(ctx, ref)
		if err != nil {
			if !errors.Is(err, errNoDefinition) {
				log.Warn().Err(err).Str("form", ref.String()).Msg("skipping form")
				result.Skipped++
			}
			continue
		}
		seen[ref.Key()] = struct{}{}

		existing, err := uc.forms.FindByReference(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("lookup %s: %w", ref, err)
		}
		switch {
		case existing == nil:
			result.Added++
		case existing.LastModified.Equal(form.LastModified) && existing.Title == form.Title:
			form.RegisteredAt = existing.RegisteredAt
			result.Forms = append(result.Forms, form)
			continue
		default:
			form.RegisteredAt = existing.RegisteredAt
			result.Updated++
		}
		if err := uc.forms.Save(ctx, form); err != nil {
			return nil, fmt.Errorf("save %s: %w", ref, err)
		}
		result.Forms = append(result.Forms, form)
	}

	registered, err := uc.forms.List(ctx, appName)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	for _, f := range registered {
		if _, ok := seen[f.Reference.Key()]; ok {
			continue
		}
		if err := uc.forms.Delete(ctx, f.Reference); err != nil {
			return nil, fmt.Errorf("delete %s: %w", f.Reference, err)
		}
		result.Removed++
	}

	log.Info().
		Int("added", result.Added).
		Int("updated", result.Updated).
		Int("removed", result.Removed).
		Int("skipped", result.Skipped).
		Msg("form registry refreshed")

	return result, nil
}

// scan lists candidate references. A form directory is a candidate itself
// when it holds a definition; each of its subdirectories other than the
// media directory is a version candidate.
func (uc *RefreshFormsUseCase) scan(ctx context.Context, appName string) ([]entity.FormReference, error) {
	tablesDir := filepath.Join(uc.resolver.AppDir(appName), "tables")
	tables, err := uc.fs.ListDirs(ctx, tablesDir)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	var refs []entity.FormReference
	for _, table := range tables {
		formsDir := filepath.Join(tablesDir, table, "forms")
		formIDs, err := uc.fs.ListDirs(ctx, formsDir)
		if err != nil {
			return nil, fmt.Errorf("list forms of %s: %w", table, err)
		}
		for _, formID := range formIDs {
			base := entity.FormReference{AppName: appName, TableID: table, FormID: formID}
			refs = append(refs, base)

			versions, err := uc.fs.ListDirs(ctx, filepath.Join(formsDir, formID))
			if err != nil {
				return nil, fmt.Errorf("list versions of %s: %w", base, err)
			}
			for _, v := range versions {
				if v == entity.FormMediaDir {
					continue
				}
				ref := base
				ref.Version = v
				refs = append(refs, ref)
			}
		}
	}
	return refs, nil
}

var errNoDefinition = errors.New("no form definition")

func (uc *RefreshFormsUseCase) load(ctx context.Context, ref entity.FormReference) (*entity.Form, error) {
	loc, err := uc.resolver.ResolveFormLocation(ctx, ref)
	if err != nil {
		if errors.Is(err, entity.ErrFormNotFound) {
			return nil, errNoDefinition
		}
		return nil, err
	}

	data, err := uc.fs.ReadFile(ctx, loc.DefinitionPath)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	var def formDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	if id := def.settingString("form_id"); id != "" && id != ref.FormID {
		return nil, fmt.Errorf("definition form_id %q does not match directory %q", id, ref.FormID)
	}
	if v := def.settingString("form_version"); ref.Version != "" && v != "" && v != ref.Version {
		return nil, fmt.Errorf("definition form_version %q does not match directory %q", v, ref.Version)
	}

	return &entity.Form{
		Reference:      loc.Reference,
		Title:          def.title(),
		DefinitionPath: loc.DefinitionPath,
		LastModified:   loc.LastModified,
		RegisteredAt:   uc.now().UTC(),
	}, nil
}
