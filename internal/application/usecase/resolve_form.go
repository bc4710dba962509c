package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/domain/repository"
	"github.com/bnema/formbridge/internal/logging"
)

// ErrInstanceLookup wraps failures of the row store during instance
// resolution. It is transient: the store may be temporarily unavailable.
var ErrInstanceLookup = errors.New("instance lookup failed")

// BaseURLMode selects how page base URLs are built.
type BaseURLMode string

const (
	BaseURLFile   BaseURLMode = "file"
	BaseURLServer BaseURLMode = "server"
)

// PageURLConfig configures page URL construction.
type PageURLConfig struct {
	Mode       BaseURLMode
	FormsRoot  string // directory holding one subdirectory per app
	ServerAddr string // host:port of the local form server
	AppName    string // app used when a reference leaves it empty
}

// RowContext describes which row the host wants the page bound to.
type RowContext struct {
	InstanceID entity.InstanceID
}

// FragmentParams are the per-load values encoded in the page fragment.
type FragmentParams struct {
	ScreenPath string
	RefID      entity.RefID
	Aux        map[string]string
}

// Fragment keys. Auxiliary parameters may not reuse them.
const (
	HashKeyFormPath   = "formPath"
	HashKeyInstanceID = "instanceId"
	HashKeyScreenPath = "screenPath"
	HashKeyRefID      = "refId"
)

// ResolveFormUseCase maps form references onto the storage layout and builds
// the URLs pages are loaded from.
type ResolveFormUseCase struct {
	fs   port.FileSystem
	rows repository.RowRepository
	cfg  PageURLConfig
}

// NewResolveFormUseCase creates the resolver.
func NewResolveFormUseCase(fs port.FileSystem, rows repository.RowRepository, cfg PageURLConfig) *ResolveFormUseCase {
	if cfg.Mode == "" {
		cfg.Mode = BaseURLFile
	}
	return &ResolveFormUseCase{fs: fs, rows: rows, cfg: cfg}
}

// Normalize fills the default app name.
func (uc *ResolveFormUseCase) Normalize(ref entity.FormReference) entity.FormReference {
	if ref.AppName == "" {
		ref.AppName = uc.cfg.AppName
	}
	return ref
}

// AppDir returns the directory of an app inside the forms root.
func (uc *ResolveFormUseCase) AppDir(appName string) string {
	return filepath.Join(uc.cfg.FormsRoot, appName)
}

// ResolveFormLocation finds the definition of ref on disk. Only the exact
// version directory is considered; an unversioned reference never matches a
// versioned directory and vice versa.
func (uc *ResolveFormUseCase) ResolveFormLocation(ctx context.Context, ref entity.FormReference) (*entity.FormLocation, error) {
	ref = uc.Normalize(ref)
	if err := ref.Validate(); err != nil {
		return nil, fmt.Errorf("resolve %s: %w", ref, err)
	}
	if ref.AppName == "" || !validAppName(ref.AppName) {
		return nil, fmt.Errorf("resolve %s: app name: %w", ref, entity.ErrInvalidReference)
	}

	formPath := ref.FormPath()
	formDir := filepath.Join(uc.AppDir(ref.AppName), filepath.FromSlash(formPath))
	defPath := filepath.Join(formDir, entity.FormDefinitionFile)

	isDir, err := uc.fs.IsDirectory(ctx, formDir)
	if err != nil {
		if exists, existsErr := uc.fs.Exists(ctx, formDir); existsErr == nil && !exists {
			return nil, fmt.Errorf("resolve %s: %w", ref, entity.ErrFormNotFound)
		}
		return nil, fmt.Errorf("resolve %s: stat form dir: %w", ref, err)
	}
	if !isDir {
		return nil, fmt.Errorf("resolve %s: %w", ref, entity.ErrFormNotFound)
	}

	exists, err := uc.fs.Exists(ctx, defPath)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: stat definition: %w", ref, err)
	}
	if !exists {
		return nil, fmt.Errorf("resolve %s: %w", ref, entity.ErrFormNotFound)
	}

	modified, err := uc.fs.ModTime(ctx, defPath)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: definition mod time: %w", ref, err)
	}
	if dirModified, dirErr := uc.fs.ModTime(ctx, formDir); dirErr == nil && dirModified.After(modified) {
		modified = dirModified
	}

	logging.FromContext(ctx).Debug().
		Str("form", ref.String()).
		Str("definition", defPath).
		Msg("resolved form location")

	return &entity.FormLocation{
		Reference:      ref,
		FormDir:        formDir,
		DefinitionPath: defPath,
		FormPath:       formPath,
		LastModified:   modified,
	}, nil
}

// ResolveCurrentInstance looks up whether the row in rc exists for ref.
// An empty context resolves to no instance. A requested instance with no
// stored row yet is returned as is with ok false, so the page creates the row
// under that id instead of starting an unrelated new entry.
func (uc *ResolveFormUseCase) ResolveCurrentInstance(ctx context.Context, ref entity.FormReference, rc RowContext) (entity.InstanceID, bool, error) {
	if !rc.InstanceID.IsBound() {
		return entity.NoInstance, false, nil
	}
	if uc.rows == nil {
		return rc.InstanceID, false, nil
	}

	row, err := uc.rows.Get(ctx, ref.TableID, rc.InstanceID)
	if err != nil {
		return entity.NoInstance, false, fmt.Errorf("%w: %s/%s: %w", ErrInstanceLookup, ref.TableID, rc.InstanceID, err)
	}
	if row == nil {
		return rc.InstanceID, false, nil
	}
	return row.InstanceID, true, nil
}

// BuildPageURL returns the base URL of the form's entry page and the
// fragment carrying the per-load parameters.
func (uc *ResolveFormUseCase) BuildPageURL(loc *entity.FormLocation, instanceID entity.InstanceID, params FragmentParams) (entity.PageURL, error) {
	if loc == nil {
		return entity.PageURL{}, fmt.Errorf("build page url: %w", entity.ErrFormNotFound)
	}

	base, err := uc.baseURL(loc)
	if err != nil {
		return entity.PageURL{}, err
	}

	pairs := []string{HashKeyFormPath + "=" + url.QueryEscape(loc.FormPath)}
	if instanceID.IsBound() {
		pairs = append(pairs, HashKeyInstanceID+"="+url.QueryEscape(instanceID.String()))
	}
	if params.ScreenPath != "" {
		pairs = append(pairs, HashKeyScreenPath+"="+url.QueryEscape(params.ScreenPath))
	}
	if params.RefID != entity.NoRefID {
		pairs = append(pairs, HashKeyRefID+"="+url.QueryEscape(params.RefID.String()))
	}

	keys := make([]string, 0, len(params.Aux))
	for k := range params.Aux {
		if isReservedHashKey(k) || k == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pairs = append(pairs, url.QueryEscape(k)+"="+url.QueryEscape(params.Aux[k]))
	}

	return entity.PageURL{BaseURL: base, Hash: strings.Join(pairs, "&")}, nil
}

func (uc *ResolveFormUseCase) baseURL(loc *entity.FormLocation) (string, error) {
	switch uc.cfg.Mode {
	case BaseURLServer:
		if uc.cfg.ServerAddr == "" {
			return "", errors.New("build page url: server mode without server address")
		}
		u := url.URL{
			Scheme: "http",
			Host:   uc.cfg.ServerAddr,
			Path:   "/" + path.Join(loc.Reference.AppName, loc.FormPath, entity.FormEntryPage),
		}
		return u.String(), nil
	case BaseURLFile:
		abs, err := filepath.Abs(filepath.Join(loc.FormDir, entity.FormEntryPage))
		if err != nil {
			return "", fmt.Errorf("build page url: %w", err)
		}
		u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
		return u.String(), nil
	default:
		return "", fmt.Errorf("build page url: unknown base url mode %q", uc.cfg.Mode)
	}
}

func isReservedHashKey(k string) bool {
	switch k {
	case HashKeyFormPath, HashKeyInstanceID, HashKeyScreenPath, HashKeyRefID:
		return true
	}
	return false
}

func validAppName(name string) bool {
	return name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
