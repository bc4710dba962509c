package entity

import (
	"path"
	"strings"
	"time"
)

// Layout names inside a form directory.
const (
	FormDefinitionFile = "formDef.json"
	FormEntryPage      = "index.html"
	FormMediaDir       = "media"
)

// FormReference identifies a form inside an application scope.
// (TableID, FormID) is unique per app; Version is unique per (TableID, FormID)
// when present.
type FormReference struct {
	AppName string `json:"app_name"`
	TableID string `json:"table_id"`
	FormID  string `json:"form_id"`
	Version string `json:"version,omitempty"`
}

// Validate rejects references that cannot be mapped onto the forms tree.
func (r FormReference) Validate() error {
	if r.TableID == "" || r.FormID == "" {
		return ErrInvalidReference
	}
	for _, seg := range []string{r.AppName, r.TableID, r.FormID, r.Version} {
		if !validSegment(seg) {
			return ErrInvalidReference
		}
	}
	return nil
}

// Key returns "table/form" or "table/form/version".
func (r FormReference) Key() string {
	if r.Version == "" {
		return r.TableID + "/" + r.FormID
	}
	return r.TableID + "/" + r.FormID + "/" + r.Version
}

// FormPath returns the form directory relative to the app directory,
// always ending with a slash.
func (r FormReference) FormPath() string {
	p := path.Join("tables", r.TableID, "forms", r.FormID)
	if r.Version != "" {
		p = path.Join(p, r.Version)
	}
	return p + "/"
}

// ParseFormKey parses "table/form" or "table/form/version" as written by Key.
func ParseFormKey(appName, key string) (FormReference, error) {
	parts := strings.Split(strings.Trim(key, "/"), "/")
	if len(parts) < 2 || len(parts) > 3 {
		return FormReference{}, ErrInvalidReference
	}
	ref := FormReference{AppName: appName, TableID: parts[0], FormID: parts[1]}
	if len(parts) == 3 {
		ref.Version = parts[2]
	}
	if err := ref.Validate(); err != nil {
		return FormReference{}, err
	}
	return ref, nil
}

func (r FormReference) String() string {
	if r.AppName == "" {
		return r.Key()
	}
	return r.AppName + ":" + r.Key()
}

func validSegment(seg string) bool {
	if seg == "." || seg == ".." {
		return false
	}
	return !strings.ContainsAny(seg, `/\`)
}

// FormLocation is the on-disk resolution of a FormReference. It is derived
// from the file system on demand and never stored on its own.
type FormLocation struct {
	Reference      FormReference
	FormDir        string // absolute directory holding the definition
	DefinitionPath string // absolute path of formDef.json
	FormPath       string // FormDir relative to the app directory, slash-terminated
	LastModified   time.Time
}

// Form is a registered form as recorded by the forms refresh.
type Form struct {
	Reference      FormReference
	Title          string
	DefinitionPath string
	LastModified   time.Time
	RegisteredAt   time.Time
}
