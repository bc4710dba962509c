// Package scriptview is a headless port.WebView. A "page" is the index.js
// that sits next to a form's index.html; it runs in a fresh sobek runtime
// on every full navigation and reaches the host through a global shim.
package scriptview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/grafana/sobek"

	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/logging"
)

const (
	// PageScript is the file run in place of the entry page.
	PageScript = "index.js"

	wireVersion = 1
)

var (
	// ErrNoPage is returned by operations that need a loaded page.
	ErrNoPage = errors.New("no page loaded")
	// ErrUnsupportedScheme is returned for URLs the view cannot load.
	ErrUnsupportedScheme = errors.New("unsupported page url scheme")
)

// Dispatch runs an encoded bridge request and returns its response.
// server.BridgeHandler has the same shape.
type Dispatch func(payload []byte) any

type wireRequest struct {
	Version int    `json:"version"`
	Op      string `json:"op"`
	RefID   string `json:"refId"`
	Args    any    `json:"args,omitempty"`
}

type wireResponse struct {
	OK     bool   `json:"ok"`
	Result any    `json:"result"`
	Error  string `json:"error,omitempty"`
}

// View runs pages in sobek. The runtime is not safe for concurrent use, so
// every entry point takes mu; shim calls run inside those entry points.
type View struct {
	baseCtx  context.Context
	fs       port.FileSystem
	dispatch Dispatch

	mu      sync.Mutex
	vm      *sobek.Runtime
	base    string
	hash    string
	loads   int
	pageErr error
}

// New creates a view. dispatch receives every shim.call.
func New(ctx context.Context, fs port.FileSystem, dispatch Dispatch) *View {
	return &View{
		baseCtx:  logging.WithComponent(ctx, "scriptview"),
		fs:       fs,
		dispatch: dispatch,
	}
}

// LoadURL implements port.WebView. Only file:// URLs are supported. A
// script that throws still counts as loaded; its error is kept in PageError.
func (v *View) LoadURL(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse page url: %w", err)
	}
	if u.Scheme != "file" {
		return fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	scriptPath := filepath.Join(filepath.Dir(filepath.FromSlash(u.Path)), PageScript)
	src, err := v.fs.ReadFile(ctx, scriptPath)
	if err != nil {
		return fmt.Errorf("read page script: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	base, hash, _ := strings.Cut(rawURL, "#")
	v.base = base
	v.hash = hash
	v.loads++
	v.pageErr = nil

	vm := sobek.New()
	vm.SetFieldNameMapper(sobek.TagFieldNameMapper("json", true))
	v.vm = vm
	if err := v.installGlobals(vm); err != nil {
		return fmt.Errorf("install page globals: %w", err)
	}

	log := logging.FromContext(v.baseCtx)
	log.Debug().Str("script", scriptPath).Int("load", v.loads).Msg("running page script")
	if _, err := vm.RunScript(scriptPath, string(src)); err != nil {
		v.pageErr = err
		log.Warn().Err(err).Str("script", scriptPath).Msg("page script failed")
	}
	return nil
}

// SetHash implements port.WebView: location.hash changes and the page's
// onhashchange handler, if any, runs.
func (v *View) SetHash(_ context.Context, hash string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.vm == nil {
		return ErrNoPage
	}
	v.hash = hash
	if err := v.syncLocation(v.vm); err != nil {
		return err
	}

	handler, ok := sobek.AssertFunction(v.vm.Get("onhashchange"))
	if !ok {
		return nil
	}
	if _, err := handler(sobek.Undefined()); err != nil {
		v.pageErr = err
		logging.FromContext(v.baseCtx).Warn().Err(err).Msg("onhashchange failed")
	}
	return nil
}

// Eval runs src in the current page and returns the exported result.
func (v *View) Eval(src string) (any, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.vm == nil {
		return nil, ErrNoPage
	}
	val, err := v.vm.RunString(src)
	if err != nil {
		return nil, err
	}
	return val.Export(), nil
}

// Location returns the current page URL.
func (v *View) Location() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.locationLocked()
}

// Loads returns the number of full navigations performed.
func (v *View) Loads() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loads
}

// PageError returns the last uncaught script error of the current page.
func (v *View) PageError() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pageErr
}

func (v *View) locationLocked() string {
	if v.hash == "" {
		return v.base
	}
	return v.base + "#" + v.hash
}

func (v *View) syncLocation(vm *sobek.Runtime) error {
	location := vm.NewObject()
	hash := ""
	if v.hash != "" {
		hash = "#" + v.hash
	}
	if err := location.Set("href", v.locationLocked()); err != nil {
		return err
	}
	if err := location.Set("hash", hash); err != nil {
		return err
	}
	return vm.Set("location", location)
}

func (v *View) installGlobals(vm *sobek.Runtime) error {
	if err := vm.Set("window", vm.GlobalObject()); err != nil {
		return err
	}
	if err := v.syncLocation(vm); err != nil {
		return err
	}

	log := logging.FromContext(v.baseCtx)
	if err := vm.Set("console", map[string]any{
		"log":   func(msg string) { log.Info().Str("source", "page").Msg(msg) },
		"warn":  func(msg string) { log.Warn().Str("source", "page").Msg(msg) },
		"error": func(msg string) { log.Error().Str("source", "page").Msg(msg) },
	}); err != nil {
		return err
	}

	return vm.Set("shim", map[string]any{
		"version": wireVersion,
		"call":    v.shimCall(vm),
	})
}

// shimCall is shim.call(op, refId, args). It returns the op result, or null
// when the call fails; failures are logged on the host side and never thrown
// into the page.
func (v *View) shimCall(vm *sobek.Runtime) func(call sobek.FunctionCall) sobek.Value {
	return func(call sobek.FunctionCall) sobek.Value {
		req := wireRequest{Version: wireVersion, Op: call.Argument(0).String()}
		if ref := call.Argument(1); !sobek.IsUndefined(ref) && !sobek.IsNull(ref) {
			req.RefID = ref.String()
		}
		if args := call.Argument(2); !sobek.IsUndefined(args) && !sobek.IsNull(args) {
			req.Args = args.Export()
		}

		result, err := v.roundTrip(req)
		if err != nil {
			logging.FromContext(v.baseCtx).Warn().
				Err(err).
				Str("op", req.Op).
				Str("ref_id", req.RefID).
				Msg("bridge call failed")
			return sobek.Null()
		}
		if result == nil {
			return sobek.Null()
		}
		return vm.ToValue(result)
	}
}

func (v *View) roundTrip(req wireRequest) (any, error) {
	if v.dispatch == nil {
		return nil, errors.New("bridge unavailable")
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode bridge request: %w", err)
	}
	raw, err := json.Marshal(v.dispatch(payload))
	if err != nil {
		return nil, fmt.Errorf("encode bridge response: %w", err)
	}
	var resp wireResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode bridge response: %w", err)
	}
	if !resp.OK {
		return nil, errors.New(resp.Error)
	}
	return resp.Result, nil
}

var _ port.WebView = (*View)(nil)
