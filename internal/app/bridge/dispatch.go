package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/logging"
)

var (
	// ErrUnknownOp is reported for ops the bridge does not expose.
	ErrUnknownOp = errors.New("unknown bridge op")
	// ErrUnsupportedVersion is reported for requests from a newer protocol.
	ErrUnsupportedVersion = errors.New("unsupported bridge protocol version")
)

// Request is one page → host call in wire form.
type Request struct {
	Version int             `json:"version,omitempty" jsonschema:"description=Bridge protocol version; 0 means current"`
	Op      string          `json:"op" jsonschema:"required"`
	RefID   string          `json:"refId" jsonschema:"description=RefId of the page load issuing the call"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// Args are the named arguments understood by the ops. Each op reads the
// fields it needs.
type Args struct {
	ScreenPath string   `json:"screenPath,omitempty"`
	State      string   `json:"state,omitempty"`
	InstanceID string   `json:"instanceId,omitempty"`
	AsComplete bool     `json:"asComplete,omitempty"`
	Success    bool     `json:"success,omitempty"`
	Messages   []string `json:"messages,omitempty"`
}

// Response answers a Request. Result is null for void ops, for absent values
// and for dropped calls.
type Response struct {
	OK     bool   `json:"ok"`
	Result any    `json:"result"`
	Error  string `json:"error,omitempty"`
}

type opFunc func(ref entity.RefID, args Args) any

// Dispatcher decodes wire requests and routes them onto a Bridge.
type Dispatcher struct {
	bridge  *Bridge
	baseCtx context.Context
	ops     map[string]opFunc
}

// NewDispatcher creates a dispatcher for b.
func NewDispatcher(ctx context.Context, b *Bridge) *Dispatcher {
	if ctx == nil {
		ctx = context.Background()
	}
	d := &Dispatcher{
		bridge:  b,
		baseCtx: logging.WithComponent(ctx, "bridge-dispatch"),
		ops:     make(map[string]opFunc),
	}
	d.register()
	return d
}

func optional(s string, ok bool) any {
	if !ok {
		return nil
	}
	return s
}

func (d *Dispatcher) register() {
	b := d.bridge
	d.ops["isAttached"] = func(entity.RefID, Args) any { return b.IsAttached() }
	d.ops["frameworkHasLoaded"] = func(r entity.RefID, a Args) any {
		b.FrameworkHasLoaded(r, a.Success, a.Messages)
		return nil
	}
	d.ops["clearAuxiliaryHash"] = func(r entity.RefID, _ Args) any {
		b.ClearAuxiliaryHash(r)
		return nil
	}
	d.ops["getInstanceId"] = func(r entity.RefID, _ Args) any {
		id, ok := b.GetInstanceID(r)
		return optional(id.String(), ok)
	}
	d.ops["setInstanceId"] = func(r entity.RefID, a Args) any {
		b.SetInstanceID(r, entity.InstanceID(a.InstanceID))
		return nil
	}
	d.ops["clearInstanceId"] = func(r entity.RefID, _ Args) any {
		b.ClearInstanceID(r)
		return nil
	}
	d.ops["pushScreenState"] = func(r entity.RefID, a Args) any {
		b.PushScreenState(r, a.ScreenPath, a.State)
		return nil
	}
	d.ops["setScreenState"] = func(r entity.RefID, a Args) any {
		b.SetScreenState(r, a.ScreenPath, a.State)
		return nil
	}
	d.ops["clearScreenHistory"] = func(r entity.RefID, _ Args) any {
		b.ClearScreenHistory(r)
		return nil
	}
	d.ops["hasScreenHistory"] = func(r entity.RefID, _ Args) any { return b.HasScreenHistory(r) }
	d.ops["popScreenHistory"] = func(r entity.RefID, _ Args) any {
		if top := b.PopScreenHistory(r); top != nil {
			return top
		}
		return nil
	}
	d.ops["getScreenPath"] = func(r entity.RefID, _ Args) any { return optional(b.GetScreenPath(r)) }
	d.ops["getControllerState"] = func(r entity.RefID, _ Args) any { return optional(b.GetControllerState(r)) }
	d.ops["pushSectionState"] = func(r entity.RefID, a Args) any {
		b.PushSectionState(r, a.ScreenPath, a.State)
		return nil
	}
	d.ops["setSectionState"] = func(r entity.RefID, a Args) any {
		b.SetSectionState(r, a.ScreenPath, a.State)
		return nil
	}
	d.ops["clearSectionStack"] = func(r entity.RefID, _ Args) any {
		b.ClearSectionStack(r)
		return nil
	}
	d.ops["hasSectionStack"] = func(r entity.RefID, _ Args) any { return b.HasSectionStack(r) }
	d.ops["popSectionStack"] = func(r entity.RefID, _ Args) any {
		if top := b.PopSectionStack(r); top != nil {
			return top
		}
		return nil
	}
	d.ops["saveAllChangesCompleted"] = func(r entity.RefID, a Args) any {
		b.SaveAllChangesCompleted(r, entity.InstanceID(a.InstanceID), a.AsComplete)
		return nil
	}
	d.ops["saveAllChangesFailed"] = func(r entity.RefID, a Args) any {
		b.SaveAllChangesFailed(r, entity.InstanceID(a.InstanceID))
		return nil
	}
	d.ops["ignoreAllChangesCompleted"] = func(r entity.RefID, a Args) any {
		b.IgnoreAllChangesCompleted(r, entity.InstanceID(a.InstanceID))
		return nil
	}
	d.ops["ignoreAllChangesFailed"] = func(r entity.RefID, a Args) any {
		b.IgnoreAllChangesFailed(r, entity.InstanceID(a.InstanceID))
		return nil
	}
}

// Ops returns the exposed op names, sorted.
func (d *Dispatcher) Ops() []string {
	names := make([]string, 0, len(d.ops))
	for name := range d.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Handle decodes payload and runs the call. Malformed input produces an
// error response; nothing is returned as a Go error because the caller is a
// script runtime that cannot receive one.
func (d *Dispatcher) Handle(payload []byte) Response {
	var req Request
	if err := json.Unmarshal(payload, &req); err != nil {
		logging.FromContext(d.baseCtx).Warn().Err(err).Msg("failed to unmarshal bridge request")
		return Response{Error: fmt.Sprintf("malformed request: %v", err)}
	}
	return d.Dispatch(req)
}

// Dispatch runs a decoded call.
func (d *Dispatcher) Dispatch(req Request) (resp Response) {
	log := logging.FromContext(d.baseCtx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("op", req.Op).Interface("panic", r).Msg("bridge op panicked")
			resp = Response{Error: fmt.Sprintf("op %q failed", req.Op)}
		}
	}()

	if req.Version > ProtocolVersion {
		log.Warn().Int("version", req.Version).Str("op", req.Op).Msg("rejecting bridge request")
		return Response{Error: fmt.Errorf("%w: %d", ErrUnsupportedVersion, req.Version).Error()}
	}

	op, ok := d.ops[req.Op]
	if !ok {
		log.Warn().Str("op", req.Op).Msg("unknown bridge op")
		return Response{Error: fmt.Errorf("%w: %q", ErrUnknownOp, req.Op).Error()}
	}

	var args Args
	if len(req.Args) > 0 && string(req.Args) != "null" {
		if err := json.Unmarshal(req.Args, &args); err != nil {
			log.Warn().Err(err).Str("op", req.Op).Msg("failed to unmarshal bridge args")
			return Response{Error: fmt.Sprintf("malformed args for %q: %v", req.Op, err)}
		}
	}

	return Response{OK: true, Result: op(entity.RefID(req.RefID), args)}
}
