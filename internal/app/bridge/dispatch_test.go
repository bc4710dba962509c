package bridge

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/formbridge/internal/domain/entity"
)

func call(t *testing.T, d *Dispatcher, payload string) Response {
	t.Helper()
	resp := d.Handle([]byte(payload))
	// round-trip through JSON the way the page sees it
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var out Response
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestDispatcher_RoundTrip(t *testing.T) {
	b, sink, _ := newTestBridge(t)
	d := NewDispatcher(context.Background(), b)
	r := string(b.Session().Renew())

	resp := call(t, d, `{"op":"pushScreenState","refId":"`+r+`","args":{"screenPath":"/section1","state":"{}"}}`)
	require.True(t, resp.OK)
	assert.Nil(t, resp.Result)

	resp = call(t, d, `{"op":"hasScreenHistory","refId":"`+r+`"}`)
	require.True(t, resp.OK)
	assert.Equal(t, true, resp.Result)

	resp = call(t, d, `{"op":"getScreenPath","refId":"`+r+`"}`)
	assert.Equal(t, "/section1", resp.Result)

	resp = call(t, d, `{"op":"popScreenHistory","refId":"`+r+`"}`)
	require.True(t, resp.OK)
	assert.Equal(t, map[string]any{"screenPath": "/section1", "state": "{}"}, resp.Result)

	resp = call(t, d, `{"op":"popScreenHistory","refId":"`+r+`"}`)
	require.True(t, resp.OK)
	assert.Nil(t, resp.Result)

	resp = call(t, d, `{"op":"getInstanceId","refId":"`+r+`"}`)
	assert.Nil(t, resp.Result)
	call(t, d, `{"op":"setInstanceId","refId":"`+r+`","args":{"instanceId":"uuid-1"}}`)
	resp = call(t, d, `{"op":"getInstanceId","refId":"`+r+`"}`)
	assert.Equal(t, "uuid-1", resp.Result)

	call(t, d, `{"version":1,"op":"saveAllChangesCompleted","refId":"`+r+`","args":{"instanceId":"uuid-1","asComplete":true}}`)
	require.Len(t, sink.all(), 1)
	assert.Equal(t, entity.InstanceID("uuid-1"), sink.all()[0].InstanceID)
}

func TestDispatcher_StaleCallReturnsInactiveResult(t *testing.T) {
	b, _, _ := newTestBridge(t)
	d := NewDispatcher(context.Background(), b)
	stale := string(b.Session().Renew())
	b.Session().Renew()

	resp := call(t, d, `{"op":"hasScreenHistory","refId":"`+stale+`"}`)
	require.True(t, resp.OK)
	assert.Equal(t, false, resp.Result)

	resp = call(t, d, `{"op":"getInstanceId","refId":"`+stale+`"}`)
	require.True(t, resp.OK)
	assert.Nil(t, resp.Result)
}

func TestDispatcher_Errors(t *testing.T) {
	b, _, _ := newTestBridge(t)
	d := NewDispatcher(context.Background(), b)

	resp := call(t, d, `not json`)
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "malformed request")

	resp = call(t, d, `{"op":"launchRockets","refId":"x"}`)
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, ErrUnknownOp.Error())

	resp = call(t, d, `{"version":99,"op":"isAttached"}`)
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, ErrUnsupportedVersion.Error())

	resp = call(t, d, `{"op":"pushScreenState","refId":"x","args":[1,2]}`)
	assert.False(t, resp.OK)

	resp = call(t, d, `{"op":"isAttached"}`)
	assert.True(t, resp.OK)
	assert.Equal(t, true, resp.Result)
}

func TestDispatcher_OpsCoverBridge(t *testing.T) {
	b, _, _ := newTestBridge(t)
	d := NewDispatcher(context.Background(), b)
	ops := d.Ops()
	for _, name := range []string{
		"frameworkHasLoaded", "clearAuxiliaryHash", "getInstanceId", "setInstanceId",
		"pushScreenState", "setScreenState", "clearScreenHistory", "hasScreenHistory",
		"popScreenHistory", "pushSectionState", "hasSectionStack", "popSectionStack",
		"saveAllChangesCompleted", "saveAllChangesFailed", "ignoreAllChangesCompleted",
		"ignoreAllChangesFailed",
	} {
		assert.Contains(t, ops, name)
	}
}

func TestSchema(t *testing.T) {
	s := Schema()
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"refId"`)
	assert.Contains(t, string(raw), `"screenPath"`)
}
