package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/formbridge/internal/domain/entity"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
}

func TestContextHelpersAddFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})
	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "bridge")
	ctx = WithRefID(ctx, entity.RefID("r-1"))

	FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"bridge"`)
	assert.Contains(t, out, `"ref_id":"r-1"`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestWithFormAndInstance(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})
	ctx := WithContext(context.Background(), logger)

	ref := entity.FormReference{AppName: "survey", TableID: "households", FormID: "intake"}
	ctx = WithForm(ctx, ref)
	ctx = WithInstance(ctx, entity.NoInstance)
	FromContext(ctx).Info().Msg("unversioned")

	out := buf.String()
	assert.Contains(t, out, `"form":"`+ref.String()+`"`)
	assert.Contains(t, out, `"table_id":"households"`)
	assert.NotContains(t, out, "form_version")
	assert.NotContains(t, out, "instance_id")

	buf.Reset()
	ref.Version = "v2"
	ctx = WithInstance(WithForm(WithContext(context.Background(), logger), ref), "uuid-1")
	FromContext(WithNavigation(ctx, "R2", "file:///forms/index.html")).Info().Msg("versioned")

	out = buf.String()
	assert.Contains(t, out, `"form_version":"v2"`)
	assert.Contains(t, out, `"instance_id":"uuid-1"`)
	assert.Contains(t, out, `"ref_id":"R2"`)
	assert.Contains(t, out, `"url":"file:///forms/index.html"`)
}

func TestFromContextWithoutLoggerIsDisabled(t *testing.T) {
	l := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}
