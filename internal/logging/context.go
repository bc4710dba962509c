package logging

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/formbridge/internal/domain/entity"
)

// FromContext returns the context logger, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

func withFields(ctx context.Context, fields func(zerolog.Context) zerolog.Context) context.Context {
	child := fields(FromContext(ctx).With()).Logger()
	return WithContext(ctx, child)
}

func WithComponent(ctx context.Context, component string) context.Context {
	return withFields(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// WithTask tags background task logs.
func WithTask(ctx context.Context, name string) context.Context {
	return withFields(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("task", name)
	})
}

// WithForm tags logs with the form reference. The version field is left out
// for unversioned forms.
func WithForm(ctx context.Context, ref entity.FormReference) context.Context {
	return withFields(ctx, func(c zerolog.Context) zerolog.Context {
		c = c.Str("form", ref.String()).Str("table_id", ref.TableID).Str("form_id", ref.FormID)
		if ref.Version != "" {
			c = c.Str("form_version", ref.Version)
		}
		return c
	})
}

// WithRefID tags logs with the page generation a bridge call or outcome
// belongs to.
func WithRefID(ctx context.Context, ref entity.RefID) context.Context {
	return withFields(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("ref_id", ref.String())
	})
}

// WithInstance tags logs with the bound row. Unbound instances add nothing.
func WithInstance(ctx context.Context, id entity.InstanceID) context.Context {
	if !id.IsBound() {
		return ctx
	}
	return withFields(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("instance_id", id.String())
	})
}

// WithNavigation tags logs of a full navigation with the new page
// generation and the base URL being loaded.
func WithNavigation(ctx context.Context, ref entity.RefID, baseURL string) context.Context {
	return withFields(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("ref_id", ref.String()).Str("url", baseURL)
	})
}
