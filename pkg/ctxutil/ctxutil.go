// Package ctxutil carries per-command values through context.Context so
// services can tag their log lines with the command that triggered them.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	commandIDKey   ctxKey = "command_id"
	commandNameKey ctxKey = "command"
)

// WithCommandID stores the command ID in the context.
func WithCommandID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, commandIDKey, id)
}

// CommandIDFromCtx extracts the command ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func CommandIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(commandIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithCommandName stores the command name in the context.
func WithCommandName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandNameKey, name)
}

// CommandNameFromCtx extracts the command name from the context.
// Returns an empty string if absent.
func CommandNameFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(commandNameKey).(string)
	return name
}

// LogAttrs prepends the command ID and name found in ctx to args, so the
// result can be passed straight to a slog call. Missing values are skipped.
func LogAttrs(ctx context.Context, args ...any) []any {
	attrs := make([]any, 0, len(args)+4)
	if id, ok := CommandIDFromCtx(ctx); ok {
		attrs = append(attrs, "command_id", id.String())
	}
	if name := CommandNameFromCtx(ctx); name != "" {
		attrs = append(attrs, "command", name)
	}
	return append(attrs, args...)
}
