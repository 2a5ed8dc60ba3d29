// Package notify delivers fire-and-forget user feedback after persistence
// operations complete. The pure computation layer never calls it.
package notify

import (
	"context"
	"log/slog"
)

// Variant is the feedback severity shown to the user.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// Notifier delivers one feedback message. Implementations must not fail the
// triggering operation: delivery problems are logged and swallowed.
type Notifier interface {
	Notify(ctx context.Context, message string, variant Variant)
}

// LogNotifier writes notifications to the structured log. It is the default
// sink when no message broker is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, message string, variant Variant) {
	switch variant {
	case VariantError:
		slog.ErrorContext(ctx, "Notification", "variant", variant, "message", message)
	case VariantWarning:
		slog.WarnContext(ctx, "Notification", "variant", variant, "message", message)
	default:
		slog.InfoContext(ctx, "Notification", "variant", variant, "message", message)
	}
}
