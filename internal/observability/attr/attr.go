// Package attr provides slog attribute helpers shared across modules.
package attr

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

type contextKey string

// CorrelationIDContextKey is the context key under which the message
// correlation ID is stashed by the router middleware.
const CorrelationIDContextKey contextKey = "correlation_id"

func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

func Int(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

func Float64(key string, value float64) slog.Attr {
	return slog.Float64(key, value)
}

func Bool(key string, value bool) slog.Attr {
	return slog.Bool(key, value)
}

func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// UserID logs a player identifier under a stable key.
func UserID(value string) slog.Attr {
	return slog.String("user_id", value)
}

// CourseID logs a course identifier under a stable key.
func CourseID(value string) slog.Attr {
	return slog.String("course_id", value)
}

// RegionKey logs a leaderboard region partition key.
func RegionKey(value string) slog.Attr {
	return slog.String("region_key", value)
}

// EventID logs the stable score-event identifier used for idempotency.
func EventID(value string) slog.Attr {
	return slog.String("event_id", value)
}

// CorrelationIDFromMsg extracts the watermill correlation ID from message
// metadata for logging.
func CorrelationIDFromMsg(msg *message.Message) slog.Attr {
	return slog.String("correlation_id", middleware.MessageCorrelationID(msg))
}

// ExtractCorrelationID pulls the correlation ID previously stashed in the
// context by the router middleware. Returns an empty attribute when absent.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	if v, ok := ctx.Value(CorrelationIDContextKey).(string); ok {
		return slog.String("correlation_id", v)
	}
	return slog.String("correlation_id", "")
}

// WithCorrelationID stores the correlation ID in the context so service and
// repository layers can log it without holding the message.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, CorrelationIDContextKey, correlationID)
}
