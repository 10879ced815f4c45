// Package handlerwrapper adapts typed event handlers into watermill
// handler functions, with payload decoding, tracing, and correlation-ID
// propagation applied uniformly.
package handlerwrapper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fairway-links-club/greens-engine/internal/observability/attr"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// Result is a follow-up message produced by a typed handler: a payload bound
// for a topic. The wrapper turns results into watermill messages carrying the
// originating message's correlation ID.
type Result struct {
	Topic   string
	Payload any
}

// WrapTyped decodes the incoming payload into T and invokes handler. A
// decoding failure is permanent: it is logged and the message is dropped
// (nil, nil) rather than redelivered forever.
func WrapTyped[T any](
	handlerName string,
	logger *slog.Logger,
	tracer trace.Tracer,
	helpers utils.Helpers,
	handler func(ctx context.Context, payload *T) ([]Result, error),
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx, span := tracer.Start(msg.Context(), handlerName, trace.WithAttributes(
			attribute.String("handler", handlerName),
			attribute.String("message_uuid", msg.UUID),
		))
		defer span.End()

		ctx = attr.WithCorrelationID(ctx, middleware.MessageCorrelationID(msg))

		payload := new(T)
		if err := helpers.UnmarshalPayload(msg, payload); err != nil {
			logger.ErrorContext(ctx, "Dropping undecodable message",
				attr.String("handler", handlerName),
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			span.RecordError(err)
			return nil, nil
		}

		results, err := handler(ctx, payload)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("%s: %w", handlerName, err)
		}

		out := make([]*message.Message, 0, len(results))
		for _, res := range results {
			resultMsg, err := helpers.CreateResultMessage(msg, res.Payload, res.Topic)
			if err != nil {
				span.RecordError(err)
				return nil, fmt.Errorf("%s: failed to create result message: %w", handlerName, err)
			}
			out = append(out, resultMsg)
		}
		return out, nil
	}
}
