// Package utils holds watermill message helpers shared by every module's
// handlers and routers.
package utils

import (
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"
)

// TopicMetadataKey tags a handler's follow-up message with its destination
// topic. The routing publisher reads it back when the router hands the
// message over with an empty publish topic.
const TopicMetadataKey = "topic"

// Helpers builds and unmarshals the JSON messages flowing between modules.
type Helpers interface {
	CreateResultMessage(original *message.Message, payload any, topic string) (*message.Message, error)
	CreateNewMessage(payload any, topic string) (*message.Message, error)
	UnmarshalPayload(msg *message.Message, out any) error
}

type messageHelpers struct{}

// NewHelpers returns the default JSON-based helpers.
func NewHelpers() Helpers {
	return messageHelpers{}
}

// CreateResultMessage marshals payload into a new message destined for
// topic, propagating the correlation ID from the original message.
func (messageHelpers) CreateResultMessage(original *message.Message, payload any, topic string) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload for topic %s: %w", topic, err)
	}

	msg := message.NewMessage(uuid.NewString(), data)
	msg.Metadata.Set(TopicMetadataKey, topic)
	if original != nil {
		middleware.SetCorrelationID(middleware.MessageCorrelationID(original), msg)
	}
	return msg, nil
}

// CreateNewMessage marshals payload into a message with a fresh correlation ID.
func (h messageHelpers) CreateNewMessage(payload any, topic string) (*message.Message, error) {
	msg, err := h.CreateResultMessage(nil, payload, topic)
	if err != nil {
		return nil, err
	}
	middleware.SetCorrelationID(uuid.NewString(), msg)
	return msg, nil
}

// UnmarshalPayload decodes a message body into out.
func (messageHelpers) UnmarshalPayload(msg *message.Message, out any) error {
	if err := json.Unmarshal(msg.Payload, out); err != nil {
		return fmt.Errorf("failed to unmarshal message %s: %w", msg.UUID, err)
	}
	return nil
}
