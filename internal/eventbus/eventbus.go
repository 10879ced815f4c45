// Package eventbus implements the engine's event bus on NATS JetStream via
// watermill. Handlers tag follow-up messages with a destination topic in
// metadata; the bus routes them when the router hands them over with an
// empty publish topic.
package eventbus

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"

	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// EventBus is both a watermill publisher and subscriber backed by JetStream.
type EventBus interface {
	message.Publisher
	message.Subscriber
}

type jetStreamBus struct {
	logger     watermill.LoggerAdapter
	publisher  *wmnats.Publisher
	subscriber *wmnats.Subscriber
}

var _ EventBus = (*jetStreamBus)(nil)

// NewJetStreamBus connects to NATS and builds the publisher/subscriber pair.
func NewJetStreamBus(natsURL string, logger watermill.LoggerAdapter) (EventBus, error) {
	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.MaxReconnects(-1),
		nc.Timeout(30 * time.Second),
		nc.ReconnectWait(1 * time.Second),
		nc.ErrorHandler(func(_ *nc.Conn, s *nc.Subscription, err error) {
			if s != nil {
				logger.Error("Error in subscription", err, watermill.LogFields{
					"subject": s.Subject,
					"queue":   s.Queue,
				})
			} else {
				logger.Error("Error in connection", err, nil)
			}
		}),
	}

	jsConfig := wmnats.JetStreamConfig{
		Disabled:      false,
		AutoProvision: true,
	}

	publisher, err := wmnats.NewPublisher(
		wmnats.PublisherConfig{
			URL:         natsURL,
			NatsOptions: options,
			Marshaler:   &wmnats.NATSMarshaler{},
			JetStream:   jsConfig,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	subscriber, err := wmnats.NewSubscriber(
		wmnats.SubscriberConfig{
			URL:         natsURL,
			NatsOptions: options,
			Unmarshaler: &wmnats.NATSMarshaler{},
			JetStream:   jsConfig,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	return &jetStreamBus{
		logger:     logger,
		publisher:  publisher,
		subscriber: subscriber,
	}, nil
}

// Publish sends messages to topic. With an empty topic each message is
// routed to the topic named in its metadata, which is how handler follow-up
// messages reach their per-message destinations.
func (b *jetStreamBus) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		destination := topic
		if destination == "" {
			destination = msg.Metadata.Get(utils.TopicMetadataKey)
		}
		if destination == "" {
			return fmt.Errorf("message %s has no destination topic", msg.UUID)
		}
		if err := b.publisher.Publish(destination, msg); err != nil {
			return fmt.Errorf("failed to publish message %s to %s: %w", msg.UUID, destination, err)
		}
	}
	return nil
}

func (b *jetStreamBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.subscriber.Subscribe(ctx, topic)
}

func (b *jetStreamBus) Close() error {
	if err := b.publisher.Close(); err != nil {
		return fmt.Errorf("failed to close publisher: %w", err)
	}
	return b.subscriber.Close()
}
