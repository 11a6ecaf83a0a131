package streams

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	idspkg "github.com/drblury/mediatorflow/internal/runtime/ids"
	metadatapkg "github.com/drblury/mediatorflow/internal/runtime/metadata"
)

// NewMessage builds a Watermill message with a fresh ULID and the given
// attributes as metadata.
func NewMessage(payload []byte, attrs metadatapkg.Metadata) *message.Message {
	msg := message.NewMessage(idspkg.New(), payload)
	msg.Metadata = metadatapkg.ToWatermill(attrs)
	return msg
}

// FromSubscriber subscribes to topic and exposes the delivery channel as a
// Builder stream of envelopes.
func FromSubscriber(ctx context.Context, sub message.Subscriber, topic string) (*Builder[*message.Message], error) {
	ch, err := sub.Subscribe(ctx, topic)
	if err != nil {
		return nil, err
	}
	return From(ch), nil
}

// Drive pumps a stream of envelopes into a Watermill publisher until the
// stream closes or ctx is cancelled. Callers own acknowledgement; Drive only
// moves envelopes.
func Drive(ctx context.Context, pub message.Publisher, topic string, in <-chan *message.Message) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-in:
			if !ok {
				return nil
			}
			if err := pub.Publish(topic, msg); err != nil {
				return err
			}
		}
	}
}
