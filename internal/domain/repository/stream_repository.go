package repository

import (
	"context"

	"github.com/annotation-microservice/internal/domain"
)

// StreamRepository is the change feed over Redis Streams.
type StreamRepository interface {
	// ConsumeStream reads messages through a consumer group; the channel
	// closes when ctx is cancelled.
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// CreateConsumerGroup creates the group, creating the stream if needed.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream appends a JSON-serialized payload to the stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
