package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"descya/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub" // registers the mem:// scheme
)

// memPublisher implements EventPublisher over a Go CDK pubsub topic. With
// the mem driver it is an in-process broker, useful for development and for
// wiring dashboard consumers without external infrastructure.
type memPublisher struct {
	topic  *pubsub.Topic
	logger *slog.Logger
}

// NewMemPublisher opens the in-process topic and returns a publisher on it.
func NewMemPublisher(ctx context.Context, topicName string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := pubsub.OpenTopic(ctx, "mem://"+topicName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicName)
	}

	logger.Info("In-process Pub/Sub publisher initialized", slog.String("topic", topicName))

	return &memPublisher{topic: topic, logger: logger}, nil
}

// PublishLifecycleEvent publishes a lifecycle event for async processing.
func (p *memPublisher) PublishLifecycleEvent(ctx context.Context, event *service.LifecycleEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	metadata := map[string]string{"kind": event.Kind}
	if event.DealID != "" {
		metadata["deal_id"] = event.DealID
	}
	if event.CouponID != "" {
		metadata["coupon_id"] = event.CouponID
	}

	if err := p.topic.Send(ctx, &pubsub.Message{Body: body, Metadata: metadata}); err != nil {
		return errors.Wrap(err, "failed to send lifecycle event")
	}

	p.logger.Debug("Lifecycle event published", slog.String("kind", event.Kind))

	return nil
}

// Close shuts the topic down, flushing pending sends.
func (p *memPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return p.topic.Shutdown(ctx)
}
