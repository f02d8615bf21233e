package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/beemeeupnow/bridge-api-service/internal/config"
	"github.com/beemeeupnow/bridge-api-service/internal/queue/client"
	"github.com/beemeeupnow/bridge-api-service/internal/utils"
)

const (
	publishMaxAttempts    = 3
	publishInitialBackoff = 100 * time.Millisecond
)

// Publisher is the status-change notification point. Implemented by
// Queues; mocked in tests.
type Publisher interface {
	PublishTransferEvent(ctx context.Context, event client.TransferStatusEvent) error
}

type Queues struct {
	TransferEventsQueueClient client.QueueClient
}

func New(cfg *config.QueueConfig) (*Queues, error) {
	transferEventsQueueClient, err := client.NewQueueClient(
		cfg.Url, cfg.User, cfg.Password, cfg.TransferEventsQueueName,
	)
	if err != nil {
		return nil, err
	}
	return &Queues{
		TransferEventsQueueClient: transferEventsQueueClient,
	}, nil
}

// PublishTransferEvent emits one status-change event, retrying transient
// publish failures with backoff before giving up.
func (q *Queues) PublishTransferEvent(ctx context.Context, event client.TransferStatusEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	backoff := publishInitialBackoff
	for attempt := 1; ; attempt++ {
		err = q.TransferEventsQueueClient.SendMessage(ctx, string(body))
		if err == nil {
			return nil
		}
		if attempt == publishMaxAttempts {
			return err
		}
		log.Ctx(ctx).Warn().Err(err).
			Str("queueName", q.TransferEventsQueueClient.GetQueueName()).
			Int("attempt", attempt).
			Msg("failed to publish transfer event, retrying")
		utils.Sleep(backoff)
		backoff *= 2
	}
}

// PublishRaw re-publishes an already marshalled event body. Used by the
// unprocessable event replay command.
func (q *Queues) PublishRaw(ctx context.Context, body string) error {
	return q.TransferEventsQueueClient.SendMessage(ctx, body)
}

func (q *Queues) IsConnectionHealthy() error {
	return q.TransferEventsQueueClient.Ping()
}

func (q *Queues) Stop() {
	if err := q.TransferEventsQueueClient.Stop(); err != nil {
		log.Error().Err(err).Msg("error while stopping transfer events queue client")
	}
}
