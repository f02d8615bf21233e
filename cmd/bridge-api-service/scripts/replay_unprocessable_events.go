package scripts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/beemeeupnow/bridge-api-service/internal/db"
	"github.com/beemeeupnow/bridge-api-service/internal/queue"
	"github.com/beemeeupnow/bridge-api-service/internal/queue/client"
)

// ReplayUnprocessableEvents re-publishes every parked status-change event
// and deletes the ones that went through. A replay stops on the first
// failure so nothing is deleted without being published.
func ReplayUnprocessableEvents(ctx context.Context, queues *queue.Queues, db db.DBClient) error {
	unprocessableEvents, err := db.FindUnprocessableEvents(ctx)
	if err != nil {
		return errors.New("failed to retrieve unprocessable events")
	}

	eventCount := len(unprocessableEvents)
	fmt.Printf("There are %d unprocessable events.\n", eventCount)
	if eventCount == 0 {
		return errors.New("no unprocessable events to replay")
	}

	for _, event := range unprocessableEvents {
		// Reject bodies that no longer parse; a malformed event would
		// poison the consumer.
		var statusEvent client.TransferStatusEvent
		if err := json.Unmarshal([]byte(event.EventBody), &statusEvent); err != nil {
			fmt.Printf("Failed to unmarshal event body: %v", err)
			return errors.New("failed to unmarshal event body")
		}

		if err := queues.PublishRaw(ctx, event.EventBody); err != nil {
			return errors.New("failed to publish event")
		}

		if err := db.DeleteUnprocessableEvent(ctx, event.Id); err != nil {
			return errors.New("failed to delete unprocessable event")
		}
	}

	log.Info().Msg("Replay of unprocessable events completed.")
	return nil
}
