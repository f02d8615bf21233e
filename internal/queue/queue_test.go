package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/beemeeupnow/bridge-api-service/internal/queue/client"
	"github.com/beemeeupnow/bridge-api-service/internal/utils"
	testmock "github.com/beemeeupnow/bridge-api-service/tests/mocks"
)

func testEvent() client.TransferStatusEvent {
	return client.NewTransferStatusEvent(
		"0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599",
		100, 56, "REDEEMABLE", "",
	)
}

func TestPublishTransferEventRetriesTransientFailures(t *testing.T) {
	utils.SetSleepFunc(func(time.Duration) {})
	defer utils.ResetSleepFunc()

	mockClient := &testmock.QueueClient{}
	mockClient.On("GetQueueName").Return(client.TransferEventsQueueName)
	mockClient.On("SendMessage", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Twice()
	mockClient.On("SendMessage", mock.Anything, mock.Anything).Return(nil).Once()

	q := &Queues{TransferEventsQueueClient: mockClient}

	err := q.PublishTransferEvent(context.Background(), testEvent())
	assert.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "SendMessage", 3)
}

func TestPublishTransferEventGivesUp(t *testing.T) {
	utils.SetSleepFunc(func(time.Duration) {})
	defer utils.ResetSleepFunc()

	mockClient := &testmock.QueueClient{}
	mockClient.On("GetQueueName").Return(client.TransferEventsQueueName)
	mockClient.On("SendMessage", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	q := &Queues{TransferEventsQueueClient: mockClient}

	err := q.PublishTransferEvent(context.Background(), testEvent())
	assert.Error(t, err)
	mockClient.AssertNumberOfCalls(t, "SendMessage", 3)
}

func TestPublishRawSendsVerbatim(t *testing.T) {
	mockClient := &testmock.QueueClient{}
	mockClient.On("SendMessage", mock.Anything, `{"event_type":1}`).Return(nil).Once()

	q := &Queues{TransferEventsQueueClient: mockClient}
	assert.NoError(t, q.PublishRaw(context.Background(), `{"event_type":1}`))
	mockClient.AssertExpectations(t)
}

func TestIsConnectionHealthy(t *testing.T) {
	mockClient := &testmock.QueueClient{}
	mockClient.On("Ping").Return(nil).Once()

	q := &Queues{TransferEventsQueueClient: mockClient}
	assert.NoError(t, q.IsConnectionHealthy())

	mockClient.On("Ping").Return(errors.New("channel closed")).Once()
	assert.Error(t, q.IsConnectionHealthy())
}
