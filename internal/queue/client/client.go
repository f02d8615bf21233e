package client

import "context"

// A common interface for queue clients regardless of the underlying broker.
type QueueClient interface {
	SendMessage(ctx context.Context, messageBody string) error
	Ping() error
	GetQueueName() string
	Stop() error
}

func NewQueueClient(url, user, password, queueName string) (QueueClient, error) {
	return NewRabbitMqClient(url, user, password, queueName)
}
