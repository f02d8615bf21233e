package config

import (
	"fmt"
)

type QueueConfig struct {
	Url                     string `mapstructure:"url"`
	User                    string `mapstructure:"user"`
	Password                string `mapstructure:"password"`
	TransferEventsQueueName string `mapstructure:"transfer-events-queue-name"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.Url == "" {
		return fmt.Errorf("missing queue url")
	}

	if cfg.TransferEventsQueueName == "" {
		return fmt.Errorf("missing transfer events queue name")
	}
	return nil
}
