package services

import (
	"encoding/json"

	"github.com/beemeeupnow/bridge-api-service/internal/queue/client"
)

func marshalEvent(event client.TransferStatusEvent) (string, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
