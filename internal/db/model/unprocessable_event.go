package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const UnprocessableEventCollection = "unprocessable_events"

// UnprocessableEventDocument holds a status-change event that could not be
// published to the queue, so it can be replayed later via the CLI.
type UnprocessableEventDocument struct {
	Id        primitive.ObjectID `bson:"_id,omitempty"`
	EventBody string             `bson:"event_body"`
	StoredAt  int64              `bson:"stored_at"`
}
