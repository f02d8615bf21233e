package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beemeeupnow/bridge-api-service/internal/db/model"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

// SaveTransfer inserts a freshly submitted transfer. It returns a
// DuplicateKeyError when a transfer with the same source tx hash is
// already present; the existing record is left untouched.
func (db *Database) SaveTransfer(ctx context.Context, transfer *model.TransferDocument) error {
	client := db.Client.Database(db.DbName).Collection(model.TransferCollection)
	_, err := client.InsertOne(ctx, transfer)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     transfer.SourceTxHash,
						Message: "transfer already exists",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) FindTransferByTxHash(ctx context.Context, sourceTxHash string) (*model.TransferDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.TransferCollection)
	filter := bson.M{"_id": sourceTxHash}
	var transfer model.TransferDocument
	err := client.FindOne(ctx, filter).Decode(&transfer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     sourceTxHash,
				Message: "transfer not found",
			}
		}
		return nil, err
	}
	return &transfer, nil
}

// FindTransfersByOwner returns all transfers initiated by the given wallet,
// most recently submitted first.
func (db *Database) FindTransfersByOwner(ctx context.Context, ownerAddress string) ([]model.TransferDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.TransferCollection)

	filter := bson.M{"owner_address": ownerAddress}
	opts := options.Find().SetSort(bson.D{
		{Key: "submitted_at", Value: -1},
		{Key: "_id", Value: 1},
	})

	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var transfers []model.TransferDocument
	if err = cursor.All(ctx, &transfers); err != nil {
		return nil, err
	}
	return transfers, nil
}

// FindNonTerminalTransfers returns every transfer the reconciler still has
// to poll. Confirmed and failed transfers never match, so a terminal id
// falls out of the polling set permanently.
func (db *Database) FindNonTerminalTransfers(ctx context.Context, statuses []types.TransferStatus) ([]model.TransferDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.TransferCollection)

	filter := bson.M{"status": bson.M{"$in": statuses}}
	cursor, err := client.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var transfers []model.TransferDocument
	if err = cursor.All(ctx, &transfers); err != nil {
		return nil, err
	}
	return transfers, nil
}

// TransitionState advances a transfer to newStatus if and only if its
// current status is one of eligiblePreviousStates. The filtered UpdateOne
// is atomic, which makes this the single serialization point between the
// orchestrator and the reconciler: concurrent writers cannot interleave an
// edge the lifecycle graph does not have. Extra fields to set alongside
// the status (destination tx hash, resolved timestamp, cleared pending
// reason) are passed through additionalFields.
func (db *Database) TransitionState(
	ctx context.Context, sourceTxHash string, newStatus types.TransferStatus,
	eligiblePreviousStates []types.TransferStatus, additionalFields map[string]interface{},
) error {
	client := db.Client.Database(db.DbName).Collection(model.TransferCollection)

	filter := bson.M{"_id": sourceTxHash, "status": bson.M{"$in": eligiblePreviousStates}}
	set := bson.M{"status": newStatus}
	for k, v := range additionalFields {
		set[k] = v
	}
	update := bson.M{"$set": set}
	if newStatus != types.Pending {
		// The pending reason only describes a PENDING transfer.
		update["$unset"] = bson.M{"pending_reason": ""}
	}

	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing transfer from an ineligible one.
		existing, findErr := db.FindTransferByTxHash(ctx, sourceTxHash)
		if findErr != nil {
			return findErr
		}
		return &InvalidTransitionError{
			Key:  sourceTxHash,
			From: existing.Status,
			To:   newStatus,
		}
	}
	return nil
}

// SaveUnprocessableEvent stores a status event that failed to publish so
// the replay command can retry it later.
func (db *Database) SaveUnprocessableEvent(ctx context.Context, eventBody string, storedAt int64) error {
	client := db.Client.Database(db.DbName).Collection(model.UnprocessableEventCollection)
	_, err := client.InsertOne(ctx, model.UnprocessableEventDocument{
		EventBody: eventBody,
		StoredAt:  storedAt,
	})
	return err
}

func (db *Database) FindUnprocessableEvents(ctx context.Context) ([]model.UnprocessableEventDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.UnprocessableEventCollection)
	cursor, err := client.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []model.UnprocessableEventDocument
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (db *Database) DeleteUnprocessableEvent(ctx context.Context, id interface{}) error {
	client := db.Client.Database(db.DbName).Collection(model.UnprocessableEventCollection)
	_, err := client.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
