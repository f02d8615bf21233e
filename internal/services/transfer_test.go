package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/beemeeupnow/bridge-api-service/internal/db"
	"github.com/beemeeupnow/bridge-api-service/internal/db/model"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
	testmock "github.com/beemeeupnow/bridge-api-service/tests/mocks"
)

func validSubmitRequest() *SubmitTransferRequest {
	return &SubmitTransferRequest{
		OwnerAddress:  testOwner,
		ActiveChainId: testSourceChainId,
		FromChainId:   testSourceChainId,
		ToChainId:     testDestChainId,
		AssetName:     "BGL",
		AssetDecimals: 18,
		Value:         "1000000000000000000",
	}
}

func TestSubmitTransferValidation(t *testing.T) {
	s := testServices(&testmock.DBClient{}, testRegistry(&testmock.StatusProvider{}, &testmock.StatusProvider{}), &testmock.Publisher{})

	cases := []struct {
		name   string
		mutate func(*SubmitTransferRequest)
	}{
		{"invalid owner", func(r *SubmitTransferRequest) { r.OwnerAddress = "not-an-address" }},
		{"zero value", func(r *SubmitTransferRequest) { r.Value = "0" }},
		{"fractional value", func(r *SubmitTransferRequest) { r.Value = "1.5" }},
		{"same chain", func(r *SubmitTransferRequest) { r.ToChainId = r.FromChainId; r.ActiveChainId = r.FromChainId }},
		{"unknown pair", func(r *SubmitTransferRequest) { r.ToChainId = 9999 }},
		{"bad asset address", func(r *SubmitTransferRequest) { r.AssetAddress = "0x123" }},
		{"missing asset name", func(r *SubmitTransferRequest) { r.AssetName = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmitRequest()
			tc.mutate(req)
			result, err := s.SubmitTransfer(context.Background(), req)
			assert.Nil(t, result)
			assert.NotNil(t, err)
			assert.Equal(t, types.ValidationError, err.ErrorCode)
			assert.Equal(t, http.StatusBadRequest, err.StatusCode)
		})
	}

	// Step machine untouched by rejected submissions.
	step, _ := s.CurrentStep()
	assert.Equal(t, types.StepInitial, step)
}

func TestSubmitTransferNetworkMismatch(t *testing.T) {
	s := testServices(&testmock.DBClient{}, testRegistry(&testmock.StatusProvider{}, &testmock.StatusProvider{}), &testmock.Publisher{})

	req := validSubmitRequest()
	req.ActiveChainId = testDestChainId

	result, err := s.SubmitTransfer(context.Background(), req)
	assert.Nil(t, result)
	assert.NotNil(t, err)
	assert.Equal(t, types.NetworkMismatch, err.ErrorCode)
	assert.Equal(t, http.StatusConflict, err.StatusCode)

	step, _ := s.CurrentStep()
	assert.Equal(t, types.StepInitial, step)
}

func TestSubmitTransferBroadcastFailure(t *testing.T) {
	sourceProvider := &testmock.StatusProvider{}
	sourceProvider.On("BroadcastTransfer", mock.Anything, mock.Anything).Return("", errors.New("insufficient funds"))

	mockDB := &testmock.DBClient{}
	s := testServices(mockDB, testRegistry(sourceProvider, &testmock.StatusProvider{}), &testmock.Publisher{})

	result, err := s.SubmitTransfer(context.Background(), validSubmitRequest())
	assert.Nil(t, result)
	assert.NotNil(t, err)
	assert.Equal(t, types.BroadcastFailed, err.ErrorCode)
	assert.Contains(t, err.Err.Error(), "insufficient funds")

	// Nothing stored, step rolled back.
	mockDB.AssertNotCalled(t, "SaveTransfer", mock.Anything, mock.Anything)
	step, _ := s.CurrentStep()
	assert.Equal(t, types.StepInitial, step)
}

func TestSubmitTransferDuplicate(t *testing.T) {
	sourceProvider := &testmock.StatusProvider{}
	sourceProvider.On("BroadcastTransfer", mock.Anything, mock.Anything).Return(testSourceHash, nil)

	mockDB := &testmock.DBClient{}
	mockDB.On("SaveTransfer", mock.Anything, mock.Anything).Return(&db.DuplicateKeyError{Key: testSourceHash, Message: "transfer already exists"})

	s := testServices(mockDB, testRegistry(sourceProvider, &testmock.StatusProvider{}), &testmock.Publisher{})

	result, err := s.SubmitTransfer(context.Background(), validSubmitRequest())
	assert.Nil(t, result)
	assert.NotNil(t, err)
	assert.Equal(t, types.Duplicate, err.ErrorCode)
	assert.Equal(t, http.StatusConflict, err.StatusCode)
}

func TestSubmitTransferHappyPath(t *testing.T) {
	sourceProvider := &testmock.StatusProvider{}
	sourceProvider.On("BroadcastTransfer", mock.Anything, mock.Anything).Return(testSourceHash, nil)

	var saved *model.TransferDocument
	mockDB := &testmock.DBClient{}
	mockDB.On("SaveTransfer", mock.Anything, mock.MatchedBy(func(d *model.TransferDocument) bool {
		saved = d
		return d.SourceTxHash == testSourceHash && d.Status == types.Pending
	})).Return(nil)

	publisher := &testmock.Publisher{}
	publisher.On("PublishTransferEvent", mock.Anything, mock.Anything).Return(nil)

	s := testServices(mockDB, testRegistry(sourceProvider, &testmock.StatusProvider{}), publisher)

	result, err := s.SubmitTransfer(context.Background(), validSubmitRequest())
	assert.Nil(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, testSourceHash, result.SourceTxHash)
	assert.Equal(t, types.Pending.ToString(), result.Status)
	assert.Equal(t, "BGL Network", result.FromNetwork)
	assert.Equal(t, "BNB Smart Chain", result.ToNetwork)
	assert.Equal(t, "awaiting confirmations", result.PendingReason)

	assert.NotNil(t, saved)
	assert.Greater(t, saved.SubmittedAt, int64(0))

	step, _ := s.CurrentStep()
	assert.Equal(t, types.StepPendingConfirm, step)
	publisher.AssertCalled(t, "PublishTransferEvent", mock.Anything, mock.Anything)
}

func TestTransfersByOwnerInvalidAddress(t *testing.T) {
	s := testServices(&testmock.DBClient{}, testRegistry(&testmock.StatusProvider{}, &testmock.StatusProvider{}), &testmock.Publisher{})

	_, err := s.TransfersByOwner(context.Background(), "bogus", 0)
	assert.NotNil(t, err)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
}

func TestTransfersByOwnerWindow(t *testing.T) {
	oldResolved := *redeemableTransfer()
	oldResolved.SourceTxHash = testDestHash
	oldResolved.Status = types.Confirmed
	oldResolved.ResolvedAt = 1000 // long before any window

	current := *redeemableTransfer()

	mockDB := &testmock.DBClient{}
	mockDB.On("FindTransfersByOwner", mock.Anything, testOwner).Return([]model.TransferDocument{current, oldResolved}, nil)

	s := testServices(mockDB, testRegistry(&testmock.StatusProvider{}, &testmock.StatusProvider{}), &testmock.Publisher{})

	all, err := s.TransfersByOwner(context.Background(), testOwner, 0)
	assert.Nil(t, err)
	assert.Len(t, all, 2)

	windowed, err := s.TransfersByOwner(context.Background(), testOwner, 24)
	assert.Nil(t, err)
	assert.Len(t, windowed, 1)
	assert.Equal(t, testSourceHash, windowed[0].SourceTxHash)
}

func TestCollectableTransfersByOwner(t *testing.T) {
	pending := *redeemableTransfer()
	pending.SourceTxHash = testDestHash
	pending.Status = types.Pending

	mockDB := &testmock.DBClient{}
	mockDB.On("FindTransfersByOwner", mock.Anything, testOwner).Return([]model.TransferDocument{pending, *redeemableTransfer()}, nil)

	s := testServices(mockDB, testRegistry(&testmock.StatusProvider{}, &testmock.StatusProvider{}), &testmock.Publisher{})

	collectable, err := s.CollectableTransfersByOwner(context.Background(), testOwner)
	assert.Nil(t, err)
	assert.Len(t, collectable, 1)
	assert.Equal(t, testSourceHash, collectable[0].SourceTxHash)
	assert.Equal(t, types.Redeemable.ToString(), collectable[0].Status)
}
