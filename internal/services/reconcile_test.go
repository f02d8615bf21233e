package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/beemeeupnow/bridge-api-service/internal/chains"
	"github.com/beemeeupnow/bridge-api-service/internal/db"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
	"github.com/beemeeupnow/bridge-api-service/internal/utils"
	testmock "github.com/beemeeupnow/bridge-api-service/tests/mocks"
)

func TestQueryRemoteStatusPicksTheRightChain(t *testing.T) {
	sourceProvider := &testmock.StatusProvider{}
	destProvider := &testmock.StatusProvider{}
	s := testServices(&testmock.DBClient{}, testRegistry(sourceProvider, destProvider), &testmock.Publisher{})

	// A pending transfer is judged by its source chain.
	pending := redeemableTransfer()
	pending.Status = types.Pending
	sourceProvider.On("QueryStatus", mock.Anything, pending).Return(&chains.RemoteStatusResult{Status: types.RemotePending}, nil).Once()
	_, err := s.QueryRemoteStatus(context.Background(), pending)
	assert.NoError(t, err)
	sourceProvider.AssertExpectations(t)

	// Anything past pending is judged by the destination chain.
	redeemable := redeemableTransfer()
	destProvider.On("QueryStatus", mock.Anything, redeemable).Return(&chains.RemoteStatusResult{Status: types.RemoteRedeemable}, nil).Once()
	_, err = s.QueryRemoteStatus(context.Background(), redeemable)
	assert.NoError(t, err)
	destProvider.AssertExpectations(t)
}

func TestApplyRemoteStatusPendingIsNoop(t *testing.T) {
	mockDB := &testmock.DBClient{}
	s := testServices(mockDB, testRegistry(&testmock.StatusProvider{}, &testmock.StatusProvider{}), &testmock.Publisher{})

	transfer := redeemableTransfer()
	transfer.Status = types.Pending
	transfer.PendingReason = "awaiting confirmations"

	changed, err := s.ApplyRemoteStatus(context.Background(), transfer, &chains.RemoteStatusResult{
		Status:        types.RemotePending,
		PendingReason: "awaiting confirmations",
	})
	assert.NoError(t, err)
	assert.False(t, changed)
	mockDB.AssertNotCalled(t, "TransitionState", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyRemoteStatusRefreshesPendingReason(t *testing.T) {
	mockDB := &testmock.DBClient{}
	mockDB.On("TransitionState", mock.Anything, testSourceHash, types.Pending, []types.TransferStatus{types.Pending},
		map[string]interface{}{"pending_reason": "1 of 6 confirmations"}).Return(nil)

	s := testServices(mockDB, testRegistry(&testmock.StatusProvider{}, &testmock.StatusProvider{}), &testmock.Publisher{})

	transfer := redeemableTransfer()
	transfer.Status = types.Pending
	transfer.PendingReason = "awaiting confirmations"

	changed, err := s.ApplyRemoteStatus(context.Background(), transfer, &chains.RemoteStatusResult{
		Status:        types.RemotePending,
		PendingReason: "1 of 6 confirmations",
	})
	assert.NoError(t, err)
	assert.False(t, changed) // a reason refresh is not a status change
	mockDB.AssertExpectations(t)
}

func TestApplyRemoteStatusAdvancesToRedeemable(t *testing.T) {
	mockDB := &testmock.DBClient{}
	mockDB.On("TransitionState", mock.Anything, testSourceHash, types.Redeemable, utils.QualifiedStatesToRedeemable(), mock.Anything).Return(nil)

	publisher := &testmock.Publisher{}
	publisher.On("PublishTransferEvent", mock.Anything, mock.Anything).Return(nil)

	s := testServices(mockDB, testRegistry(&testmock.StatusProvider{}, &testmock.StatusProvider{}), publisher)

	transfer := redeemableTransfer()
	transfer.Status = types.Pending

	changed, err := s.ApplyRemoteStatus(context.Background(), transfer, &chains.RemoteStatusResult{Status: types.RemoteRedeemable})
	assert.NoError(t, err)
	assert.True(t, changed)
	publisher.AssertCalled(t, "PublishTransferEvent", mock.Anything, mock.Anything)
}

func TestApplyRemoteStatusRedeemableDoesNotRetreatCollecting(t *testing.T) {
	mockDB := &testmock.DBClient{}
	s := testServices(mockDB, testRegistry(&testmock.StatusProvider{}, &testmock.StatusProvider{}), &testmock.Publisher{})

	for _, status := range []types.TransferStatus{types.Redeemable, types.Collecting} {
		transfer := redeemableTransfer()
		transfer.Status = status

		changed, err := s.ApplyRemoteStatus(context.Background(), transfer, &chains.RemoteStatusResult{Status: types.RemoteRedeemable})
		assert.NoError(t, err)
		assert.False(t, changed)
	}
	mockDB.AssertNotCalled(t, "TransitionState", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyRemoteStatusConfirms(t *testing.T) {
	mockDB := &testmock.DBClient{}
	mockDB.On("TransitionState", mock.Anything, testSourceHash, types.Confirmed, utils.QualifiedStatesToConfirmed(), mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["destination_tx_hash"] == testDestHash && fields["resolved_at"] != nil
	})).Return(nil)

	publisher := &testmock.Publisher{}
	publisher.On("PublishTransferEvent", mock.Anything, mock.Anything).Return(nil)

	s := testServices(mockDB, testRegistry(&testmock.StatusProvider{}, &testmock.StatusProvider{}), publisher)

	changed, err := s.ApplyRemoteStatus(context.Background(), redeemableTransfer(), &chains.RemoteStatusResult{
		Status:            types.RemoteConfirmed,
		DestinationTxHash: testDestHash,
	})
	assert.NoError(t, err)
	assert.True(t, changed)
	mockDB.AssertExpectations(t)
}

func TestApplyRemoteStatusReverted(t *testing.T) {
	mockDB := &testmock.DBClient{}
	mockDB.On("TransitionState", mock.Anything, testSourceHash, types.Failed, utils.QualifiedStatesToFailed(), mock.Anything).Return(nil)

	publisher := &testmock.Publisher{}
	publisher.On("PublishTransferEvent", mock.Anything, mock.Anything).Return(nil)

	s := testServices(mockDB, testRegistry(&testmock.StatusProvider{}, &testmock.StatusProvider{}), publisher)

	transfer := redeemableTransfer()
	transfer.Status = types.Pending

	changed, err := s.ApplyRemoteStatus(context.Background(), transfer, &chains.RemoteStatusResult{Status: types.RemoteReverted})
	assert.NoError(t, err)
	assert.True(t, changed)
	mockDB.AssertExpectations(t)
}

func TestApplyRemoteStatusSurfacesInvalidTransition(t *testing.T) {
	mockDB := &testmock.DBClient{}
	mockDB.On("TransitionState", mock.Anything, testSourceHash, types.Confirmed, utils.QualifiedStatesToConfirmed(), mock.Anything).
		Return(&db.InvalidTransitionError{Key: testSourceHash, From: types.Failed, To: types.Confirmed})

	publisher := &testmock.Publisher{}
	s := testServices(mockDB, testRegistry(&testmock.StatusProvider{}, &testmock.StatusProvider{}), publisher)

	changed, err := s.ApplyRemoteStatus(context.Background(), redeemableTransfer(), &chains.RemoteStatusResult{
		Status:            types.RemoteConfirmed,
		DestinationTxHash: testDestHash,
	})
	assert.True(t, db.IsInvalidTransitionError(err))
	assert.False(t, changed)
	publisher.AssertNotCalled(t, "PublishTransferEvent", mock.Anything, mock.Anything)
}
