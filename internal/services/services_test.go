package services

import (
	"time"

	"github.com/beemeeupnow/bridge-api-service/internal/chains"
	"github.com/beemeeupnow/bridge-api-service/internal/config"
	"github.com/beemeeupnow/bridge-api-service/internal/db/model"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
	testmock "github.com/beemeeupnow/bridge-api-service/tests/mocks"
)

const (
	testOwner      = "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"
	testSourceHash = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testDestHash   = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

	testSourceChainId uint64 = 100
	testDestChainId   uint64 = 56
)

func testConfig() *config.Config {
	return &config.Config{
		Reconciler: config.ReconcilerConfig{
			Interval:       time.Minute,
			PollTimeout:    5 * time.Second,
			SubmitTimeout:  5 * time.Second,
			ClaimTimeout:   5 * time.Second,
			MaxConcurrency: 4,
		},
	}
}

// testRegistry wires both test chains to their providers with a single
// bridge pair between them.
func testRegistry(sourceProvider, destProvider chains.StatusProvider) *chains.Registry {
	r := chains.NewRegistry()
	r.AddNetwork(chains.NetworkDetail{
		ChainId: testSourceChainId, Name: "BGL Network", NativeSymbol: "BGL",
	}, sourceProvider)
	r.AddNetwork(chains.NetworkDetail{
		ChainId: testDestChainId, Name: "BNB Smart Chain", NativeSymbol: "BNB",
		IsDestinationOnlyClaim: true,
	}, destProvider)
	if err := r.AddPair(testSourceChainId, testDestChainId); err != nil {
		panic(err)
	}
	if err := r.AddPair(testDestChainId, testSourceChainId); err != nil {
		panic(err)
	}
	return r
}

func testServices(dbClient *testmock.DBClient, registry *chains.Registry, publisher *testmock.Publisher) *Services {
	return &Services{
		DbClient:  dbClient,
		Registry:  registry,
		publisher: publisher,
		cfg:       testConfig(),
		step:      types.StepInitial,
	}
}

func redeemableTransfer() *model.TransferDocument {
	return &model.TransferDocument{
		SourceTxHash:  testSourceHash,
		OwnerAddress:  testOwner,
		FromChainId:   testSourceChainId,
		ToChainId:     testDestChainId,
		AssetName:     "BGL",
		AssetDecimals: 18,
		Value:         "1000000000000000000",
		Status:        types.Redeemable,
		SubmittedAt:   1700000000,
	}
}
