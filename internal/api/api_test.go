package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/beemeeupnow/bridge-api-service/internal/api"
	"github.com/beemeeupnow/bridge-api-service/internal/api/middlewares"
	"github.com/beemeeupnow/bridge-api-service/internal/chains"
	"github.com/beemeeupnow/bridge-api-service/internal/config"
	"github.com/beemeeupnow/bridge-api-service/internal/observability/metrics"
	"github.com/beemeeupnow/bridge-api-service/internal/services"
	testmock "github.com/beemeeupnow/bridge-api-service/tests/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:             "127.0.0.1",
			Port:             8090,
			LogLevel:         "debug",
			MaxContentLength: 40960,
			WriteTimeout:     time.Minute,
			ReadTimeout:      time.Minute,
			IdleTimeout:      time.Minute,
		},
		Db: config.DbConfig{
			DbName:  "bridge-api-service-test",
			Address: "mongodb://localhost:27017",
		},
		Reconciler: config.ReconcilerConfig{
			Interval:       time.Minute,
			PollTimeout:    5 * time.Second,
			SubmitTimeout:  5 * time.Second,
			ClaimTimeout:   5 * time.Second,
			MaxConcurrency: 2,
		},
	}
}

func setupTestServer(t *testing.T, mockDB *testmock.DBClient) *httptest.Server {
	t.Helper()
	metrics.Init(29892)

	cfg := testConfig()

	registry := chains.NewRegistry()
	registry.AddNetwork(chains.NetworkDetail{ChainId: 100, Name: "BGL Network", NativeSymbol: "BGL"}, &testmock.StatusProvider{})
	registry.AddNetwork(chains.NetworkDetail{ChainId: 56, Name: "BNB Smart Chain", NativeSymbol: "BNB", IsDestinationOnlyClaim: true}, &testmock.StatusProvider{})
	assert.NoError(t, registry.AddPair(100, 56))

	publisher := &testmock.Publisher{}
	publisher.On("PublishTransferEvent", mock.Anything, mock.Anything).Return(nil).Maybe()

	svc, err := services.New(context.Background(), cfg, registry, publisher)
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	if mockDB != nil {
		svc.DbClient = mockDB
	}

	apiServer, err := api.New(context.Background(), cfg, svc)
	if err != nil {
		t.Fatalf("Failed to initialize API server: %v", err)
	}

	// Setup routes
	r := chi.NewRouter()
	r.Use(middlewares.CorsMiddleware(cfg))
	apiServer.SetupRoutes(r)

	return httptest.NewServer(r)
}

func TestHealthCheck(t *testing.T) {
	mockDB := &testmock.DBClient{}
	mockDB.On("Ping", mock.Anything).Return(nil)

	server := setupTestServer(t, mockDB)
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthcheck")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	bodyBytes, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var responseBody map[string]string
	assert.NoError(t, json.Unmarshal(bodyBytes, &responseBody))
	assert.Equal(t, "Server is up and running", responseBody["data"])
}

func TestHealthCheckDBError(t *testing.T) {
	mockDB := &testmock.DBClient{}
	mockDB.On("Ping", mock.Anything).Return(io.EOF)

	server := setupTestServer(t, mockDB)
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthcheck")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	bodyBytes, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, `{"errorCode":"INTERNAL_SERVICE_ERROR","message":"Internal service error"}`, string(bodyBytes))
}

func TestGetNetworks(t *testing.T) {
	server := setupTestServer(t, &testmock.DBClient{})
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/networks")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var responseBody struct {
		Data []chains.NetworkDetail `json:"data"`
	}
	bodyBytes, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(bodyBytes, &responseBody))

	assert.Len(t, responseBody.Data, 2)
	assert.Equal(t, uint64(56), responseBody.Data[0].ChainId)
	assert.Equal(t, uint64(100), responseBody.Data[1].ChainId)
}

func TestGetTransfersRejectsBadOwner(t *testing.T) {
	server := setupTestServer(t, &testmock.DBClient{})
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/transfers?owner_address=bogus")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	bodyBytes, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(bodyBytes), "VALIDATION_ERROR")
}

func TestSubmitTransferNetworkMismatchEnvelope(t *testing.T) {
	server := setupTestServer(t, &testmock.DBClient{})
	defer server.Close()

	payload := map[string]interface{}{
		"owner_address":   "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599",
		"active_chain_id": 56,
		"from_chain_id":   100,
		"to_chain_id":     56,
		"asset_name":      "BGL",
		"asset_decimals":  18,
		"value":           "1000000000000000000",
	}
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	resp, err := http.Post(server.URL+"/v1/bridge/submit", "application/json", bytes.NewReader(body))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	bodyBytes, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(bodyBytes), "NETWORK_MISMATCH")
}

func TestBridgeStepDefaultsToInitial(t *testing.T) {
	server := setupTestServer(t, &testmock.DBClient{})
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/bridge/step")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var responseBody struct {
		Data struct {
			Step string `json:"step"`
		} `json:"data"`
	}
	bodyBytes, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(bodyBytes, &responseBody))
	assert.Equal(t, "INITIAL", responseBody.Data.Step)
}
