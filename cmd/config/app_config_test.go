package config

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/internal/utils"
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type apiResponse struct {
	Status  bool                `json:"status"`
	Message string              `json:"message"`
	Data    jsoniter.RawMessage `json:"data"`
	Error   string              `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("SIMULATED_LATENCY_MS", "0")
	t.Setenv("RATE_LIMIT_MAX", "0")
	t.Setenv("LOG_FILE", "")
	t.Setenv("LOG_MODE", "production")
	t.Setenv("SEED_DEMO_DATA", "true")
	_, err := utils.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	app, err := NewApp()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown() })
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	status, res := call(t, app, http.MethodPost, "/api/v1/auth/login", "", domain.LoginRequest{Email: email, Password: "demo123"})
	require.Equal(t, http.StatusOK, status, res.Error)

	var data domain.LoginResponse
	require.NoError(t, json.Unmarshal(res.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func decodeData(t *testing.T, res apiResponse, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(res.Data, out))
}

func TestPing(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)

	status, res := call(t, app, http.MethodPost, "/api/v1/auth/login", "", domain.LoginRequest{Email: "farmer@demo.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, res.Status)
	assert.Equal(t, domain.MessageFailedLogin, res.Message)

	status, _ = call(t, app, http.MethodPost, "/api/v1/auth/login", "", domain.LoginRequest{Email: "not-an-email", Password: "demo123"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, http.MethodPost, "/api/v1/auth/login", "", domain.LoginRequest{Email: "farmer@demo.com", Password: "demo123", Role: domain.RoleRegulator})
	assert.Equal(t, http.StatusForbidden, status)

	token := login(t, app, "farmer@demo.com")

	status, res = call(t, app, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	var me domain.UserResponse
	decodeData(t, res, &me)
	assert.Equal(t, "Rajesh Kumar", me.Name)

	status, _ = call(t, app, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, app, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAuthRequired(t *testing.T) {
	app := newTestApp(t)

	status, res := call(t, app, http.MethodGet, "/api/v1/batches", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, domain.ErrTokenNotFound.Error(), res.Error)

	status, _ = call(t, app, http.MethodGet, "/api/v1/batches", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestBatchLifecycle(t *testing.T) {
	app := newTestApp(t)
	farmerToken := login(t, app, "farmer@demo.com")
	distributorToken := login(t, app, "distributor@demo.com")
	consumerToken := login(t, app, "consumer@demo.com")

	status, res := call(t, app, http.MethodGet, "/api/v1/batches", consumerToken, nil)
	require.Equal(t, http.StatusOK, status)
	var list struct {
		Batches []domain.BatchResponse `json:"batches"`
		Total   int                    `json:"total"`
	}
	decodeData(t, res, &list)
	assert.Equal(t, 3, list.Total)

	create := domain.CreateBatchRequest{
		CropType:    "Basmati Rice",
		HarvestDate: "2024-01-15",
		Quantity:    250,
		Price:       60,
		Location:    "Punjab, India",
	}

	status, _ = call(t, app, http.MethodPost, "/api/v1/batches", consumerToken, create)
	assert.Equal(t, http.StatusForbidden, status)

	bad := create
	bad.Quantity = 0
	status, _ = call(t, app, http.MethodPost, "/api/v1/batches", farmerToken, bad)
	assert.Equal(t, http.StatusBadRequest, status)

	status, res = call(t, app, http.MethodPost, "/api/v1/batches", farmerToken, create)
	require.Equal(t, http.StatusCreated, status, res.Error)
	var created domain.BatchResponse
	decodeData(t, res, &created)
	assert.Equal(t, "BTH004", created.ID)
	assert.Equal(t, "Rajesh Kumar", created.CurrentOwner)
	assert.Equal(t, domain.StatusHarvested, created.Status)

	status, res = call(t, app, http.MethodPost, "/api/v1/batches/BTH004/transfer", farmerToken,
		domain.TransferBatchRequest{To: "Priya Logistics", Location: "Delhi Distribution Center"})
	require.Equal(t, http.StatusOK, status, res.Error)
	var moved domain.BatchResponse
	decodeData(t, res, &moved)
	assert.Equal(t, domain.StatusDistributed, moved.Status)
	require.Len(t, moved.Transfers, 1)

	status, _ = call(t, app, http.MethodPost, "/api/v1/batches/BTH404/transfer", farmerToken,
		domain.TransferBatchRequest{To: "Priya Logistics", Location: "Delhi"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, app, http.MethodPatch, "/api/v1/batches/BTH004/status", farmerToken,
		domain.UpdateBatchStatusRequest{Status: domain.StatusSold})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, app, http.MethodPatch, "/api/v1/batches/BTH004/status", distributorToken,
		domain.UpdateBatchStatusRequest{Status: "spoiled"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, res = call(t, app, http.MethodPatch, "/api/v1/batches/BTH004/status", distributorToken,
		domain.UpdateBatchStatusRequest{Status: domain.StatusSold})
	require.Equal(t, http.StatusOK, status, res.Error)

	status, res = call(t, app, http.MethodGet, "/api/v1/batches/BTH004", consumerToken, nil)
	require.Equal(t, http.StatusOK, status)
	var got domain.BatchResponse
	decodeData(t, res, &got)
	assert.Equal(t, domain.StatusSold, got.Status)
	assert.Equal(t, "Priya Logistics", got.CurrentOwner)

	status, _ = call(t, app, http.MethodGet, "/api/v1/batches/BTH404", consumerToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, res = call(t, app, http.MethodGet, "/api/v1/batches?status=sold", consumerToken, nil)
	require.Equal(t, http.StatusOK, status)
	decodeData(t, res, &list)
	assert.Equal(t, 1, list.Total)
}

func TestInsightsEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "consumer@demo.com")

	status, res := call(t, app, http.MethodGet, "/api/v1/batches/BTH001/insights", token, nil)
	require.Equal(t, http.StatusOK, status)

	var insights domain.MLInsights
	decodeData(t, res, &insights)
	assert.Equal(t, 49.5, insights.Pricing.SuggestedPrice)
	assert.Equal(t, domain.TrendRising, insights.Pricing.MarketTrend)
	assert.Contains(t, insights.Quality.Factors, "Organic certification")

	status, _ = call(t, app, http.MethodGet, "/api/v1/batches/BTH404/insights", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestScanRoundTrip(t *testing.T) {
	app := newTestApp(t)
	retailerToken := login(t, app, "retailer@demo.com")
	consumerToken := login(t, app, "consumer@demo.com")

	status, res := call(t, app, http.MethodGet, "/api/v1/batches/BTH001/qr", retailerToken, nil)
	require.Equal(t, http.StatusOK, status)
	var qr domain.ScanPayloadResponse
	decodeData(t, res, &qr)
	assert.Equal(t, domain.ScanTypeRetailerBatch, qr.Type)

	status, res = call(t, app, http.MethodPost, "/api/v1/scan/decode", consumerToken, domain.DecodeScanRequest{Payload: qr.Payload})
	require.Equal(t, http.StatusOK, status)
	var scanned domain.ScanResult
	decodeData(t, res, &scanned)
	assert.Empty(t, scanned.Error)
	require.NotNil(t, scanned.Trace)
	require.NotNil(t, scanned.Insights)
	assert.Equal(t, "BTH001", scanned.Trace.ID)
	assert.Equal(t, 45.0, scanned.Batch.Price)

	status, res = call(t, app, http.MethodPost, "/api/v1/scan/decode", consumerToken, domain.DecodeScanRequest{Payload: "{not json"})
	require.Equal(t, http.StatusOK, status)
	decodeData(t, res, &scanned)
	assert.Equal(t, domain.MessageInvalidScanFormat, scanned.Error)

	status, _ = call(t, app, http.MethodPost, "/api/v1/scan/decode", consumerToken, domain.DecodeScanRequest{})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProfileQR(t *testing.T) {
	app := newTestApp(t)

	status, res := call(t, app, http.MethodGet, "/api/v1/profile/qr", login(t, app, "consumer@demo.com"), nil)
	require.Equal(t, http.StatusOK, status)
	var qr domain.ScanPayloadResponse
	decodeData(t, res, &qr)
	assert.Equal(t, domain.ScanTypeConsumerProfile, qr.Type)
	assert.Contains(t, qr.Payload, `"userId":"3"`)

	status, _ = call(t, app, http.MethodGet, "/api/v1/profile/qr", login(t, app, "retailer@demo.com"), nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDashboards(t *testing.T) {
	app := newTestApp(t)

	status, res := call(t, app, http.MethodGet, "/api/v1/dashboard", login(t, app, "farmer@demo.com"), nil)
	require.Equal(t, http.StatusOK, status)
	var farmerView domain.DashboardResponse
	decodeData(t, res, &farmerView)
	assert.Equal(t, domain.RoleFarmer, farmerView.Role)
	assert.Equal(t, 3, farmerView.Stats.TotalBatches)

	regulatorToken := login(t, app, "regulator@demo.com")
	status, res = call(t, app, http.MethodGet, "/api/v1/dashboard", regulatorToken, nil)
	require.Equal(t, http.StatusOK, status)
	var regulatorView domain.DashboardResponse
	decodeData(t, res, &regulatorView)
	assert.Len(t, regulatorView.Batches, 3)
	assert.NotEmpty(t, regulatorView.RecentEvents)
	assert.Len(t, regulatorView.RiskCounts, 3)

	status, res = call(t, app, http.MethodGet, "/api/v1/reports/regulator", regulatorToken, nil)
	require.Equal(t, http.StatusOK, status)
	var report domain.RegulatorReport
	decodeData(t, res, &report)
	assert.Equal(t, 3, report.TotalBatches)
	assert.Contains(t, report.ScanPayload, `"type":"regulator-report"`)

	status, _ = call(t, app, http.MethodGet, "/api/v1/reports/regulator", login(t, app, "farmer@demo.com"), nil)
	assert.Equal(t, http.StatusForbidden, status)
}
