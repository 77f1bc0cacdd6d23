package routes

import (
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"next-target-mock/config"
	"next-target-mock/internal/metrics"
	repo "next-target-mock/internal/repository"
	"next-target-mock/internal/services"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := repo.NewMemoryManpowerStore("next-target.manpowers")
	require.NoError(t, err)

	log := zap.NewNop()
	m := metrics.New()
	svc := services.NewManpowerService(store, log, m,
		services.WithClock(func() time.Time { return time.Date(2025, 5, 4, 12, 0, 0, 0, time.UTC) }),
		services.WithRand(func() *rand.Rand { return rand.New(rand.NewPCG(7, 7)) }),
	)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 3001, CORS: config.CORSConfig{AllowOrigins: "*"}},
		Store:  config.StoreConfig{Driver: config.DriverMemory},
		Seed:   config.SeedConfig{BulkCount: 50, BulkBatchSize: 20},
	}
	return NewApp(Deps{Service: svc, Config: cfg, Logger: log, Metrics: m})
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func seed(t *testing.T, app *fiber.App) {
	t.Helper()
	status, _ := do(t, app, http.MethodPost, "/api/seed", "")
	require.Equal(t, http.StatusOK, status)
}

func TestCapabilities(t *testing.T) {
	app := setupApp(t)

	status, raw := do(t, app, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, status)

	body := decode(t, raw)
	assert.Equal(t, "Next-Target Mock API is running", body["message"])
	endpoints, ok := body["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "GET /api/manpower/front?pid=XXX", endpoints["front"])
	assert.Equal(t, "DELETE /api/manpowers", endpoints["deleteAll"])
	assert.Len(t, endpoints, 7)
}

func TestGetFront(t *testing.T) {
	app := setupApp(t)
	seed(t, app)

	t.Run("missing pid", func(t *testing.T) {
		status, raw := do(t, app, http.MethodGet, "/api/manpower/front", "")
		assert.Equal(t, http.StatusBadRequest, status)
		body := decode(t, raw)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, services.ErrMissingPersonalID.Error(), body["message"])
	})

	t.Run("unknown pid", func(t *testing.T) {
		status, raw := do(t, app, http.MethodGet, "/api/manpower/front?pid=000000000", "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, false, decode(t, raw)["success"])
	})

	t.Run("stored document without envelope", func(t *testing.T) {
		status, raw := do(t, app, http.MethodGet, "/api/manpower/front?pid=334455667", "")
		require.Equal(t, http.StatusOK, status)

		assert.True(t, strings.HasPrefix(string(raw), `{"_id":"`), string(raw))
		body := decode(t, raw)
		assert.NotContains(t, body, "success")
		assert.Equal(t, "334455667", body["personalId"])
		assert.Equal(t, "חדד", body["lastName"])
		assert.Equal(t, float64(0), body["__v"])
		assert.Nil(t, body["deactivatedDate"])
		assert.Equal(t, "2025-05-04T12:00:00.000Z", body["createdAt"])
	})
}

func TestGetByPersonalID(t *testing.T) {
	app := setupApp(t)
	seed(t, app)

	status, raw := do(t, app, http.MethodGet, "/api/manpowers/334455667", "")
	require.Equal(t, http.StatusOK, status)

	body := decode(t, raw)
	assert.Equal(t, true, body["success"])
	person, ok := body["person"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "334455667", person["id"])
	assert.Equal(t, "46601", person["number"])
	assert.NotContains(t, person, "_id")
	assert.NotContains(t, person, "professions")

	status, raw = do(t, app, http.MethodGet, "/api/manpowers/123", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, decode(t, raw)["success"])
}

func TestCreatePerson(t *testing.T) {
	app := setupApp(t)
	payload := `{"personalId":"999","firstName":"A","lastName":"B"}`

	status, raw := do(t, app, http.MethodPost, "/api/manpowers", payload)
	require.Equal(t, http.StatusCreated, status, string(raw))
	body := decode(t, raw)
	assert.Equal(t, true, body["success"])
	person := body["person"].(map[string]any)
	assert.Equal(t, true, person["active"])
	assert.Equal(t, []any{}, person["professions"])
	assert.NotEmpty(t, person["_id"])

	status, raw = do(t, app, http.MethodPost, "/api/manpowers", payload)
	assert.Equal(t, http.StatusBadRequest, status)
	body = decode(t, raw)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "duplicate key")

	status, raw = do(t, app, http.MethodPost, "/api/manpowers", `{"firstName":"A"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, decode(t, raw)["message"], "personalId")

	status, _ = do(t, app, http.MethodPost, "/api/manpowers", `{"personalId":`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestListAndDeleteAll(t *testing.T) {
	app := setupApp(t)
	for _, p := range []string{
		`{"personalId":"1","firstName":"x","lastName":"Zed"}`,
		`{"personalId":"2","firstName":"x","lastName":"Adams"}`,
		`{"personalId":"3","firstName":"x","lastName":"Miller"}`,
	} {
		status, _ := do(t, app, http.MethodPost, "/api/manpowers", p)
		require.Equal(t, http.StatusCreated, status)
	}

	status, raw := do(t, app, http.MethodGet, "/api/manpowers", "")
	require.Equal(t, http.StatusOK, status)
	var list struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		People  []struct {
			LastName string `json:"lastName"`
		} `json:"people"`
	}
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.True(t, list.Success)
	assert.Equal(t, 3, list.Count)
	require.Len(t, list.People, 3)
	assert.Equal(t, "Adams", list.People[0].LastName)
	assert.Equal(t, "Miller", list.People[1].LastName)
	assert.Equal(t, "Zed", list.People[2].LastName)

	status, raw = do(t, app, http.MethodDelete, "/api/manpowers", "")
	require.Equal(t, http.StatusOK, status)
	body := decode(t, raw)
	assert.Equal(t, float64(3), body["deletedCount"])
	assert.Equal(t, "deleted 3 records", body["message"])

	status, raw = do(t, app, http.MethodGet, "/api/manpowers", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), decode(t, raw)["count"])
}

func TestSeedFixedReplacesData(t *testing.T) {
	app := setupApp(t)
	status, _ := do(t, app, http.MethodPost, "/api/manpowers", `{"personalId":"999","firstName":"A","lastName":"B"}`)
	require.Equal(t, http.StatusCreated, status)

	status, raw := do(t, app, http.MethodPost, "/api/seed", "")
	require.Equal(t, http.StatusOK, status)
	body := decode(t, raw)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(20), body["count"])

	status, _ = do(t, app, http.MethodGet, "/api/manpowers/999", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSeedHeavy(t *testing.T) {
	app := setupApp(t)

	t.Run("configured defaults", func(t *testing.T) {
		status, raw := do(t, app, http.MethodPost, "/api/seed-heavy", "")
		require.Equal(t, http.StatusOK, status, string(raw))
		body := decode(t, raw)
		assert.Equal(t, float64(50), body["count"])
		assert.Equal(t, "added 50 records", body["message"])
	})

	t.Run("query overrides", func(t *testing.T) {
		status, raw := do(t, app, http.MethodPost, "/api/seed-heavy?count=30&batchSize=7", "")
		require.Equal(t, http.StatusOK, status, string(raw))
		assert.Equal(t, float64(30), decode(t, raw)["count"])

		_, raw = do(t, app, http.MethodGet, "/api/manpowers", "")
		assert.Equal(t, float64(80), decode(t, raw)["count"])
	})

	for _, q := range []string{"count=0", "count=abc", "batchSize=-1"} {
		t.Run("rejects "+q, func(t *testing.T) {
			status, raw := do(t, app, http.MethodPost, "/api/seed-heavy?"+q, "")
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, false, decode(t, raw)["success"])
		})
	}
}

func TestSeedHeavyAfterCreateAtWindowTop(t *testing.T) {
	app := setupApp(t)
	status, _ := do(t, app, http.MethodPost, "/api/manpowers", `{"personalId":"9999999","firstName":"A","lastName":"B"}`)
	require.Equal(t, http.StatusCreated, status)
	status, _ = do(t, app, http.MethodPost, "/api/manpowers", `{"personalId":"1000003","firstName":"A","lastName":"B"}`)
	require.Equal(t, http.StatusCreated, status)

	status, raw := do(t, app, http.MethodPost, "/api/seed-heavy?count=10&batchSize=5", "")
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, float64(10), decode(t, raw)["count"])

	_, raw = do(t, app, http.MethodGet, "/api/manpowers", "")
	assert.Equal(t, float64(12), decode(t, raw)["count"])
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	app := setupApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	body := decode(t, raw)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "/api/nope")
}

func TestHealthzRequestIDAndMetrics(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(fiber.HeaderXRequestID, strings.Repeat("x", 100))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 36)

	status, raw := do(t, app, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, status)
	text := string(raw)
	assert.Contains(t, text, "manpower_mock_http_requests_total")
	assert.Contains(t, text, `route="/healthz"`)
}

func TestPanicIsRecovered(t *testing.T) {
	app := setupApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	status, raw := do(t, app, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	body := decode(t, raw)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "boom", body["message"])
}
