package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"techindia_backend/internal/models"
	"techindia_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestRoot_Liveness(t *testing.T) {
	ts := helpers.NewDegradedTestServer(t)
	defer ts.Close()

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"name":"TechINDIA"`)
	assert.Contains(t, bodyStr, `"status":"ok"`)
}

// Диагностический эндпоинт обязан отвечать 200 даже без хранилища:
// операторы всегда должны до него достучаться.
func TestTestEndpoint_NeverFailsWhenDegraded(t *testing.T) {
	ts := helpers.NewDegradedTestServer(t)
	defer ts.Close()

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var diag struct {
		Backend          string   `json:"backend"`
		Database         string   `json:"database"`
		DatabaseURL      string   `json:"database_url"`
		DatabaseName     string   `json:"database_name"`
		ConnectionStatus string   `json:"connection_status"`
		Collections      []string `json:"collections"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &diag))

	assert.Equal(t, "running", diag.Backend)
	assert.Equal(t, "not available", diag.Database)
	assert.Equal(t, "not set", diag.DatabaseURL)
	assert.Equal(t, "not set", diag.DatabaseName)
	assert.Equal(t, "not connected", diag.ConnectionStatus)
	assert.Empty(t, diag.Collections)
}

// Данные-эндпоинты при недоступном хранилище, наоборот, отдают
// серверную ошибку.
func TestGigs_DegradedSurfacesServerError(t *testing.T) {
	ts := helpers.NewDegradedTestServer(t)
	defer ts.Close()

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/gigs", nil)
	assert.GreaterOrEqual(t, res.StatusCode, 500)
	assert.Contains(t, bodyStr, "STORE_UNAVAILABLE")

	payload := map[string]interface{}{
		"title":       "Logo Design",
		"description": "Professional logo design",
		"category":    "Design",
		"price":       50,
		"seller_id":   "u1",
	}
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/gigs", payload)
	assert.GreaterOrEqual(t, res.StatusCode, 500)
	assert.Contains(t, bodyStr, "STORE_UNAVAILABLE")
}

func TestSchemaEndpoint_DescribesAllEntities(t *testing.T) {
	ts := helpers.NewDegradedTestServer(t)
	defer ts.Close()

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/schema", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var schemas map[string]models.EntitySchema
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &schemas))

	for _, name := range []string{"user", "gig", "order", "review"} {
		assert.Contains(t, schemas, name)
	}

	gig := schemas["gig"]
	assert.Contains(t, gig.Required, "title")
	assert.Contains(t, gig.Required, "price")

	review := schemas["review"]
	rating := review.Properties["rating"]
	assert.Equal(t, "integer", rating.Type)
	assert.Equal(t, float64(1), *rating.Minimum)
	assert.Equal(t, float64(5), *rating.Maximum)
}

// С доступным хранилищем /test докладывает рабочее соединение и
// имена коллекций.
func TestTestEndpoint_Connected(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearCollections(t, "gig")

	// Хотя бы одна коллекция должна существовать
	createGig(t, ts, gigPayload("Diag Gig", "Design", 5))

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"backend":"running"`)
	assert.Contains(t, bodyStr, `"database":"connected & working"`)
	assert.Contains(t, bodyStr, `"connection_status":"connected"`)
	assert.Contains(t, bodyStr, `"gig"`)
}

// Поведение CORS унаследовано от исходного сервиса: любые источники.
func TestCORS_AllowsAnyOrigin(t *testing.T) {
	ts := helpers.NewDegradedTestServer(t)
	defer ts.Close()

	res, _ := ts.SendRequest(t, http.MethodGet, "/", nil)
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}
