package integration_test

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"techindia_backend/internal/models"
	"techindia_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{24}$`)

func gigPayload(title, category string, price float64) map[string]interface{} {
	return map[string]interface{}{
		"title":       title,
		"description": "Test gig description",
		"category":    category,
		"price":       price,
		"seller_id":   "u1",
	}
}

func createGig(t *testing.T, ts *helpers.TestServer, payload map[string]interface{}) string {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/gigs", payload)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Создание гига должно вернуть 201. Ответ: "+bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.True(t, hexID.MatchString(created.ID), "id должен быть 24-символьной hex-строкой, получено: "+created.ID)

	return created.ID
}

func listGigs(t *testing.T, ts *helpers.TestServer, query string) []models.Gig {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/gigs"+query, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Список гигов должен вернуть 200. Ответ: "+bodyStr)

	var gigs []models.Gig
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &gigs))
	return gigs
}

func TestGig_CreateAndList_Roundtrip(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearCollections(t, "gig")

	payload := gigPayload("Logo Design", "Design", 50)
	id := createGig(t, ts, payload)

	otherID := createGig(t, ts, gigPayload("Another Gig", "Web", 10))
	assert.NotEqual(t, id, otherID, "каждая запись получает свой идентификатор")

	gigs := listGigs(t, ts, "")
	assert.Len(t, gigs, 2)

	var found *models.Gig
	for i := range gigs {
		if gigs[i].ID.Hex() == id {
			found = &gigs[i]
		}
	}
	assert.NotNil(t, found, "созданный гиг должен быть в выдаче")
	assert.Equal(t, "Logo Design", found.Title)
	assert.Equal(t, "Design", found.Category)
	assert.Equal(t, float64(50), found.Price)
	assert.Equal(t, "u1", found.SellerID)
	assert.Equal(t, []string{}, found.Tags, "теги по умолчанию - пустой список")
	assert.Equal(t, float64(0), found.Rating)
	assert.Equal(t, 0, found.ReviewsCount)
}

// Фильтр по категории - точное, регистрозависимое равенство.
func TestGig_FilterByCategory_Exact(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearCollections(t, "gig")

	createGig(t, ts, gigPayload("Gig A", "Design", 10))
	createGig(t, ts, gigPayload("Gig B", "design", 10))
	createGig(t, ts, gigPayload("Gig C", "Web", 10))

	gigs := listGigs(t, ts, "?category=Design")

	assert.Len(t, gigs, 1)
	assert.Equal(t, "Gig A", gigs[0].Title)
}

// Фильтр q - вхождение подстроки в title без учета регистра.
func TestGig_FilterByTitleSubstring_CaseInsensitive(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearCollections(t, "gig")

	createGig(t, ts, gigPayload("Web Development", "Web", 10))
	createGig(t, ts, gigPayload("Modern WEBSITE", "Web", 10))
	createGig(t, ts, gigPayload("awesome webapp", "Web", 10))
	createGig(t, ts, gigPayload("Logo Design", "Design", 10))

	gigs := listGigs(t, ts, "?q=web")
	assert.Len(t, gigs, 3)
	for _, g := range gigs {
		assert.NotEqual(t, "Logo Design", g.Title)
	}

	// Комбинация q и category соединяется через AND
	gigs = listGigs(t, ts, "?q=web&category=Web")
	assert.Len(t, gigs, 3)

	gigs = listGigs(t, ts, "?q=web&category=Design")
	assert.Len(t, gigs, 0)
}

func TestGig_LimitApplied(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearCollections(t, "gig")

	for i := 0; i < 5; i++ {
		createGig(t, ts, gigPayload("Bulk Gig", "Bulk", float64(i)))
	}

	gigs := listGigs(t, ts, "?limit=3")
	assert.Len(t, gigs, 3)

	gigs = listGigs(t, ts, "")
	assert.Len(t, gigs, 5, "дефолтный лимит 20 покрывает все пять записей")
}

func TestGig_CreateValidation(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearCollections(t, "gig")

	// Отрицательная цена отклоняется до записи в хранилище
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/gigs", gigPayload("Bad Gig", "Design", -1))
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, bodyStr, "price")

	// Нулевая цена валидна
	createGig(t, ts, gigPayload("Free Gig", "Design", 0))

	// Отсутствующие обязательные поля перечисляются в деталях
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/gigs", map[string]interface{}{"price": 10})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, bodyStr, "title")
	assert.Contains(t, bodyStr, "seller_id")

	gigs := listGigs(t, ts, "")
	assert.Len(t, gigs, 1, "невалидные запросы не должны оставлять частичных записей")
}

// Явно переданные теги сохраняются как есть.
func TestGig_CreateWithTags(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearCollections(t, "gig")

	payload := gigPayload("Tagged Gig", "Design", 25)
	payload["tags"] = []string{"logo", "branding"}
	payload["cover_image"] = "https://cdn.example.com/cover.png"
	createGig(t, ts, payload)

	gigs := listGigs(t, ts, "")
	assert.Len(t, gigs, 1)
	assert.Equal(t, []string{"logo", "branding"}, gigs[0].Tags)
	assert.NotNil(t, gigs[0].CoverImage)
	assert.Equal(t, "https://cdn.example.com/cover.png", *gigs[0].CoverImage)
}
