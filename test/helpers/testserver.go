package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"techindia_backend/internal/app"
	"techindia_backend/internal/config"
	"techindia_backend/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestServer - HTTP-сервер приложения поверх тестовой базы.
// Отдельный raw-клиент Mongo нужен только для очистки коллекций,
// мимо Store: у адаптера нет (и не должно быть) операции Drop.
type TestServer struct {
	Server *httptest.Server
	Store  *store.Store
	Cfg    *config.Config

	rawClient *mongo.Client
	rawDB     *mongo.Database
}

// NewTestServer поднимает сервер на настоящем Mongo из
// TEST_DATABASE_URL / TEST_DATABASE_NAME. Без заданного URL тест
// пропускается: юнит-тесты не должны требовать инфраструктуру.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL is not set, skipping store-backed test")
	}
	name := os.Getenv("TEST_DATABASE_NAME")
	if name == "" {
		name = "techindia_test"
	}

	cfg := testConfig(url, name)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := store.Connect(ctx, url, name)
	if err != nil {
		t.Fatalf("Не удалось подключиться к тестовой БД (%s): %v", url, err)
	}

	rawClient, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		t.Fatalf("Не удалось создать raw-клиент для очистки: %v", err)
	}

	router := app.SetupRouter(cfg, st)

	return &TestServer{
		Server:    httptest.NewServer(router),
		Store:     st,
		Cfg:       cfg,
		rawClient: rawClient,
		rawDB:     rawClient.Database(name),
	}
}

// NewDegradedTestServer поднимает сервер без хранилища: так ведет
// себя процесс, стартовавший с недоступным или несконфигурированным
// Mongo.
func NewDegradedTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := testConfig("", "")
	router := app.SetupRouter(cfg, nil)

	return &TestServer{
		Server: httptest.NewServer(router),
		Cfg:    cfg,
	}
}

func testConfig(url, name string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Server.Env = "test"
	cfg.Database.URL = url
	cfg.Database.Name = name
	return cfg
}

func (ts *TestServer) Close() {
	ts.Server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if ts.Store != nil {
		_ = ts.Store.Close(ctx)
	}
	if ts.rawClient != nil {
		_ = ts.rawClient.Disconnect(ctx)
	}
}

// ClearCollections очищает именованные коллекции тестовой базы.
func (ts *TestServer) ClearCollections(t *testing.T, names ...string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, name := range names {
		if _, err := ts.rawDB.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			t.Fatalf("Не удалось очистить коллекцию %s: %v", name, err)
		}
	}
}

// SendRequest выполняет запрос к тестовому серверу и возвращает
// ответ вместе с прочитанным телом.
func (ts *TestServer) SendRequest(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()

	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Ошибка выполнения HTTP-запроса: %v", err)
	}

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	res.Body.Close()

	return res, string(resBody)
}
