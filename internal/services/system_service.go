package services

import (
	"context"
	"fmt"

	"techindia_backend/internal/config"
	"techindia_backend/internal/models"
	"techindia_backend/internal/store"
)

// Diagnostics - ответ эндпоинта /test. Все поля - человекочитаемые
// строки статуса: эндпоинт обязан отвечать всегда, любая внутренняя
// ошибка попадает в текст, а не в HTTP-код.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// maxDiagnosticCollections ограничивает список коллекций в диагностике.
const maxDiagnosticCollections = 10

type SystemService struct {
	cfg   *config.Config
	store *store.Store
}

func NewSystemService(cfg *config.Config, st *store.Store) *SystemService {
	return &SystemService{cfg: cfg, store: st}
}

// Describe собирает диагностику подключения. Никогда не возвращает
// ошибку: деградация описывается строками статуса.
func (s *SystemService) Describe(ctx context.Context) *Diagnostics {
	d := &Diagnostics{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		DatabaseName:     "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if s.cfg.Database.URL != "" {
		d.DatabaseURL = "set"
	}
	if s.cfg.Database.Name != "" {
		d.DatabaseName = "set"
	}

	if !s.store.Available() {
		return d
	}

	d.Database = "available"
	d.ConnectionStatus = "connected"

	names, err := s.store.CollectionNames(ctx)
	if err != nil {
		d.Database = fmt.Sprintf("connected but error: %s", truncate(err.Error(), 50))
		return d
	}

	if len(names) > maxDiagnosticCollections {
		names = names[:maxDiagnosticCollections]
	}
	d.Collections = names
	d.Database = "connected & working"

	return d
}

// Schemas возвращает дескрипторы всех сущностей для интроспекции.
func (s *SystemService) Schemas() map[string]models.EntitySchema {
	return models.SchemaDescriptors()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
