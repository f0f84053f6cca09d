package services

import (
	"context"

	"techindia_backend/internal/dto"
	"techindia_backend/internal/models"
	"techindia_backend/internal/repositories"
	"techindia_backend/internal/store"
	"techindia_backend/pkg/apperrors"
)

// DefaultGigLimit - лимит выборки по умолчанию для списка гигов.
// Верхней границы нет, передается как есть в хранилище.
const DefaultGigLimit = 20

type GigService struct {
	repo repositories.GigRepository
}

func NewGigService(repo repositories.GigRepository) *GigService {
	return &GigService{repo: repo}
}

// CreateGig валидация уже пройдена на границе; здесь собираем модель
// с дефолтами и пишем один документ.
func (s *GigService) CreateGig(ctx context.Context, req *dto.CreateGigRequest) (string, error) {
	id, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return "", wrapStoreError(err)
	}
	return id, nil
}

// ListGigs строит фильтр из параметров запроса:
// q - подстрока в title без учета регистра, category - точное равенство.
func (s *GigService) ListGigs(ctx context.Context, q *dto.ListGigsQuery) ([]models.Gig, error) {
	var conds []store.Condition

	if q.Category != "" {
		conds = append(conds, store.Condition{
			Field: "category",
			Kind:  store.MatchExact,
			Value: q.Category,
		})
	}
	if q.Q != "" {
		conds = append(conds, store.Condition{
			Field: "title",
			Kind:  store.MatchContainsFold,
			Value: q.Q,
		})
	}

	limit := int64(q.Limit)
	if limit <= 0 {
		limit = DefaultGigLimit
	}

	gigs, err := s.repo.Find(ctx, conds, limit)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	return gigs, nil
}

// wrapStoreError переводит sentinel-ошибки хранилища в AppError
// с корректным HTTP-кодом.
func wrapStoreError(err error) error {
	switch {
	case apperrors.Is(err, store.ErrUnavailable):
		return apperrors.StoreUnavailableError(err)
	case apperrors.Is(err, store.ErrWrite):
		return apperrors.StoreWriteError(err)
	case apperrors.Is(err, store.ErrRead):
		return apperrors.StoreReadError(err)
	default:
		return apperrors.InternalError(err)
	}
}
