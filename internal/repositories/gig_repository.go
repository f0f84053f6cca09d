package repositories

import (
	"context"

	"techindia_backend/internal/models"
	"techindia_backend/internal/store"
)

// GigRepository - доступ к коллекции гигов поверх Store.
type GigRepository interface {
	Create(ctx context.Context, gig *models.Gig) (string, error)
	Find(ctx context.Context, conds []store.Condition, limit int64) ([]models.Gig, error)
}

type GigRepositoryImpl struct {
	store *store.Store
}

func NewGigRepository(st *store.Store) GigRepository {
	return &GigRepositoryImpl{store: st}
}

func (r *GigRepositoryImpl) Create(ctx context.Context, gig *models.Gig) (string, error) {
	return r.store.Insert(ctx, models.CollectionGig, gig)
}

// Find возвращает до limit гигов в естественном порядке хранилища.
// Отсутствие совпадений - пустой срез, не ошибка.
func (r *GigRepositoryImpl) Find(ctx context.Context, conds []store.Condition, limit int64) ([]models.Gig, error) {
	gigs := []models.Gig{}
	if err := r.store.Query(ctx, models.CollectionGig, store.BuildFilter(conds), limit, &gigs); err != nil {
		return nil, err
	}
	return gigs, nil
}
