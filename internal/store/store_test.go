package store

import (
	"context"
	"testing"

	"techindia_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

// Неинициализированный Store (nil) обязан быстро падать с
// ErrUnavailable на каждой операции, а не паниковать.
func TestStore_Nil_FailsFastWithUnavailable(t *testing.T) {
	ctx := context.Background()
	var st *Store

	assert.False(t, st.Available())
	assert.Equal(t, "", st.Name())

	_, err := st.Insert(ctx, "gig", bson.M{"title": "x"})
	assert.ErrorIs(t, err, ErrUnavailable)

	var out []models.Gig
	err = st.Query(ctx, "gig", bson.M{}, 10, &out)
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, st.Ping(ctx), ErrUnavailable)

	_, err = st.CollectionNames(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	// Close на неинициализированном Store - no-op
	assert.NoError(t, st.Close(ctx))
}

func TestConnect_MissingConfig(t *testing.T) {
	ctx := context.Background()

	_, err := Connect(ctx, "", "techindia")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = Connect(ctx, "mongodb://localhost:27017", "")
	assert.ErrorIs(t, err, ErrUnavailable)
}
