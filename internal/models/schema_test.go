package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaDescriptors_CoversAllEntities(t *testing.T) {
	schemas := SchemaDescriptors()

	assert.Len(t, schemas, 4)
	for _, name := range []string{CollectionUser, CollectionGig, CollectionOrder, CollectionReview} {
		s, ok := schemas[name]
		assert.True(t, ok, "schema for %q must be present", name)
		assert.Equal(t, "object", s.Type)
		assert.Equal(t, name, s.Collection)
	}
}

// Опаковый идентификатор назначается хранилищем и в схему не входит.
func TestSchemaDescriptors_IDExcluded(t *testing.T) {
	for name, s := range SchemaDescriptors() {
		_, ok := s.Properties["id"]
		assert.False(t, ok, "id must not be part of %q schema", name)
	}
}

func TestSchemaDescriptors_Gig(t *testing.T) {
	gig := SchemaDescriptors()[CollectionGig]

	assert.ElementsMatch(t, []string{"title", "description", "category", "price", "seller_id"}, gig.Required)

	price := gig.Properties["price"]
	assert.Equal(t, "number", price.Type)
	assert.NotNil(t, price.Minimum)
	assert.Equal(t, float64(0), *price.Minimum)

	tags := gig.Properties["tags"]
	assert.Equal(t, "array", tags.Type)
	assert.Equal(t, "string", tags.Items)
	assert.Equal(t, []string{}, tags.Default)

	rating := gig.Properties["rating"]
	assert.Equal(t, float64(0), *rating.Minimum)
	assert.Equal(t, float64(5), *rating.Maximum)
	assert.Equal(t, float64(0), rating.Default)
}

func TestSchemaDescriptors_User(t *testing.T) {
	user := SchemaDescriptors()[CollectionUser]

	assert.ElementsMatch(t, []string{"name", "email", "role"}, user.Required)
	assert.Equal(t, "email", user.Properties["email"].Format)
	assert.Equal(t, []string{}, user.Properties["skills"].Default)
}

func TestSchemaDescriptors_Order(t *testing.T) {
	order := SchemaDescriptors()[CollectionOrder]

	assert.ElementsMatch(t, []string{"gig_id", "buyer_id", "seller_id"}, order.Required)
	assert.Equal(t, "pending", order.Properties["status"].Default)
	assert.False(t, order.Properties["status"].Required)
}

func TestSchemaDescriptors_Review(t *testing.T) {
	review := SchemaDescriptors()[CollectionReview]

	assert.ElementsMatch(t, []string{"gig_id", "user_id", "rating"}, review.Required)

	rating := review.Properties["rating"]
	assert.Equal(t, "integer", rating.Type)
	assert.Equal(t, float64(1), *rating.Minimum)
	assert.Equal(t, float64(5), *rating.Maximum)
}
