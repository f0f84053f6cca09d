package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilter_Empty(t *testing.T) {
	assert.Equal(t, bson.M{}, BuildFilter(nil))
	assert.Equal(t, bson.M{}, BuildFilter([]Condition{}))
}

func TestBuildFilter_Exact(t *testing.T) {
	filter := BuildFilter([]Condition{
		{Field: "category", Kind: MatchExact, Value: "Design"},
	})

	assert.Equal(t, bson.M{"category": "Design"}, filter)
}

func TestBuildFilter_ContainsFold(t *testing.T) {
	filter := BuildFilter([]Condition{
		{Field: "title", Kind: MatchContainsFold, Value: "web"},
	})

	regex, ok := filter["title"].(primitive.Regex)
	assert.True(t, ok, "contains-условие должно переводиться в regex-предикат")
	assert.Equal(t, "web", regex.Pattern)
	assert.Equal(t, "i", regex.Options)
}

// Значение сопоставляется как литеральная подстрока: спецсимволы
// регулярных выражений экранируются.
func TestBuildFilter_ContainsFold_EscapesMetaChars(t *testing.T) {
	filter := BuildFilter([]Condition{
		{Field: "title", Kind: MatchContainsFold, Value: "c++ (pro)"},
	})

	regex := filter["title"].(primitive.Regex)
	assert.Equal(t, `c\+\+ \(pro\)`, regex.Pattern)
}

func TestBuildFilter_CombinesWithAnd(t *testing.T) {
	filter := BuildFilter([]Condition{
		{Field: "category", Kind: MatchExact, Value: "Design"},
		{Field: "title", Kind: MatchContainsFold, Value: "logo"},
	})

	assert.Len(t, filter, 2)
	assert.Equal(t, "Design", filter["category"])
	assert.IsType(t, primitive.Regex{}, filter["title"])
}
