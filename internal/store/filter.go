package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MatchKind - вид сопоставления поля в фильтре.
type MatchKind int

const (
	// MatchExact - точное (байтовое) равенство значения поля.
	MatchExact MatchKind = iota
	// MatchContainsFold - вхождение подстроки без учета регистра.
	// Это предикат по шаблону, не полнотекстовый поиск: без
	// токенизации и ранжирования.
	MatchContainsFold
)

// Condition - одна тройка (поле, вид сопоставления, значение).
type Condition struct {
	Field string
	Kind  MatchKind
	Value string
}

// BuildFilter переводит условия в нативный предикат MongoDB.
// Условия соединяются логическим AND; пустой список дает пустой
// фильтр (все документы). Значение для MatchContainsFold
// экранируется, чтобы оно сопоставлялось как литеральная подстрока,
// а не как регулярное выражение.
func BuildFilter(conds []Condition) bson.M {
	filter := bson.M{}

	for _, c := range conds {
		switch c.Kind {
		case MatchContainsFold:
			filter[c.Field] = primitive.Regex{
				Pattern: regexp.QuoteMeta(c.Value),
				Options: "i",
			}
		default:
			filter[c.Field] = c.Value
		}
	}

	return filter
}
