package models

import (
	"reflect"
	"strconv"
	"strings"
)

// FieldSchema описывает одно поле сущности для эндпоинта интроспекции.
type FieldSchema struct {
	Type        string      `json:"type"`
	Items       string      `json:"items,omitempty"`
	Required    bool        `json:"required"`
	Default     interface{} `json:"default,omitempty"`
	Minimum     *float64    `json:"minimum,omitempty"`
	Maximum     *float64    `json:"maximum,omitempty"`
	Format      string      `json:"format,omitempty"`
	Description string      `json:"description,omitempty"`
}

// EntitySchema - структурный дескриптор одной сущности (коллекции).
type EntitySchema struct {
	Title      string                 `json:"title"`
	Collection string                 `json:"collection"`
	Type       string                 `json:"type"`
	Properties map[string]FieldSchema `json:"properties"`
	Required   []string               `json:"required"`
}

// SchemaDescriptors возвращает дескрипторы всех четырех сущностей,
// построенные рефлексией по тегам моделей. Ключ - lowercase имя
// сущности, он же имя коллекции.
func SchemaDescriptors() map[string]EntitySchema {
	return map[string]EntitySchema{
		CollectionUser:   describeEntity("User", CollectionUser, reflect.TypeOf(User{})),
		CollectionGig:    describeEntity("Gig", CollectionGig, reflect.TypeOf(Gig{})),
		CollectionOrder:  describeEntity("Order", CollectionOrder, reflect.TypeOf(Order{})),
		CollectionReview: describeEntity("Review", CollectionReview, reflect.TypeOf(Review{})),
	}
}

func describeEntity(title, collection string, t reflect.Type) EntitySchema {
	schema := EntitySchema{
		Title:      title,
		Collection: collection,
		Type:       "object",
		Properties: make(map[string]FieldSchema),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		name := jsonName(field)
		if name == "" || name == "id" {
			// Опаковый идентификатор назначается хранилищем,
			// в схему создания он не входит.
			continue
		}

		fs := describeField(field)
		schema.Properties[name] = fs
		if fs.Required {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema
}

func describeField(field reflect.StructField) FieldSchema {
	fs := FieldSchema{
		Description: field.Tag.Get("desc"),
	}

	ft := field.Type
	if ft.Kind() == reflect.Ptr {
		ft = ft.Elem()
	}

	switch ft.Kind() {
	case reflect.String:
		fs.Type = "string"
	case reflect.Float32, reflect.Float64:
		fs.Type = "number"
	case reflect.Int, reflect.Int32, reflect.Int64:
		fs.Type = "integer"
	case reflect.Bool:
		fs.Type = "boolean"
	case reflect.Slice:
		fs.Type = "array"
		fs.Items = kindName(ft.Elem().Kind())
	default:
		fs.Type = "object"
	}

	for _, rule := range strings.Split(field.Tag.Get("validate"), ",") {
		switch {
		case rule == "required":
			fs.Required = true
		case rule == "email":
			fs.Format = "email"
		case strings.HasPrefix(rule, "gte="):
			if v, err := strconv.ParseFloat(rule[4:], 64); err == nil {
				fs.Minimum = &v
			}
		case strings.HasPrefix(rule, "lte="):
			if v, err := strconv.ParseFloat(rule[4:], 64); err == nil {
				fs.Maximum = &v
			}
		}
	}

	if def, ok := field.Tag.Lookup("default"); ok {
		fs.Default = parseDefault(def, fs.Type)
	}

	return fs
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	return strings.SplitN(tag, ",", 2)[0]
}

func kindName(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return "string"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "integer"
	default:
		return "object"
	}
}

func parseDefault(raw, typ string) interface{} {
	switch typ {
	case "array":
		return []string{}
	case "number":
		v, _ := strconv.ParseFloat(raw, 64)
		return v
	case "integer":
		v, _ := strconv.Atoi(raw)
		return v
	default:
		return raw
	}
}
