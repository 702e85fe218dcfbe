package model

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is the flat field map a record becomes inside the store. The
// record's identifier never appears in it; the store keys the document
// by the identifier instead.
type Document map[string]any

// idFields maps each collection to the record field holding its document
// key. Fixed at startup, read-only afterwards.
var idFields = map[string]string{
	"users":        "userId",
	"campuses":     "campusId",
	"projects":     "projectId",
	"testRequests": "requestId",
	"bugs":         "reportId",
}

func IDField(collection string) string {
	return idFields[collection]
}

// ToDocument copies every exported field of record except idField into a
// document, naming fields by their bson tag. time.Time values become
// store timestamps; fields tagged omitempty are dropped at their zero
// value; everything else passes through unchanged, nested values included.
func ToDocument(record any, idField string) (Document, error) {
	rv := reflect.ValueOf(record)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("converter: expected struct record, got %T", record)
	}

	doc := Document{}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitempty := bsonName(field)
		if name == "" || name == idField {
			continue
		}
		value := rv.Field(i)
		if omitempty && value.IsZero() {
			continue
		}
		if t, ok := value.Interface().(time.Time); ok {
			doc[name] = primitive.NewDateTimeFromTime(t)
			continue
		}
		doc[name] = value.Interface()
	}
	return doc, nil
}

// FromDocument fills the record pointed to by target from doc, setting
// its idField to docID and converting store timestamps back to time.Time.
// Document keys with no matching field are ignored.
func FromDocument(doc Document, docID, idField string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("converter: target must be a pointer to struct, got %T", target)
	}
	sv := rv.Elem()

	fields := fieldsByBSONName(sv.Type())
	if idx, ok := fields[idField]; ok {
		if err := assignValue(sv.Field(idx), docID); err != nil {
			return fmt.Errorf("converter: field %q: %w", idField, err)
		}
	}
	for name, value := range doc {
		idx, ok := fields[name]
		if !ok {
			continue
		}
		if err := assignValue(sv.Field(idx), value); err != nil {
			return fmt.Errorf("converter: field %q: %w", name, err)
		}
	}
	return nil
}

func bsonName(field reflect.StructField) (name string, omitempty bool) {
	tag := field.Tag.Get("bson")
	if tag == "-" {
		return "", false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = strings.ToLower(field.Name[:1]) + field.Name[1:]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty
}

func fieldsByBSONName(rt reflect.Type) map[string]int {
	fields := make(map[string]int, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		if name, _ := bsonName(field); name != "" {
			fields[name] = i
		}
	}
	return fields
}

// assignValue sets one struct field from a document value. Values read
// back through the Mongo driver arrive as bson.M / primitive.A rather
// than the types that were written, so maps and slices are rebuilt
// recursively.
func assignValue(field reflect.Value, value any) error {
	if value == nil {
		return nil
	}

	if field.Type() == reflect.TypeOf(time.Time{}) {
		switch v := value.(type) {
		case primitive.DateTime:
			field.Set(reflect.ValueOf(v.Time().UTC()))
			return nil
		case time.Time:
			field.Set(reflect.ValueOf(v))
			return nil
		}
		return fmt.Errorf("cannot decode %T into time.Time", value)
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(field.Type()) {
		field.Set(rv)
		return nil
	}
	if rv.Type().ConvertibleTo(field.Type()) && rv.Kind() == field.Kind() {
		field.Set(rv.Convert(field.Type()))
		return nil
	}

	switch field.Kind() {
	case reflect.Pointer:
		elem := reflect.New(field.Type().Elem())
		if err := assignValue(elem.Elem(), value); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	case reflect.Struct:
		m, ok := asMap(value)
		if !ok {
			return fmt.Errorf("cannot decode %T into %s", value, field.Type())
		}
		fields := fieldsByBSONName(field.Type())
		for name, v := range m {
			if idx, found := fields[name]; found {
				if err := assignValue(field.Field(idx), v); err != nil {
					return err
				}
			}
		}
		return nil
	case reflect.Slice:
		items, ok := asSlice(value)
		if !ok {
			return fmt.Errorf("cannot decode %T into %s", value, field.Type())
		}
		out := reflect.MakeSlice(field.Type(), len(items), len(items))
		for i, item := range items {
			if err := assignValue(out.Index(i), item); err != nil {
				return err
			}
		}
		field.Set(out)
		return nil
	}
	return fmt.Errorf("cannot decode %T into %s", value, field.Type())
}

func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case bson.M:
		return v, true
	case Document:
		return v, true
	}
	return nil, false
}

func asSlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case primitive.A:
		return v, true
	}
	// Typed slices written by this process (e.g. RewardSet into []Reward)
	// come back unchanged from the in-memory store.
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
