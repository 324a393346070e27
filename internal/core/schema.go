package core

import (
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"
)

// UsersSchema returns the JSON Schema of the users document: an array of UserRecord.
func UsersSchema() *jsonschema.Schema {
	return reflectSchema([]UserRecord{}, "Users", "Users whose token balances are topped up")
}

// CompaniesSchema returns the JSON Schema of the companies document.
func CompaniesSchema() *jsonschema.Schema {
	return reflectSchema([]CompanyRecord{}, "Companies", "Companies and the top-up each grants its active users")
}

func reflectSchema(v any, title, description string) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
		Mapper:                    decimalMapper,
	}
	schema := reflector.Reflect(v)
	schema.Title = title
	schema.Description = description
	return schema
}

// decimalMapper describes decimal amounts as plain JSON numbers; reflection
// alone would expose decimal.Decimal as an empty object.
func decimalMapper(t reflect.Type) *jsonschema.Schema {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == reflect.TypeOf(decimal.Decimal{}) {
		return &jsonschema.Schema{Type: "number"}
	}
	return nil
}
