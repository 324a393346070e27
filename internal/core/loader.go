package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON key, which is what the user sees in the input file.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// LoadUsers reads the users document at path.
func LoadUsers(path string) ([]User, error) {
	records, err := loadRecords[UserRecord](path)
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(records))
	for _, r := range records {
		users = append(users, r.ToUser())
	}
	return users, nil
}

// LoadCompanies reads the companies document at path.
func LoadCompanies(path string) ([]Company, error) {
	records, err := loadRecords[CompanyRecord](path)
	if err != nil {
		return nil, err
	}
	companies := make([]Company, 0, len(records))
	for _, r := range records {
		companies = append(companies, r.ToCompany())
	}
	return companies, nil
}

// loadRecords decodes a JSON array of T from path and checks every element
// for presence of its required keys. The file is closed before returning.
func loadRecords[T any](path string) ([]T, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, decodeError(path, err)
	}

	for i := range records {
		if err := validate.Struct(&records[i]); err != nil {
			return nil, recordError(path, i, err)
		}
	}
	return records, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// decodeError classifies a json.Unmarshal failure. Malformed text is a
// ParseError; well-formed JSON of the wrong shape is a ValidationError.
func decodeError(path string, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{Path: path, Err: err}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return &ValidationError{Path: path, Index: -1, Field: "document", Reason: "must be an array of objects"}
		}
		return &ValidationError{
			Path:   path,
			Index:  -1,
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("must be a %s, got %s", jsonKind(typeErr.Type), typeErr.Value),
		}
	}
	// Anything else comes from a field's own decoder, e.g. a token amount
	// that is not a number.
	return &ValidationError{Path: path, Index: -1, Field: "value", Reason: err.Error()}
}

func recordError(path string, index int, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		reason := "is missing"
		if fe.Tag() != "required" {
			reason = fmt.Sprintf("failed %q check", fe.Tag())
		}
		return &ValidationError{Path: path, Index: index, Field: fe.Field(), Reason: reason}
	}
	return fmt.Errorf("failed to validate %s record %d: %w", path, index, err)
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
