package content

import (
	_ "embed"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

//nolint:gochecknoglobals // compiled once, read-only afterwards
var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Validate checks a decoded content tree (as produced by encoding/json or yaml.v3)
// against the content schema. Every violation is collected; the result is a
// *ValidationError listing all of them, or nil.
func Validate(raw interface{}) (err error) {
	var schema *gojsonschema.Schema
	schema, err = compiledSchema()
	if err != nil {
		err = errors.Wrap(err, "failed to compile content schema")
		return err
	}

	var result *gojsonschema.Result
	result, err = schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		err = errors.Wrap(err, "failed to run content validation")
		return err
	}

	if result.Valid() {
		return err
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	sort.SliceStable(validationErr.Errors, func(i, j int) bool {
		a, b := validationErr.Errors[i], validationErr.Errors[j]
		if a.Field != b.Field {
			return a.Field < b.Field
		}
		return a.Message < b.Message
	})

	err = validationErr
	return err
}
