package jsonschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Result is the outcome of validating a sample.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Verify compiles schema and validates sample against it. sample may be a
// value tree or any JSON-marshalable value. The returned error is reserved
// for schemas or samples that cannot be processed at all.
func Verify(schema *jsonschema.Schema, sample any) (*Result, error) {
	compiled, err := compile(schema)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(sample)
	if err != nil {
		return nil, fmt.Errorf("marshaling sample: %w", err)
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("unmarshaling sample: %w", err)
	}

	if err := compiled.Validate(value); err != nil {
		return &Result{Valid: false, Errors: validationMessages(err)}, nil
	}
	return &Result{Valid: true}, nil
}

// compile converts schema to its plain JSON form and compiles it.
func compile(schema *jsonschema.Schema) (*validator.Schema, error) {
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}

	var schemaValue any
	if err := json.Unmarshal(schemaJSON, &schemaValue); err != nil {
		return nil, fmt.Errorf("unmarshaling schema: %w", err)
	}

	compiler := validator.NewCompiler()
	// doc must be a decoded JSON value, not an io.Reader
	if err := compiler.AddResource("schema.json", schemaValue); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return compiled, nil
}

var printer = message.NewPrinter(language.English)

// validationMessages flattens a validation error into sorted, deduplicated
// "location: message" lines.
func validationMessages(err error) []string {
	var verr *validator.ValidationError
	if !errors.As(err, &verr) {
		return []string{err.Error()}
	}

	var out []string
	collect(verr, &out)
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) == 0 {
		return []string{err.Error()}
	}
	return out
}

// collect appends leaf errors; wrapper kinds such as $ref are skipped.
func collect(err *validator.ValidationError, out *[]string) {
	if err.ErrorKind != nil && len(err.Causes) == 0 {
		msg := err.ErrorKind.LocalizedString(printer)
		if !strings.HasPrefix(msg, "$ref ") && !strings.HasPrefix(msg, "doesn't validate with") {
			if len(err.InstanceLocation) > 0 {
				msg = "/" + strings.Join(err.InstanceLocation, "/") + ": " + msg
			}
			*out = append(*out, msg)
		}
	}
	for _, cause := range err.Causes {
		collect(cause, out)
	}
}
