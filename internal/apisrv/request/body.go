package request

import (
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New(validator.WithRequiredStructEnabled())

// MustCompileSchema compiles an endpoint body schema at package init. The
// schemas set additionalProperties: false, so unknown-shape payloads are
// rejected at this single boundary rather than by scattered checks.
func MustCompileSchema(id, doc string) *jsonschema.Schema {
	schema, err := jsonschema.CompileString(id, doc)
	if err != nil {
		panic(err)
	}
	return schema
}

// DecodeBody reads the request body, checks it against the endpoint schema
// when one is given, decodes into out, and runs struct validation. All
// failures map to 400.
func DecodeBody(r *http.Request, schema *jsonschema.Schema, out any) error {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		return ErrInvalidBody.New("request method carries no body")
	}
	if r.Body == nil {
		return ErrInvalidBody.New("empty request body")
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil || len(raw) == 0 {
		return ErrInvalidBody.New("empty request body")
	}
	if schema != nil {
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return ErrInvalidBody.New("request body is not valid json")
		}
		if err := schema.Validate(doc); err != nil {
			return ErrInvalidBody.New("request body failed schema validation").Err(err).SetExpandError(true)
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return ErrInvalidBody.New("request body does not match expected shape")
	}
	if err := validate.Struct(out); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return ErrInvalidBody.New(fieldErrs[0].Field() + " is required or invalid")
		}
		return ErrInvalidBody
	}
	return nil
}
