package onboarding

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	apperrors "github.com/wexinc/offerdesk/internal/errors"
)

const schemaName = "offer.json"

const offerSchema = `{
  "type": "object",
  "required": ["plan_type", "user_id", "expired", "price"],
  "properties": {
    "plan_type": {"type": "string", "enum": ["monthly", "yearly", "pay_as_you_go"]},
    "additions": {
      "type": "array",
      "uniqueItems": true,
      "items": {"type": "string", "enum": ["refundable", "on_demand", "negotiable"]}
    },
    "user_id": {"type": "integer", "minimum": 1},
    "expired": {"type": "string", "format": "date"},
    "price": {"type": "number", "exclusiveMinimum": 0}
  }
}`

// Field messages shown under the form inputs.
const (
	MsgPlanRequired    = "Plan type is required"
	MsgPlanInvalid     = "Invalid plan type"
	MsgAdditionInvalid = "Invalid addition"
	MsgUserRequired    = "User is required"
	MsgExpiryRequired  = "Expiration date is required"
	MsgExpiryInvalid   = "Expiration date must be YYYY-MM-DD"
	MsgPriceNumber     = "Price must be a number"
	MsgPriceRequired   = "Price is required"
	MsgPricePositive   = "Price must be positive"
)

var requiredMessages = map[string]string{
	"plan_type": MsgPlanRequired,
	"user_id":   MsgUserRequired,
	"expired":   MsgExpiryRequired,
	"price":     MsgPriceRequired,
}

var missingProp = regexp.MustCompile(`'([^']+)'`)

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaName, strings.NewReader(offerSchema)); err != nil {
			schemaErr = fmt.Errorf("onboarding: load schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaName)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("onboarding: compile schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// Validate checks the draft and returns one message per invalid field, or nil.
func Validate(d Draft) (apperrors.FieldErrors, error) {
	s, err := compiled()
	if err != nil {
		return nil, err
	}

	err = s.Validate(d.payload())
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, err
	}

	fields := apperrors.FieldErrors{}
	for _, leaf := range leaves(ve) {
		keyword := leaf.KeywordLocation[strings.LastIndexByte(leaf.KeywordLocation, '/')+1:]
		if keyword == "required" {
			for _, m := range missingProp.FindAllStringSubmatch(leaf.Message, -1) {
				if msg, ok := requiredMessages[m[1]]; ok {
					setOnce(fields, m[1], msg)
				}
			}
			continue
		}
		field := strings.SplitN(strings.TrimPrefix(leaf.InstanceLocation, "/"), "/", 2)[0]
		setOnce(fields, field, fieldMessage(field, keyword))
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return fields, nil
}

func fieldMessage(field, keyword string) string {
	switch field {
	case "plan_type":
		return MsgPlanInvalid
	case "additions":
		return MsgAdditionInvalid
	case "user_id":
		return MsgUserRequired
	case "expired":
		return MsgExpiryInvalid
	case "price":
		if keyword == "type" {
			return MsgPriceNumber
		}
		return MsgPricePositive
	default:
		return "Invalid value"
	}
}

func setOnce(fields apperrors.FieldErrors, field, msg string) {
	if _, ok := fields[field]; !ok {
		fields[field] = msg
	}
}

func leaves(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var out []*jsonschema.ValidationError
	for _, c := range ve.Causes {
		out = append(out, leaves(c)...)
	}
	return out
}
