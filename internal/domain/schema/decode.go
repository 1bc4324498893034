package schema

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/errors"

	"github.com/go-viper/mapstructure/v2"
)

// bodyField is the field path used for errors that concern the payload as a whole.
const bodyField = "body"

// timestampLayouts are tried in order; layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

var (
	timeType = reflect.TypeOf(time.Time{})
	idType   = reflect.TypeOf(entity.ID{})
)

// Parse reads a JSON object. Numbers are kept as json.Number so integers survive intact.
func Parse(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:  bodyField,
			Reason: "invalid JSON: " + err.Error(),
		})
	}
	if payload == nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:  bodyField,
			Reason: "must be a JSON object",
		})
	}

	return payload, nil
}

// Decode normalizes payload with s and decodes it into out, which must be a
// pointer to a struct tagged with json names. Type mismatches, unparseable
// timestamps and, for strict schemas, undeclared keys come back as a
// *domainerrors.ValidationError.
func Decode(s *Schema, payload map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			timestampHook,
			identifierHook,
			stringHook,
		),
		ErrorUnused: s.Strict,
		Squash:      true,
		TagName:     "json",
		Result:      out,
	})
	if err != nil {
		return errors.Wrap(err, "build decoder")
	}

	if err := dec.Decode(s.ToInternal(payload)); err != nil {
		return decodeError(err)
	}

	return nil
}

// Encode renders v (an entity or a slice of entities) in wire form.
func Encode(s *Schema, v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", s.Name)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, errors.Wrapf(err, "encode %s", s.Name)
	}

	switch doc := generic.(type) {
	case map[string]any:
		return s.ToExternal(doc), nil
	case []any:
		out := make([]any, len(doc))
		for i, item := range doc {
			if obj, ok := item.(map[string]any); ok {
				out[i] = s.ToExternal(obj)
			} else {
				out[i] = item
			}
		}

		return out, nil
	default:
		return generic, nil
	}
}

func timestampHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != timeType {
		return data, nil
	}

	raw, ok := data.(string)
	if !ok {
		return data, nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}

	return nil, errors.Errorf("invalid datetime %q", raw)
}

// stringHook refuses JSON numbers for string fields; mapstructure would
// otherwise accept json.Number as a string.
func stringHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}

	if n, ok := data.(json.Number); ok {
		return nil, errors.Errorf("expected a string, got number %s", n.String())
	}

	return data, nil
}

func identifierHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != idType {
		return data, nil
	}

	return entity.ToID(data)
}

// decodeError turns mapstructure's joined errors into one field error per
// failing key. Keys are reported by their dotted path, e.g. "conversations[0].messages[1].time".
func decodeError(err error) error {
	var fields []domainerrors.FieldError
	collectFieldErrors(err, &fields)

	if len(fields) == 0 {
		fields = append(fields, domainerrors.FieldError{Field: bodyField, Reason: err.Error()})
	}

	return domainerrors.NewValidationError(fields...)
}

func collectFieldErrors(err error, fields *[]domainerrors.FieldError) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collectFieldErrors(e, fields)
		}

		return
	}

	var decodeErr *mapstructure.DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Unwrap() == nil {
		*fields = append(*fields, domainerrors.FieldError{Field: bodyField, Reason: err.Error()})

		return
	}

	inner := decodeErr.Unwrap()
	if _, ok := inner.(interface{ Unwrap() []error }); ok {
		collectFieldErrors(inner, fields)

		return
	}

	field := decodeErr.Name()
	if field == "" {
		field = bodyField
	}
	*fields = append(*fields, domainerrors.FieldError{Field: field, Reason: inner.Error()})
}
