package entity

import (
	"regexp"
	"strings"

	"tracker/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when text is not a 24 character hex identifier.
var ErrInvalidID = errors.New("invalid identifier")

// hexIDPattern accepts either case; ParseID lowercases, so IDs always render
// in lowercase.
var hexIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ID is the primary identity of a stored document: a MongoDB ObjectID.
// The zero value means "not assigned yet"; stores generate one on insert.
type ID primitive.ObjectID

// NilID is the unassigned identity.
var NilID ID

// NewID generates a fresh identity.
func NewID() ID {
	return ID(primitive.NewObjectID())
}

// ParseID parses the external (hex) form of an identity.
func ParseID(text string) (ID, error) {
	if !hexIDPattern.MatchString(text) {
		return NilID, errors.Wrapf(ErrInvalidID, "%q", text)
	}

	oid, err := primitive.ObjectIDFromHex(strings.ToLower(text))
	if err != nil {
		return NilID, errors.Wrapf(ErrInvalidID, "%q", text)
	}

	return ID(oid), nil
}

// ToID converts any supported representation into an ID. Already typed
// values pass through untouched.
func ToID(v any) (ID, error) {
	switch t := v.(type) {
	case ID:
		return t, nil
	case *ID:
		if t == nil {
			return NilID, errors.Wrap(ErrInvalidID, "nil")
		}

		return *t, nil
	case primitive.ObjectID:
		return ID(t), nil
	case string:
		return ParseID(t)
	default:
		return NilID, errors.Wrapf(ErrInvalidID, "unsupported type %T", v)
	}
}

// IsZero reports whether the identity is unassigned. It also drives bson's
// omitempty so inserts without identity get one from the store.
func (id ID) IsZero() bool {
	return primitive.ObjectID(id).IsZero()
}

// Hex renders the canonical external form: 24 lowercase hex characters.
func (id ID) Hex() string {
	return primitive.ObjectID(id).Hex()
}

func (id ID) String() string {
	return id.Hex()
}

// ObjectID returns the driver representation.
func (id ID) ObjectID() primitive.ObjectID {
	return primitive.ObjectID(id)
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed

	return nil
}

// MarshalBSONValue stores the identity as a native ObjectID.
func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	t, data, err := bson.MarshalValue(primitive.ObjectID(id))

	return t, data, errors.WithStack(err)
}

// UnmarshalBSONValue reads a native ObjectID or its hex string form.
func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bson.TypeObjectID:
		*id = ID(raw.ObjectID())

		return nil
	case bson.TypeString:
		parsed, err := ParseID(raw.StringValue())
		if err != nil {
			return err
		}
		*id = parsed

		return nil
	case bson.TypeNull, bson.TypeUndefined:
		*id = NilID

		return nil
	default:
		return errors.Wrapf(ErrInvalidID, "cannot decode bson %s", t)
	}
}
