package entity

import "strconv"

// IdentityKind tags which identifier space an Identity belongs to.
type IdentityKind int

const (
	// HexIdentity is the primary storage identity (ObjectID).
	HexIdentity IdentityKind = iota + 1
	// NumericIdentity is the externally supplied Telegram user id.
	NumericIdentity
)

const (
	// FieldID is the storage key of the primary identity.
	FieldID = "_id"
	// FieldTelegramID is the storage key of the numeric identity.
	FieldTelegramID = "tg_id"
)

// Identity addresses a document by one of its two identifier spaces. The
// spaces never mix: a numeric identity is never read as hex and vice versa.
type Identity struct {
	kind    IdentityKind
	id      ID
	numeric int64
}

// ByID addresses a document by its primary identity.
func ByID(id ID) Identity {
	return Identity{kind: HexIdentity, id: id}
}

// ByTelegramID addresses a user by its Telegram id.
func ByTelegramID(tgID int64) Identity {
	return Identity{kind: NumericIdentity, numeric: tgID}
}

// Kind returns the identifier space.
func (i Identity) Kind() IdentityKind {
	return i.kind
}

// Field returns the canonical storage key and value for exact-match filters.
func (i Identity) Field() (string, any) {
	if i.kind == NumericIdentity {
		return FieldTelegramID, i.numeric
	}

	return FieldID, i.id
}

func (i Identity) String() string {
	if i.kind == NumericIdentity {
		return "tg:" + strconv.FormatInt(i.numeric, 10)
	}

	return i.id.Hex()
}
