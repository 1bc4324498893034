// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNoDocument is returned by FindOne when no document matches the filter.
var ErrNoDocument = errors.New("no document matches filter")

// Filter is an exact-match filter: every key must equal its value.
// Dotted keys address nested fields.
type Filter map[string]any

// ByIdentity builds the filter addressing a single document.
func ByIdentity(identity entity.Identity) Filter {
	key, value := identity.Field()

	return Filter{key: value}
}

// Append pushes Value to the end of the array at Field (dotted path allowed,
// e.g. "conversations.2.messages"). A single append is atomic per document.
type Append struct {
	Field string
	Value any
}

// DocumentStore hands out named collections. One store is shared by the
// whole process and never mutated after startup.
type DocumentStore interface {
	Collection(name string) Collection
}

// Collection is the storage capability set over one named collection.
// There are no transactions and no joins.
type Collection interface {
	// InsertOne persists doc and returns its identity, generating one if doc has none.
	InsertOne(ctx context.Context, doc any) (entity.ID, error)

	// FindOne decodes the first matching document into out, or returns ErrNoDocument.
	FindOne(ctx context.Context, filter Filter, out any) error

	// Find decodes every matching document into out, which must point to a slice.
	Find(ctx context.Context, filter Filter, out any) error

	// ReplaceOne replaces the first matching document and returns the matched count.
	ReplaceOne(ctx context.Context, filter Filter, doc any) (int64, error)

	// DeleteOne deletes the first matching document and returns the deleted count.
	DeleteOne(ctx context.Context, filter Filter) (int64, error)

	// UpdateOne applies a field append to the first matching document and
	// returns the matched count.
	UpdateOne(ctx context.Context, filter Filter, update Append) (int64, error)
}
