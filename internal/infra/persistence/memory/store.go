// Package memory is an in-process repository.DocumentStore. Documents are
// kept as BSON so reads and writes go through the same encoding the MongoDB
// store uses.
package memory

import (
	"bytes"
	"context"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	errDuplicateID  = errors.New("duplicate _id")
	errImmutableID  = errors.New("_id is immutable")
	errPathNotArray = errors.New("append target is not an array")
)

type store struct {
	mu          sync.Mutex
	collections map[string]*collection
}

// NewStore creates an empty store.
func NewStore() repository.DocumentStore {
	return &store{collections: make(map[string]*collection)}
}

func (s *store) Collection(name string) repository.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		c = &collection{name: name}
		s.collections[name] = c
	}

	return c
}

// collection keeps documents in insertion order.
type collection struct {
	name string

	mu   sync.RWMutex
	docs []bson.Raw
}

func (c *collection) InsertOne(ctx context.Context, doc any) (entity.ID, error) {
	if err := ctx.Err(); err != nil {
		return entity.NilID, errors.WithStack(err)
	}

	d, err := toDocument(doc)
	if err != nil {
		return entity.NilID, err
	}

	id, ok := documentID(d)
	if !ok {
		id = entity.NewID()
		d = append(bson.D{{Key: entity.FieldID, Value: id.ObjectID()}}, withoutID(d)...)
	}

	raw, err := bson.Marshal(d)
	if err != nil {
		return entity.NilID, errors.Wrapf(err, "encode %s document", c.name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(bson.M{entity.FieldID: id.ObjectID()}) >= 0 {
		return entity.NilID, domainerrors.NewDatabaseExecuteError(errDuplicateID, "failed to insert into "+c.name)
	}
	c.docs = append(c.docs, raw)

	return id, nil
}

func (c *collection) FindOne(ctx context.Context, filter repository.Filter, out any) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(filter)
	if i < 0 {
		return repository.ErrNoDocument
	}

	return errors.Wrapf(bson.Unmarshal(c.docs[i], out), "decode %s document", c.name)
}

func (c *collection) Find(ctx context.Context, filter repository.Filter, out any) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	sliceVal := reflect.ValueOf(out)
	if sliceVal.Kind() != reflect.Pointer || sliceVal.Elem().Kind() != reflect.Slice {
		return errors.Errorf("find %s: out must be a pointer to a slice, got %T", c.name, out)
	}
	sliceVal = sliceVal.Elem()
	elemType := sliceVal.Type().Elem()

	c.mu.RLock()
	defer c.mu.RUnlock()

	results := reflect.MakeSlice(sliceVal.Type(), 0, len(c.docs))
	for _, raw := range c.docs {
		if !matches(raw, filter) {
			continue
		}

		var target reflect.Value
		if elemType.Kind() == reflect.Pointer {
			target = reflect.New(elemType.Elem())
		} else {
			target = reflect.New(elemType)
		}
		if err := bson.Unmarshal(raw, target.Interface()); err != nil {
			return errors.Wrapf(err, "decode %s document", c.name)
		}
		if elemType.Kind() != reflect.Pointer {
			target = target.Elem()
		}
		results = reflect.Append(results, target)
	}
	sliceVal.Set(results)

	return nil
}

func (c *collection) ReplaceOne(ctx context.Context, filter repository.Filter, doc any) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	d, err := toDocument(doc)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(filter)
	if i < 0 {
		return 0, nil
	}

	existing, _ := documentIDFromRaw(c.docs[i])
	if id, ok := documentID(d); ok && id != existing {
		return 0, domainerrors.NewDatabaseExecuteError(errImmutableID, "failed to replace in "+c.name)
	}

	raw, err := bson.Marshal(append(bson.D{{Key: entity.FieldID, Value: existing.ObjectID()}}, withoutID(d)...))
	if err != nil {
		return 0, errors.Wrapf(err, "encode %s document", c.name)
	}
	c.docs[i] = raw

	return 1, nil
}

func (c *collection) DeleteOne(ctx context.Context, filter repository.Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(filter)
	if i < 0 {
		return 0, nil
	}
	c.docs = append(c.docs[:i], c.docs[i+1:]...)

	return 1, nil
}

func (c *collection) UpdateOne(ctx context.Context, filter repository.Filter, update repository.Append) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(filter)
	if i < 0 {
		return 0, nil
	}

	var d bson.D
	if err := bson.Unmarshal(c.docs[i], &d); err != nil {
		return 0, errors.Wrapf(err, "decode %s document", c.name)
	}

	updated, err := push(d, strings.Split(update.Field, "."), update.Value)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to update "+c.name+" at "+update.Field)
	}

	raw, err := bson.Marshal(updated)
	if err != nil {
		return 0, errors.Wrapf(err, "encode %s document", c.name)
	}
	c.docs[i] = raw

	return 1, nil
}

// indexOf returns the position of the first document matching filter, or -1.
func (c *collection) indexOf(filter map[string]any) int {
	for i, raw := range c.docs {
		if matches(raw, filter) {
			return i
		}
	}

	return -1
}

// matches compares every filter value with the stored value by encoded bytes.
func matches(raw bson.Raw, filter map[string]any) bool {
	for key, want := range filter {
		got, err := raw.LookupErr(strings.Split(key, ".")...)
		if err != nil {
			return false
		}

		if !valueEquals(got, want) {
			return false
		}
	}

	return true
}

// valueEquals compares numbers by value across int32, int64 and double, as
// MongoDB does; any other value must match in type and encoding.
func valueEquals(got bson.RawValue, want any) bool {
	wantType, wantData, err := bson.MarshalValue(want)
	if err != nil {
		return false
	}
	wantRaw := bson.RawValue{Type: wantType, Value: wantData}

	if gi, ok := integerOf(got); ok {
		if wi, ok := integerOf(wantRaw); ok {
			return gi == wi
		}
	}
	if gf, ok := numberOf(got); ok {
		if wf, ok := numberOf(wantRaw); ok {
			return gf == wf
		}

		return false
	}

	return got.Type == wantType && bytes.Equal(got.Value, wantData)
}

func integerOf(v bson.RawValue) (int64, bool) {
	switch v.Type {
	case bson.TypeInt32:
		return int64(v.Int32()), true
	case bson.TypeInt64:
		return v.Int64(), true
	default:
		return 0, false
	}
}

func numberOf(v bson.RawValue) (float64, bool) {
	if i, ok := integerOf(v); ok {
		return float64(i), true
	}
	if v.Type == bson.TypeDouble {
		return v.Double(), true
	}

	return 0, false
}

func toDocument(doc any) (bson.D, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "encode document")
	}

	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}

	return d, nil
}

func documentID(d bson.D) (entity.ID, bool) {
	for _, e := range d {
		if e.Key != entity.FieldID {
			continue
		}
		id, err := entity.ToID(e.Value)
		if err != nil || id.IsZero() {
			return entity.NilID, false
		}

		return id, true
	}

	return entity.NilID, false
}

func documentIDFromRaw(raw bson.Raw) (entity.ID, bool) {
	oid, ok := raw.Lookup(entity.FieldID).ObjectIDOK()
	if !ok {
		return entity.NilID, false
	}

	return entity.ID(oid), true
}

func withoutID(d bson.D) bson.D {
	out := make(bson.D, 0, len(d))
	for _, e := range d {
		if e.Key != entity.FieldID {
			out = append(out, e)
		}
	}

	return out
}

// push appends value to the array at path, creating the array when the
// final key is absent.
func push(node any, path []string, value any) (any, error) {
	key := path[0]
	last := len(path) == 1

	switch n := node.(type) {
	case bson.D:
		for i, e := range n {
			if e.Key != key {
				continue
			}
			if last {
				arr, ok := e.Value.(bson.A)
				if !ok && e.Value != nil {
					return nil, errors.WithStack(errPathNotArray)
				}
				n[i].Value = append(arr, value)

				return n, nil
			}

			child, err := push(e.Value, path[1:], value)
			if err != nil {
				return nil, err
			}
			n[i].Value = child

			return n, nil
		}
		if last {
			return append(n, primitive.E{Key: key, Value: bson.A{value}}), nil
		}

		return nil, errors.Errorf("path segment %q not found", key)
	case bson.A:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(n) {
			return nil, errors.Errorf("array index %q out of range", key)
		}
		if last {
			arr, ok := n[idx].(bson.A)
			if !ok && n[idx] != nil {
				return nil, errors.WithStack(errPathNotArray)
			}
			n[idx] = append(arr, value)

			return n, nil
		}

		child, err := push(n[idx], path[1:], value)
		if err != nil {
			return nil, err
		}
		n[idx] = child

		return n, nil
	default:
		return nil, errors.Errorf("path segment %q is not a document", key)
	}
}
