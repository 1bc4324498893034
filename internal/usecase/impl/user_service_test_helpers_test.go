package impl

import (
	"io"
	"log/slog"
	"testing"

	"tracker/internal/domain/validation"
	mockRepo "tracker/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// storeFixtures is a mocked store whose every collection is the same mock.
type storeFixtures struct {
	params RecordServiceParams
	store  *mockRepo.MockDocumentStore
	coll   *mockRepo.MockCollection
}

func newStoreFixtures(t *testing.T) storeFixtures {
	store := mockRepo.NewMockDocumentStore(t)
	coll := mockRepo.NewMockCollection(t)

	return storeFixtures{
		params: RecordServiceParams{
			Store:     store,
			Validator: validation.New(),
			Logger:    newDiscardLogger(),
		},
		store: store,
		coll:  coll,
	}
}

// expectCollection routes store.Collection(name) to the collection mock.
func (f storeFixtures) expectCollection(name string) {
	f.store.EXPECT().Collection(name).Return(f.coll)
}

func ptr[T any](v T) *T { return &v }
