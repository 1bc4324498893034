package mongodb

import (
	"context"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// store implements repository.DocumentStore over one database.
type store struct {
	db *mongo.Database
}

// NewStore is the constructor for the MongoDB document store.
func NewStore(client *mongo.Client, cfg *config.Config) repository.DocumentStore {
	return NewStoreForDatabase(client.Database(cfg.Mongo.Database))
}

// NewStoreForDatabase wraps an already selected database.
func NewStoreForDatabase(db *mongo.Database) repository.DocumentStore {
	return &store{db: db}
}

func (s *store) Collection(name string) repository.Collection {
	return &collection{name: name, coll: s.db.Collection(name)}
}

// collection implements repository.Collection.
type collection struct {
	name string
	coll *mongo.Collection
}

func (c *collection) InsertOne(ctx context.Context, doc any) (entity.ID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return entity.NilID, domainerrors.NewDatabaseExecuteError(err, "failed to insert into "+c.name)
	}

	id, err := entity.ToID(res.InsertedID)
	if err != nil {
		return entity.NilID, errors.Wrapf(err, "unexpected inserted id in %s", c.name)
	}

	return id, nil
}

func (c *collection) FindOne(ctx context.Context, filter repository.Filter, out any) error {
	err := c.coll.FindOne(ctx, toBSON(filter)).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repository.ErrNoDocument
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find in "+c.name)
	}

	return nil
}

func (c *collection) Find(ctx context.Context, filter repository.Filter, out any) error {
	cursor, err := c.coll.Find(ctx, toBSON(filter))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to query "+c.name)
	}

	if err := cursor.All(ctx, out); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to read "+c.name)
	}

	return nil
}

func (c *collection) ReplaceOne(ctx context.Context, filter repository.Filter, doc any) (int64, error) {
	res, err := c.coll.ReplaceOne(ctx, toBSON(filter), doc)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to replace in "+c.name)
	}

	return res.MatchedCount, nil
}

func (c *collection) DeleteOne(ctx context.Context, filter repository.Filter) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, toBSON(filter))
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete from "+c.name)
	}

	return res.DeletedCount, nil
}

func (c *collection) UpdateOne(ctx context.Context, filter repository.Filter, update repository.Append) (int64, error) {
	push := bson.M{"$push": bson.M{update.Field: update.Value}}

	res, err := c.coll.UpdateOne(ctx, toBSON(filter), push)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to update "+c.name)
	}

	return res.MatchedCount, nil
}

func toBSON(filter repository.Filter) bson.M {
	if filter == nil {
		return bson.M{}
	}

	return bson.M(filter)
}
