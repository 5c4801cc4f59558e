package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Store writes whole collections of one database.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Replace deletes every document of the collection and inserts docs in order.
// The two steps are not atomic: a failed insert leaves the collection partially filled.
func (s *Store) Replace(ctx context.Context, collection string, docs []any) (int, error) {
	coll := s.db.Collection(collection)
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrReplaceCollection, collection, err)
	}
	if len(docs) == 0 {
		return 0, nil
	}
	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrReplaceCollection, collection, err)
	}
	return len(res.InsertedIDs), nil
}
