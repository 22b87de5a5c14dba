package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store implements the CollectionStore port against a MongoDB database,
// selected with STORE_DRIVER=mongo. It keeps the same whole-collection
// read/replace contract as the jsonfile driver so repositories stay
// driver-agnostic; natural ($natural) order preserves insertion order for
// the query engine.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Name identifies the store in readiness probes.
func (s *Store) Name() string { return "mongodb" }

// Check pings the underlying deployment.
func (s *Store) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return s.db.Client().Ping(ctx, nil)
}

// ReadAll decodes every document in the collection into out in insertion order.
func (s *Store) ReadAll(ctx context.Context, collection string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("read collection %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode collection %s: %w", collection, err)
	}
	return nil
}

// WriteAll replaces the whole collection with items. The drop-then-insert
// sequence mirrors the jsonfile driver's rewrite of the backing file; the
// repository layer serializes writers per collection.
func (s *Store) WriteAll(ctx context.Context, collection string, items any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	col := s.db.Collection(collection)
	if _, err := col.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear collection %s: %w", collection, err)
	}

	docs, err := toDocuments(items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}
	if len(docs) == 0 {
		return nil
	}

	if _, err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}

// toDocuments converts a typed slice into []interface{} for InsertMany.
func toDocuments(items any) ([]interface{}, error) {
	raw, err := bson.Marshal(bson.M{"items": items})
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Items []bson.Raw `bson:"items"`
	}
	if err := bson.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}

	docs := make([]interface{}, len(wrapper.Items))
	for i, d := range wrapper.Items {
		docs[i] = d
	}
	return docs, nil
}
