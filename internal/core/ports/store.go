package ports

import "context"

// Collection names used across the store.
const (
	CollectionUsers    = "users"
	CollectionMovies   = "movies"
	CollectionComments = "comments"
	CollectionAudit    = "audit"
)

// CollectionStore is the persistence contract for whole-collection reads and
// writes. ReadAll decodes the entire collection into out (a pointer to a
// slice), returning an empty collection when it does not exist yet. WriteAll
// replaces the collection with items. Iteration order is insertion order;
// list endpoints expose it unchanged.
type CollectionStore interface {
	ReadAll(ctx context.Context, collection string, out any) error
	WriteAll(ctx context.Context, collection string, items any) error
}
