package listings

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a listing does not exist in the source store.
var ErrNotFound = errors.New("listing not found")

// ErrInvalidID is returned when a listing identifier is not a valid hex
// ObjectID.
var ErrInvalidID = errors.New("invalid listing id")

// Source provides read access to the property listing store. The listing
// database is the source of truth; this system only derives indexed
// documents from it.
type Source interface {
	// FindAll returns every listing in the store.
	FindAll(ctx context.Context) ([]Listing, error)

	// FindByID returns the listing with the given hex identifier, or
	// ErrNotFound.
	FindByID(ctx context.Context, id string) (*Listing, error)
}
