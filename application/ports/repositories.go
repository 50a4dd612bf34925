package ports

import (
	"context"

	"customers-backend/domain"
)

// CustomerRepository maps domain operations onto the record store, hiding
// table-specific key and attribute naming. There is one production
// implementation on DynamoDB and one in-memory implementation for tests.
//
// Lookups return (nil, nil) when nothing matches. Update requires the row to
// already exist and reports its absence via the distinguished not-found
// error; every other store failure propagates untouched.
type CustomerRepository interface {
	// FindOne performs a point lookup by the generated identifier.
	FindOne(ctx context.Context, uuid string) (*domain.Customer, error)

	// FindByEmail and FindByUsername resolve a customer through the
	// secondary indexes.
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindByUsername(ctx context.Context, username string) (*domain.Customer, error)

	// FindAndCount returns every record regardless of enabled state, plus
	// the scanned item count.
	FindAndCount(ctx context.Context) ([]domain.Customer, int, error)

	// Save writes the customer unconditionally, overwrite-or-insert.
	Save(ctx context.Context, customer *domain.Customer) error

	// Update applies a partial attribute update to an existing row.
	Update(ctx context.Context, uuid string, changes map[string]interface{}) error

	// Delete hard-deletes the row. Not used by the lifecycle handlers,
	// which only ever disable.
	Delete(ctx context.Context, uuid string) error
}
