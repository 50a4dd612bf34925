package memory

import (
	"context"
	"fmt"
	"sync"

	"customers-backend/application/ports"
	"customers-backend/domain"
	apperrors "customers-backend/pkg/errors"
)

// CustomerRepository is an in-memory ports.CustomerRepository used by tests
// and local experiments. It mirrors the table semantics: keyed by uuid, with
// linear lookups standing in for the secondary indexes, and the same
// distinguished not-found error on conditional updates.
type CustomerRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Customer
	order []string // insertion order, so listings are deterministic
}

// NewCustomerRepository creates an empty in-memory repository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		items: make(map[string]domain.Customer),
	}
}

// FindOne performs a point lookup by uuid.
func (r *CustomerRepository) FindOne(_ context.Context, uuid string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.items[uuid]
	if !ok {
		return nil, nil
	}
	return &customer, nil
}

// FindByEmail resolves a customer by its email attribute.
func (r *CustomerRepository) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, uuid := range r.order {
		if customer := r.items[uuid]; customer.Email == email {
			match := customer
			return &match, nil
		}
	}
	return nil, nil
}

// FindByUsername resolves a customer by its username attribute.
func (r *CustomerRepository) FindByUsername(_ context.Context, username string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if username == "" {
		return nil, nil
	}
	for _, uuid := range r.order {
		if customer := r.items[uuid]; customer.Username == username {
			match := customer
			return &match, nil
		}
	}
	return nil, nil
}

// FindAndCount returns every record in insertion order.
func (r *CustomerRepository) FindAndCount(_ context.Context) ([]domain.Customer, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]domain.Customer, 0, len(r.order))
	for _, uuid := range r.order {
		customers = append(customers, r.items[uuid])
	}
	return customers, len(customers), nil
}

// Save writes the customer, overwrite-or-insert.
func (r *CustomerRepository) Save(_ context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[customer.UUID]; !ok {
		r.order = append(r.order, customer.UUID)
	}
	r.items[customer.UUID] = *customer
	return nil
}

// Update applies a partial update; a missing row yields the distinguished
// not-found error, matching the conditional-update behavior of the table.
func (r *CustomerRepository) Update(_ context.Context, uuid string, changes map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, ok := r.items[uuid]
	if !ok {
		return apperrors.NewNotFoundError("record")
	}

	for name, value := range changes {
		switch name {
		case "name":
			customer.Name = value.(string)
		case "username":
			customer.Username = value.(string)
		case "email":
			customer.Email = value.(string)
		case "enabled":
			customer.Enabled = value.(bool)
		default:
			return fmt.Errorf("unknown attribute %q", name)
		}
	}

	r.items[uuid] = customer
	return nil
}

// Delete hard-deletes the row.
func (r *CustomerRepository) Delete(_ context.Context, uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[uuid]; !ok {
		return nil
	}
	delete(r.items, uuid)
	for i, id := range r.order {
		if id == uuid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

var _ ports.CustomerRepository = (*CustomerRepository)(nil)
