package services

import (
	"context"

	"customers-backend/application/ports"
	"customers-backend/domain"
	apperrors "customers-backend/pkg/errors"

	"go.uber.org/zap"
)

// CustomerService holds the business rules of the customer lifecycle:
// normalization happens at the edge, uniqueness is judged here, and a
// "delete" only ever flips the enabled flag.
type CustomerService struct {
	repo   ports.CustomerRepository
	logger *zap.Logger
}

// NewCustomerService creates a customer service over the given repository.
func NewCustomerService(repo ports.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		repo:   repo,
		logger: logger,
	}
}

// ExistsCustomer reports whether an enabled customer already claims one of
// the search attributes. Username is checked first, then email, each
// independently. A disabled record does not block re-registration.
func (s *CustomerService) ExistsCustomer(ctx context.Context, search domain.CustomerSearch) (bool, error) {
	if search.Username != "" {
		customer, err := s.repo.FindByUsername(ctx, search.Username)
		if err != nil {
			return false, err
		}
		if customer != nil && customer.Enabled {
			return true, nil
		}
	}

	if search.Email != "" {
		customer, err := s.repo.FindByEmail(ctx, search.Email)
		if err != nil {
			return false, err
		}
		if customer != nil && customer.Enabled {
			return true, nil
		}
	}

	return false, nil
}

// CreateCustomer saves the customer unconditionally. The caller is
// responsible for the existence check beforehand; two concurrent creates for
// the same identity can both succeed, an accepted limitation.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := s.repo.Save(ctx, customer); err != nil {
		s.logger.Error("Failed to create customer",
			zap.Error(err),
			zap.String("uuid", customer.UUID),
		)
		return err
	}
	return nil
}

// FindAllCustomers returns every record, disabled ones included, with the
// total equal to the scanned item count.
func (s *CustomerService) FindAllCustomers(ctx context.Context) (*domain.CustomerList, error) {
	items, total, err := s.repo.FindAndCount(ctx)
	if err != nil {
		s.logger.Error("Failed to list customers", zap.Error(err))
		return nil, err
	}

	return &domain.CustomerList{
		Total: total,
		Items: items,
	}, nil
}

// FindCustomer performs a point lookup by uuid; nil when nothing matches.
func (s *CustomerService) FindCustomer(ctx context.Context, uuid string) (*domain.Customer, error) {
	return s.repo.FindOne(ctx, uuid)
}

// SearchCustomer resolves a customer by username or email, username first.
func (s *CustomerService) SearchCustomer(ctx context.Context, search domain.CustomerSearch) (*domain.Customer, error) {
	if search.Username != "" {
		customer, err := s.repo.FindByUsername(ctx, search.Username)
		if err != nil || customer != nil {
			return customer, err
		}
	}
	if search.Email != "" {
		return s.repo.FindByEmail(ctx, search.Email)
	}
	return nil, nil
}

// DisableCustomer soft-deletes the customer. It returns false without error
// when the store reports the record absent; any other failure is returned
// untouched.
func (s *CustomerService) DisableCustomer(ctx context.Context, uuid string) (bool, error) {
	err := s.repo.Update(ctx, uuid, map[string]interface{}{"enabled": false})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		s.logger.Error("Failed to disable customer",
			zap.Error(err),
			zap.String("uuid", uuid),
		)
		return false, err
	}
	return true, nil
}
