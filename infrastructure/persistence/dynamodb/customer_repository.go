package dynamodb

import (
	"context"
	"fmt"

	"customers-backend/application/ports"
	"customers-backend/domain"
	store "customers-backend/infrastructure/dynamodb"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// CustomerRepository implements ports.CustomerRepository on the DynamoDB
// store gateway.
type CustomerRepository struct {
	store         *store.Store
	emailIndex    string
	usernameIndex string
	logger        *zap.Logger
}

// NewCustomerRepository creates the production repository.
func NewCustomerRepository(s *store.Store, emailIndex, usernameIndex string, logger *zap.Logger) ports.CustomerRepository {
	return &CustomerRepository{
		store:         s,
		emailIndex:    emailIndex,
		usernameIndex: usernameIndex,
		logger:        logger,
	}
}

// customerItem represents the DynamoDB item structure for a customer.
// A missing enabled attribute unmarshals to false, which is exactly the
// defaulting the list operation requires.
type customerItem struct {
	UUID     string `dynamodbav:"uuid"`
	Name     string `dynamodbav:"name"`
	Username string `dynamodbav:"username,omitempty"`
	Email    string `dynamodbav:"email"`
	Enabled  bool   `dynamodbav:"enabled"`
}

func (i customerItem) toDomain() domain.Customer {
	return domain.Customer{
		UUID:     i.UUID,
		Name:     i.Name,
		Username: i.Username,
		Email:    i.Email,
		Enabled:  i.Enabled,
	}
}

func keyFor(uuid string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"uuid": &types.AttributeValueMemberS{Value: uuid},
	}
}

// FindOne performs a point lookup by uuid.
func (r *CustomerRepository) FindOne(ctx context.Context, uuid string) (*domain.Customer, error) {
	item, err := r.store.Get(ctx, keyFor(uuid), "")
	if err != nil {
		r.logger.Error("Failed to get customer", zap.Error(err), zap.String("uuid", uuid))
		return nil, err
	}
	if len(item) == 0 {
		return nil, nil
	}

	var record customerItem
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer: %w", err)
	}
	customer := record.toDomain()
	return &customer, nil
}

// FindByEmail resolves a customer through the email index.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.queryIndex(ctx, r.emailIndex, "email", email)
}

// FindByUsername resolves a customer through the username index.
func (r *CustomerRepository) FindByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	return r.queryIndex(ctx, r.usernameIndex, "username", username)
}

func (r *CustomerRepository) queryIndex(ctx context.Context, index, attribute, value string) (*domain.Customer, error) {
	items, err := r.store.Query(ctx, index, attribute, value)
	if err != nil {
		r.logger.Error("Failed to query customer index",
			zap.Error(err),
			zap.String("index", index),
		)
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	var record customerItem
	if err := attributevalue.UnmarshalMap(items[0], &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer: %w", err)
	}
	customer := record.toDomain()
	return &customer, nil
}

// FindAndCount scans the full table, disabled records included.
func (r *CustomerRepository) FindAndCount(ctx context.Context) ([]domain.Customer, int, error) {
	items, count, err := r.store.Scan(ctx)
	if err != nil {
		r.logger.Error("Failed to scan customers", zap.Error(err))
		return nil, 0, err
	}

	customers := make([]domain.Customer, 0, len(items))
	for _, item := range items {
		var record customerItem
		if err := attributevalue.UnmarshalMap(item, &record); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal customer: %w", err)
		}
		customers = append(customers, record.toDomain())
	}
	return customers, count, nil
}

// Save writes the customer unconditionally.
func (r *CustomerRepository) Save(ctx context.Context, customer *domain.Customer) error {
	item, err := attributevalue.MarshalMap(customerItem{
		UUID:     customer.UUID,
		Name:     customer.Name,
		Username: customer.Username,
		Email:    customer.Email,
		Enabled:  customer.Enabled,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal customer: %w", err)
	}

	if err := r.store.Put(ctx, item); err != nil {
		r.logger.Error("Failed to save customer", zap.Error(err), zap.String("uuid", customer.UUID))
		return err
	}
	return nil
}

// Update applies a partial update; the row must already exist.
func (r *CustomerRepository) Update(ctx context.Context, uuid string, changes map[string]interface{}) error {
	return r.store.Update(ctx, keyFor(uuid), changes, true)
}

// Delete hard-deletes the row by uuid.
func (r *CustomerRepository) Delete(ctx context.Context, uuid string) error {
	return r.store.Delete(ctx, keyFor(uuid))
}
