package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"customers-backend/application/services"
	"customers-backend/domain"
	"customers-backend/pkg/response"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerHandler serves the customer lifecycle Lambda functions. Each
// invocation is stateless: parse, validate, call the service, format the
// response. Service errors are logged and mapped to a generic per-operation
// 500; the detail is never returned to the caller.
type CustomerHandler struct {
	service *services.CustomerService
	logger  *zap.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(service *services.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger,
	}
}

// CreateCustomerRequest represents the request body for creating a customer.
type CreateCustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Create handles POST /api/v1/customers.
//
// Missing name or email answers 409, not 400 — a quirk of the original API
// kept for compatibility.
func (h *CustomerHandler) Create(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body, err := decodeBody(event)
	if err != nil {
		h.logger.Error("Failed to decode request body", zap.Error(err))
		return response.Error("Error creating customer.", http.StatusInternalServerError), nil
	}

	var req CreateCustomerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.Error("Failed to parse request body", zap.Error(err))
		return response.Error("Error creating customer.", http.StatusInternalServerError), nil
	}

	if req.Email == "" || req.Name == "" {
		return response.Error("Email and name are required.", http.StatusConflict), nil
	}

	req.Email = strings.ToLower(req.Email)
	req.Username = strings.ToLower(req.Username)

	exists, err := h.service.ExistsCustomer(ctx, domain.CustomerSearch{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		h.logger.Error("Failed to check customer existence", zap.Error(err))
		return response.Error("Error creating customer.", http.StatusInternalServerError), nil
	}
	if exists {
		message := fmt.Sprintf("Customer '%s' already created.", conflictLabel(req.Username, req.Email))
		return response.Error(message, http.StatusConflict), nil
	}

	customer := &domain.Customer{
		UUID:     uuid.New().String(),
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Enabled:  true,
	}
	if err := h.service.CreateCustomer(ctx, customer); err != nil {
		h.logger.Error("Failed to create customer", zap.Error(err))
		return response.Error("Error creating customer.", http.StatusInternalServerError), nil
	}

	message := fmt.Sprintf("Customer '%s' created.", identityLabel(req.Username, req.Email))
	return response.Message(message, http.StatusCreated), nil
}

// Show handles GET /api/v1/customers/{uuid}.
func (h *CustomerHandler) Show(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	id := event.PathParameters["uuid"]

	customer, err := h.service.FindCustomer(ctx, id)
	if err != nil {
		h.logger.Error("Failed to query customer", zap.Error(err), zap.String("uuid", id))
		return response.Error("Error querying a customer.", http.StatusInternalServerError), nil
	}
	if customer == nil {
		return response.Error(notFoundMessage(id), http.StatusNotFound), nil
	}

	return response.New(customer, http.StatusOK), nil
}

// GetAll handles GET /api/v1/customers. The listing is unfiltered: disabled
// customers are included and total always equals the item count.
func (h *CustomerHandler) GetAll(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	list, err := h.service.FindAllCustomers(ctx)
	if err != nil {
		h.logger.Error("Failed to query customers", zap.Error(err))
		return response.Error("Error querying customers.", http.StatusInternalServerError), nil
	}

	return response.New(list, http.StatusOK), nil
}

// Delete handles DELETE /api/v1/customers/{uuid}. The row is never removed;
// the customer is disabled.
func (h *CustomerHandler) Delete(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	id := event.PathParameters["uuid"]

	disabled, err := h.service.DisableCustomer(ctx, id)
	if err != nil {
		h.logger.Error("Failed to disable customer", zap.Error(err), zap.String("uuid", id))
		return response.Error("Error disabling customer.", http.StatusInternalServerError), nil
	}
	if !disabled {
		return response.Error(notFoundMessage(id), http.StatusNotFound), nil
	}

	return response.Message(fmt.Sprintf("Customer '%s' disabled", id), http.StatusOK), nil
}

// decodeBody returns the raw request body, reversing API Gateway's base64
// encoding when flagged.
func decodeBody(event events.APIGatewayProxyRequest) ([]byte, error) {
	if event.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(event.Body)
	}
	return []byte(event.Body), nil
}

// identityLabel is the identity value confirmation messages are keyed by:
// the username when one was supplied, the email otherwise.
func identityLabel(username, email string) string {
	if username != "" {
		return username
	}
	return email
}

// conflictLabel references the matched identity in the already-created
// message, including the email alongside the username when both exist.
func conflictLabel(username, email string) string {
	if username != "" {
		return fmt.Sprintf("%s <%s>", username, email)
	}
	return email
}

func notFoundMessage(id string) string {
	return fmt.Sprintf("Customer with uuid '%s' not found.", id)
}
