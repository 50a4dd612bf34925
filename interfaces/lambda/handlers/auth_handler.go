package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"customers-backend/application/ports"
	"customers-backend/pkg/response"
	"customers-backend/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// AuthHandler serves the signup and login Lambda functions against the
// external identity provider. Unlike the customer endpoints, provider error
// messages are passed through verbatim on failure.
type AuthHandler struct {
	identity ports.IdentityProvider
	logger   *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(identity ports.IdentityProvider, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		identity: identity,
		logger:   logger,
	}
}

// AuthRequest is the body shared by signup and login.
type AuthRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// Signup handles POST /auth/signup. The provider account is created with the
// email pre-verified and no notification sent, then the password is made
// permanent. No credentials are stored locally.
func (h *AuthHandler) Signup(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, ok := h.parseRequest(event)
	if !ok {
		return response.Error("Invalid input", http.StatusBadRequest), nil
	}

	if err := h.identity.CreateUser(ctx, req.Email, req.Password); err != nil {
		h.logger.Error("Signup failed", zap.Error(err))
		return response.Error(err.Error(), http.StatusInternalServerError), nil
	}

	return response.Message("User registration successful", http.StatusOK), nil
}

// Login handles POST /auth/login via a direct admin-initiated authentication
// call. The token lifecycle is entirely the provider's responsibility.
func (h *AuthHandler) Login(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, ok := h.parseRequest(event)
	if !ok {
		return response.Error("Invalid input", http.StatusBadRequest), nil
	}

	token, err := h.identity.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Login failed", zap.Error(err))
		return response.Error(err.Error(), http.StatusInternalServerError), nil
	}

	return response.New(map[string]string{
		"message": "Success",
		"token":   token,
	}, http.StatusOK), nil
}

// parseRequest decodes and validates the auth body; any failure means the
// provider is never called.
func (h *AuthHandler) parseRequest(event events.APIGatewayProxyRequest) (AuthRequest, bool) {
	var req AuthRequest

	body, err := decodeBody(event)
	if err != nil {
		return req, false
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, false
	}
	if err := utils.ValidateStruct(req); err != nil {
		return req, false
	}
	return req, true
}
