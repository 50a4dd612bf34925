package rest

import (
	"context"
	"io"
	"net/http"

	"customers-backend/interfaces/http/rest/middleware"
	"customers-backend/interfaces/lambda/handlers"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router exposes the Lambda handlers over plain HTTP for local development,
// mirroring the deployed API Gateway routes. Each route adapts the incoming
// request into a proxy event, so the handlers behave exactly as deployed.
type Router struct {
	customers *handlers.CustomerHandler
	auth      *handlers.AuthHandler
	logger    *zap.Logger
}

// NewRouter creates the local development router.
func NewRouter(customers *handlers.CustomerHandler, auth *handlers.AuthHandler, logger *zap.Logger) *Router {
	return &Router{
		customers: customers,
		auth:      auth,
		logger:    logger,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(rt.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Route("/api/v1/customers", func(r chi.Router) {
		r.Post("/", rt.proxy(rt.customers.Create))
		r.Get("/", rt.proxy(rt.customers.GetAll))
		r.Get("/{uuid}", rt.proxy(rt.customers.Show, "uuid"))
		r.Delete("/{uuid}", rt.proxy(rt.customers.Delete, "uuid"))
	})

	r.Post("/auth/signup", rt.proxy(rt.auth.Signup))
	r.Post("/auth/login", rt.proxy(rt.auth.Login))

	return r
}

// lambdaHandler is the proxy-event signature every endpoint implements.
type lambdaHandler func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// proxy adapts a proxy-event handler onto a plain HTTP route, copying the
// named chi URL parameters into the event's path parameters.
func (rt *Router) proxy(h lambdaHandler, params ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusInternalServerError)
			return
		}

		event := events.APIGatewayProxyRequest{
			HTTPMethod:            r.Method,
			Path:                  r.URL.Path,
			Body:                  string(body),
			QueryStringParameters: flattenQuery(r),
		}
		if len(params) > 0 {
			event.PathParameters = make(map[string]string, len(params))
			for _, p := range params {
				event.PathParameters[p] = chi.URLParam(r, p)
			}
		}

		result, err := h(r.Context(), event)
		if err != nil {
			rt.logger.Error("Handler invocation failed", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		for k, v := range result.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(result.StatusCode)
		io.WriteString(w, result.Body)
	}
}

// flattenQuery keeps the first value per query parameter, matching the
// single-valued map API Gateway delivers.
func flattenQuery(r *http.Request) map[string]string {
	query := r.URL.Query()
	if len(query) == 0 {
		return nil
	}
	flat := make(map[string]string, len(query))
	for key, values := range query {
		if len(values) > 0 {
			flat[key] = values[0]
		}
	}
	return flat
}
