package di

import (
	"context"

	"customers-backend/application/services"
	"customers-backend/infrastructure/cognito"
	"customers-backend/infrastructure/config"
	store "customers-backend/infrastructure/dynamodb"
	dynamorepo "customers-backend/infrastructure/persistence/dynamodb"
	"customers-backend/interfaces/lambda/handlers"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"go.uber.org/zap"
)

// Container wires the application together once per process. Lambda builds
// it during cold start and reuses it across warm invocations; the only
// shared state is the store client handle, which is configuration, not
// mutable domain state.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	CustomerService *services.CustomerService
	CustomerHandler *handlers.CustomerHandler
	AuthHandler     *handlers.AuthHandler
}

// InitializeContainer builds the full dependency graph.
func InitializeContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}

	client, err := store.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	customerStore := store.NewStore(client, cfg.CustomerTable, logger)
	repo := dynamorepo.NewCustomerRepository(customerStore, cfg.EmailIndexName, cfg.UsernameIndexName, logger)
	customerService := services.NewCustomerService(repo, logger)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, err
	}
	identity := cognito.NewClient(awsCfg, cfg.UserPoolID, cfg.ClientID, logger)

	return &Container{
		Config:          cfg,
		Logger:          logger,
		CustomerService: customerService,
		CustomerHandler: handlers.NewCustomerHandler(customerService, logger),
		AuthHandler:     handlers.NewAuthHandler(identity, logger),
	}, nil
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
