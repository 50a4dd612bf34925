package main

import (
	"context"
	"log"

	"customers-backend/infrastructure/di"

	"github.com/aws/aws-lambda-go/lambda"
)

var container *di.Container

func init() {
	var err error
	container, err = di.InitializeContainer(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

func main() {
	lambda.Start(container.AuthHandler.Login)
}
