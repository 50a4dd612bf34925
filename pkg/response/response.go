package response

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// New builds an API Gateway proxy response carrying a JSON-encoded body and
// the content-type header every endpoint returns.
func New(body interface{}, statusCode int) events.APIGatewayProxyResponse {
	encoded, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"content-type": "application/json"},
			Body:       `{"error":"Internal server error"}`,
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       string(encoded),
	}
}

// Message builds a response with a {"message": ...} body.
func Message(message string, statusCode int) events.APIGatewayProxyResponse {
	return New(map[string]string{"message": message}, statusCode)
}

// Error builds a response with an {"error": ...} body.
func Error(message string, statusCode int) events.APIGatewayProxyResponse {
	return New(map[string]string{"error": message}, statusCode)
}
