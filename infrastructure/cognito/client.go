package cognito

import (
	"context"
	"fmt"

	"customers-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"go.uber.org/zap"
)

// Client implements ports.IdentityProvider on Amazon Cognito.
type Client struct {
	api        *cognitoidentityprovider.Client
	userPoolID string
	clientID   string
	logger     *zap.Logger
}

// NewClient creates a Cognito-backed identity provider.
func NewClient(awsCfg aws.Config, userPoolID, clientID string, logger *zap.Logger) ports.IdentityProvider {
	return &Client{
		api:        cognitoidentityprovider.NewFromConfig(awsCfg),
		userPoolID: userPoolID,
		clientID:   clientID,
		logger:     logger,
	}
}

// CreateUser registers the account with its email pre-verified and the
// provider's welcome message suppressed, then promotes the password to
// permanent so no forced reset is pending.
func (c *Client) CreateUser(ctx context.Context, email, password string) error {
	out, err := c.api.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId: aws.String(c.userPoolID),
		Username:   aws.String(email),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
			{Name: aws.String("email_verified"), Value: aws.String("true")},
		},
		MessageAction: types.MessageActionTypeSuppress,
	})
	if err != nil {
		c.logger.Error("Failed to create user", zap.Error(err))
		return err
	}

	if out.User != nil {
		_, err = c.api.AdminSetUserPassword(ctx, &cognitoidentityprovider.AdminSetUserPasswordInput{
			UserPoolId: aws.String(c.userPoolID),
			Username:   aws.String(email),
			Password:   aws.String(password),
			Permanent:  true,
		})
		if err != nil {
			c.logger.Error("Failed to set user password", zap.Error(err))
			return err
		}
	}
	return nil
}

// Authenticate runs the admin no-SRP auth flow and returns the issued ID
// token. Challenge responses are not supported.
func (c *Client) Authenticate(ctx context.Context, email, password string) (string, error) {
	out, err := c.api.AdminInitiateAuth(ctx, &cognitoidentityprovider.AdminInitiateAuthInput{
		AuthFlow:   types.AuthFlowTypeAdminNoSrpAuth,
		UserPoolId: aws.String(c.userPoolID),
		ClientId:   aws.String(c.clientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		c.logger.Error("Failed to authenticate user", zap.Error(err))
		return "", err
	}

	if out.AuthenticationResult == nil || out.AuthenticationResult.IdToken == nil {
		return "", fmt.Errorf("authentication did not return an id token")
	}
	return *out.AuthenticationResult.IdToken, nil
}
