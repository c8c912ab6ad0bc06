package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/briarwood-camp/camp-services/models"
	"github.com/rs/zerolog"
)

// EmailClient is the SES surface used for welcome emails, interface-typed
// so tests can mock it.
type EmailClient interface {
	SendEmail(ctx context.Context, input *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// sendWelcomeEmail sends a welcome email to a freshly registered parent.
// Send failures are logged and never fail the registration.
func (svc *Service) sendWelcomeEmail(ctx context.Context, account models.Account) {
	if svc.Email == nil || !svc.Config.Email.Enabled {
		return
	}

	logger := zerolog.Ctx(ctx)

	subject := "Welcome to camp"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour parent account has been created. "+
			"Log in to add your children and enroll them for the camp year.\n",
		account.FullName)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(svc.Config.Email.FromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{account.Email},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	}

	if _, err := svc.Email.SendEmail(ctx, input); err != nil {
		logger.Error().Err(err).Str("email", account.Email).Msg("Failed to send welcome email")
		return
	}

	logger.Info().Str("email", account.Email).Msg("Welcome email sent")
}
