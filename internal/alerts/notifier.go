// internal/alerts/notifier.go
package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"

	"deal-analyzer/internal/common/errors"
	"deal-analyzer/internal/common/logger"
	"deal-analyzer/internal/common/metrics"
	"deal-analyzer/internal/models"
)

const (
	StatusSent     = "SENT"
	StatusFailed   = "FAILED"
	StatusDisabled = "DISABLED"
)

// Define interfaces for mocking
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Config controls which alert channels are active and where they go.
type Config struct {
	EmailEnabled bool
	FromEmail    string
	ToEmail      string
	SMSEnabled   bool
	PhoneNumber  string
	Region       string
}

// Alert is the delivery record returned for every dispatched alert.
type Alert struct {
	AlertID string `json:"alertId"`
	Status  string `json:"status"`
	SentAt  string `json:"sentAt"`
}

// Notifier sends deal alerts over SES email and SNS SMS when a listing
// analysis crosses the alert threshold.
type Notifier struct {
	config    Config
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func NewNotifier(ctx context.Context, cfg Config, log logger.Logger) (*Notifier, error) {
	n := &Notifier{
		config: cfg,
		logger: log.WithFields(map[string]interface{}{"component": "alerts"}),
	}

	if !cfg.EmailEnabled && !cfg.SMSEnabled {
		return n, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	n.sesClient = ses.NewFromConfig(awsCfg)
	n.snsClient = sns.NewFromConfig(awsCfg)
	return n, nil
}

// DealAlert notifies the configured recipients about a strong deal.
// Callers decide the threshold; the notifier only delivers.
func (n *Notifier) DealAlert(ctx context.Context, p models.Property, result models.AnalysisResult) (*Alert, error) {
	alert := &Alert{
		AlertID: uuid.New().String(),
		Status:  StatusDisabled,
		SentAt:  time.Now().UTC().Format(time.RFC3339),
	}

	subject := alertSubject(p, result)
	body := alertBody(p, result)

	emailSent := false
	smsSent := false

	if n.config.EmailEnabled && n.config.ToEmail != "" {
		if err := n.sendEmail(ctx, subject, body); err != nil {
			n.logger.WithError(err).Error("email alert failed", map[string]interface{}{
				"listingId": p.ID,
			})
			metrics.AlertsSent.WithLabelValues("email", "failed").Inc()
			alert.Status = StatusFailed
			return alert, errors.Wrap(errors.ErrorCodeAlertDelivery, "email alert failed", err)
		}
		metrics.AlertsSent.WithLabelValues("email", "sent").Inc()
		emailSent = true
	}

	if n.config.SMSEnabled && n.config.PhoneNumber != "" {
		if err := n.sendSMS(ctx, smsBody(p, result)); err != nil {
			n.logger.WithError(err).Error("SMS alert failed", map[string]interface{}{
				"listingId": p.ID,
			})
			metrics.AlertsSent.WithLabelValues("sms", "failed").Inc()
			alert.Status = StatusFailed
			return alert, errors.Wrap(errors.ErrorCodeAlertDelivery, "SMS alert failed", err)
		}
		metrics.AlertsSent.WithLabelValues("sms", "sent").Inc()
		smsSent = true
	}

	if emailSent || smsSent {
		alert.Status = StatusSent
	}
	return alert, nil
}

func alertSubject(p models.Property, result models.AnalysisResult) string {
	return fmt.Sprintf("%s deal: %s, %s %s ($%.0f)",
		result.Score, p.Address.Street, p.Address.City, p.Address.State, p.Price)
}

func alertBody(p models.Property, result models.AnalysisResult) string {
	return fmt.Sprintf(
		"A listing scored %s under your current assumptions.\n\n"+
			"%s, %s, %s %s\n"+
			"Price: $%.0f\n"+
			"Estimated rent: $%.0f/mo\n\n"+
			"Cap rate: %.2f%%\n"+
			"Cash-on-cash: %.2f%%\n"+
			"Monthly cash flow: $%.2f\n"+
			"Cash needed: $%.2f\n",
		result.Score,
		p.Address.Street, p.Address.City, p.Address.State, p.Address.ZipCode,
		p.Price,
		p.Financials.RentEstimate,
		result.Metrics.CapRate,
		result.Metrics.CashOnCash,
		result.CashFlow.Monthly,
		result.Metrics.TotalCashNeeded,
	)
}

func smsBody(p models.Property, result models.AnalysisResult) string {
	return fmt.Sprintf("%s deal in %s: $%.0f, CoC %.1f%%, cap %.1f%%",
		result.Score, p.Address.City, p.Price,
		result.Metrics.CashOnCash, result.Metrics.CapRate)
}

func (n *Notifier) sendEmail(ctx context.Context, subject, body string) error {
	_, err := n.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{n.config.ToEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.config.FromEmail),
	})
	return err
}

func (n *Notifier) sendSMS(ctx context.Context, message string) error {
	_, err := n.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(n.config.PhoneNumber),
		Message:     aws.String(message),
	})
	return err
}
