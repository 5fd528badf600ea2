package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"eventlisting/internal/domain"
)

// SESConfig holds the AWS SES credentials.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailerConfig selects and configures the outgoing mail provider.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	// ReplyTo is optional; visitors' replies go to the sender otherwise.
	ReplyTo string
	SES     SESConfig
}

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// NewMailer returns the mailer for config.Provider: "ses" sends through AWS SES, anything
// else only logs the messages.
func NewMailer(config MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	if config.Provider != "ses" {
		if config.Provider != "noop" {
			logger.Warn("unknown email provider, emails are only logged", "provider", config.Provider)
		}
		return &noopMailer{logger: logger}, nil
	}
	if config.FromAddress == "" {
		return nil, fmt.Errorf("ses mailer: from address is required")
	}
	if config.SES.InsecureSkipVerify {
		logger.Warn("TLS certificate verification is disabled for SES; use only in development")
	}
	return newSESMailer(newSESClient(config.SES), config, logger), nil
}

func newSESClient(cfg SESConfig) *ses.Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
			MinVersion:         tls.VersionTLS12,
		},
	}
	return ses.NewFromConfig(aws.Config{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		HTTPClient:  &http.Client{Transport: transport},
	})
}

type sesMailer struct {
	client  sesAPI
	source  string
	replyTo []string
	logger  *slog.Logger
}

func newSESMailer(client sesAPI, config MailerConfig, logger *slog.Logger) *sesMailer {
	m := &sesMailer{
		client: client,
		source: (&mail.Address{Name: config.FromName, Address: config.FromAddress}).String(),
		logger: logger,
	}
	if config.ReplyTo != "" {
		m.replyTo = []string{config.ReplyTo}
	}
	return m
}

func (s *sesMailer) Send(ctx context.Context, to, subject, html, text string) error {
	body := &types.Body{}
	if html != "" {
		body.Html = utf8Content(html)
	}
	if text != "" {
		body.Text = utf8Content(text)
	}
	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:           aws.String(s.source),
		Destination:      &types.Destination{ToAddresses: []string{to}},
		ReplyToAddresses: s.replyTo,
		Message:          &types.Message{Subject: utf8Content(subject), Body: body},
	})
	if err != nil {
		return fmt.Errorf("ses send to %s: %w", to, err)
	}
	s.logger.InfoContext(ctx, "email sent", "provider", "ses", "message_id", aws.ToString(out.MessageId))
	return nil
}

func utf8Content(data string) *types.Content {
	return &types.Content{Data: aws.String(data), Charset: aws.String("UTF-8")}
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(ctx context.Context, to, subject, _, _ string) error {
	n.logger.InfoContext(ctx, "email not sent, no provider configured", "to", to, "subject", subject)
	return nil
}
