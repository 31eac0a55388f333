package service

import (
	"context"
	"fmt"

	"erp-cars-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.Debug("Email sent", "to", to, "subject", subject)
	return nil
}

func (s *emailService) SendOverageNotice(ctx context.Context, email, customerName, contractRef string, kmOverage int, charges decimal.Decimal) error {
	subject := fmt.Sprintf("Mileage Overage on Contract %s", contractRef)
	body := fmt.Sprintf(`Dear %s,

Your rental contract %s was returned with %d km driven beyond the allowed mileage.

Overage charges of %s DA have been added to your contract total.

Thank you for renting with us.`, customerName, contractRef, kmOverage, charges.StringFixed(2))
	return s.send(ctx, email, customerName, subject, body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, email, customerName, contractRef, endDate string) error {
	subject := fmt.Sprintf("Return Reminder - Contract %s", contractRef)
	body := fmt.Sprintf(`Dear %s,

This is a reminder that your rental contract %s is due for return on %s.

Please return the vehicle on time to avoid overdue charges.

Thank you for renting with us.`, customerName, contractRef, endDate)
	return s.send(ctx, email, customerName, subject, body)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, email, customerName, contractRef, endDate string) error {
	subject := fmt.Sprintf("Overdue Rental - Contract %s", contractRef)
	body := fmt.Sprintf(`Dear %s,

Your rental contract %s was due for return on %s and is now overdue.

Please return the vehicle as soon as possible to avoid additional charges.

Thank you.`, customerName, contractRef, endDate)
	return s.send(ctx, email, customerName, subject, body)
}
