// utils/email.go
package utils

import (
	"fmt"

	"github.com/keighl/postmark"

	"resale-store/models"
)

// EmailService handles sending emails using Postmark.
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService returns a Postmark-backed service, or nil when no
// API token is configured. Callers treat a nil service as "skip
// sending", so local and test setups run without mail credentials.
func NewEmailService(apiToken, sender string) *EmailService {
	if apiToken == "" {
		return nil
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendPaymentReceipt confirms a settled order to the buyer.
func (es *EmailService) SendPaymentReceipt(toEmail string, order models.Order) error {
	subject := "Payment Received - Resale Store"
	htmlContent := fmt.Sprintf(
		"<strong>Thank you for your purchase!</strong><br><br>Your payment for <strong>%s</strong> has been received.<br>Amount: <strong>$%.2f</strong><br>Transaction: <strong>%s</strong><br><br>The seller will be in touch about handover.",
		order.ProductName,
		order.Price,
		order.TransactionID,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendSellerVerifiedEmail tells a seller their account was verified.
func (es *EmailService) SendSellerVerifiedEmail(toEmail, name string) error {
	subject := "Your Seller Account Is Verified - Resale Store"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your seller account has been verified. Your listings now carry the verified badge.",
		name,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
