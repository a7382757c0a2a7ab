package service

import (
	"context"
	"fmt"

	"potluck-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
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

func (s *emailService) SendRequestStatusEmail(ctx context.Context, toEmail, toName string, typ domain.NotificationType, eventName string) error {
	var subject, body string
	switch typ {
	case domain.NotificationTypeRequestApproved:
		subject = fmt.Sprintf("You're in! Your request to join %s was approved", eventName)
		body = fmt.Sprintf("Hello %s,\n\nGood news: the host approved your request to join %s. See you there!\n\nBest regards,\nThe Potluck Team", toName, eventName)
	case domain.NotificationTypeRequestDeclined:
		subject = fmt.Sprintf("Update on your request to join %s", eventName)
		body = fmt.Sprintf("Hello %s,\n\nUnfortunately the host declined your request to join %s.\n\nBest regards,\nThe Potluck Team", toName, eventName)
	case domain.NotificationTypeRequestWaitlisted:
		subject = fmt.Sprintf("You're on the waitlist for %s", eventName)
		body = fmt.Sprintf("Hello %s,\n\nThe host put your request to join %s on the waitlist. We'll let you know if a spot opens up.\n\nBest regards,\nThe Potluck Team", toName, eventName)
	default:
		subject = fmt.Sprintf("Update on your request to join %s", eventName)
		body = fmt.Sprintf("Hello %s,\n\nThere is an update on your request to join %s.\n\nBest regards,\nThe Potluck Team", toName, eventName)
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
