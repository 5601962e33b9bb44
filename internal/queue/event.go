// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EmailNotification is the dispatcher's unit of work: a best-effort
// email with a subject, recipient list and plain-text body. Producers
// enqueue it after their own state is committed; a background consumer
// delivers it over SMTP. Losing one is acceptable, blocking a request
// on one is not.
type EmailNotification struct {
	ID         string   `json:"id"`
	To         []string `json:"to"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	EnqueuedAt string   `json:"enqueued_at"`
}

// NewEmailNotification stamps a notification with a fresh ID and
// enqueue time.
func NewEmailNotification(to []string, subject, body string) EmailNotification {
	return EmailNotification{
		ID:         uuid.NewString(),
		To:         to,
		Subject:    subject,
		Body:       body,
		EnqueuedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// ApplicationReceivedEmail builds the notification sent to a job's
// owning employer when a new application lands.
func ApplicationReceivedEmail(employerEmail, jobTitle string) EmailNotification {
	return NewEmailNotification(
		[]string{employerEmail},
		fmt.Sprintf("New Application for %s", jobTitle),
		fmt.Sprintf("A new candidate has applied for your job posting: %s", jobTitle),
	)
}

// ContactFormEmail builds the notification forwarded to the site
// mailbox when a visitor submits the contact form.
func ContactFormEmail(adminEmail, name, email, subject, message string) EmailNotification {
	return NewEmailNotification(
		[]string{adminEmail},
		fmt.Sprintf("Contact Form: %s", subject),
		fmt.Sprintf("From: %s (%s)\n\n%s", name, email, message),
	)
}
