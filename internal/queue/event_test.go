package queue

import (
	"strings"
	"testing"
)

func TestApplicationReceivedEmail(t *testing.T) {
	n := ApplicationReceivedEmail("hr@acme.test", "Go Engineer")
	if len(n.To) != 1 || n.To[0] != "hr@acme.test" {
		t.Errorf("To = %v, want [hr@acme.test]", n.To)
	}
	if n.Subject != "New Application for Go Engineer" {
		t.Errorf("Subject = %q", n.Subject)
	}
	if !strings.Contains(n.Body, "Go Engineer") {
		t.Errorf("Body %q does not mention the job title", n.Body)
	}
	if n.ID == "" || n.EnqueuedAt == "" {
		t.Error("notification missing ID or enqueue timestamp")
	}
}

func TestContactFormEmail(t *testing.T) {
	n := ContactFormEmail("admin@vitahires.com", "Ada", "ada@example.com", "Hiring", "Hello there")
	if n.Subject != "Contact Form: Hiring" {
		t.Errorf("Subject = %q", n.Subject)
	}
	for _, want := range []string{"Ada", "ada@example.com", "Hello there"} {
		if !strings.Contains(n.Body, want) {
			t.Errorf("Body %q missing %q", n.Body, want)
		}
	}
}

func TestNotificationIDsUnique(t *testing.T) {
	a := NewEmailNotification([]string{"x@y.z"}, "s", "b")
	b := NewEmailNotification([]string{"x@y.z"}, "s", "b")
	if a.ID == b.ID {
		t.Error("two notifications share an ID")
	}
}
