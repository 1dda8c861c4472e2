package mailer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"hvac_crm/internal/domain/entities"

	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestMailer_LeadConverted(t *testing.T) {
	lead := entities.Lead{ID: "l-1", Name: "Jane Doe", ServiceType: "ac_repair"}
	project := entities.Project{ID: "p-1", Name: "AC Repair - Jane Doe", Priority: "high"}
	customer := entities.Customer{Name: "Jane Doe", Email: "jane@x.com"}

	t.Run("sends to every staff address", func(t *testing.T) {
		s := &fakeSender{}
		m := NewMailer(s, "crm@x.com", "ops@x.com, sales@x.com ,")
		if err := m.LeadConverted(context.Background(), lead, project, customer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.sent) != 1 {
			t.Fatalf("expected one message, got %d", len(s.sent))
		}
		if to := s.sent[0].GetHeader("To"); len(to) != 2 {
			t.Fatalf("unexpected recipients: %v", to)
		}
		var buf bytes.Buffer
		if _, err := s.sent[0].WriteTo(&buf); err != nil {
			t.Fatalf("write: %v", err)
		}
		if !strings.Contains(buf.String(), "AC Repair - Jane Doe") {
			t.Fatalf("expected project name in message")
		}
	})

	t.Run("send failure is returned", func(t *testing.T) {
		s := &fakeSender{err: errors.New("smtp down")}
		m := NewMailer(s, "crm@x.com", "ops@x.com")
		if err := m.LeadConverted(context.Background(), lead, project, customer); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("no recipients is a no-op", func(t *testing.T) {
		s := &fakeSender{}
		if err := NewMailer(s, "crm@x.com", "").LeadConverted(context.Background(), lead, project, customer); err != nil || len(s.sent) != 0 {
			t.Fatalf("expected nothing sent, err=%v", err)
		}
	})

	t.Run("disabled without host", func(t *testing.T) {
		if NewSMTPMailer("", 465, "", "", "", "ops@x.com") != nil {
			t.Fatalf("expected nil mailer")
		}
	})
}
