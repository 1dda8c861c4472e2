package mailer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/domain/form"
	"hvac_crm/internal/usecase/interfaces"

	"gopkg.in/gomail.v2"
)

// Sender delivers one message. gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer emails staff when a lead moves forward in the pipeline.
type Mailer struct {
	sender  Sender
	from    string
	staffTo []string
}

var _ interfaces.IStatusProgression = (*Mailer)(nil)

// NewSMTPMailer returns nil when no SMTP host is configured.
func NewSMTPMailer(host string, port int, user, pass, from, staffTo string) *Mailer {
	if host == "" {
		log.Printf("[mailer] SMTP_HOST not set, status progression emails disabled")
		return nil
	}
	return NewMailer(gomail.NewDialer(host, port, user, pass), from, staffTo)
}

func NewMailer(sender Sender, from, staffTo string) *Mailer {
	var to []string
	for _, s := range strings.Split(staffTo, ",") {
		if s = strings.TrimSpace(s); s != "" {
			to = append(to, s)
		}
	}
	return &Mailer{sender: sender, from: from, staffTo: to}
}

func (m *Mailer) LeadConverted(ctx context.Context, lead entities.Lead, project entities.Project, customer entities.Customer) error {
	if m == nil || len(m.staffTo) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.staffTo...)
	msg.SetHeader("Subject", fmt.Sprintf("Lead converted: %s", project.Name))
	msg.SetBody("text/plain", conversionBody(lead, project, customer))

	if err := m.sender.DialAndSend(msg); err != nil {
		log.Printf("[mailer] lead converted email failed lead_id=%s err=%v", lead.ID, err)
		return err
	}
	log.Printf("[mailer] lead converted email sent lead_id=%s recipients=%d", lead.ID, len(m.staffTo))
	return nil
}

func conversionBody(lead entities.Lead, project entities.Project, customer entities.Customer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) was converted into a project.\n\n", lead.Name, form.ServiceLabel(lead.ServiceType))
	fmt.Fprintf(&b, "Project: %s\n", project.Name)
	fmt.Fprintf(&b, "Priority: %s\n", project.Priority)
	fmt.Fprintf(&b, "Customer: %s <%s> %s\n", customer.Name, customer.Email, customer.Phone)
	if lead.ConvertedAt != nil {
		fmt.Fprintf(&b, "Converted at: %s\n", lead.ConvertedAt.UTC().Format(time.RFC1123))
	}
	return b.String()
}
