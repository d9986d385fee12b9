// Package email delivers report emails over SMTP.
package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"paisa/internal/analytics"
	"paisa/internal/config"
	"paisa/internal/logger"
)

// Sender delivers report emails. The report service depends on this
// interface so tests can capture sends without a mail server.
type Sender interface {
	SendWeeklyReport(to string, report *analytics.WeeklyReport) error
}

// SMTPSender sends email through the configured SMTP relay.
type SMTPSender struct {
	cfg *config.Config
}

// NewSMTPSender creates a Sender backed by the configured SMTP relay.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendWeeklyReport formats and sends the weekly spending report.
func (s *SMTPSender) SendWeeklyReport(to string, report *analytics.WeeklyReport) error {
	log := logger.Get()

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Your weekly spending report (%s to %s)", report.WeekStart, report.WeekEnd)

	body := fmt.Sprintf(
		"Here's how your week went:\n\n"+
			"Total spending: %.2f\n"+
			"Total income: %.2f\n"+
			"Savings: %.2f\n"+
			"Transactions: %d\n"+
			"Top category: %s (%.2f)\n",
		report.TotalSpending, report.TotalIncome, report.Savings,
		report.TransactionCount, report.TopCategory.Name, report.TopCategory.Amount,
	)
	if report.BiggestPurchase != nil {
		body += fmt.Sprintf("Biggest purchase: %s (%.2f)\n",
			report.BiggestPurchase.Description, report.BiggestPurchase.Amount)
	}
	body += fmt.Sprintf("\nNext week's target: %.2f\n", report.NextWeekTarget)
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		log.Errorw("Failed to send weekly report email", "to", to, "error", err)
		return fmt.Errorf("send weekly report: %w", err)
	}

	log.Infow("Weekly report email sent", "to", to)
	return nil
}
