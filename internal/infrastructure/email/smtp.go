package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/config"
)

// ReminderSender delivers expiry reminder mail to members whose membership
// is about to lapse.
type ReminderSender interface {
	SendExpiryReminder(to, memberName, planName string, endDate time.Time) error
}

type smtpReminderSender struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
}

// NewSMTPReminderSender creates a gomail-backed reminder sender.
func NewSMTPReminderSender(cfg *config.EmailConfig) ReminderSender {
	return &smtpReminderSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (s *smtpReminderSender) SendExpiryReminder(to, memberName, planName string, endDate time.Time) error {
	date := biztime.FormatDate(endDate)
	subject := fmt.Sprintf("Your %s membership expires on %s", planName, date)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Membership Expiring Soon</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> membership ends on <strong>%s</strong>.</p>
			<p>Stop by the front desk or give us a call to renew and keep training without interruption.</p>
			<p>See you at the gym!</p>
		</body>
		</html>
	`, memberName, planName, date)

	plainBody := fmt.Sprintf(`
Hi %s,

Your %s membership ends on %s.

Stop by the front desk or give us a call to renew and keep training without interruption.

See you at the gym!
	`, memberName, planName, date)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
