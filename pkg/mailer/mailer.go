package mailer

import (
	"context"
	"fmt"
	"strings"

	"fastlane-booking/internal/data/entity"
	"fastlane-booking/pkg/utils"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Mailer sends booking notifications. All sends are best-effort: the booking
// is already committed by the time anything here runs, and a failure must
// never surface to the customer as a booking failure.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, booking *entity.Booking, vendor *entity.Vendor) error
	SendVendorNotice(ctx context.Context, booking *entity.Booking, vendor *entity.Vendor, vendorEmail string) error
}

type smtpMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func New(config utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		config: config,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) client() (*mail.Client, error) {
	return mail.NewClient(m.config.Host,
		mail.WithPort(m.config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.config.User),
		mail.WithPassword(m.config.Password),
	)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if !m.config.Enabled() {
		m.log.Debug("Email not configured, skipping send", zap.String("subject", subject))
		return nil
	}

	c, err := m.client()
	if err != nil {
		return fmt.Errorf("init smtp client: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.config.FromName, m.config.From); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}

func (m *smtpMailer) SendBookingConfirmation(ctx context.Context, booking *entity.Booking, vendor *entity.Vendor) error {
	subject := fmt.Sprintf("Booking Confirmed: %s - %s",
		booking.BookingNumber, booking.BookingDate.Format("Monday, January 2, 2006"))

	return m.send(ctx, booking.CustomerEmail, subject, confirmationHTML(booking, vendor))
}

func (m *smtpMailer) SendVendorNotice(ctx context.Context, booking *entity.Booking, vendor *entity.Vendor, vendorEmail string) error {
	subject := fmt.Sprintf("New booking %s for %s", booking.BookingNumber,
		booking.BookingDate.Format("2006-01-02"))

	return m.send(ctx, vendorEmail, subject, vendorNoticeHTML(booking, vendor))
}

func confirmationHTML(booking *entity.Booking, vendor *entity.Vendor) string {
	var items strings.Builder
	for _, d := range booking.Details {
		items.WriteString(fmt.Sprintf(
			`<div class="item"><strong>%s</strong><br>Quantity: %d<br>%s</div>`,
			d.Name, d.Quantity, utils.FormatCurrency(d.PriceAtPurchase, vendor.Currency)))
	}

	vendorName := "Your activity provider"
	if vendor.Name != nil {
		vendorName = *vendor.Name
	}

	location := ""
	if vendor.Location != nil {
		location = fmt.Sprintf(`<p><strong>Location:</strong> %s</p>`, *vendor.Location)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Booking Confirmation - %s</title>
<style>
body { font-family: sans-serif; color: #333; }
.container { max-width: 600px; margin: 0 auto; }
.item { background: #f1f5f9; border-radius: 8px; padding: 12px; margin-bottom: 10px; }
.total { font-size: 20px; font-weight: 700; }
.note { background: #fef3c7; border-radius: 8px; padding: 12px; margin-top: 16px; }
</style></head>
<body><div class="container">
<h1>Booking Confirmed</h1>
<p>Hi %s! Your booking <strong>%s</strong> has been confirmed.</p>
%s
<p class="total">Total: %s</p>
<p><strong>Date:</strong> %s<br><strong>Time:</strong> %s</p>
<p><strong>Provider:</strong> %s</p>
%s
<ol>
<li><strong>Arrive 15 minutes early</strong> to check in and get ready.</li>
<li><strong>Bring payment (cash or card).</strong> This booking is not financially binding; payment is due at the activity.</li>
<li><strong>Show your booking number</strong> %s when you arrive.</li>
</ol>
<div class="note">This booking is not financially binding. Payment is required at
the activity location. For cancellations, contact the provider directly.</div>
</div></body></html>`,
		booking.BookingNumber,
		booking.CustomerName,
		booking.BookingNumber,
		items.String(),
		utils.FormatCurrency(booking.TotalPrice, vendor.Currency),
		booking.BookingDate.Format("Monday, January 2, 2006"),
		booking.BookingTime,
		vendorName,
		location,
		booking.BookingNumber,
	)
}

func vendorNoticeHTML(booking *entity.Booking, vendor *entity.Vendor) string {
	var items strings.Builder
	for _, d := range booking.Details {
		items.WriteString(fmt.Sprintf("<li>%dx %s</li>", d.Quantity, d.Name))
	}

	whatsapp := ""
	if booking.CustomerWhatsApp != nil {
		whatsapp = fmt.Sprintf("<p>WhatsApp: %s</p>", *booking.CustomerWhatsApp)
	}
	comments := ""
	if booking.Comments != nil {
		comments = fmt.Sprintf("<p>Comments: %s</p>", *booking.Comments)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html><body>
<h2>New booking %s</h2>
<p>%s (%s) booked for %s at %s.</p>
<ul>%s</ul>
<p>Total: %s, %d participant(s).</p>
%s%s
</body></html>`,
		booking.BookingNumber,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.BookingDate.Format("2006-01-02"),
		booking.BookingTime,
		items.String(),
		utils.FormatCurrency(booking.TotalPrice, vendor.Currency),
		booking.ParticipantCount,
		whatsapp,
		comments,
	)
}
