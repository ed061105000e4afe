// Package email delivers invoices to customers over SMTP.
package email

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/pkg/config"
	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer implements usecase.InvoiceMailer with gomail.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer builds the mailer from the SMTP configuration.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendInvoice mails the invoice PDF to the customer with the standard Dutch
// cover message.
func (m *SMTPMailer) SendInvoice(
	_ context.Context,
	inv *entity.Invoice,
	settings *entity.CompanySettings,
	customer *entity.Customer,
	pdf []byte,
) error {
	bedrijfsnaam := settings.Bedrijfsnaam
	if bedrijfsnaam == "" {
		bedrijfsnaam = m.cfg.FromName
	}
	aanhef := customer.Bedrijfsnaam
	if customer.Voornaam != "" {
		aanhef = customer.Voornaam
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.From, bedrijfsnaam)
	msg.SetHeader("To", customer.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Factuur %s - %s", inv.Factuurnummer, bedrijfsnaam))
	msg.SetBody("text/plain", coverText(aanhef, bedrijfsnaam, inv, settings))
	msg.Attach(
		fmt.Sprintf("%s.pdf", inv.Factuurnummer),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
	)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp: send invoice %s: %w", inv.Factuurnummer, err)
	}
	return nil
}

func coverText(aanhef, bedrijfsnaam string, inv *entity.Invoice, settings *entity.CompanySettings) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Beste %s,\n\n", aanhef)
	fmt.Fprintf(&b, "Hierbij ontvangt u factuur %s van %s.\n\n", inv.Factuurnummer, bedrijfsnaam)
	fmt.Fprintf(&b, "Factuurbedrag: € %.2f\n", inv.Totaal)
	fmt.Fprintf(&b, "Vervaldatum: %s\n\n", inv.Vervaldatum)
	b.WriteString("De factuur vindt u als bijlage bij deze e-mail.\n\n")
	fmt.Fprintf(&b, "Met vriendelijke groet,\n%s\n", bedrijfsnaam)
	if settings.Email != "" {
		fmt.Fprintf(&b, "%s\n", settings.Email)
	}
	if settings.Telefoon != "" {
		fmt.Fprintf(&b, "%s\n", settings.Telefoon)
	}
	return b.String()
}
