package invoice

import (
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"
)

// Mailer delivers a rendered invoice to the buyer's registered address. It
// runs strictly after commit (see the outbox worker); a delivery failure is
// reported to the caller and retried later, never propagated into the order
// transaction.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewMailer(host string, port int, user, pass, from string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from}
}

func (m *Mailer) SendInvoice(toName, toEmail, orderCode string, pdf []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetAddressHeader("To", toEmail, toName)
	msg.SetHeader("Subject", "Your Order Invoice - "+orderCode)
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nThank you for your order. Your invoice for order %s is attached.\n\nNexMart",
		toName, orderCode))
	msg.Attach(fmt.Sprintf("invoice_%s.pdf", orderCode),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}))

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}
