// internal/service/email/service.go
package email

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"

	"go.uber.org/zap"
)

// Attachment is one file forwarded to the dealer mailbox with full byte
// content; only a base64 prefix of it is ever persisted.
type Attachment struct {
	Filename string
	Content  []byte
	MimeType string
}

// EmailSender handles outgoing lead notifications via SMTP. When the
// transport is not configured it logs the message locally and still reports
// success, so notification setup never blocks lead capture.
type EmailSender struct {
	smtpHost   string
	smtpPort   string
	username   string
	password   string
	from       string
	to         string
	dealerName string
	secure     bool
	logger     *zap.Logger
}

// NewEmailSender creates a new SMTP email sender addressed at the dealer
// lead mailbox.
func NewEmailSender(host, port, user, pass, from, to, dealerName string, secure bool, logger *zap.Logger) *EmailSender {
	return &EmailSender{
		smtpHost:   host,
		smtpPort:   port,
		username:   user,
		password:   pass,
		from:       from,
		to:         to,
		dealerName: dealerName,
		secure:     secure,
		logger:     logger,
	}
}

// Send delivers an HTML email with optional attachments. It is safe to call
// with zero attachments. A nil return means the message was sent or logged
// locally; the caller decides whether a failure matters.
func (e *EmailSender) Send(subject, bodyHTML string, attachments []Attachment) error {
	if e.smtpHost == "" || e.username == "" || e.password == "" {
		e.logger.Info("smtp not configured, logging message locally",
			zap.String("subject", subject),
			zap.String("to", e.to),
			zap.Int("attachments", len(attachments)),
		)
		return nil
	}

	msg := e.buildMessage(subject, bodyHTML, attachments)
	serverAddr := e.smtpHost + ":" + e.smtpPort

	tlsConfig := &tls.Config{
		InsecureSkipVerify: false,
		ServerName:         e.smtpHost,
	}

	if e.secure {
		// Port 465 - implicit TLS
		conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
		if err != nil {
			return fmt.Errorf("tls dial failed: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, e.smtpHost)
		if err != nil {
			return fmt.Errorf("smtp client failed: %w", err)
		}
		defer client.Quit()

		auth := smtp.PlainAuth("", e.username, e.password, e.smtpHost)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("auth failed: %w", err)
		}

		return e.sendMail(client, msg)
	}

	// Port 587 - STARTTLS
	auth := smtp.PlainAuth("", e.username, e.password, e.smtpHost)
	if err := smtp.SendMail(serverAddr, auth, e.username, []string{e.to}, msg); err != nil {
		return fmt.Errorf("send mail failed: %w", err)
	}
	return nil
}

func (e *EmailSender) sendMail(client *smtp.Client, msg []byte) error {
	if err := client.Mail(e.username); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(e.to); err != nil {
		return fmt.Errorf("RCPT TO failed: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close failed: %w", err)
	}
	return nil
}

// buildMessage assembles a multipart/mixed MIME message: the branded HTML
// body followed by base64-encoded attachment parts.
func (e *EmailSender) buildMessage(subject, bodyHTML string, attachments []Attachment) []byte {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", e.from)
	fmt.Fprintf(&buf, "To: %s\r\n", e.to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mw.Boundary())

	htmlHeader := textproto.MIMEHeader{}
	htmlHeader.Set("Content-Type", `text/html; charset="utf-8"`)
	part, _ := mw.CreatePart(htmlHeader)
	part.Write([]byte(e.buildHTMLTemplate(bodyHTML)))

	for _, att := range attachments {
		mimeType := att.MimeType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		h := textproto.MIMEHeader{}
		h.Set("Content-Type", mimeType)
		h.Set("Content-Transfer-Encoding", "base64")
		h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Filename))
		p, _ := mw.CreatePart(h)
		p.Write([]byte(base64.StdEncoding.EncodeToString(att.Content)))
	}

	mw.Close()
	return buf.Bytes()
}

// buildHTMLTemplate wraps a given body into the dealer-branded email layout.
func (e *EmailSender) buildHTMLTemplate(content string) string {
	header := fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8" />
		<title>%s</title>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f6f8fa; padding: 30px; }
			.container { max-width: 600px; margin: auto; background: #fff; border-radius: 10px; overflow: hidden; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
			.header { background: #8c1d1d; color: white; text-align: center; padding: 20px; font-size: 22px; font-weight: bold; }
			.footer { background: #f1f1f1; color: #555; text-align: center; padding: 15px; font-size: 13px; }
			.body { padding: 25px; color: #333; line-height: 1.6; }
		</style>
	</head>
	<body>
	<div class="container">
		<div class="header">%s</div>
		<div class="body">
	`, e.dealerName, e.dealerName)

	footer := fmt.Sprintf(`
		</div>
		<div class="footer">
			<p>%s — lead notification</p>
		</div>
	</div>
	</body>
	</html>
	`, e.dealerName)

	return header + strings.TrimSpace(content) + footer
}
