package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

// Sender delivers mail over implicit-TLS SMTP (port 465 style). When no
// SMTP host is configured it degrades to logging the message, which is the
// expected mode in development.
type Sender struct {
	smtpHost string
	smtpPort string
	username string
	password string
	from     string
	logger   *zap.Logger
}

func NewSender(host, port, user, pass, from string, logger *zap.Logger) *Sender {
	if from == "" {
		from = user
	}
	return &Sender{
		smtpHost: host,
		smtpPort: port,
		username: user,
		password: pass,
		from:     from,
		logger:   logger,
	}
}

func (e *Sender) configured() bool {
	return e.smtpHost != "" && e.username != ""
}

const otpBodyHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">VendorIQ OTP Verification</h2>
  <p>Your One-Time Password (OTP) for VendorIQ is:</p>
  <div style="background-color: #f4f4f4; padding: 20px; text-align: center; margin: 20px 0;">
    <h1 style="color: #007bff; font-size: 32px; margin: 0; letter-spacing: 5px;">%s</h1>
  </div>
  <p>This OTP is valid for 5 minutes. Please do not share this code with anyone.</p>
  <p>If you didn't request this OTP, please ignore this email.</p>
</div>`

func (e *Sender) SendOTP(to, code string) error {
	if !e.configured() {
		e.logger.Info("smtp not configured, logging OTP instead",
			zap.String("to", to), zap.String("code", code))
		return nil
	}
	return e.Send(to, "Your VendorIQ OTP Code", fmt.Sprintf(otpBodyHTML, code))
}

func (e *Sender) SendNotification(to, subject, message string) error {
	if !e.configured() {
		e.logger.Info("smtp not configured, dropping notification",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}
	return e.Send(to, subject, "<p>"+message+"</p>")
}

func (e *Sender) Send(to, subject, body string) error {
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", e.from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" + // required for HTML
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	serverAddr := e.smtpHost + ":" + e.smtpPort

	// Implicit TLS for port 465
	tlsConfig := &tls.Config{
		ServerName: e.smtpHost,
	}

	conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, e.smtpHost)
	if err != nil {
		return err
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", e.username, e.password, e.smtpHost)
	if err := client.Auth(auth); err != nil {
		return err
	}

	if err := client.Mail(e.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
