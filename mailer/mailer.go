package mailer

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// BaseURL is the externally supplied frontend address used to build
	// reset-confirmation links.
	BaseURL string
}

func ConfigFromEnv() Config {
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}
	return Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		BaseURL:  os.Getenv("FRONTEND_BASE_URL"),
	}
}

// Mailer sends notifications on a detached goroutine. Delivery is
// best-effort: failures are logged and never surfaced to the request
// that triggered them.
type Mailer struct {
	cfg Config
}

func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

const expiryLayout = "2006-01-02 15:04:05"

// SendRegistrationEmail mails a newly registered worker their credentials
// and the standing reset link issued at registration. The plaintext
// password only exists at registration time; the stored copy is hashed.
func (m *Mailer) SendRegistrationEmail(worker *models.Worker, plainPassword string) {
	if worker.Email == "" {
		log.Printf("Cannot send welcome email: worker %d has no email", worker.ID)
		return
	}

	subject := fmt.Sprintf("Welcome to the platform, %s!", worker.FirstName)
	body := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
	<h1>Welcome to our platform!</h1>
	<p>Hello <strong>%s</strong>,</p>
	<p>Your account has been registered with the email <strong>%s</strong>.</p>
	<p style="color: #dc3545; font-weight: bold;">Security warning: please change this password as soon as possible.</p>
	<p>Your password to log in is: <strong>%s</strong></p>
	<p>You can reset your password at any time using the link below:</p>
	<p><a href="%s">Reset password</a></p>
	<p>This link is valid until <strong>%s</strong> (expires in 24 hours).</p>
	<p>If you did not request this, please ignore this email.</p>
</div>`,
		worker.FullName(), worker.Email, plainPassword,
		m.resetLink(worker), m.resetExpiry(worker))

	go m.deliver(worker.Email, subject, body)
}

// SendPasswordResetEmail mails the reset link for the worker's current token.
func (m *Mailer) SendPasswordResetEmail(worker *models.Worker) {
	if worker.Email == "" {
		log.Printf("Cannot send reset email: worker %d has no email", worker.ID)
		return
	}

	subject := "Reset your password"
	body := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
	<h1>Password Reset Request</h1>
	<p>Hello <strong>%s</strong>,</p>
	<p>We received a request to reset the password for your account.</p>
	<p><a href="%s">Reset password</a></p>
	<p>This link is valid until <strong>%s</strong> (expires in 24 hours).</p>
	<p>If you did not request a password reset, please ignore this email.</p>
</div>`,
		worker.FullName(), m.resetLink(worker), m.resetExpiry(worker))

	go m.deliver(worker.Email, subject, body)
}

func (m *Mailer) resetLink(worker *models.Worker) string {
	token := ""
	if worker.ResetToken != nil {
		token = *worker.ResetToken
	}
	return m.cfg.BaseURL + "/password?token=" + token
}

func (m *Mailer) resetExpiry(worker *models.Worker) string {
	if worker.ResetTokenExpiresAt == nil {
		return ""
	}
	return worker.ResetTokenExpiresAt.Format(expiryLayout)
}

func (m *Mailer) deliver(to, subject, htmlBody string) {
	if m.cfg.Host == "" {
		log.Printf("SMTP not configured, skipping email to %s (%s)", to, subject)
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return
	}
	log.Printf("Email sent to %s: %s", to, subject)
}
