package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"

	"github.com/google/uuid"
)

// Service handles sending interview emails via SMTP
type Service struct {
	host        string
	port        string
	username    string
	password    string
	fromEmail   string
	companyName string
	dialTimeout time.Duration
}

// Config holds the SMTP settings for the service.
type Config struct {
	Host        string
	Port        string
	Username    string
	Password    string
	FromEmail   string
	CompanyName string
	DialTimeout time.Duration
}

// InterviewEmailData holds the data interpolated into the interview templates.
type InterviewEmailData struct {
	CandidateName string
	Position      string
	InterviewDate string
	InterviewTime string
	Duration      string
	JoinLink      string
	RecruiterName string
	CompanyName   string
}

// NewService creates a new email service from SMTP configuration
func NewService(cfg Config) *Service {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 10 * time.Second
	}
	return &Service{
		host:        cfg.Host,
		port:        cfg.Port,
		username:    cfg.Username,
		password:    cfg.Password,
		fromEmail:   cfg.FromEmail,
		companyName: cfg.CompanyName,
		dialTimeout: cfg.DialTimeout,
	}
}

// invitationTemplate is the HTML template for interview invitations
const invitationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Invitation à un entretien</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .detail { margin-bottom: 10px; }
        .label { font-weight: bold; color: #555; }
        .cta { display: inline-block; margin-top: 15px; padding: 12px 24px; background: #0066cc; color: white; text-decoration: none; border-radius: 4px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Invitation à un entretien</h1>
        </div>
        <div class="content">
            <p>Bonjour {{.CandidateName}},</p>
            <p>Nous avons le plaisir de vous inviter à un entretien pour le poste de <strong>{{.Position}}</strong>.</p>
            <div class="detail"><span class="label">Date :</span> {{.InterviewDate}}</div>
            <div class="detail"><span class="label">Heure :</span> {{.InterviewTime}}</div>
            {{if .Duration}}<div class="detail"><span class="label">Durée :</span> {{.Duration}}</div>{{end}}
            {{if .JoinLink}}<p><a class="cta" href="{{.JoinLink}}">Rejoindre l'entretien</a></p>{{end}}
            {{if .RecruiterName}}<p>Votre interlocuteur sera {{.RecruiterName}}.</p>{{end}}
            <p>À très bientôt,<br>{{.CompanyName}}</p>
        </div>
        <div class="footer">
            <p>Cet email a été envoyé automatiquement par {{.CompanyName}}.</p>
        </div>
    </div>
</body>
</html>`

// reminderTemplate is the HTML template for interview reminders
const reminderTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Rappel d'entretien</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #cc7700; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .detail { margin-bottom: 10px; }
        .label { font-weight: bold; color: #555; }
        .cta { display: inline-block; margin-top: 15px; padding: 12px 24px; background: #cc7700; color: white; text-decoration: none; border-radius: 4px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Rappel : entretien à venir</h1>
        </div>
        <div class="content">
            <p>Bonjour {{.CandidateName}},</p>
            <p>Petit rappel concernant votre entretien pour le poste de <strong>{{.Position}}</strong>.</p>
            <div class="detail"><span class="label">Date :</span> {{.InterviewDate}}</div>
            <div class="detail"><span class="label">Heure :</span> {{.InterviewTime}}</div>
            {{if .Duration}}<div class="detail"><span class="label">Durée :</span> {{.Duration}}</div>{{end}}
            {{if .JoinLink}}<p><a class="cta" href="{{.JoinLink}}">Rejoindre l'entretien</a></p>{{end}}
            <p>À très bientôt,<br>{{.CompanyName}}</p>
        </div>
        <div class="footer">
            <p>Cet email a été envoyé automatiquement par {{.CompanyName}}.</p>
        </div>
    </div>
</body>
</html>`

var (
	invitationTmpl = template.Must(template.New("invitation").Parse(invitationTemplate))
	reminderTmpl   = template.Must(template.New("reminder").Parse(reminderTemplate))
)

// SendInterviewEmail renders the template for the given kind ("invitation" or
// "reminder") and sends it to the candidate. Returns the generated message id.
func (s *Service) SendInterviewEmail(kind, toEmail string, data InterviewEmailData) (string, error) {
	if data.CompanyName == "" {
		data.CompanyName = s.companyName
	}

	tmpl := invitationTmpl
	subject := fmt.Sprintf("Invitation à un entretien - %s", data.Position)
	if kind == "reminder" {
		tmpl = reminderTmpl
		subject = fmt.Sprintf("Rappel : entretien pour le poste %s", data.Position)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	messageID := uuid.NewString()

	// Construct MIME message
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"Message-ID: <%s@%s>\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		toEmail,
		subject,
		messageID,
		s.host,
		body.String(),
	))

	// Fail fast on an unreachable relay instead of relying on OS defaults
	addr := net.JoinHostPort(s.host, s.port)
	conn, err := net.DialTimeout("tcp", addr, s.dialTimeout)
	if err != nil {
		return "", fmt.Errorf("failed to reach SMTP relay: %w", err)
	}
	conn.Close()

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{toEmail}, msg); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return messageID, nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
