package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/concurso-rubens-artero/app-inscricao/internal/config"
	"github.com/concurso-rubens-artero/app-inscricao/internal/logging"
	"github.com/concurso-rubens-artero/app-inscricao/internal/observability"
	"github.com/concurso-rubens-artero/app-inscricao/internal/utils"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

const (
	subjectConfirmation = "Inscrição confirmada - %s"
	subjectPhotoReview  = "Sua foto foi avaliada - %s"
)

// ConfirmationMessage carries the data of the registration e-mail
type ConfirmationMessage struct {
	ToEmail             string
	Name                string
	ContestTitle        string
	RegistrationNumber  string
	ProvisionalPassword string
	LoginURL            string
}

// PhotoReviewMessage carries the data of the review e-mail
type PhotoReviewMessage struct {
	ToEmail      string
	Name         string
	ContestTitle string
	PhotoTitle   string
	StatusLabel  string
	Note         string
	WorkspaceURL string
}

// Notifier delivers participant e-mails
type Notifier interface {
	SendConfirmation(ctx context.Context, msg ConfirmationMessage) error
	SendPhotoReview(ctx context.Context, msg PhotoReviewMessage) error
}

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html><body>
<h1>{{.ContestTitle}}</h1>
<p>Olá, {{.FirstName}}!</p>
<p>Sua inscrição foi realizada com sucesso. Número de inscrição: <strong>{{.RegistrationNumber}}</strong></p>
<p>Login: {{.ToEmail}}<br>Senha provisória: <strong>{{.ProvisionalPassword}}</strong></p>
<p>Depois do primeiro login será necessário criar uma senha nova.</p>
<p><a href="{{.LoginURL}}">Acessar a área do participante</a></p>
</body></html>`))

var photoReviewTemplate = template.Must(template.New("photo_review").Parse(`<!DOCTYPE html>
<html><body>
<h1>{{.ContestTitle}}</h1>
<p>Olá, {{.FirstName}}!</p>
<p>Sua foto <strong>{{.PhotoTitle}}</strong> foi avaliada: {{.StatusLabel}}.</p>
{{if .Note}}<p>Comentário do júri: {{.Note}}</p>{{end}}
<p><a href="{{.WorkspaceURL}}">Ver minhas fotos</a></p>
</body></html>`))

func renderConfirmation(msg ConfirmationMessage) (string, error) {
	var buf bytes.Buffer
	err := confirmationTemplate.Execute(&buf, struct {
		ConfirmationMessage
		FirstName string
	}{msg, utils.ExtractFirstName(msg.Name)})
	if err != nil {
		return "", fmt.Errorf("render confirmation: %w", err)
	}
	return buf.String(), nil
}

func renderPhotoReview(msg PhotoReviewMessage) (string, error) {
	var buf bytes.Buffer
	err := photoReviewTemplate.Execute(&buf, struct {
		PhotoReviewMessage
		FirstName string
	}{msg, utils.ExtractFirstName(msg.Name)})
	if err != nil {
		return "", fmt.Errorf("render photo review: %w", err)
	}
	return buf.String(), nil
}

// SMTPNotifier sends e-mails through an SMTP server using go-mail
type SMTPNotifier struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPNotifier creates a new SMTPNotifier with the given SMTP credentials
func NewSMTPNotifier(host string, port int, username, password, fromEmail, fromName string) *SMTPNotifier {
	return &SMTPNotifier{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (n *SMTPNotifier) message(toEmail, subject, htmlContent string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(n.fromName, n.fromEmail); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return nil, fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)
	return msg, nil
}

func (n *SMTPNotifier) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	ctx, span := utils.TraceExternalService(ctx, "smtp", "send")
	defer span.End()

	msg, err := n.message(toEmail, subject, htmlContent)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return err
	}

	opts := []gomail.Option{
		gomail.WithPort(n.port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15 * time.Second),
	}
	if n.username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(n.username),
			gomail.WithPassword(n.password),
		)
	}

	client, err := gomail.NewClient(n.host, opts...)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"smtp.host": n.host})
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (n *SMTPNotifier) SendConfirmation(ctx context.Context, msg ConfirmationMessage) error {
	content, err := renderConfirmation(msg)
	if err != nil {
		return err
	}
	return n.send(ctx, msg.ToEmail, fmt.Sprintf(subjectConfirmation, msg.ContestTitle), content)
}

func (n *SMTPNotifier) SendPhotoReview(ctx context.Context, msg PhotoReviewMessage) error {
	content, err := renderPhotoReview(msg)
	if err != nil {
		return err
	}
	return n.send(ctx, msg.ToEmail, fmt.Sprintf(subjectPhotoReview, msg.ContestTitle), content)
}

// LogNotifier only logs that an e-mail would be sent. The provisional
// password is never logged.
type LogNotifier struct {
	logger *logging.SafeLogger
}

// NewLogNotifier creates a notifier for environments without SMTP
func NewLogNotifier(logger *logging.SafeLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendConfirmation(_ context.Context, msg ConfirmationMessage) error {
	n.logger.Info("confirmation e-mail not sent (smtp disabled)",
		zap.String("email", observability.MaskEmail(msg.ToEmail)),
		zap.String("registration_number", msg.RegistrationNumber))
	return nil
}

func (n *LogNotifier) SendPhotoReview(_ context.Context, msg PhotoReviewMessage) error {
	n.logger.Info("photo review e-mail not sent (smtp disabled)",
		zap.String("email", observability.MaskEmail(msg.ToEmail)),
		zap.String("status", msg.StatusLabel))
	return nil
}

// NewNotifierFromConfig picks SMTP when enabled, logging otherwise
func NewNotifierFromConfig(cfg *config.Config, logger *logging.SafeLogger) Notifier {
	if cfg.SMTPEnabled && cfg.SMTPHost != "" {
		return NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFromEmail, cfg.SMTPFromName)
	}
	return NewLogNotifier(logger)
}
