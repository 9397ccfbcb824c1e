package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Kind string

const (
	KindRegistrationCode Kind = "code.html"
	KindPasswordReset    Kind = "reset.html"
	KindTwoFA            Kind = "2fa.html"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Dialer opens an SMTP session; *gomail.Dialer satisfies it.
type Dialer interface {
	Dial() (gomail.SendCloser, error)
}

// Mailer keeps one SMTP connection open and reuses it between sends.
type Mailer struct {
	dialer    Dialer
	from      string
	templates *template.Template

	mu   sync.Mutex
	conn gomail.SendCloser
}

// New builds a mailer for cfg. With an empty host, messages are only logged.
func New(cfg Config) (*Mailer, error) {
	var dialer Dialer = logDialer{}
	if cfg.Host != "" {
		dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return NewWithDialer(dialer, cfg.From)
}

func NewWithDialer(dialer Dialer, from string) (*Mailer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("can't parse mail templates: %w", err)
	}
	return &Mailer{
		dialer:    dialer,
		from:      from,
		templates: tmpl,
	}, nil
}

// Send renders kind with params and delivers it. A failed send reconnects
// and retries once before giving up.
func (m *Mailer) Send(ctx context.Context, to, subject string, kind Kind, params map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&body, string(kind), params); err != nil {
		return fmt.Errorf("can't render %s: %w", kind, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.send(msg)
	if err == nil {
		return nil
	}
	zap.L().Warn("resending after reconnect", zap.String("kind", string(kind)), zap.Error(err))
	m.reset()

	if err = m.send(msg); err != nil {
		m.reset()
		zap.L().Error("mail has not been sent", zap.String("kind", string(kind)), zap.Error(err))
		return fmt.Errorf("can't send %s: %w", kind, err)
	}
	return nil
}

func (m *Mailer) send(msg *gomail.Message) error {
	if m.conn == nil {
		conn, err := m.dialer.Dial()
		if err != nil {
			return fmt.Errorf("dial: %w", err)
		}
		m.conn = conn
	}
	return gomail.Send(m.conn, msg)
}

func (m *Mailer) reset() {
	if m.conn == nil {
		return
	}
	if err := m.conn.Close(); err != nil {
		zap.L().Debug("closing smtp connection", zap.Error(err))
	}
	m.conn = nil
}

func (m *Mailer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn == nil {
		return nil
	}
	err := m.conn.Close()
	m.conn = nil
	return err
}

type logDialer struct{}

func (logDialer) Dial() (gomail.SendCloser, error) {
	return logSender{}, nil
}

type logSender struct{}

func (logSender) Send(from string, to []string, msg io.WriterTo) error {
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return err
	}
	zap.L().Info("smtp disabled, mail not delivered",
		zap.String("from", from),
		zap.Strings("to", to),
		zap.Int("size", buf.Len()),
	)
	return nil
}

func (logSender) Close() error { return nil }
