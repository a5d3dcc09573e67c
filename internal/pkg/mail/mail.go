package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"github.com/yaritu/core/internal/config"
)

// Message is a single email to send.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender delivers email over SMTP, falling back to the Resend HTTP API
// when SMTP fails and a key is configured. Delivery is always
// best-effort for callers: a failed send must never affect a response
// already promised to a client.
type Sender struct {
	cfg config.MailConfig
}

func New(cfg config.MailConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send dispatches an email. SMTP is the primary transport; Resend is the
// documented fallback.
func (s *Sender) Send(msg Message) error {
	if !s.cfg.Enable {
		return nil
	}
	smtpErr := s.sendSMTP(msg)
	if smtpErr == nil {
		return nil
	}
	if s.cfg.ResendKey != "" {
		if resendErr := s.sendResend(msg); resendErr == nil {
			return nil
		} else {
			return fmt.Errorf("smtp: %v; resend: %w", smtpErr, resendErr)
		}
	}
	return smtpErr
}

func (s *Sender) sendSMTP(msg Message) error {
	host := s.cfg.Host
	if host == "" {
		return fmt.Errorf("smtp host not configured")
	}
	port := s.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("From: %s\r\n", from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", ")))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	body.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, host)
	return smtp.SendMail(addr, auth, from, msg.To, body.Bytes())
}

func (s *Sender) sendResend(msg Message) error {
	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"from":    from,
		"to":      msg.To,
		"subject": msg.Subject,
		"html":    msg.HTML,
	})

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.ResendKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("resend error %d: %s", resp.StatusCode, errResp.Message)
	}
	return nil
}
