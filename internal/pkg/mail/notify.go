package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

const contactNotifyTpl = `<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#333">New contact enquiry</h2>
  <p style="font-size:14px;line-height:24px;color:#000"><strong>{{.FullName}}</strong> left a message through the contact form:</p>
  <div style="background:#f3f4f6;border-radius:8px;padding:4px 16px">
    <p style="font-size:13px;line-height:22px;color:#333">{{.Message}}</p>
  </div>
  <p style="font-size:13px;line-height:22px;color:#333">
    Email: {{.Email}}<br />
    {{if .Phone}}Phone: {{.Phone}}<br />{{end}}
    {{if .Subject}}Subject: {{.Subject}}<br />{{end}}
  </p>
  <hr style="border:none;border-top:1px solid #eaeaea;margin:26px 0" />
  <p style="font-size:10px;line-height:24px;text-align:center;color:#9ca3af">This email was sent automatically, please do not reply.<br />©{{year}} Yaritu</p>
</div>
</body>
</html>`

// ContactNotifyData is the data for contact-form notification emails.
type ContactNotifyData struct {
	FullName string
	Email    string
	Phone    string
	Subject  string
	Message  string
}

// SendContactNotify notifies the configured address about a new
// contact-form submission.
func (s *Sender) SendContactNotify(to string, data ContactNotifyData) error {
	html, err := renderTemplate(contactNotifyTpl, data)
	if err != nil {
		return err
	}
	subject := "[Yaritu] New contact enquiry"
	if data.Subject != "" {
		subject = fmt.Sprintf("[Yaritu] %s", data.Subject)
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
}

func renderTemplate(tpl string, data interface{}) (string, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"year": func() int {
			return time.Now().Year()
		},
	}).Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
