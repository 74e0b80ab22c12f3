package templates

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	"strings"
	"time"
)

// Template names
const (
	VerifyEmail           = "verify_email"
	PhoneCode             = "phone_code"
	ResetPassword         = "reset_password"
	ApplicationReceived   = "application_received"
	VerificationSubmitted = "verification_submitted"
)

// EmailData defines the fields email templates can reference.
type EmailData struct {
	Name      string
	AppName   string
	ActionURL string
	Code      string
	Title     string
	Detail    string
	ExpiresAt time.Time
}

func baseFuncs() htmpl.FuncMap {
	return htmpl.FuncMap{
		"formatTime": func(t time.Time) string { return t.UTC().Format("02 January 2006, 15:04 MST") },
		"upper":      strings.ToUpper,
	}
}

var bodies = map[string]string{
	VerifyEmail: `<p>Hi {{.Name}},</p>
<p>Confirm your email address for {{.AppName}} by opening the link below. The link expires at {{formatTime .ExpiresAt}}.</p>
<p><a href="{{.ActionURL}}">Verify email address</a></p>`,
	PhoneCode: `<p>Hi {{.Name}},</p>
<p>Your {{.AppName}} phone confirmation code is <strong>{{.Code}}</strong>. It expires at {{formatTime .ExpiresAt}}.</p>`,
	ResetPassword: `<p>Hi {{.Name}},</p>
<p>A password reset was requested for your {{.AppName}} account. The link below expires at {{formatTime .ExpiresAt}}.</p>
<p><a href="{{.ActionURL}}">Reset password</a></p>
<p>If you did not request this, you can ignore this email.</p>`,
	ApplicationReceived: `<p>Hi {{.Name}},</p>
<p>{{.Title}} received a new application on {{.AppName}}.</p>
<p>{{.Detail}}</p>
<p><a href="{{.ActionURL}}">Review applications</a></p>`,
	VerificationSubmitted: `<p>Hi {{.Name}},</p>
<p>We received your verification documents for {{.AppName}}. Our team will review them shortly; features unlock once your account is approved.</p>`,
}

var subjects = map[string]string{
	VerifyEmail:           "Verify your email address",
	PhoneCode:             "Your phone confirmation code",
	ResetPassword:         "Reset your password",
	ApplicationReceived:   "New application received",
	VerificationSubmitted: "Verification documents received",
}

var parsed = func() map[string]*htmpl.Template {
	out := make(map[string]*htmpl.Template, len(bodies))
	for name, body := range bodies {
		out[name] = htmpl.Must(htmpl.New(name).Funcs(baseFuncs()).Parse(body))
	}
	return out
}()

// Render produces the subject and HTML body for a named template.
func Render(name string, data EmailData) (subject, html string, err error) {
	t, ok := parsed[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subjects[name], buf.String(), nil
}

// ToMap converts EmailData to a map for EmailJob.Data.
func ToMap(d EmailData) map[string]any {
	return map[string]any{
		"Name":      d.Name,
		"AppName":   d.AppName,
		"ActionURL": d.ActionURL,
		"Code":      d.Code,
		"Title":     d.Title,
		"Detail":    d.Detail,
		"ExpiresAt": d.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// FromMap rebuilds EmailData from an EmailJob payload.
func FromMap(m map[string]any) EmailData {
	d := EmailData{
		Name:      str(m["Name"]),
		AppName:   str(m["AppName"]),
		ActionURL: str(m["ActionURL"]),
		Code:      str(m["Code"]),
		Title:     str(m["Title"]),
		Detail:    str(m["Detail"]),
	}
	if t, err := time.Parse(time.RFC3339, str(m["ExpiresAt"])); err == nil {
		d.ExpiresAt = t
	}
	return d
}

func str(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
