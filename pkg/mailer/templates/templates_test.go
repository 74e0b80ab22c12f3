package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAllTemplates(t *testing.T) {
	data := EmailData{
		Name:      "Asha",
		AppName:   "navdrishti",
		ActionURL: "https://example.com/act",
		Code:      "123456",
		Title:     "Literacy camp",
		Detail:    "Someone applied.",
		ExpiresAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC),
	}
	for _, name := range []string{VerifyEmail, PhoneCode, ResetPassword, ApplicationReceived, VerificationSubmitted} {
		subject, html, err := Render(name, data)
		require.NoError(t, err, name)
		assert.NotEmpty(t, subject, name)
		assert.Contains(t, html, "Asha", name)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, err := Render("no_such_template", EmailData{})
	assert.Error(t, err)
}

func TestRenderEscapesHTML(t *testing.T) {
	_, html, err := Render(VerifyEmail, EmailData{Name: "<script>alert(1)</script>"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestMapRoundTrip(t *testing.T) {
	in := EmailData{
		Name:      "Ravi",
		AppName:   "navdrishti",
		ActionURL: "https://example.com/verify?token=abc",
		Code:      "987654",
		ExpiresAt: time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
	}
	out := FromMap(ToMap(in))
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.ActionURL, out.ActionURL)
	assert.Equal(t, in.Code, out.Code)
	assert.True(t, in.ExpiresAt.Equal(out.ExpiresAt))
}
