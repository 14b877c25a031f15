package subscription

import (
	"fmt"

	"github.com/osteele/liquid"
)

const (
	confirmationSubject = "Welcome!"

	confirmationHTML = `<p>Hi {{ name | escape }},</p>
<p>Welcome to our newsletter! You are subscribed as <b>{{ email | escape }}</b>.</p>`

	confirmationText = `Hi {{ name }},
Welcome to our newsletter! You are subscribed as {{ email }}.`
)

// Confirmation renders the welcome email sent after a subscriber is stored.
//
// Templates are parsed once; rendering is safe for concurrent use.
type Confirmation struct {
	html *liquid.Template
	text *liquid.Template
}

// NewConfirmation parses the built-in confirmation templates.
func NewConfirmation() (*Confirmation, error) {
	return NewConfirmationFromTemplates(confirmationHTML, confirmationText)
}

// NewConfirmationFromTemplates parses custom Liquid templates. Both receive
// the bindings "name" and "email".
func NewConfirmationFromTemplates(htmlSrc, textSrc string) (*Confirmation, error) {
	engine := liquid.NewEngine()

	html, err := engine.ParseString(htmlSrc)
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}

	text, err := engine.ParseString(textSrc)
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}

	return &Confirmation{html: html, text: text}, nil
}

// Render produces the subject, HTML body and plain-text body for one subscriber.
func (c *Confirmation) Render(name, email string) (subject, htmlBody, textBody string, err error) {
	bindings := liquid.Bindings{
		"name":  name,
		"email": email,
	}

	htmlBody, htmlErr := c.html.RenderString(bindings)
	if htmlErr != nil {
		return "", "", "", fmt.Errorf("render html body: %w", htmlErr)
	}

	textBody, textErr := c.text.RenderString(bindings)
	if textErr != nil {
		return "", "", "", fmt.Errorf("render text body: %w", textErr)
	}

	return confirmationSubject, htmlBody, textBody, nil
}
