package email

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	texttemplate "text/template"

	"eventlisting/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// Template names understood by the renderer. Each name needs <name>_subject.txt,
// <name>.html and <name>.txt; <name>.<lang> variants are optional.
const (
	TemplateRegistrationConfirmation = "registration_confirmation"
	TemplateCoordinatorNotification  = "coordinator_notification"
)

type templateRenderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewTemplateRenderer parses the embedded templates once. It panics if they do not parse.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{
		html: htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html")),
		text: texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt")),
	}
}

// Render returns subject, html and text bodies of the named template. The variant for the
// recipient's language is used when one exists.
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	name := r.localized(templateName, data)
	if subject, err = execute(r.text, name+"_subject.txt", data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	if htmlBody, err = execute(r.html, name+".html", data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	if textBody, err = execute(r.text, name+".txt", data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return strings.TrimSpace(subject), htmlBody, textBody, nil
}

func (r *templateRenderer) localized(name string, data any) string {
	d, ok := data.(*domain.RegistrationEmailData)
	if !ok || d.Language == "" {
		return name
	}
	if candidate := name + "." + d.Language; r.text.Lookup(candidate+"_subject.txt") != nil {
		return candidate
	}
	return name
}

type executor interface {
	ExecuteTemplate(w io.Writer, name string, data any) error
}

func execute(t executor, name string, data any) (string, error) {
	var sb strings.Builder
	if err := t.ExecuteTemplate(&sb, name, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
