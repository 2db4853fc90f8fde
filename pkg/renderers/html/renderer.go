package html

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formgate/pkg/form"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

const defaultTemplate = "templates/form.tpl"

var (
	sanitizerOnce sync.Once
	sanitizer     *bluemonday.Policy
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLabels overrides the field labels keyed by field identifier.
func WithLabels(labels map[string]string) Option {
	return func(r *Renderer) {
		for name, label := range labels {
			r.labels[name] = label
		}
	}
}

// WithButtonLabels overrides the submit and reset button captions.
func WithButtonLabels(submit, reset string) Option {
	return func(r *Renderer) {
		if s := strings.TrimSpace(submit); s != "" {
			r.submitLabel = s
		}
		if s := strings.TrimSpace(reset); s != "" {
			r.resetLabel = s
		}
	}
}

// Renderer turns a form snapshot into markup. Classes, messages, and the
// disabled flag come straight from the snapshot; styling is left to the host
// stylesheet.
type Renderer struct {
	tpl         *pongo2.Template
	labels      map[string]string
	submitLabel string
	resetLabel  string
}

type fieldView struct {
	Name    string
	Label   string
	Type    string
	Class   string
	Value   string
	Message string
}

// New parses the embedded template.
func New(options ...Option) (*Renderer, error) {
	set := pongo2.NewSet("formgate", pongo2.NewFSLoader(templatesFS))
	tpl, err := set.FromFile(defaultTemplate)
	if err != nil {
		return nil, fmt.Errorf("html: parse template: %w", err)
	}

	r := &Renderer{
		tpl: tpl,
		labels: map[string]string{
			form.FieldName:         "Name",
			form.FieldEmail:        "Email",
			form.FieldPassword:     "Password",
			form.FieldConfirmation: "Confirm password",
			form.FieldAge:          "Age",
		},
		submitLabel: "Register",
		resetLabel:  "Reset",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Render produces the markup for snap.
func (r *Renderer) Render(snap form.Snapshot) (string, error) {
	if r == nil || r.tpl == nil {
		return "", errors.New("html: renderer is nil")
	}

	fields := make([]fieldView, 0, len(form.Fields()))
	for _, name := range form.Fields() {
		state := snap.Fields[name]
		view := fieldView{
			Name:    name,
			Label:   r.labels[name],
			Type:    inputType(name),
			Class:   state.Validity.Class(),
			Message: sanitize(state.Message),
		}
		if !isSecret(name) {
			view.Value = sanitize(state.Value)
		}
		fields = append(fields, view)
	}

	out, err := r.tpl.Execute(pongo2.Context{
		"fields":      fields,
		"enabled":     snap.Enabled,
		"submitLabel": r.submitLabel,
		"resetLabel":  r.resetLabel,
	})
	if err != nil {
		return "", fmt.Errorf("html: execute template: %w", err)
	}
	return out, nil
}

func inputType(name string) string {
	switch name {
	case form.FieldEmail:
		return "email"
	case form.FieldPassword, form.FieldConfirmation:
		return "password"
	case form.FieldAge:
		return "number"
	default:
		return "text"
	}
}

func isSecret(name string) bool {
	return name == form.FieldPassword || name == form.FieldConfirmation
}

// sanitize strips markup from user-entered text and escapes what remains,
// including quotes, so the template can emit it unescaped inside attributes.
func sanitize(raw string) string {
	sanitizerOnce.Do(func() {
		sanitizer = bluemonday.StrictPolicy()
	})
	return sanitizer.Sanitize(raw)
}
