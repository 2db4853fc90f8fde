package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formgate/internal/config"
	"github.com/goliatone/go-formgate/pkg/controller"
	"github.com/goliatone/go-formgate/pkg/form"
	"github.com/goliatone/go-formgate/pkg/messages"
	"github.com/goliatone/go-formgate/pkg/submission"
)

// fieldFlags binds one flag per form field.
type fieldFlags struct {
	values map[string]*string
}

func bindFieldFlags(cmd *cobra.Command) *fieldFlags {
	ff := &fieldFlags{values: make(map[string]*string)}
	for _, name := range form.Fields() {
		ff.values[name] = cmd.Flags().String(name, "", fmt.Sprintf("value for the %s field", name))
	}
	return ff
}

// apply replays every flag the user set as a change event, in field order.
func (ff *fieldFlags) apply(cmd *cobra.Command, ctrl *controller.Controller) error {
	for _, name := range form.Fields() {
		if !cmd.Flags().Changed(name) {
			continue
		}
		if err := ctrl.Change(name, *ff.values[name]); err != nil {
			return err
		}
	}
	return nil
}

// newController builds the form and controller for a CLI command.
func newController(cfg config.Config, presenter form.Presenter, notifier controller.Notifier, handoff controller.Handoff) (*controller.Controller, error) {
	translator, err := loadTranslator(cfg)
	if err != nil {
		return nil, err
	}
	f := form.New(
		form.WithPresenter(presenter),
		form.WithMessages(messages.Resolve(translator, cfg.Locale, nil)),
	)
	return controller.New(f,
		controller.WithNotifier(notifier),
		controller.WithHandoff(handoff),
		controller.WithLogger(slog.Default()),
	), nil
}

// verifyHandoff re-checks the payload against the validator tags and the
// OpenAPI contract without sending it anywhere.
func verifyHandoff(reg submission.Registration) error {
	return errors.Join(submission.Validate(reg), submission.CheckContract(reg))
}

// printHandoff returns a Handoff that verifies the payload and writes it to w.
// It stands in for a real transport.
func printHandoff(w io.Writer, format string) controller.Handoff {
	return func(reg submission.Registration) error {
		if err := verifyHandoff(reg); err != nil {
			return err
		}
		if format == config.OutputJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"registration": reg})
		}
		_, err := fmt.Fprintf(w, "registration: name=%s email=%s age=%d\n", reg.Name, reg.Email, reg.Age)
		return err
	}
}
