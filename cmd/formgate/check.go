package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formgate/internal/config"
	"github.com/goliatone/go-formgate/pkg/controller"
	"github.com/goliatone/go-formgate/pkg/form"
	"github.com/goliatone/go-formgate/pkg/submission"
)

var errFormInvalid = errors.New("form has invalid fields")

type fieldReport struct {
	Value    string `json:"value,omitempty"`
	Validity string `json:"validity"`
	Class    string `json:"class,omitempty"`
	Message  string `json:"message,omitempty"`
}

type checkReport struct {
	Fields    map[string]fieldReport `json:"fields"`
	Enabled   bool                   `json:"enabled"`
	Submitted bool                   `json:"submitted"`
	Notices   []string               `json:"notices,omitempty"`

	Registration *submission.Registration `json:"registration,omitempty"`
}

func newCheckCmd() *cobra.Command {
	var submit bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate field values given as flags",
		Example: `  formgate check --name John --email a@b.co --password 'Abcdef1!' \
    --confirmation 'Abcdef1!' --age 20 --submit`,
		Args: cobra.NoArgs,
	}
	fields := bindFieldFlags(cmd)
	cmd.Flags().BoolVar(&submit, "submit", false, "attempt a submission after validating")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		var notices []string
		notifier := controller.NotifierFunc(func(n controller.Notice) {
			notices = append(notices, n.Message)
		})
		ctrl, err := newController(cfg, nil, notifier, verifyHandoff)
		if err != nil {
			return err
		}
		if err := fields.apply(cmd, ctrl); err != nil {
			return err
		}

		report := buildReport(ctrl.Form())
		var submitErr error
		if submit {
			res := ctrl.Submit()
			report.Submitted = res.Accepted
			submitErr = res.Err
			if res.Accepted {
				reg := res.Registration
				report.Registration = &reg
			}
		}
		report.Notices = notices

		if err := writeReport(cmd.OutOrStdout(), cfg.Output, report); err != nil {
			return err
		}
		if !report.Enabled {
			return errFormInvalid
		}
		return submitErr
	}
	return cmd
}

// buildReport captures the form before any submission clears it.
func buildReport(f *form.Form) checkReport {
	snap := f.Snapshot()
	report := checkReport{
		Fields:  make(map[string]fieldReport, len(snap.Fields)),
		Enabled: snap.Enabled,
	}
	for name, state := range snap.Fields {
		fr := fieldReport{
			Validity: state.Validity.String(),
			Class:    state.Validity.Class(),
			Message:  state.Message,
		}
		if name != form.FieldPassword && name != form.FieldConfirmation {
			fr.Value = state.Value
		}
		report.Fields[name] = fr
	}
	return report
}

func writeReport(w io.Writer, format string, report checkReport) error {
	if format == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range form.Fields() {
		fr := report.Fields[name]
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, fr.Validity, fr.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	state := "disabled"
	if report.Enabled {
		state = "enabled"
	}
	if _, err := fmt.Fprintf(w, "submit: %s\n", state); err != nil {
		return err
	}
	if reg := report.Registration; reg != nil {
		if _, err := fmt.Fprintf(w, "registration: name=%s email=%s age=%d\n", reg.Name, reg.Email, reg.Age); err != nil {
			return err
		}
	}
	for _, notice := range report.Notices {
		if _, err := fmt.Fprintln(w, notice); err != nil {
			return err
		}
	}
	return nil
}
