package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formgate/pkg/renderers/tui"
)

func newFillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill",
		Short: "Fill in the registration form interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			view := tui.NewView()
			ctrl, err := newController(cfg, view, view, printHandoff(cmd.OutOrStdout(), cfg.Output))
			if err != nil {
				return err
			}

			session := tui.New(ctrl, view,
				tui.WithOutput(cmd.OutOrStdout()),
				tui.WithLogger(slog.Default()),
			)
			if err := session.Run(cmd.Context()); err != nil {
				if errors.Is(err, tui.ErrAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
					return nil
				}
				return err
			}
			return nil
		},
	}
}
