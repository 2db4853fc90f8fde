package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formgate/pkg/renderers/html"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the form markup for field values given as flags",
		Args:  cobra.NoArgs,
	}
	fields := bindFieldFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		ctrl, err := newController(cfg, nil, nil, nil)
		if err != nil {
			return err
		}
		if err := fields.apply(cmd, ctrl); err != nil {
			return err
		}

		renderer, err := html.New()
		if err != nil {
			return err
		}
		out, err := renderer.Render(ctrl.Form().Snapshot())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}
	return cmd
}
