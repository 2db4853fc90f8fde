package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formgate/pkg/submission"
)

func newContractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contract",
		Short: "Print the OpenAPI schema of the submitted registration payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(submission.Contract())
		},
	}
}
