package main

import (
	"fmt"

	"github.com/Veraticus/newslens/internal/cli"
	"github.com/spf13/cobra"
)

func modelCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "model",
		Short: "Show the configured classification model",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := newBackend()
			if err != nil {
				return err
			}
			defer b.Close()

			info := b.engine.ModelInfo()
			if jsonOut {
				return cli.WriteJSON(cmd.OutOrStdout(), info)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatModelInfo(info))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print model info as JSON")

	return cmd
}
