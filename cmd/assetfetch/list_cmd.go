package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"assetfetch/internal/asset"
)

// createListCommand creates the list subcommand
func createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list MANIFEST",
		Short: "prints the assets declared in a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := asset.LoadManifest(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range m.Assets {
				fmt.Fprintf(out, "%s %s %s\n", d.Hash, d.Name, d.URL)
			}
			return nil
		},
	}
}
