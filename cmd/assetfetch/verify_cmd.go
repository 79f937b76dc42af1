package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"assetfetch/internal/asset"
	"assetfetch/internal/fetcher"
)

var verifyDir string

// createVerifyCommand creates the verify subcommand
func createVerifyCommand() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify [flags] MANIFEST",
		Short: "checks assets on disk against their declared hashes",
		Long: `Verify re-hashes every declared asset already on disk and compares
it against the manifest, without any network access and without
touching the hash ledger. The command fails if any asset is missing or
does not match.`,
		Args: cobra.ExactArgs(1),
		RunE: executeVerify,
	}

	verifyCmd.Flags().StringVarP(&verifyDir, "dir", "d", "",
		"Asset directory (default: the manifest dir field, then the configured cache dir)")
	return verifyCmd
}

// executeVerify handles the verify command execution logic
func executeVerify(cmd *cobra.Command, args []string) error {
	m, err := asset.LoadManifest(args[0])
	if err != nil {
		return err
	}
	dir, err := resolveAssetDir(verifyDir, m)
	if err != nil {
		return err
	}

	results, err := fetcher.Verify(m.Assets, dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	bad := 0
	for _, r := range results {
		switch {
		case r.Missing:
			bad++
			fmt.Fprintf(out, "%s: missing\n", r.Name)
		case !r.OK:
			bad++
			fmt.Fprintf(out, "%s: mismatch, found %s\n", r.Name, r.Actual.Hex())
		default:
			fmt.Fprintf(out, "%s: ok\n", r.Name)
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d assets failed verification", bad, len(results))
	}
	return nil
}
