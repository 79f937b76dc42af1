package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"assetfetch/internal/asset"
	"assetfetch/internal/config"
	"assetfetch/internal/fetcher"
	"assetfetch/internal/logger"
	"assetfetch/internal/network"
)

// Fetch command flags
var (
	fetchDir     string
	fetchTimeout time.Duration
	reportPath   string
)

// createFetchCommand creates the fetch subcommand
func createFetchCommand() *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch [flags] MANIFEST",
		Short: "downloads the assets declared in a manifest",
		Long: `Fetch downloads every asset declared in the manifest, in order,
skipping assets whose cached copy already matches the declared sha256
according to the hash ledger. A hash mismatch is reported but keeps the
fetched file; a failed download aborts the run.`,
		Args: cobra.ExactArgs(1),
		RunE: executeFetch,
	}

	fetchCmd.Flags().StringVarP(&fetchDir, "dir", "d", "",
		"Asset directory (default: the manifest dir field, then the configured cache dir)")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 0,
		"Overall HTTP timeout per asset, 0 disables")
	fetchCmd.Flags().StringVar(&reportPath, "report", "",
		"Append the names of fetched assets to this report file")
	return fetchCmd
}

// executeFetch handles the fetch command execution logic
func executeFetch(cmd *cobra.Command, args []string) error {
	log := logger.Logger()

	m, err := asset.LoadManifest(args[0])
	if err != nil {
		return err
	}
	dir, err := resolveAssetDir(fetchDir, m)
	if err != nil {
		return err
	}
	log.Infof("fetching %d assets into %s", len(m.Assets), dir)

	client := network.NewSecureHTTPClient(fetchTimeout)
	results, err := fetcher.Download(client, m.Assets, dir, verbose)
	if err != nil {
		return err
	}

	var skipped, verified, mismatched int
	for _, r := range results {
		switch r.Outcome {
		case fetcher.OutcomeSkipped:
			skipped++
		case fetcher.OutcomeVerified:
			verified++
		case fetcher.OutcomeHashMismatch:
			mismatched++
		}
	}
	log.Infof("done: %d verified, %d skipped, %d mismatched", verified, skipped, mismatched)

	if reportPath != "" {
		rep := fetcher.NewReport(results)
		if err := rep.WriteFile(reportPath); err != nil {
			// The report is advisory, never fatal.
			log.Errorf("writing fetch report: %v", err)
		}
	}
	return nil
}

// resolveAssetDir picks the asset directory: flag, then manifest, then
// the configured cache dir.
func resolveAssetDir(flagDir string, m *asset.Manifest) (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	if m.Dir != "" {
		return m.Dir, nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return "", err
	}
	dir, err := cfg.CacheDirAbs()
	if err != nil {
		return "", fmt.Errorf("resolving cache directory: %w", err)
	}
	return dir, nil
}
