// Package fetcher downloads declared assets into a local directory,
// skipping any asset whose cached copy already matches its declared
// sha256 according to the hash ledger kept next to the assets.
package fetcher

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"assetfetch/internal/asset"
	"assetfetch/internal/hash"
	"assetfetch/internal/ledger"
	"assetfetch/internal/logger"
)

// LedgerName is the ledger file kept inside the asset directory.
const LedgerName = "hash_list"

// Download fetches every descriptor, in order, into dir. An asset whose
// ledger entry equals its declared hash is skipped without a network
// call. Fetched bytes are streamed to <dir>/<name> while being hashed;
// the ledger records the actual digest whether or not it matches, so a
// mismatch is a reported outcome, not an error. Transport failures and
// non-success statuses abort the run and the ledger is not persisted;
// on success the ledger is written back once at the end.
func Download(client *http.Client, descs []asset.Descriptor, dir string, verbose bool) ([]Result, error) {
	log := logger.Logger()

	led, err := ledger.Load(filepath.Join(dir, LedgerName))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating asset directory %s: %w", dir, err)
	}

	results := make([]Result, 0, len(descs))
	for _, d := range descs {
		expected, err := hash.FromHex(d.Hash)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", d.Name, err)
		}

		if got, ok := led.Lookup(d.Name); ok && got == expected {
			if verbose {
				log.Infof("Skipping %s, cached copy matches", d.Name)
			}
			results = append(results, Result{Name: d.Name, Outcome: OutcomeSkipped, Actual: expected})
			continue
		}

		if verbose {
			log.Infof("Fetching %s ...", d.Name)
		}
		actual, err := fetchOne(client, d, dir, verbose)
		if err != nil {
			return nil, err
		}

		// Record what we actually got, matching or not. A mismatch stays
		// cached until the declared hash changes or the cache is removed.
		led.Record(d.Name, actual)

		outcome := OutcomeVerified
		if actual != expected {
			outcome = OutcomeHashMismatch
			log.Warnf("hash mismatch for %s: found %s, expected %s", d.Name, actual.Hex(), expected.Hex())
		} else if verbose {
			log.Infof("Verified %s", d.Name)
		}

		if d.Decompress != "" {
			unpacked, err := decompressAsset(filepath.Join(dir, d.Name), d.Decompress)
			if err != nil {
				return nil, fmt.Errorf("decompressing %s: %w", d.Name, err)
			}
			if verbose {
				log.Infof("Unpacked %s to %s", d.Name, filepath.Base(unpacked))
			}
		}

		results = append(results, Result{Name: d.Name, Outcome: outcome, Actual: actual})
	}

	if err := led.Save(filepath.Join(dir, LedgerName)); err != nil {
		return nil, err
	}
	return results, nil
}

// fetchOne streams one asset to <dir>/<name>, feeding the bytes through
// a sha256 accumulator on the way, and returns the finalized digest.
func fetchOne(client *http.Client, d asset.Descriptor, dir string, verbose bool) (hash.Sha256, error) {
	var zero hash.Sha256

	resp, err := client.Get(d.URL)
	if err != nil {
		return zero, fmt.Errorf("fetching %s: %w", d.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, &DownloadFailedError{URL: d.URL, Code: resp.StatusCode}
	}

	dest := filepath.Join(dir, d.Name)
	out, err := os.Create(dest)
	if err != nil {
		return zero, fmt.Errorf("creating %s: %w", dest, err)
	}
	defer out.Close()

	digest := sha256.New()
	w := io.MultiWriter(out, digest)
	if verbose && resp.ContentLength > 0 {
		bar := progressbar.NewOptions64(resp.ContentLength,
			progressbar.OptionSetDescription(fmt.Sprintf("downloading %s", d.Name)),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowBytes(true),
			progressbar.OptionThrottle(100*time.Millisecond),
		)
		w = io.MultiWriter(out, digest, bar)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return zero, fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return zero, fmt.Errorf("writing %s: %w", dest, err)
	}
	return hash.FromDigest(digest), nil
}
