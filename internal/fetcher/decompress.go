package fetcher

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"

	"assetfetch/internal/asset"
)

// decompressAsset unpacks a downloaded asset next to it, stripping the
// compression suffix from the file name, and returns the output path.
// The downloaded file itself is kept: it is what the ledger hash covers.
func decompressAsset(path, algo string) (string, error) {
	suffix := asset.DecompressSuffix(algo)
	if suffix == "" {
		return "", fmt.Errorf("unsupported decompression %q", algo)
	}
	outPath := strings.TrimSuffix(path, suffix)
	if outPath == path {
		return "", fmt.Errorf("%s lacks the %s suffix", path, suffix)
	}

	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer in.Close()

	var r io.Reader
	switch algo {
	case "gzip":
		gz, err := gzip.NewReader(in)
		if err != nil {
			return "", fmt.Errorf("reading gzip stream from %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	case "xz":
		xr, err := xz.NewReader(in)
		if err != nil {
			return "", fmt.Errorf("reading xz stream from %s: %w", path, err)
		}
		r = xr
	}

	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("decompressing to %s: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("decompressing to %s: %w", outPath, err)
	}
	return outPath, nil
}
