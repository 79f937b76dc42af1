package fetcher

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"assetfetch/internal/asset"
	"assetfetch/internal/hash"
)

// VerifyResult reports the on-disk state of one declared asset.
type VerifyResult struct {
	Name    string
	Missing bool
	OK      bool
	// Actual is the digest of the file on disk; zero when missing.
	Actual hash.Sha256
}

// Verify re-hashes the files on disk against their declared hashes,
// without any network access and without touching the ledger. A missing
// or mismatched file is reported in its result, not as an error; only
// malformed declared hashes and I/O failures other than "file absent"
// are errors.
func Verify(descs []asset.Descriptor, dir string) ([]VerifyResult, error) {
	results := make([]VerifyResult, 0, len(descs))
	for _, d := range descs {
		expected, err := hash.FromHex(d.Hash)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", d.Name, err)
		}

		actual, err := hashFile(filepath.Join(dir, d.Name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				results = append(results, VerifyResult{Name: d.Name, Missing: true})
				continue
			}
			return nil, err
		}
		results = append(results, VerifyResult{Name: d.Name, OK: actual == expected, Actual: actual})
	}
	return results, nil
}

func hashFile(path string) (hash.Sha256, error) {
	var zero hash.Sha256
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	digest := sha256.New()
	if _, err := io.Copy(digest, f); err != nil {
		return zero, fmt.Errorf("hashing %s: %w", path, err)
	}
	return hash.FromDigest(digest), nil
}
