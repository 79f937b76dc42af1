package fetcher

import "assetfetch/internal/hash"

// Outcome classifies what happened to one asset during a run.
type Outcome int

const (
	// OutcomeSkipped means the ledger entry already matched the declared
	// hash, so no fetch and no file write happened.
	OutcomeSkipped Outcome = iota
	// OutcomeVerified means the asset was fetched and its digest matched
	// the declared hash.
	OutcomeVerified
	// OutcomeHashMismatch means the asset was fetched but its digest
	// differs from the declared hash. The file stays on disk and the
	// ledger records the actual hash, so the run still succeeds.
	OutcomeHashMismatch
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeVerified:
		return "verified"
	case OutcomeHashMismatch:
		return "hash mismatch"
	}
	return "unknown"
}

// Result reports the outcome for one asset. It is transient; only the
// ledger is persisted.
type Result struct {
	Name    string
	Outcome Outcome
	// Actual is the digest of the bytes on disk: the computed digest
	// after a fetch, or the declared hash on a skip.
	Actual hash.Sha256
}
