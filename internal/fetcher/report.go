package fetcher

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Report collects the names of assets actually fetched (not skipped)
// during one run, stamped with a run ID.
type Report struct {
	RunID string
	Names []string
}

// NewReport builds a report from run results, keeping only the assets
// that hit the network.
func NewReport(results []Result) *Report {
	r := &Report{RunID: uuid.NewString()}
	for _, res := range results {
		if res.Outcome != OutcomeSkipped {
			r.Names = append(r.Names, res.Name)
		}
	}
	return r
}

// WriteFile appends the report to path, creating parent directories as
// needed. Each run contributes a "# run <id>" header followed by one
// fetched name per line.
func (r *Report) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening report %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "# run %s\n", r.RunID); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	for _, name := range r.Names {
		if _, err := fmt.Fprintln(f, name); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
