// Package ledger keeps the persistent record of which assets have
// already been fetched and what their content hashed to.
package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"assetfetch/internal/hash"
)

// Ledger maps asset names to the sha256 of the content last fetched
// for each of them. A missing name means no known-good cached copy.
type Ledger struct {
	entries map[string]hash.Sha256
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{entries: make(map[string]hash.Sha256)}
}

// Load reads a ledger file. A missing file yields an empty ledger, not
// an error; any other I/O failure propagates.
func Load(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	l, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return l, nil
}

// Read parses ledger entries from r. Each data line has the form
// "<64-hex-hash> <name>". Blank lines and lines starting with '#' are
// skipped, as is a line whose hash is not followed by a name. A
// malformed hash on a data line is an error.
func Read(r io.Reader) (*Ledger, error) {
	l := New()
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, " ")
		h, err := hash.FromHex(fields[0])
		if err != nil {
			return nil, err
		}
		if len(fields) < 2 || fields[1] == "" {
			continue
		}
		l.entries[fields[1]] = h
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// Save writes all entries to path, one per line, replacing any previous
// file in full. Entry order follows map iteration and is not defined;
// the file is read back as a set of pairs.
func (l *Ledger) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledger %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for name, h := range l.entries {
		fmt.Fprintf(w, "%s %s\n", h.Hex(), name)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing ledger %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing ledger %s: %w", path, err)
	}
	return nil
}

// Lookup returns the recorded hash for name, if any.
func (l *Ledger) Lookup(name string) (hash.Sha256, bool) {
	h, ok := l.entries[name]
	return h, ok
}

// Record inserts or overwrites the entry for name. The last write for a
// given name wins; entries are never implicitly removed.
func (l *Ledger) Record(name string, h hash.Sha256) {
	l.entries[name] = h
}

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }
