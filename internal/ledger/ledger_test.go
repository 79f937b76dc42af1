package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"assetfetch/internal/hash"
)

const (
	hexA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	hexB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func mustHash(t *testing.T, s string) hash.Sha256 {
	t.Helper()
	h, err := hash.FromHex(s)
	if err != nil {
		t.Fatalf("FromHex(%q): %v", s, err)
	}
	return h
}

func TestReadSkipsCommentsAndShortLines(t *testing.T) {
	in := "# a comment line\n" +
		"\n" +
		hexA + " tiles.bin\n" +
		hexB + "\n"
	l, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	h, ok := l.Lookup("tiles.bin")
	if !ok {
		t.Fatal("tiles.bin not found")
	}
	if h != mustHash(t, hexA) {
		t.Errorf("tiles.bin hash = %s, want %s", h.Hex(), hexA)
	}
}

func TestReadRejectsMalformedHash(t *testing.T) {
	_, err := Read(strings.NewReader("nothex tiles.bin\n"))
	if !errors.Is(err, hash.ErrBadHashFormat) {
		t.Fatalf("err = %v, want ErrBadHashFormat", err)
	}
}

func TestLoadAbsentFile(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "hash_list"))
	if err != nil {
		t.Fatalf("Load absent file: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestLoadPropagatesOtherIOErrors(t *testing.T) {
	// A directory at the ledger path is an I/O failure distinct from
	// "file absent" and must not be treated as an empty ledger.
	path := filepath.Join(t.TempDir(), "hash_list")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load of a directory succeeded, want error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hash_list")
	l := New()
	l.Record("tiles.bin", mustHash(t, hexA))
	l.Record("font.ttf", mustHash(t, hexB))
	if err := l.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", got.Len())
	}
	for name, want := range map[string]string{"tiles.bin": hexA, "font.ttf": hexB} {
		h, ok := got.Lookup(name)
		if !ok {
			t.Fatalf("%s missing after round trip", name)
		}
		if h.Hex() != want {
			t.Errorf("%s hash = %s, want %s", name, h.Hex(), want)
		}
	}
}

func TestRecordOverwrites(t *testing.T) {
	l := New()
	l.Record("tiles.bin", mustHash(t, hexA))
	l.Record("tiles.bin", mustHash(t, hexB))
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	h, _ := l.Lookup("tiles.bin")
	if h.Hex() != hexB {
		t.Errorf("hash = %s, want last write %s", h.Hex(), hexB)
	}
}
