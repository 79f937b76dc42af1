package hash

import (
	"crypto/sha256"
	"errors"
	"strings"
	"testing"
)

func TestFromHexRoundTrip(t *testing.T) {
	cases := []string{
		strings.Repeat("00", Size),
		strings.Repeat("ff", Size),
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		"0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
	}
	for _, want := range cases {
		h, err := FromHex(want)
		if err != nil {
			t.Fatalf("FromHex(%q): %v", want, err)
		}
		if got := h.Hex(); got != want {
			t.Errorf("round trip of %q gave %q", want, got)
		}
	}
}

func TestFromHexUppercase(t *testing.T) {
	upper := "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855"
	h, err := FromHex(upper)
	if err != nil {
		t.Fatalf("FromHex uppercase: %v", err)
	}
	if got := h.Hex(); got != strings.ToLower(upper) {
		t.Errorf("Hex() = %q, want lowercase form", got)
	}
}

func TestFromHexRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"abcd",
		strings.Repeat("a", 63),
		strings.Repeat("a", 65),
		strings.Repeat("g", 64),
		strings.Repeat("a", 62) + "zz",
	}
	for _, in := range cases {
		if _, err := FromHex(in); !errors.Is(err, ErrBadHashFormat) {
			t.Errorf("FromHex(%q) err = %v, want ErrBadHashFormat", in, err)
		}
	}
}

func TestFromDigest(t *testing.T) {
	data := []byte("some asset content")
	d := sha256.New()
	d.Write(data)
	got := FromDigest(d)
	want := Sha256(sha256.Sum256(data))
	if got != want {
		t.Errorf("FromDigest = %s, want %s", got.Hex(), want.Hex())
	}
}
