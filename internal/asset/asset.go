// Package asset declares the assets a manifest asks the tool to fetch.
package asset

// Descriptor holds everything needed to fetch and verify one asset.
type Descriptor struct {
	// Name of the file on disk. This should be unique within one
	// manifest; the core does not deduplicate.
	Name string `json:"name" yaml:"name"`
	// Hash is the sha256 of the file's data in hexadecimal representation.
	Hash string `json:"hash" yaml:"hash"`
	// URL the asset can be obtained from.
	URL string `json:"url" yaml:"url"`
	// Decompress optionally names a compression to unpack after the
	// download: "gzip" or "xz". The hash always covers the downloaded
	// bytes, never the decompressed output.
	Decompress string `json:"decompress,omitempty" yaml:"decompress,omitempty"`
}
