package asset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	yamlv3 "gopkg.in/yaml.v3"
	kyaml "sigs.k8s.io/yaml"
)

//go:embed manifest.schema.json
var manifestSchema string

// Manifest is the YAML declaration of the assets to fetch.
type Manifest struct {
	// Dir optionally names the directory the assets are fetched into.
	// A --dir flag takes precedence, the configured cache dir is the
	// fallback.
	Dir    string       `json:"dir,omitempty" yaml:"dir,omitempty"`
	Assets []Descriptor `json:"assets" yaml:"assets"`
}

// LoadManifest reads, schema-validates and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	if err := validateManifest(data); err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yamlv3.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest %s: %w", path, err)
	}

	for _, d := range m.Assets {
		if d.Name != filepath.Base(d.Name) || d.Name == "." || d.Name == ".." {
			return nil, fmt.Errorf("asset name %q is not a bare file name", d.Name)
		}
		if suffix := DecompressSuffix(d.Decompress); suffix != "" && !strings.HasSuffix(d.Name, suffix) {
			return nil, fmt.Errorf("asset %s declares decompress %q but lacks the %s suffix", d.Name, d.Decompress, suffix)
		}
	}
	return &m, nil
}

// validateManifest checks the raw YAML against the embedded JSON schema.
func validateManifest(data []byte) error {
	jsonData, err := kyaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("converting to JSON: %v", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("manifest.schema.json", strings.NewReader(manifestSchema)); err != nil {
		return err
	}
	sch, err := c.Compile("manifest.schema.json")
	if err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(jsonData, &v); err != nil {
		return err
	}
	return sch.Validate(v)
}

// DecompressSuffix maps a decompress algorithm to the file suffix an
// asset name must carry, so the unpacked output never collides with
// the downloaded file. Unknown algorithms map to "".
func DecompressSuffix(algo string) string {
	switch algo {
	case "gzip":
		return ".gz"
	case "xz":
		return ".xz"
	}
	return ""
}
