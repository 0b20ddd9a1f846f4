package gen

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// DefaultOutput is the file a manifest renders to when output is unset.
const DefaultOutput = "hex_constants.go"

// Manifest describes the constants a package wants generated.
type Manifest struct {
	Package   string  `toml:"package"`
	Output    string  `toml:"output"`
	Constants []Const `toml:"constant"`
}

// LoadManifest reads and validates a hexgen.toml file.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest load failed (%s): %w", path, err)
	}
	if m.Output == "" {
		m.Output = DefaultOutput
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Validate checks the fields the renderer cannot default.
func (m Manifest) Validate() error {
	if m.Package == "" {
		return fmt.Errorf("package is required")
	}
	if len(m.Constants) == 0 {
		return fmt.Errorf("at least one [[constant]] is required")
	}
	for _, c := range m.Constants {
		if c.Name == "" {
			return fmt.Errorf("constant with hex %q has no name", c.Hex)
		}
	}
	return nil
}

// Render produces the generated source file for the manifest.
func (m Manifest) Render() ([]byte, error) {
	return File(m.Package, m.Constants)
}
