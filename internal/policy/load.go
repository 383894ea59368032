package policy

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.toml
var defaultPayload []byte

// Default compiles the embedded policy. On failure it returns an empty policy
// together with the error so the caller can report it and carry on.
func Default() (*Policy, error) {
	return FromTOML(defaultPayload)
}

// FromTOML compiles a TOML payload. Any failure yields Empty() and the error.
func FromTOML(data []byte) (*Policy, error) {
	var r Rules
	if err := toml.Unmarshal(data, &r); err != nil {
		return Empty(), fmt.Errorf("policy: parse toml: %w", err)
	}
	return compileOrEmpty(r)
}

// FromYAML compiles a YAML payload. Any failure yields Empty() and the error.
func FromYAML(data []byte) (*Policy, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Empty(), fmt.Errorf("policy: parse yaml: %w", err)
	}
	return compileOrEmpty(r)
}

// LoadFile reads a policy file, choosing the decoder by extension
// (.yaml/.yml for YAML, anything else as TOML).
func LoadFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Empty(), fmt.Errorf("policy: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return FromTOML(data)
	}
}

func compileOrEmpty(r Rules) (*Policy, error) {
	p, err := Compile(r)
	if err != nil {
		return Empty(), err
	}
	return p, nil
}
