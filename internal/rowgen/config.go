package rowgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// MaxSupportedArity bounds the largest row type rowgen will emit.
const MaxSupportedArity = 16

// Config contains the configuration information used by rowgen
type Config struct {
	// the package clause of the generated file
	Package string `toml:"package"`

	// the output file location relative to the package directory
	Output string `toml:"output"`

	// the largest arity to generate; rows are generated for 1..MaxArity
	MaxArity int `toml:"max_arity"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Package:  "row",
		Output:   "row_gen.go",
		MaxArity: 4,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConfigError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("invalid rowgen config field %s", e.Field))
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	return strings.Join(parts, " - ")
}

// Validate checks that the configuration can produce a compilable file.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Package) == "" {
		return &ConfigError{Field: "package", Reason: "package name is required"}
	}
	if strings.TrimSpace(c.Output) == "" {
		return &ConfigError{Field: "output", Reason: "output path is required"}
	}
	if c.MaxArity < 1 || c.MaxArity > MaxSupportedArity {
		return &ConfigError{
			Field:  "max_arity",
			Value:  c.MaxArity,
			Reason: fmt.Sprintf("must be between 1 and %d", MaxSupportedArity),
		}
	}
	return nil
}
