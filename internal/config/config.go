// Package config holds the configuration of the go-gencxx* commands.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"

	"github.com/go-cxxdict/calldefs/pkg/cxxtypes"
)

type Config struct {
	Distiller string   `toml:"distiller"`
	Input     string   `toml:"input"`
	Format    string   `toml:"format"`  // text|json
	Classes   []string `toml:"classes"` // glob patterns over qualified class names
	Wrapper   Wrapper  `toml:"wrapper"`
}

type Wrapper struct {
	Name    string `toml:"name"`
	Package string `toml:"package"`
	Header  string `toml:"header"`
	Output  string `toml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Distiller == "" {
		c.Distiller = "gccxml"
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Wrapper.Output == "" {
		c.Wrapper.Output = "."
	}
	if c.Wrapper.Name == "" {
		c.Wrapper.Name = c.Wrapper.Package
	}
}

// Validate checks the values which have no sensible fallback.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: invalid format %q (want text or json)", c.Format)
	}
	for _, p := range c.Classes {
		if _, err := glob.Compile(p, ':'); err != nil {
			return fmt.Errorf("config: invalid class pattern %q: %w", p, err)
		}
	}
	return nil
}

// ClassFilter returns a predicate selecting the classes of reg whose
// qualified name, with or without default template arguments, matches one
// of the Classes patterns. Within a pattern, "*" does not cross a "::"
// while "**" does. No pattern selects every class.
func (c *Config) ClassFilter(reg *cxxtypes.Registry) (func(*cxxtypes.Scope) bool, error) {
	if len(c.Classes) == 0 {
		return func(*cxxtypes.Scope) bool { return true }, nil
	}
	globs := make([]glob.Glob, 0, len(c.Classes))
	for _, p := range c.Classes {
		g, err := glob.Compile(p, ':')
		if err != nil {
			return nil, fmt.Errorf("config: invalid class pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return func(s *cxxtypes.Scope) bool {
		full := cxxtypes.FullName(s)
		partial := strings.TrimPrefix(reg.Declarated(s.Ref()).PartialName(), "::")
		for _, g := range globs {
			if g.Match(full) || g.Match(partial) {
				return true
			}
		}
		return false
	}, nil
}

// EOF
