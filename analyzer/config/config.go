package config

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/viant/afs"
	"github.com/viant/pylinter/analyzer/rule"
	"gopkg.in/yaml.v3"
)

// Config represents analysis options
type Config struct {
	MaxIdentifierLength int      `yaml:"max_identifier_length,omitempty" toml:"max_identifier_length" json:"max_identifier_length,omitempty"`
	Disable             []string `yaml:"disable,omitempty" toml:"disable" json:"disable,omitempty"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{MaxIdentifierLength: rule.DefaultMaxIdentifierLength}
}

// Init sets defaults for unspecified options
func (c *Config) Init() {
	if c.MaxIdentifierLength <= 0 {
		c.MaxIdentifierLength = rule.DefaultMaxIdentifierLength
	}
}

// Validate checks that disabled rules exist
func (c *Config) Validate() error {
	known := rule.Default(c.MaxIdentifierLength)
	for _, name := range c.Disable {
		if known.Lookup(name) == nil {
			return fmt.Errorf("unknown rule: %q", name)
		}
	}
	return nil
}

// Rules returns enabled built-in rules
func (c *Config) Rules() *rule.Set {
	return rule.Default(c.MaxIdentifierLength).Without(c.Disable...)
}

// Signature returns canonical representation of options affecting analysis output
func (c *Config) Signature() string {
	disabled := append([]string{}, c.Disable...)
	sort.Strings(disabled)
	return fmt.Sprintf("max_identifier_length=%d;disable=%s", c.MaxIdentifierLength, strings.Join(disabled, ","))
}

// pyProject represents pyproject.toml [tool.pylinter] section
type pyProject struct {
	Tool struct {
		Pylinter *Config `toml:"pylinter"`
	} `toml:"tool"`
}

// Load loads config from YAML file or pyproject.toml [tool.pylinter] section
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	content, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	var cfg *Config
	if path.Ext(URL) == ".toml" {
		cfg, err = decodePyProject(content)
	} else {
		cfg = &Config{}
		err = yaml.Unmarshal(content, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no [tool.pylinter] section in %v", URL)
	}
	cfg.Init()
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return cfg, nil
}

func decodePyProject(content []byte) (*Config, error) {
	project := &pyProject{}
	if _, err := toml.Decode(string(content), project); err != nil {
		return nil, err
	}
	return project.Tool.Pylinter, nil
}
