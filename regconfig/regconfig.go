// Package regconfig loads naming profiles for autoreg registries from YAML
// files, so naming conventions can be declared alongside a project instead
// of hard-coded at every registry construction site.
package regconfig

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/autoreg/registry"
)

// Profile is a partial naming configuration. Pointer fields distinguish
// "not set" (inherit) from an explicit false or empty value, mirroring how
// child units override only the fields they name.
type Profile struct {
	CaseSensitive *bool   `yaml:"case_sensitive"`
	Pattern       *string `yaml:"pattern"`
	Prefix        *string `yaml:"prefix"`
	Suffix        *string `yaml:"suffix"`
	StripPrefix   *bool   `yaml:"strip_prefix"`
	StripSuffix   *bool   `yaml:"strip_suffix"`
	RegisterSelf  *bool   `yaml:"register_self"`
	Recursive     *bool   `yaml:"recursive"`
	SnakeCase     *bool   `yaml:"snake_case"`
	Hyphen        *bool   `yaml:"hyphen"`
	Overwrite     *bool   `yaml:"overwrite"`
}

// Parse decodes a profile from YAML.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and parses a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", path, err)
	}
	return p, nil
}

// Validate checks that the profile's fields are usable.
func (p *Profile) Validate() error {
	if p.Pattern != nil {
		if _, err := regexp.Compile(*p.Pattern); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", *p.Pattern, err)
		}
	}
	return nil
}

// Merge overlays other onto p: every field other sets replaces p's value.
func (p *Profile) Merge(other *Profile) {
	if other == nil {
		return
	}
	if other.CaseSensitive != nil {
		p.CaseSensitive = other.CaseSensitive
	}
	if other.Pattern != nil {
		p.Pattern = other.Pattern
	}
	if other.Prefix != nil {
		p.Prefix = other.Prefix
	}
	if other.Suffix != nil {
		p.Suffix = other.Suffix
	}
	if other.StripPrefix != nil {
		p.StripPrefix = other.StripPrefix
	}
	if other.StripSuffix != nil {
		p.StripSuffix = other.StripSuffix
	}
	if other.RegisterSelf != nil {
		p.RegisterSelf = other.RegisterSelf
	}
	if other.Recursive != nil {
		p.Recursive = other.Recursive
	}
	if other.SnakeCase != nil {
		p.SnakeCase = other.SnakeCase
	}
	if other.Hyphen != nil {
		p.Hyphen = other.Hyphen
	}
	if other.Overwrite != nil {
		p.Overwrite = other.Overwrite
	}
}

// Options converts the profile into registry options, compiling the regex
// pattern. Unset fields produce no option and keep the registry's defaults.
func (p *Profile) Options() ([]registry.Option, error) {
	var opts []registry.Option
	if p.CaseSensitive != nil {
		opts = append(opts, registry.WithCaseSensitive(*p.CaseSensitive))
	}
	if p.Pattern != nil {
		re, err := regexp.Compile(*p.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", *p.Pattern, err)
		}
		opts = append(opts, registry.WithRegex(re))
	}
	if p.Prefix != nil {
		opts = append(opts, registry.WithPrefix(*p.Prefix))
	}
	if p.Suffix != nil {
		opts = append(opts, registry.WithSuffix(*p.Suffix))
	}
	if p.StripPrefix != nil {
		opts = append(opts, registry.WithStripPrefix(*p.StripPrefix))
	}
	if p.StripSuffix != nil {
		opts = append(opts, registry.WithStripSuffix(*p.StripSuffix))
	}
	if p.RegisterSelf != nil {
		opts = append(opts, registry.WithRegisterSelf(*p.RegisterSelf))
	}
	if p.Recursive != nil {
		opts = append(opts, registry.WithRecursive(*p.Recursive))
	}
	if p.SnakeCase != nil {
		opts = append(opts, registry.WithSnakeCase(*p.SnakeCase))
	}
	if p.Hyphen != nil {
		opts = append(opts, registry.WithHyphen(*p.Hyphen))
	}
	if p.Overwrite != nil {
		opts = append(opts, registry.WithOverwrite(*p.Overwrite))
	}
	return opts, nil
}

// Config resolves the profile against the library defaults into a concrete
// registry configuration.
func (p *Profile) Config() (registry.Config, error) {
	opts, err := p.Options()
	if err != nil {
		return registry.Config{}, err
	}
	return registry.New(opts...).Config(), nil
}
