package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// effectiveProfile mirrors the resolved configuration with every field
// concrete, for display.
type effectiveProfile struct {
	CaseSensitive bool   `yaml:"case_sensitive"`
	Pattern       string `yaml:"pattern,omitempty"`
	Prefix        string `yaml:"prefix,omitempty"`
	Suffix        string `yaml:"suffix,omitempty"`
	StripPrefix   bool   `yaml:"strip_prefix"`
	StripSuffix   bool   `yaml:"strip_suffix"`
	RegisterSelf  bool   `yaml:"register_self"`
	Recursive     bool   `yaml:"recursive"`
	SnakeCase     bool   `yaml:"snake_case"`
	Hyphen        bool   `yaml:"hyphen"`
	Overwrite     bool   `yaml:"overwrite"`
}

func (c *cli) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective naming profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.profile.Config()
			if err != nil {
				return err
			}

			eff := effectiveProfile{
				CaseSensitive: cfg.CaseSensitive,
				Prefix:        cfg.Prefix,
				Suffix:        cfg.Suffix,
				StripPrefix:   cfg.StripPrefix,
				StripSuffix:   cfg.StripSuffix,
				RegisterSelf:  cfg.RegisterSelf,
				Recursive:     cfg.Recursive,
				SnakeCase:     cfg.SnakeCase,
				Hyphen:        cfg.Hyphen,
				Overwrite:     cfg.Overwrite,
			}
			if cfg.Regex != nil {
				eff.Pattern = cfg.Regex.String()
			}

			data, err := yaml.Marshal(eff)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
