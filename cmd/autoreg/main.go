// Package main provides the autoreg binary entry point. The tool applies
// the autoreg naming pipeline from the command line: deriving keys for
// identifiers, walking source trees into registries, and showing the
// effective naming profile.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/autoreg/regconfig"
)

const (
	Version = "0.1.0"
	appName = "autoreg"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cli carries the state shared by all subcommands.
type cli struct {
	profilePath string
	verbose     bool

	logger  *slog.Logger
	profile *regconfig.Profile
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Derive registry keys and walk source trees",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	root.PersistentFlags().StringVar(&c.profilePath, "profile", "",
		"path to a naming profile file (default: discovered autoreg.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false,
		"enable debug logging")

	root.AddCommand(c.newDeriveCmd())
	root.AddCommand(c.newWalkCmd())
	root.AddCommand(c.newConfigCmd())

	return root
}

// setup initializes logging and resolves the naming profile.
func (c *cli) setup() error {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if c.profilePath != "" {
		profile, err := regconfig.Load(c.profilePath)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		c.profile = profile
		return nil
	}

	profile, err := regconfig.NewLoader(c.logger).Load()
	if err != nil {
		return fmt.Errorf("resolve profile: %w", err)
	}
	c.profile = profile
	return nil
}
