package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/c360studio/autoreg/registry"
	"github.com/c360studio/autoreg/srcwalk"
)

func (c *cli) newWalkCmd() *cobra.Command {
	var includes, excludes []string

	cmd := &cobra.Command{
		Use:   "walk DIR",
		Short: "Walk a Go source tree and print the resulting registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			naming, err := c.profile.Options()
			if err != nil {
				return err
			}
			walker := srcwalk.NewWalker(srcwalk.Config{
				Root:     args[0],
				Includes: includes,
				Excludes: excludes,
				Naming:   naming,
				Logger:   c.logger,
			})
			reg, err := walker.Walk(cmd.Context())
			if err != nil {
				return err
			}
			printRegistry(cmd.OutOrStdout(), reg, "")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&includes, "include", nil,
		"glob patterns of files to walk (default: all Go files)")
	cmd.Flags().StringSliceVar(&excludes, "exclude", nil,
		"glob patterns of files to skip")

	return cmd
}

// printRegistry writes a registry's entries, flattening nested registries
// into dotted paths.
func printRegistry(out io.Writer, reg *registry.Registry, prefix string) {
	for key, value := range reg.Items() {
		switch v := value.(type) {
		case *registry.Registry:
			printRegistry(out, v, prefix+key+".")
		case srcwalk.Symbol:
			fmt.Fprintf(out, "%s%s\t%s\t%s\n", prefix, key, v.Kind, v.File)
		default:
			fmt.Fprintf(out, "%s%s\n", prefix, key)
		}
	}
}
