package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/autoreg/registry"
)

func (c *cli) newDeriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive IDENTIFIER...",
		Short: "Run the naming pipeline on identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.profile.Config()
			if err != nil {
				return err
			}
			for _, identifier := range args {
				key, err := registry.DeriveKey(identifier, cfg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", identifier, key)
			}
			return nil
		},
	}
}
