package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.ontologyc.dev/compiler/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Printf("ontologyc %s (%s/%s, revision %s, built %s by %s with %s)\n",
				version.Version, version.GoOS, version.GoArch, version.Revision,
				version.BuildDate, version.BuildUser, version.GoVersion)

			return nil
		},
	}
}
