package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"go.ontologyc.dev/compiler/state"
)

func newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Print the recorded state document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runState(cmd)
		},
	}
}

func runState(cmd *cobra.Command) error {
	pages, _, err := openStores(cmd)
	if err != nil {
		return err
	}

	mgr := state.NewManager(pages)

	doc, err := mgr.Load(cmd.Context())
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(encoded))

	return nil
}
