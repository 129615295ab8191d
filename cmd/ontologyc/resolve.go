package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"go.ontologyc.dev/compiler/api"
	"go.ontologyc.dev/compiler/compiler"
)

func newResolveCmd() *cobra.Command {
	var canEdit bool

	cmd := &cobra.Command{
		Use:   "resolve <file.yaml|file.json|-> <category> [category...]",
		Short: "Resolve one or more categories into a merged property set",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args[0], args[1:], canEdit)
		},
	}

	cmd.Flags().BoolVar(&canEdit, "can-edit", true, "grant the caller edit authorization (§6.4)")

	return cmd
}

func runResolve(cmd *cobra.Command, path string, categories []string, canEdit bool) error {
	data, err := readSchemaFile(path)
	if err != nil {
		return err
	}

	sch, _, err := compiler.Import(data)
	if err != nil {
		return err
	}

	pages, semantic, err := openStores(cmd)
	if err != nil {
		return err
	}

	c := compiler.New(pages, semantic, false)

	resp, err := c.Resolve(api.Caller{CanEdit: canEdit}, sch, categories)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(encoded))

	return nil
}
