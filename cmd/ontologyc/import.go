package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.ontologyc.dev/compiler/compiler"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.yaml|file.json|->",
		Short: "Parse and validate a schema file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runImport(args[0])
		},
	}

	return cmd
}

func runImport(path string) error {
	data, err := readSchemaFile(path)
	if err != nil {
		return err
	}

	sch, warnings, err := compiler.Import(data)
	if err != nil {
		return err
	}

	for _, w := range warnings {
		fmt.Printf("warning [%s] %s: %s\n", w.Code, w.Path, w.Message)
	}

	fmt.Printf("loaded %d categories, %d properties, %d subobjects\n",
		len(sch.Categories), len(sch.Properties), len(sch.Subobjects))

	return nil
}
