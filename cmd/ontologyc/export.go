package main

import (
	"github.com/spf13/cobra"

	"go.ontologyc.dev/compiler/compiler"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <file.yaml|file.json|->",
		Short: "Re-serialize a schema file into its canonical JSON form",
		Long: `export loads a schema file and writes it back out in the canonical JSON
document format. Re-importing the output reconstructs an equivalent
schema: import(export(import(S))) == import(S).`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file path (- for stdout)")

	return cmd
}

func runExport(path, output string) error {
	data, err := readSchemaFile(path)
	if err != nil {
		return err
	}

	sch, _, err := compiler.Import(data)
	if err != nil {
		return err
	}

	exported, err := sch.Export()
	if err != nil {
		return err
	}

	return writeOutput(output, exported)
}
