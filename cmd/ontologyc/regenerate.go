package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.ontologyc.dev/compiler/compiler"
	"go.ontologyc.dev/compiler/install"
)

func newRegenerateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "regenerate <file.yaml|file.json|->",
		Short: "Report what installing a schema would change",
		Long: `regenerate computes the artifacts a schema would produce and diffs their
content hashes against the recorded state document, without writing
anything. Pass --dry-run=false to perform the write instead (equivalent
to "ontologyc install").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !dryRun {
				return runInstall(cmd, args[0], false)
			}

			return runRegenerate(cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", true, "only report the diff; do not write")

	return cmd
}

func runRegenerate(cmd *cobra.Command, path string) error {
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

	diff, err := c.Regenerate(cmd.Context(), sch)
	if err != nil {
		return err
	}

	printDiff(diff)

	return nil
}

func printDiff(diff *install.Diff) {
	if len(diff.Pages.New) == 0 && len(diff.Pages.Changed) == 0 &&
		len(diff.Pages.Removed) == 0 && len(diff.Templates) == 0 {
		fmt.Println("up to date")
		return
	}

	for _, title := range diff.Pages.New {
		fmt.Printf("new page:     %s\n", title)
	}

	for _, title := range diff.Pages.Changed {
		fmt.Printf("changed page: %s\n", title)
	}

	for _, title := range diff.Pages.Removed {
		fmt.Printf("removed page: %s\n", title)
	}

	for _, name := range diff.Templates {
		fmt.Printf("stale template: %s\n", name)
	}
}
