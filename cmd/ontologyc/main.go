// Command ontologyc is the CLI entry point for the wiki ontology
// compiler: it loads schema files, resolves inheritance and
// multi-category composition, installs generated artifacts onto a page
// store, and reports drift against previously recorded state.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	applog "go.ontologyc.dev/compiler/log"
	"go.ontologyc.dev/compiler/profiler"
)

// logPublisher fans out every log line written through the root slog
// handler to subscribers. The install command's progress TUI subscribes
// to it so log output tails beneath the progress display instead of
// scrolling underneath it; every other command simply leaves it
// unsubscribed, in which case Write is a no-op beyond the copy.
var logPublisher = applog.NewPublisher()

func main() {
	os.Exit(run())
}

func run() int {
	logCfg := applog.NewConfig()
	prof := profiler.New()

	rootCmd := &cobra.Command{
		Use:   "ontologyc",
		Short: "Compile wiki ontology schemas into generated artifacts",
		Long: `ontologyc loads category/property/subobject schema definitions, resolves
multiple inheritance and multi-category composition, and installs the
resulting semantic templates, dispatcher templates, display stubs, and
data-entry forms onto a page store.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(io.MultiWriter(os.Stderr, logPublisher))
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return prof.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return prof.Stop()
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	prof.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().String(storeDirFlag, "./ontologyc-store", "directory backing the local page store")

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register log completions: %v\n", err)
	}

	rootCmd.AddCommand(
		newImportCmd(),
		newExportCmd(),
		newInstallCmd(),
		newRegenerateCmd(),
		newResolveCmd(),
		newStateCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	return 0
}
