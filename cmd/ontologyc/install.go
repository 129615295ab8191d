package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"go.ontologyc.dev/compiler/compiler"
	"go.ontologyc.dev/compiler/install"
)

func newInstallCmd() *cobra.Command {
	var noTUI bool

	cmd := &cobra.Command{
		Use:   "install <file.yaml|file.json|->",
		Short: "Install generated artifacts for a schema onto the page store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args[0], noTUI)
		},
	}

	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "report progress as log lines instead of the interactive progress display")

	return cmd
}

func runInstall(cmd *cobra.Command, path string, noTUI bool) error {
	data, err := readSchemaFile(path)
	if err != nil {
		return err
	}

	sch, warnings, err := compiler.Import(data)
	if err != nil {
		return err
	}

	for _, w := range warnings {
		slog.Warn("schema warning", slog.String("code", w.Code), slog.String("path", w.Path), slog.String("message", w.Message))
	}

	pages, semantic, err := openStores(cmd)
	if err != nil {
		return err
	}

	c := compiler.New(pages, semantic, false)
	ctx := cmd.Context()

	if !noTUI {
		return c.InstallWithProgress(ctx, sch, logPublisher)
	}

	return installWithLogging(ctx, c, sch)
}

func installWithLogging(ctx context.Context, c *compiler.Compiler, sch *compiler.Schema) error {
	events := make(chan install.Event, 64)

	done := make(chan error, 1)

	go func() {
		done <- c.Install(ctx, sch, events)
		close(events)
	}()

	for e := range events {
		logInstallEvent(e)
	}

	return <-done
}

func logInstallEvent(e install.Event) {
	attrs := []any{slog.String("layer", e.Layer.String())}
	if e.Entity != "" {
		attrs = append(attrs, slog.String("entity", e.Entity))
	}

	switch e.Kind {
	case install.EventLayerStarted:
		slog.Info("layer started", attrs...)
	case install.EventEntityWritten:
		slog.Info("entity written", attrs...)
	case install.EventEntitySkipped:
		slog.Debug("entity skipped", attrs...)
	case install.EventEntityFailed:
		slog.Error("entity failed", append(attrs, slog.Any("error", e.Err))...)
	case install.EventFlushed:
		slog.Debug("semantic backend flushed", attrs...)
	case install.EventLayerDone:
		slog.Info("layer done", attrs...)
	}
}
