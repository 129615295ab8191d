package main

import (
	"github.com/spf13/cobra"

	"go.ontologyc.dev/compiler/wikistore"
)

const storeDirFlag = "store-dir"

// openStores builds the local page and semantic stores rooted at the
// --store-dir flag. The host's production deployment supplies its own
// [wikistore.PageStore]/[wikistore.SemanticStore] talking to a live
// wiki; this CLI only ships the local, file-backed reference
// implementation (§1 excludes the host wiki runtime from the core).
func openStores(cmd *cobra.Command) (*wikistore.LocalPageStore, *wikistore.LocalSemanticStore, error) {
	dir, err := cmd.Flags().GetString(storeDirFlag)
	if err != nil {
		return nil, nil, err
	}

	return wikistore.NewLocalPageStore(dir), wikistore.NewLocalSemanticStore(), nil
}
