package compiler

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"go.ontologyc.dev/compiler/api"
	"go.ontologyc.dev/compiler/form"
	"go.ontologyc.dev/compiler/install"
	applog "go.ontologyc.dev/compiler/log"
	"go.ontologyc.dev/compiler/multicat"
	"go.ontologyc.dev/compiler/resolve"
	"go.ontologyc.dev/compiler/schema"
	"go.ontologyc.dev/compiler/schemaio"
	"go.ontologyc.dev/compiler/state"
	"go.ontologyc.dev/compiler/wikistore"
)

// Compiler is the single entry point cmd/ontologyc drives: it owns the
// host-supplied page store and semantic backend, and dispatches schema
// loading, resolution, dry-run diffing, and installation against them.
type Compiler struct {
	pages     wikistore.PageStore
	semantic  wikistore.SemanticStore
	stateMgr  *state.Manager
	installer *install.Installer
	bypass    bool
}

// New constructs a [Compiler] against the host's page store and semantic
// backend. bypass is the host's rate-limit bypass flag (§5), threaded
// through to the installer unevaluated.
func New(pages wikistore.PageStore, semantic wikistore.SemanticStore, bypass bool) *Compiler {
	stateMgr := state.NewManager(pages)

	return &Compiler{
		pages:     pages,
		semantic:  semantic,
		stateMgr:  stateMgr,
		installer: install.New(pages, semantic, stateMgr, bypass),
		bypass:    bypass,
	}
}

// Schema is a loaded, validated schema document plus the resolver built
// over its declared category universe, ready for resolution, preview, or
// installation.
type Schema struct {
	Properties map[string]schema.Property
	Subobjects map[string]schema.Subobject
	Categories resolve.MapUniverse
	Resolver   *resolve.Resolver
}

// Import parses and validates data (§6.3 auto-detected JSON/YAML),
// returning the loaded [Schema] alongside any non-fatal warnings. A
// non-nil error means validation failed and no [Schema] is usable; no
// writes are attempted in that case (§7).
func Import(data []byte) (*Schema, []schemaio.ValidationWarning, error) {
	loaded, warnings, err := schemaio.Load(data)
	if err != nil {
		return nil, warnings, err
	}

	return &Schema{
		Properties: loaded.Properties,
		Subobjects: loaded.Subobjects,
		Categories: loaded.Categories,
		Resolver:   resolve.New(loaded.Categories),
	}, warnings, nil
}

// Export re-serializes sch into the canonical schema file format (§8's
// round-trip invariant: Import(Export(Import(data))) == Import(data)).
func (sch *Schema) Export() ([]byte, error) {
	return schemaio.Export(&schemaio.LoadedSchema{
		Properties: sch.Properties,
		Subobjects: sch.Subobjects,
		Categories: sch.Categories,
	})
}

func (s *Schema) installInput() install.Input {
	return install.Input{
		Categories: s.Categories,
		Properties: s.Properties,
		Subobjects: s.Subobjects,
		Resolver:   s.Resolver,
	}
}

// Install runs the full five-layer installation (§4.10) against sch.
// progress may be nil; see [install.Installer.Install].
func (c *Compiler) Install(ctx context.Context, sch *Schema, progress chan<- install.Event) error {
	return c.installer.Install(ctx, sch.installInput(), progress)
}

// InstallWithProgress runs the installation behind the package's
// terminal progress display (§4.10/§5's human-facing surface). When
// logs is non-nil, log lines written to it are tailed live beneath the
// progress display instead of racing the TUI for the terminal.
func (c *Compiler) InstallWithProgress(ctx context.Context, sch *Schema, logs *applog.Publisher) error {
	return install.RunWithProgress(ctx, c.installer, sch.installInput(), logs)
}

// Regenerate computes what an installation would change against the
// currently recorded state, without writing anything (§5 "regenerate
// --dry-run").
func (c *Compiler) Regenerate(ctx context.Context, sch *Schema) (*install.Diff, error) {
	return install.Preview(ctx, c.stateMgr, sch.installInput())
}

// Resolve runs the resolution API (§6.4) against sch's declared universe
// on behalf of caller.
func (c *Compiler) Resolve(caller api.Caller, sch *Schema, categories []string) (*api.Response, error) {
	return api.ResolveMultiCategory(caller, sch.Resolver, sch.Properties, categories)
}

// Form renders the data-entry form for one or more categories (§4.7): a
// single category renders a single-section form directly off its
// effective definition; two or more categories are merged through
// [multicat.Resolve] into a composite form with shared fields collapsed
// into the first (alphabetically sorted) section.
func (c *Compiler) Form(sch *Schema, categories []string) (string, error) {
	if len(categories) == 0 {
		return "", form.ErrNoCategories
	}

	if len(categories) == 1 {
		cat, err := sch.Resolver.Effective(categories[0])
		if err != nil {
			return "", fmt.Errorf("compiler: form: %w", err)
		}

		return form.SingleCategoryForm(cat), nil
	}

	effectives := make(map[string]schema.Category, len(categories))

	for _, name := range categories {
		cat, err := sch.Resolver.Effective(name)
		if err != nil {
			return "", fmt.Errorf("compiler: form: %w", err)
		}

		effectives[name] = cat
	}

	resolved, err := multicat.Resolve(sch.Resolver, categories)
	if err != nil {
		return "", fmt.Errorf("compiler: form: %w", err)
	}

	return form.CompositeForm(categories, effectives, resolved)
}

// JSONSchema exports the JSON Schema (Draft 7) describing a single
// category's effective shape (§6.4's domain twin: the same resolved
// shape, rendered for schema-consuming tooling instead of the wiki).
func (c *Compiler) JSONSchema(sch *Schema, category string) (*jsonschema.Schema, error) {
	cat, err := sch.Resolver.Effective(category)
	if err != nil {
		return nil, fmt.Errorf("compiler: jsonschema: %w", err)
	}

	return api.CategorySchema(cat, sch.Properties, sch.Subobjects), nil
}
