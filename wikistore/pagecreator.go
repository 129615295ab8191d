package wikistore

import (
	"context"

	"go.ontologyc.dev/compiler/generate"
	"go.ontologyc.dev/compiler/schema"
)

// PageCreator writes the full set of generated pages for one category:
// the semantic template and dispatcher (always regenerated), and the
// display stub (created once). It does not decide *whether* a write is
// needed -- that idempotence decision belongs to the state manager
// (§4.9) -- it only performs the writes it is asked for.
type PageCreator struct {
	templates PageStore
}

// NewPageCreator constructs a [PageCreator] writing templates through
// pages.
func NewPageCreator(pages PageStore) *PageCreator {
	return &PageCreator{templates: pages}
}

// WriteSemanticTemplate renders and writes a category's semantic
// annotation template, always overwriting (§4.4, §6.6).
func (c *PageCreator) WriteSemanticTemplate(ctx context.Context, cat schema.Category, properties map[string]schema.Property) Result {
	content, err := generate.CategorySemanticTemplate(cat.Name(), cat.RequiredProperties(), cat.OptionalProperties(), properties)
	if err != nil {
		return Failed(err)
	}

	title := Title{Namespace: "Template", Text: generate.SemanticTemplateName(cat.Name())}

	return c.templates.CreateOrUpdate(ctx, title, content, EditSummary)
}

// WriteSubobjectSemanticTemplate renders and writes a subobject's
// semantic annotation template, always overwriting.
func (c *PageCreator) WriteSubobjectSemanticTemplate(ctx context.Context, sub schema.Subobject, properties map[string]schema.Property) Result {
	content, err := generate.SubobjectSemanticTemplate(sub.Name(), sub.RequiredProperties(), sub.OptionalProperties(), properties)
	if err != nil {
		return Failed(err)
	}

	title := Title{Namespace: "Template", Text: generate.SemanticTemplateName(sub.Name())}

	return c.templates.CreateOrUpdate(ctx, title, content, EditSummary)
}

// WriteDispatcher renders and writes a category's dispatcher template,
// always overwriting (§4.5, §6.6).
func (c *PageCreator) WriteDispatcher(ctx context.Context, cat schema.Category) Result {
	content := generate.DispatcherTemplate(
		generate.SemanticTemplateName(cat.Name()),
		generate.DisplayStubName(cat.Name()),
		cat.RequiredProperties(), cat.OptionalProperties(),
	)

	title := Title{Namespace: "Template", Text: generate.DispatcherName(cat.Name())}

	return c.templates.CreateOrUpdate(ctx, title, content, EditSummary)
}

// EnsureDisplayStub writes a category's initial display stub only if it
// does not already exist (§4.6): existence is tested by page presence,
// never by inspecting content, because the page is human-editable after
// creation.
func (c *PageCreator) EnsureDisplayStub(ctx context.Context, cat schema.Category, properties map[string]schema.Property) (Result, created bool) {
	title := Title{Namespace: "Template", Text: generate.DisplayStubName(cat.Name())}

	exists, err := c.templates.Exists(ctx, title)
	if err != nil {
		return Failed(err), false
	}

	if exists {
		return Succeeded(), false
	}

	content, err := generate.DefaultDisplayStub(cat, properties)
	if err != nil {
		return Failed(err), false
	}

	return c.templates.CreateOrUpdate(ctx, title, content, EditSummary), true
}
