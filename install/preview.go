package install

import (
	"context"
	"fmt"

	"go.ontologyc.dev/compiler/generate"
	"go.ontologyc.dev/compiler/state"
	"go.ontologyc.dev/compiler/wikistore"
)

// Diff reports what [Preview] found would change without writing
// anything, split into the same page/template halves [state.Manager]
// tracks separately.
type Diff struct {
	Pages     state.PageComparison
	Templates []string
}

// Preview renders every artifact Install would write and compares the
// resulting content hashes against stateMgr's recorded [state.Document],
// without performing any writes (the dry-run mode of §5's "regenerate
// --dry-run").
func Preview(ctx context.Context, stateMgr *state.Manager, input Input) (*Diff, error) {
	doc, err := stateMgr.Load(ctx)
	if err != nil {
		return nil, err
	}

	pages := make(map[string]string)
	templates := make(map[string]string)

	for _, name := range sortedKeys(input.Categories) {
		cat, err := input.Resolver.Effective(name)
		if err != nil {
			return nil, fmt.Errorf("install: preview: category %q: %w", name, err)
		}

		semanticContent, err := generate.CategorySemanticTemplate(cat.Name(), cat.RequiredProperties(), cat.OptionalProperties(), input.Properties)
		if err != nil {
			return nil, fmt.Errorf("install: preview: category %q: %w", name, err)
		}

		templates[generate.SemanticTemplateName(cat.Name())] = state.HashContent(semanticContent)

		dispatcherContent := generate.DispatcherTemplate(
			generate.SemanticTemplateName(cat.Name()), generate.DisplayStubName(cat.Name()),
			cat.RequiredProperties(), cat.OptionalProperties(),
		)
		templates[generate.DispatcherName(cat.Name())] = state.HashContent(dispatcherContent)

		title, err := wikistore.MakeTitle(name, "Category")
		if err != nil {
			return nil, fmt.Errorf("install: preview: category %q: %w", name, err)
		}

		pages[title.String()] = state.HashContent(renderCategoryRegion(input.Categories[name]))
	}

	for _, name := range sortedSubobjectKeys(input.Subobjects) {
		sub := input.Subobjects[name]

		content, err := generate.SubobjectSemanticTemplate(sub.Name(), sub.RequiredProperties(), sub.OptionalProperties(), input.Properties)
		if err != nil {
			return nil, fmt.Errorf("install: preview: subobject %q: %w", name, err)
		}

		templates[generate.SemanticTemplateName(sub.Name())] = state.HashContent(content)

		title, err := wikistore.MakeTitle(name, "Subobject")
		if err != nil {
			return nil, fmt.Errorf("install: preview: subobject %q: %w", name, err)
		}

		pages[title.String()] = state.HashContent(renderSubobjectRegion(sub))
	}

	for _, name := range sortedPropertyKeys(input.Properties) {
		p := input.Properties[name]

		title, err := wikistore.MakeTitle(name, "Property")
		if err != nil {
			return nil, fmt.Errorf("install: preview: property %q: %w", name, err)
		}

		pages[title.String()] = state.HashContent(renderPropertyCombinedRegion(p))
	}

	return &Diff{
		Pages:     doc.ComparePages(pages),
		Templates: doc.StaleTemplates(templates),
	}, nil
}
