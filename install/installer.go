package install

import (
	"context"
	"fmt"
	"sort"

	"go.ontologyc.dev/compiler/generate"
	"go.ontologyc.dev/compiler/resolve"
	"go.ontologyc.dev/compiler/schema"
	"go.ontologyc.dev/compiler/state"
	"go.ontologyc.dev/compiler/wikistore"
)

func sortStrings(s []string) { sort.Strings(s) }

// Layer is one of the five ordered installation layers (§4.10).
type Layer int

// The five ordered layers, in installation order.
const (
	LayerTemplates Layer = iota
	LayerPropertyTypes
	LayerPropertyAnnotations
	LayerSubobjects
	LayerCategories
)

// String names the layer for logging and the progress TUI.
func (l Layer) String() string {
	switch l {
	case LayerTemplates:
		return "render templates"
	case LayerPropertyTypes:
		return "property types"
	case LayerPropertyAnnotations:
		return "property annotations"
	case LayerSubobjects:
		return "subobjects"
	case LayerCategories:
		return "categories"
	default:
		return "unknown layer"
	}
}

// EventKind classifies one [Event] emitted during [Installer.Install].
type EventKind int

// The event kinds an [Installer] emits, in roughly chronological order
// within a layer.
const (
	EventLayerStarted EventKind = iota
	EventEntityWritten
	EventEntitySkipped
	EventEntityFailed
	EventFlushed
	EventLayerDone
)

// Event reports one step of progress during installation, consumed by
// callers (e.g. the progress TUI in this package, or a plain logger) via
// a channel.
type Event struct {
	Layer  Layer
	Entity string
	Kind   EventKind
	Err    error
}

// Installer runs the five-layer installation described in §4.10 against
// a fixed declared universe of categories, properties, and subobjects.
type Installer struct {
	pages      wikistore.PageStore
	semantic   wikistore.SemanticStore
	creator    *wikistore.PageCreator
	properties wikistore.PropertyStore
	subobjects wikistore.SubobjectStore
	categories wikistore.CategoryStore
	stateMgr   *state.Manager
	bypass     bool
}

// New constructs an [Installer]. bypass mirrors the host's rate-limit
// bypass flag (§5): the core never evaluates it, only threads it through
// so the host's own entry-point logging can record whether an
// installation ran under bypass.
func New(pages wikistore.PageStore, semantic wikistore.SemanticStore, stateMgr *state.Manager, bypass bool) *Installer {
	return &Installer{
		pages:      pages,
		semantic:   semantic,
		creator:    wikistore.NewPageCreator(pages),
		properties: wikistore.NewPropertyStore(pages, semantic),
		subobjects: wikistore.NewSubobjectStore(pages, semantic),
		categories: wikistore.NewCategoryStore(pages, semantic),
		stateMgr:   stateMgr,
		bypass:     bypass,
	}
}

// Input bundles the declared schema the installer writes.
type Input struct {
	Categories resolve.MapUniverse
	Properties map[string]schema.Property
	Subobjects map[string]schema.Subobject
	Resolver   *resolve.Resolver
}

// Install runs all five layers in order, requesting a semantic-backend
// flush between each one (§4.10). progress may be nil; if non-nil, it
// receives one [Event] per step and is never closed by Install (the
// caller owns its lifetime, since a single channel may be shared across
// multiple Install calls by a long-lived TUI).
func (in *Installer) Install(ctx context.Context, input Input, progress chan<- Event) error {
	layers := []func(context.Context, Input, chan<- Event) error{
		in.installTemplates,
		in.installPropertyTypes,
		in.installPropertyAnnotations,
		in.installSubobjects,
		in.installCategories,
	}

	for i, run := range layers {
		layer := Layer(i)
		emit(progress, Event{Layer: layer, Kind: EventLayerStarted})

		if err := run(ctx, input, progress); err != nil {
			return fmt.Errorf("install: layer %s: %w", layer, err)
		}

		if err := in.semantic.FlushPending(ctx); err != nil {
			return fmt.Errorf("install: layer %s: flush: %w", layer, err)
		}

		emit(progress, Event{Layer: layer, Kind: EventFlushed})
		emit(progress, Event{Layer: layer, Kind: EventLayerDone})
	}

	return nil
}

func emit(progress chan<- Event, e Event) {
	if progress == nil {
		return
	}

	progress <- e
}

// installTemplates is layer 1: dispatcher, semantic template, and
// (once) display stub for every category; semantic templates for every
// subobject. These have no semantic-backend dependency.
func (in *Installer) installTemplates(ctx context.Context, input Input, progress chan<- Event) error {
	doc, err := in.stateMgr.Load(ctx)
	if err != nil {
		return err
	}

	hashes := make(map[string]state.TemplateHashes)

	for _, name := range sortedKeys(input.Categories) {
		cat, err := input.Resolver.Effective(name)
		if err != nil {
			emit(progress, Event{Layer: LayerTemplates, Entity: name, Kind: EventEntityFailed, Err: err})
			continue
		}

		semanticContent, err := generate.CategorySemanticTemplate(cat.Name(), cat.RequiredProperties(), cat.OptionalProperties(), input.Properties)
		if err != nil {
			emit(progress, Event{Layer: LayerTemplates, Entity: name, Kind: EventEntityFailed, Err: err})
			continue
		}

		in.applyTemplateWrite(ctx, doc, hashes, templateWrite{
			name: generate.SemanticTemplateName(cat.Name()), content: semanticContent, category: cat.Name(),
			write: func() wikistore.Result { return in.creator.WriteSemanticTemplate(ctx, cat, input.Properties) },
		}, progress, LayerTemplates)

		dispatcherContent := generate.DispatcherTemplate(
			generate.SemanticTemplateName(cat.Name()), generate.DisplayStubName(cat.Name()),
			cat.RequiredProperties(), cat.OptionalProperties(),
		)

		in.applyTemplateWrite(ctx, doc, hashes, templateWrite{
			name: generate.DispatcherName(cat.Name()), content: dispatcherContent, category: cat.Name(),
			write: func() wikistore.Result { return in.creator.WriteDispatcher(ctx, cat) },
		}, progress, LayerTemplates)

		if _, created := in.creator.EnsureDisplayStub(ctx, cat, input.Properties); created {
			emit(progress, Event{Layer: LayerTemplates, Entity: name, Kind: EventEntityWritten})
		}
	}

	for _, name := range sortedSubobjectKeys(input.Subobjects) {
		sub := input.Subobjects[name]

		content, err := generate.SubobjectSemanticTemplate(sub.Name(), sub.RequiredProperties(), sub.OptionalProperties(), input.Properties)
		if err != nil {
			emit(progress, Event{Layer: LayerTemplates, Entity: name, Kind: EventEntityFailed, Err: err})
			continue
		}

		in.applyTemplateWrite(ctx, doc, hashes, templateWrite{
			name: generate.SemanticTemplateName(sub.Name()), content: content, category: sub.Name(),
			write: func() wikistore.Result { return in.creator.WriteSubobjectSemanticTemplate(ctx, sub, input.Properties) },
		}, progress, LayerTemplates)
	}

	if len(hashes) == 0 {
		return nil
	}

	result := in.stateMgr.RecordTemplates(ctx, hashes)
	if !result.OK {
		return fmt.Errorf("install: recording template hashes: %s", result.LastError)
	}

	return nil
}

// installPropertyTypes is layer 2: push just the type declaration so the
// semantic backend can register it before layer 3's annotations arrive.
// Both layers share the same marker-delimited page region, so the skip
// decision here is against the *combined* region hash layer 3 will also
// use (and records) -- a property already fully up to date from a prior
// run skips its type push too, instead of churning the page on every
// invocation.
func (in *Installer) installPropertyTypes(ctx context.Context, input Input, progress chan<- Event) error {
	doc, err := in.stateMgr.Load(ctx)
	if err != nil {
		return err
	}

	for _, name := range sortedPropertyKeys(input.Properties) {
		p := input.Properties[name]

		title, err := in.properties.Title(name)
		if err != nil {
			emit(progress, Event{Layer: LayerPropertyTypes, Entity: name, Kind: EventEntityFailed, Err: err})
			continue
		}

		if doc.PageHashes[title.String()] == state.HashContent(renderPropertyCombinedRegion(p)) {
			emit(progress, Event{Layer: LayerPropertyTypes, Entity: name, Kind: EventEntitySkipped})
			continue
		}

		result := in.properties.UpdateManagedRegion(ctx, name, renderPropertyTypeRegion(p))
		if !result.OK {
			emit(progress, Event{Layer: LayerPropertyTypes, Entity: name, Kind: EventEntityFailed, Err: fmt.Errorf("%s", result.LastError)})
			continue
		}

		emit(progress, Event{Layer: LayerPropertyTypes, Entity: name, Kind: EventEntityWritten})
	}

	return nil
}

// installPropertyAnnotations is layer 3: overwrite the same region with
// the full type+annotations content and record the combined hash -- the
// single recorded hash that both this layer and layer 2 compare against
// on the next run.
func (in *Installer) installPropertyAnnotations(ctx context.Context, input Input, progress chan<- Event) error {
	doc, err := in.stateMgr.Load(ctx)
	if err != nil {
		return err
	}

	changed := make(map[string]string)

	for _, name := range sortedPropertyKeys(input.Properties) {
		p := input.Properties[name]

		title, err := in.properties.Title(name)
		if err != nil {
			emit(progress, Event{Layer: LayerPropertyAnnotations, Entity: name, Kind: EventEntityFailed, Err: err})
			continue
		}

		combined := renderPropertyCombinedRegion(p)
		hash := state.HashContent(combined)

		if doc.PageHashes[title.String()] == hash {
			emit(progress, Event{Layer: LayerPropertyAnnotations, Entity: name, Kind: EventEntitySkipped})
			continue
		}

		result := in.properties.UpdateManagedRegion(ctx, name, combined)
		if !result.OK {
			emit(progress, Event{Layer: LayerPropertyAnnotations, Entity: name, Kind: EventEntityFailed, Err: fmt.Errorf("%s", result.LastError)})
			continue
		}

		changed[title.String()] = hash

		emit(progress, Event{Layer: LayerPropertyAnnotations, Entity: name, Kind: EventEntityWritten})
	}

	if len(changed) == 0 {
		return nil
	}

	result := in.stateMgr.RecordPages(ctx, changed)
	if !result.OK {
		return fmt.Errorf("install: recording page hashes: %s", result.LastError)
	}

	return nil
}

func (in *Installer) installSubobjects(ctx context.Context, input Input, progress chan<- Event) error {
	return in.writeEntityLayer(ctx, LayerSubobjects, in.subobjects.EntityStore, sortedSubobjectKeys(input.Subobjects),
		func(name string) string { return renderSubobjectRegion(input.Subobjects[name]) }, progress)
}

func (in *Installer) installCategories(ctx context.Context, input Input, progress chan<- Event) error {
	return in.writeEntityLayer(ctx, LayerCategories, in.categories.EntityStore, sortedKeys(input.Categories),
		func(name string) string { return renderCategoryRegion(input.Categories[name]) }, progress)
}

// writeEntityLayer writes one managed region per name via store,
// skipping any whose content hash already matches the recorded state
// (idempotence, §4.10).
func (in *Installer) writeEntityLayer(
	ctx context.Context,
	layer Layer,
	store *wikistore.EntityStore,
	names []string,
	render func(name string) string,
	progress chan<- Event,
) error {
	doc, err := in.stateMgr.Load(ctx)
	if err != nil {
		return err
	}

	changed := make(map[string]string)

	for _, name := range names {
		title, err := store.Title(name)
		if err != nil {
			emit(progress, Event{Layer: layer, Entity: name, Kind: EventEntityFailed, Err: err})
			continue
		}

		region := render(name)
		hash := state.HashContent(region)

		if doc.PageHashes[title.String()] == hash {
			emit(progress, Event{Layer: layer, Entity: name, Kind: EventEntitySkipped})
			continue
		}

		result := store.UpdateManagedRegion(ctx, name, region)
		if !result.OK {
			emit(progress, Event{Layer: layer, Entity: name, Kind: EventEntityFailed, Err: fmt.Errorf("%s", result.LastError)})
			continue
		}

		changed[title.String()] = hash

		emit(progress, Event{Layer: layer, Entity: name, Kind: EventEntityWritten})
	}

	if len(changed) == 0 {
		return nil
	}

	result := in.stateMgr.RecordPages(ctx, changed)
	if !result.OK {
		return fmt.Errorf("install: recording page hashes: %s", result.LastError)
	}

	return nil
}

// templateWrite bundles what's needed to apply a single hash-gated
// template write: its conventional name, rendered content (for
// hashing), the entity it was generated for, and the write itself.
type templateWrite struct {
	name     string
	content  string
	category string
	write    func() wikistore.Result
}

// applyTemplateWrite skips the write entirely when content's hash
// already matches the recorded state, otherwise performs it and records
// the new hash into hashes for a single batched [state.Manager.RecordTemplates]
// call at the end of the layer.
func (in *Installer) applyTemplateWrite(
	_ context.Context,
	doc *state.Document,
	hashes map[string]state.TemplateHashes,
	tw templateWrite,
	progress chan<- Event,
	layer Layer,
) {
	hash := state.HashContent(tw.content)

	if doc.TemplateHashes[tw.name].Generated == hash {
		emit(progress, Event{Layer: layer, Entity: tw.name, Kind: EventEntitySkipped})
		return
	}

	result := tw.write()
	if !result.OK {
		emit(progress, Event{Layer: layer, Entity: tw.name, Kind: EventEntityFailed, Err: fmt.Errorf("%s", result.LastError)})
		return
	}

	hashes[tw.name] = state.TemplateHashes{Generated: hash, Category: tw.category}

	emit(progress, Event{Layer: layer, Entity: tw.name, Kind: EventEntityWritten})
}

func sortedKeys(m resolve.MapUniverse) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	sortStrings(names)

	return names
}

func sortedPropertyKeys(m map[string]schema.Property) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	sortStrings(names)

	return names
}

func sortedSubobjectKeys(m map[string]schema.Subobject) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	sortStrings(names)

	return names
}
