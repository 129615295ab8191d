package install

import (
	"fmt"
	"strings"

	"go.ontologyc.dev/compiler/schema"
)

// renderPropertyTypeRegion renders the managed region declaring a
// property's datatype (§4.10 layer 2). This must be written and flushed
// before layer 3's annotations, which reference the now-known type.
func renderPropertyTypeRegion(p schema.Property) string {
	return fmt.Sprintf("[[Has type::%s]]\n", p.Datatype())
}

// renderPropertyAnnotationRegion renders the managed region for a
// property's remaining metadata (§4.10 layer 3): label, description,
// allowed values, namespace/category restrictions, multiplicity, and
// any subpropertyOf relation.
func renderPropertyAnnotationRegion(p schema.Property) string {
	var sb strings.Builder

	if p.Label() != "" {
		sb.WriteString(fmt.Sprintf("[[Has label::%s]]\n", p.Label()))
	}

	if p.Description() != "" {
		sb.WriteString(fmt.Sprintf("[[Has description::%s]]\n", p.Description()))
	}

	for _, v := range p.AllowedValues() {
		sb.WriteString(fmt.Sprintf("[[Allows value::%s]]\n", v))
	}

	if p.AllowedNamespace() != "" {
		sb.WriteString(fmt.Sprintf("[[Allows namespace::%s]]\n", p.AllowedNamespace()))
	}

	if p.AllowedCategory() != "" {
		sb.WriteString(fmt.Sprintf("[[Allows category::%s]]\n", p.AllowedCategory()))
	}

	if p.AllowsMultipleValues() {
		sb.WriteString("[[Allows multiple values::true]]\n")
	}

	if p.SubpropertyOf() != "" {
		sb.WriteString(fmt.Sprintf("[[Subproperty of::%s]]\n", schema.PropertyTitle(p.SubpropertyOf())))
	}

	return sb.String()
}

// renderPropertyCombinedRegion renders the full managed region a
// property's page carries once both layer 2 and layer 3 have run: the
// type declaration followed by the remaining annotations. Both layers
// write to the same marker-delimited region on the same page, so their
// idempotence check must be against this combined content, not either
// half alone -- otherwise the second layer's write would always look
// "changed" relative to the first layer's partial content.
func renderPropertyCombinedRegion(p schema.Property) string {
	return renderPropertyTypeRegion(p) + renderPropertyAnnotationRegion(p)
}

// renderSubobjectRegion renders the managed region declaring a
// subobject's required and optional properties (§4.10 layer 4).
func renderSubobjectRegion(sub schema.Subobject) string {
	var sb strings.Builder

	for _, name := range sub.RequiredProperties() {
		sb.WriteString(fmt.Sprintf("[[Has required property::%s]]\n", schema.PropertyTitle(name)))
	}

	for _, name := range sub.OptionalProperties() {
		sb.WriteString(fmt.Sprintf("[[Has optional property::%s]]\n", schema.PropertyTitle(name)))
	}

	return sb.String()
}

// renderCategoryRegion renders the managed region declaring a
// category's own parents, properties, and subobjects (§4.10 layer 5).
// This is the category's own declared set, not its effective (resolved)
// set -- the resolver computes effective sets on demand from these
// declarations.
func renderCategoryRegion(cat schema.Category) string {
	var sb strings.Builder

	for _, parent := range cat.Parents() {
		sb.WriteString(fmt.Sprintf("[[Subcategory of::%s]]\n", schema.CategoryTitle(parent)))
	}

	for _, name := range cat.RequiredProperties() {
		sb.WriteString(fmt.Sprintf("[[Has required property::%s]]\n", schema.PropertyTitle(name)))
	}

	for _, name := range cat.OptionalProperties() {
		sb.WriteString(fmt.Sprintf("[[Has optional property::%s]]\n", schema.PropertyTitle(name)))
	}

	for _, name := range cat.RequiredSubobjects() {
		sb.WriteString(fmt.Sprintf("[[Has required subobject::%s]]\n", schema.SubobjectTitle(name)))
	}

	for _, name := range cat.OptionalSubobjects() {
		sb.WriteString(fmt.Sprintf("[[Has optional subobject::%s]]\n", schema.SubobjectTitle(name)))
	}

	if cat.TargetNamespace() != "" {
		sb.WriteString(fmt.Sprintf("[[Has target namespace::%s]]\n", cat.TargetNamespace()))
	}

	return sb.String()
}
