package generate

import (
	"fmt"
	"strings"

	"go.ontologyc.dev/compiler/schema"
)

// DefaultDisplayStub renders the initial human-editable display stub for
// a category (§4.6). Display stubs are created once and never
// overwritten -- [wikistore.PageCreator] detects existence by
// testing for the page before calling this, not by inspecting content --
// so this function only ever runs at creation time.
func DefaultDisplayStub(cat schema.Category, properties map[string]schema.Property) (string, error) {
	var sb strings.Builder

	sb.WriteString("<!-- Initial display stub generated by the ontology compiler. -->\n")
	sb.WriteString("<!-- This page is safe to edit; it is created once and never overwritten. -->\n\n")

	if len(cat.DisplayHeaderProperties()) > 0 {
		sb.WriteString("'''")

		for i, name := range cat.DisplayHeaderProperties() {
			if i > 0 {
				sb.WriteString(" &mdash; ")
			}

			p, ok := properties[name]
			if !ok {
				return "", fmt.Errorf("%w: %q", ErrUnknownProperty, name)
			}

			sb.WriteString(propertyRenderExpr(p))
		}

		sb.WriteString("'''\n\n")
	}

	sections := cat.DisplaySections()
	if len(sections) == 0 {
		sections = []schema.DisplaySection{{
			Name:       cat.Name(),
			Properties: append(append([]string(nil), cat.RequiredProperties()...), cat.OptionalProperties()...),
		}}
	}

	for _, section := range sections {
		sb.WriteString(fmt.Sprintf("== %s ==\n", section.Name))

		for _, name := range section.Properties {
			p, ok := properties[name]
			if !ok {
				return "", fmt.Errorf("%w: %q", ErrUnknownProperty, name)
			}

			sb.WriteString(fmt.Sprintf("; %s\n: %s\n", p.Name(), propertyRenderExpr(p)))
		}

		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// propertyRenderExpr selects the per-property render expression
// following the §4.6 priority order: explicit hasTemplate, then a
// built-in Page link (forced with a leading colon so MediaWiki doesn't
// treat the value as a namespace directive), then default text.
func propertyRenderExpr(p schema.Property) string {
	param := NamingHelper{}.Param(p.Name())

	if p.HasTemplate() != "" {
		return fmt.Sprintf("{{%s|{{{%s|}}}}}", p.HasTemplate(), param)
	}

	if p.Datatype() == schema.DatatypePage {
		if p.AllowsMultipleValues() && p.AllowedNamespace() != "" {
			// Generation-time prefixing: the namespace is baked into the
			// arraymap expression so the display stub never needs an
			// existence check per rendered value.
			return fmt.Sprintf(
				"{{#arraymap:{{{%s|}}}|,|@@item@@|[[:%s:@@item@@|@@item@@]]|, }}",
				param, p.AllowedNamespace(),
			)
		}

		return fmt.Sprintf("[[:{{{%s|}}}]]", param)
	}

	return fmt.Sprintf("{{{%s|}}}", param)
}
