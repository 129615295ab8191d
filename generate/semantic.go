package generate

import (
	"errors"
	"fmt"
	"strings"

	"go.ontologyc.dev/compiler/schema"
)

// ErrUnknownProperty is returned when a category or subobject references
// a property name absent from the properties map passed to a generator.
// A fully validated [schemaio.LoadedSchema] never triggers this; it
// exists as a defensive invariant check (§7: "internal invariant
// violations ... do raise, because they indicate a bug rather than an
// input error").
var ErrUnknownProperty = errors.New("generate: unknown property")

// managedBanner is the comment banner every fully-generated, fully
// managed artifact carries (§6.6).
const managedBanner = "<!-- Generated by the ontology compiler. Do not edit; changes will be overwritten. -->"

// CategorySemanticTemplate renders the semantic annotation template for
// a category (§4.4): one `{{#set:}}` call with one conditional line per
// effective property, required properties first then optional, in the
// order the category lists them.
func CategorySemanticTemplate(name string, requiredProps, optionalProps []string, properties map[string]schema.Property) (string, error) {
	lines, err := propertyLines(requiredProps, optionalProps, properties)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString(managedBanner)
	sb.WriteString("\n{{#set:\n")

	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	sb.WriteString("}}\n")

	return sb.String(), nil
}

// SubobjectSemanticTemplate renders the semantic annotation template for
// a subobject (§4.4): a `{{#subobject:}}` call whose first line is the
// unguarded constant annotation identifying the subobject type, followed
// by one conditional line per subobject property.
func SubobjectSemanticTemplate(name string, requiredProps, optionalProps []string, properties map[string]schema.Property) (string, error) {
	lines, err := propertyLines(requiredProps, optionalProps, properties)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString(managedBanner)
	sb.WriteString("\n{{#subobject:\n")
	sb.WriteString(fmt.Sprintf("| Has subobject type = %s\n", schema.SubobjectTitle(name)))

	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	sb.WriteString("}}\n")

	return sb.String(), nil
}

func propertyLines(required, optional []string, properties map[string]schema.Property) ([]string, error) {
	names := make([]string, 0, len(required)+len(optional))
	names = append(names, required...)
	names = append(names, optional...)

	lines := make([]string, 0, len(names))

	for _, name := range names {
		p, ok := properties[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
		}

		lines = append(lines, PropertyAnnotation(p))
	}

	return lines, nil
}

// PropertyAnnotation renders the single conditional (or, for the
// multi-valued namespace-restricted Page case, inline) annotation line
// for one property (§4.4).
//
// Idempotence: with {{{param|}}} empty, every branch here evaluates to
// the empty string -- no annotation mentioning the property is emitted.
func PropertyAnnotation(p schema.Property) string {
	param := NamingHelper{}.Param(p.Name())

	nsRestricted := p.AllowedNamespace() != ""
	isPage := p.Datatype() == schema.DatatypePage

	if p.AllowsMultipleValues() && isPage && nsRestricted {
		return fmt.Sprintf(
			"{{#if:{{{%s|}}}|{{#arraymap:{{{%s|}}}|,|@@item@@|[[%s::%s:@@item@@]]|}}|}}",
			param, param, p.Name(), p.AllowedNamespace(),
		)
	}

	valueExpr := fmt.Sprintf("{{{%s|}}}", param)

	trueBranch := valueExpr
	if nsRestricted {
		trueBranch = fmt.Sprintf("%s:{{{%s|}}}", p.AllowedNamespace(), param)
	}

	line := fmt.Sprintf("| %s = {{#if:{{{%s|}}}|%s|}}", p.Name(), param, trueBranch)

	if p.AllowsMultipleValues() {
		line += "|+sep=,"
	}

	return line
}
