package generate

import (
	"fmt"
	"strings"
)

// DispatcherTemplate renders the thin indirection template (§4.5) that
// takes an entity's parameters and transcludes the semantic template and
// the display stub, passing every parameter through to both by name.
//
// Generated, deterministic, overwritten on every run -- unlike the
// display stub, the dispatcher carries no human-editable content.
func DispatcherTemplate(semanticTemplateName, displayStubName string, requiredProps, optionalProps []string) string {
	params := make([]string, 0, len(requiredProps)+len(optionalProps))
	for _, name := range requiredProps {
		params = append(params, NamingHelper{}.Param(name))
	}

	for _, name := range optionalProps {
		params = append(params, NamingHelper{}.Param(name))
	}

	var sb strings.Builder

	sb.WriteString(managedBanner)
	sb.WriteByte('\n')

	sb.WriteString(transclusion(semanticTemplateName, params))
	sb.WriteByte('\n')
	sb.WriteString(transclusion(displayStubName, params))
	sb.WriteByte('\n')

	return sb.String()
}

func transclusion(templateName string, params []string) string {
	if len(params) == 0 {
		return fmt.Sprintf("{{%s}}", templateName)
	}

	var sb strings.Builder

	sb.WriteString("{{")
	sb.WriteString(templateName)

	for _, p := range params {
		sb.WriteString(fmt.Sprintf("\n| %s = {{{%s|}}}", p, p))
	}

	sb.WriteString("\n}}")

	return sb.String()
}

// SemanticTemplateName returns the conventional template name for a
// category's or subobject's semantic annotation template.
func SemanticTemplateName(entityName string) string {
	return fmt.Sprintf("Template:%s/semantic", entityName)
}

// DisplayStubName returns the conventional template name for a
// category's display stub.
func DisplayStubName(categoryName string) string {
	return fmt.Sprintf("Template:%s/display", categoryName)
}

// DispatcherName returns the conventional template name for a
// category's dispatcher.
func DispatcherName(categoryName string) string {
	return fmt.Sprintf("Template:%s", categoryName)
}
