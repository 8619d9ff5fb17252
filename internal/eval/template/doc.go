// Package template renders the bound SeattleWaste section with Handlebars
// templates.
//
// Templates see the section key, the mapping count and the mappings in
// declaration order:
//
//	{
//	    "section":   "SeattleWaste",
//	    "count":     2,
//	    "resources": [{"slug": "recycling", "address": "2133 N 61ST ST"}, ...],
//	}
//
// Example usage:
//
//	engine := template.NewEngine()
//	out, err := engine.Render(template.DefaultTemplate, template.SectionContext(opts))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Built-in helpers:
//   - uppercase - Convert string to uppercase
//   - lowercase - Convert string to lowercase
//   - default - Return default value if first arg is empty
//
// Example with helpers:
//
//	{{#each resources}}{{uppercase slug}} {{default address "unknown"}}{{/each}}
package template
