// Package cel provides a CEL (Common Expression Language) evaluator for
// configuration entry rules.
//
// Expressions see two variables: mapping, the entry being checked as a
// map<string, dyn>, and index, its position within the section.
//
// Example usage:
//
//	evaluator, err := cel.NewEvaluator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	vars := map[string]interface{}{
//	    "mapping": map[string]interface{}{
//	        "slug":    "recycling",
//	        "address": "2133 N 61ST ST",
//	    },
//	    "index": 0,
//	}
//
//	ok, err := evaluator.EvaluateBool(ctx, "size(mapping.slug) > 0", vars)
//
// Supported operations:
//   - Comparisons: ==, !=, <, <=, >, >=
//   - Boolean logic: &&, ||, !
//   - String operations: contains, startsWith, endsWith, matches
//   - Map access: mapping.slug, mapping["address"]
package cel
