// Package recipe assembles a definition from a declarative list of helper
// invocations.
//
// A recipe is YAML (or JSON):
//
//	seed: base.json        # optional, relative to the recipe file
//	initSequences: true    # optional
//	steps:
//	  - set: openapi
//	    value: 3.0.0
//	  - add: server
//	    values:
//	      - url: https://api.example.com
//	  - add: components_schema
//	    key: User
//	    value: {type: object}
//	  - set: other
//	    path: info.x-audience
//	    value: internal
//
// Step names are the helper names from [definition.SetOperations] and
// [definition.AddOperations]. Keyed helpers take "key", set.other takes
// "path", and append helpers accept either one "value" or a "values" list.
// Values keep their source key order.
package recipe
